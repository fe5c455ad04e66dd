// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/club-access/internal/authorization"
	"github.com/canonical/club-access/internal/cache"
	"github.com/canonical/club-access/internal/config"
	"github.com/canonical/club-access/internal/db"
	"github.com/canonical/club-access/internal/kratos"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/monitoring/prometheus"
	"github.com/canonical/club-access/internal/openfga"
	"github.com/canonical/club-access/internal/storage"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/pkg/access"
	"github.com/canonical/club-access/pkg/authentication"
	"github.com/canonical/club-access/pkg/billing"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/status"
	"github.com/canonical/club-access/pkg/web"
	"github.com/canonical/club-access/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("club-access", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	cacheClient, err := newCacheClient(specs)
	if err != nil {
		return fmt.Errorf("failed to create session cache: %w", err)
	}
	defer cacheClient.Close()

	authorizer, privileges := newAuthorizer(specs, s, tracer, monitor, logger)

	hookVerifier, err := newHookVerifier(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up hook authentication: %w", err)
	}

	kratosClient := kratos.NewClient(specs.KratosPublicURL, specs.KratosAdminURL, tracer, monitor, logger)

	registry := access.NewRegistry(
		access.Dependencies{
			IdentityProvider:       kratosClient,
			Privileges:             privileges,
			SessionCache:           cache.NewSessionCache(cacheClient),
			Storage:                s,
			Authorizer:             authorizer,
			SessionRefreshInterval: specs.SessionRefreshInterval,
		},
		specs.PipelineIdleTTL,
		tracer, monitor, logger,
	)
	defer registry.Close()

	router := web.NewRouter(
		web.Config{
			Registry:  registry,
			Billing:   billing.NewService(s, tracer, monitor, logger),
			Hooks:     webhooks.NewService(s, hookIdentities(kratosClient), tracer, monitor, logger),
			HookGuard: authentication.NewMiddleware(hookVerifier, tracer, monitor, logger).RequireCaller(),
			Dependencies: map[string]status.PingerInterface{
				"database":      dbClient,
				"session_cache": cacheClient,
			},
			Cookie: access.CookieConfig{
				Name:     specs.DeviceCookieName,
				Secure:   specs.DeviceCookieSecure,
				Lifetime: specs.DeviceCookieLifetime,
			},
			Policy:         gate.DefaultPolicy(),
			SettleTimeout:  specs.GateSettleTimeout,
			AllowedOrigins: specs.CORSAllowedOrigins,
			WebRoot:        specs.WebRoot,
		},
		tracer, monitor, logger,
	)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func newCacheClient(specs *config.EnvSpec) (cache.ClientInterface, error) {
	switch specs.SessionCacheDriver {
	case "redis":
		return cache.NewRedis(
			cache.RedisConfig{
				Address:  specs.RedisAddress,
				Password: specs.RedisPassword,
				DB:       specs.RedisDB,
				Prefix:   specs.SessionCachePrefix,
			},
		)
	case "memory", "":
		return cache.NewMemory(specs.SessionCachePrefix), nil
	default:
		return nil, fmt.Errorf("unknown session cache driver %q", specs.SessionCacheDriver)
	}
}

// newAuthorizer returns the tenant ownership writer and the privilege lookup,
// both backed by OpenFGA when authorization is enabled
func newAuthorizer(
	specs *config.EnvSpec,
	s *storage.Storage,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*authorization.Authorizer, session.PrivilegeCheckerInterface) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer, privileges are read from profiles")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), specs.OpenfgaPrivilegedId, tracer, monitor, logger), s
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	logger.Info("Authorization is enabled")

	authorizer := authorization.NewAuthorizer(ofga, specs.OpenfgaPrivilegedId, tracer, monitor, logger)

	return authorizer, authorizer
}

// hookIdentities returns nil without the admin API so hooks skip the lookup
func hookIdentities(c *kratos.Client) webhooks.IdentityProviderInterface {
	if !c.HasAdmin() {
		return nil
	}

	return c
}

func newHookVerifier(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (authentication.CallerVerifierInterface, error) {
	if !specs.HooksAuthenticationEnabled {
		logger.Info("Hook authentication is disabled")
		return authentication.NewNoopVerifier(), nil
	}

	return authentication.NewHookVerifier(
		context.Background(),
		specs.HooksIssuer,
		specs.HooksJwksURL,
		authentication.Policy{
			AllowedSubjects: specs.HooksAllowedSubjects,
			RequiredScope:   specs.HooksRequiredScope,
		},
		tracer, monitor, logger,
	)
}
