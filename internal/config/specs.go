// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`
	KratosAdminURL  string `envconfig:"kratos_admin_url"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	WebRoot            string   `envconfig:"web_root"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionCacheDriver   string        `envconfig:"session_cache_driver" default:"memory"`
	RedisAddress         string        `envconfig:"redis_address" default:"localhost:6379"`
	RedisPassword        string        `envconfig:"redis_password"`
	RedisDB              int           `envconfig:"redis_db" default:"0"`
	SessionCachePrefix   string        `envconfig:"session_cache_prefix" default:"club-access"`
	DeviceCookieName     string        `envconfig:"device_cookie_name" default:"club_device"`
	DeviceCookieSecure   bool          `envconfig:"device_cookie_secure" default:"true"`
	DeviceCookieLifetime time.Duration `envconfig:"device_cookie_lifetime" default:"720h"`

	SessionRefreshInterval time.Duration `envconfig:"session_refresh_interval" default:"5m"`
	PipelineIdleTTL        time.Duration `envconfig:"pipeline_idle_ttl" default:"30m"`
	GateSettleTimeout      time.Duration `envconfig:"gate_settle_timeout" default:"3s"`

	HooksAuthenticationEnabled bool     `envconfig:"hooks_authentication_enabled" default:"false"`
	HooksIssuer                string   `envconfig:"hooks_issuer"`
	HooksJwksURL               string   `envconfig:"hooks_jwks_url"`
	HooksAllowedSubjects       []string `envconfig:"hooks_allowed_subjects"`
	HooksRequiredScope         string   `envconfig:"hooks_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
	OpenfgaPrivilegedId  string `envconfig:"openfga_privileged_id" default:"global"`
}
