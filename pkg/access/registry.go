// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/pkg/billing"
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

var (
	ErrNoDeviceKey    = errors.New("request carries no device key")
	ErrRegistryClosed = errors.New("access registry is closed")
)

// Dependencies are shared by every pipeline the registry builds
type Dependencies struct {
	IdentityProvider session.IdentityProviderInterface
	Privileges       session.PrivilegeCheckerInterface
	SessionCache     session.SessionCacheInterface
	Storage          StorageInterface
	Authorizer       tenancy.AuthorizerInterface

	SessionRefreshInterval time.Duration
	Now                    func() time.Time
}

// Registry keeps one pipeline per device key and closes it once the device has
// been idle for longer than the idle TTL
type Registry struct {
	deps      Dependencies
	pipelines *gocache.Cache
	group     singleflight.Group

	mu     sync.RWMutex
	closed bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Registry) Get(ctx context.Context, deviceKey string) (*Pipeline, error) {
	ctx, span := r.tracer.Start(ctx, "access.Registry.Get")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrRegistryClosed
	}

	if p, ok := r.lookup(deviceKey); ok {
		return p, nil
	}

	v, err, _ := r.group.Do(deviceKey, func() (any, error) {
		if p, ok := r.lookup(deviceKey); ok {
			return p, nil
		}

		// evict expired pipelines now so a replaced entry is closed before Set drops it
		r.pipelines.DeleteExpired()

		p := r.build(context.WithoutCancel(ctx), deviceKey)
		r.pipelines.SetDefault(deviceKey, p)

		r.logger.Debugf("built access pipeline for device %s", deviceKey)

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Pipeline), nil
}

func (r *Registry) lookup(deviceKey string) (*Pipeline, bool) {
	v, ok := r.pipelines.Get(deviceKey)
	if !ok {
		return nil, false
	}

	p := v.(*Pipeline)

	select {
	case <-p.Done():
		// lost a race with the janitor
		return nil, false
	default:
	}

	// touch
	r.pipelines.SetDefault(deviceKey, p)

	return p, true
}

func (r *Registry) build(ctx context.Context, deviceKey string) *Pipeline {
	p := new(Pipeline)

	p.DeviceKey = deviceKey
	p.done = make(chan struct{})
	p.logger = r.logger

	p.Session = session.NewStore(
		deviceKey,
		r.deps.IdentityProvider,
		r.deps.Privileges,
		r.deps.SessionCache,
		r.deps.SessionRefreshInterval,
		r.tracer,
		r.monitor,
		r.logger,
	)
	p.Tenancy = tenancy.NewResolver(p.Session, r.deps.Storage, r.deps.Authorizer, r.tracer, r.monitor, r.logger)
	p.Entitlement = entitlement.NewEvaluator(p.Tenancy, r.deps.Storage, r.deps.Now, r.tracer, r.monitor, r.logger)

	p.Session.Init(ctx)

	return p
}

// Remove closes and forgets the pipeline of a device
func (r *Registry) Remove(deviceKey string) {
	r.pipelines.Delete(deviceKey)
}

func (r *Registry) Len() int {
	return r.pipelines.ItemCount()
}

// Close closes every live pipeline, further Get calls fail
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	for key := range r.pipelines.Items() {
		r.pipelines.Delete(key)
	}
	// expired entries are not listed by Items
	r.pipelines.DeleteExpired()
}

func (r *Registry) fromRequest(req *http.Request) (*Pipeline, error) {
	key, ok := DeviceKeyFromContext(req.Context())
	if !ok {
		return nil, ErrNoDeviceKey
	}

	p, err := r.Get(req.Context(), key)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline for device: %w", err)
	}

	return p, nil
}

func (r *Registry) SessionLocator() session.Locator {
	return func(req *http.Request) (*session.Store, error) {
		p, err := r.fromRequest(req)
		if err != nil {
			return nil, err
		}
		return p.Session, nil
	}
}

func (r *Registry) TenancyLocator() tenancy.Locator {
	return func(req *http.Request) (*tenancy.Resolver, error) {
		p, err := r.fromRequest(req)
		if err != nil {
			return nil, err
		}
		return p.Tenancy, nil
	}
}

func (r *Registry) EntitlementLocator() entitlement.Locator {
	return func(req *http.Request) (*entitlement.Evaluator, error) {
		p, err := r.fromRequest(req)
		if err != nil {
			return nil, err
		}
		return p.Entitlement, nil
	}
}

// GateLocator serves page traffic. Devices with neither a live pipeline nor a
// persisted session get the shared anonymous view instead of a pipeline.
func (r *Registry) GateLocator() gate.Locator {
	return func(req *http.Request) (gate.Sources, error) {
		ctx := req.Context()

		key, ok := DeviceKeyFromContext(ctx)
		if !ok {
			return gate.Sources{}, ErrNoDeviceKey
		}

		if !r.live(key) && !r.hasPersistedSession(ctx, key) {
			return anonymousSources(), nil
		}

		p, err := r.fromRequest(req)
		if err != nil {
			return gate.Sources{}, err
		}
		return p.Sources(), nil
	}
}

// live reports whether deviceKey has an open pipeline, the registry being
// closed counts as live so Get reports it
func (r *Registry) live(deviceKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return true
	}

	_, ok := r.lookup(deviceKey)
	return ok
}

func (r *Registry) hasPersistedSession(ctx context.Context, deviceKey string) bool {
	// a key issued by this very request cannot have one
	if IsNewDevice(ctx) {
		return false
	}

	s, err := r.deps.SessionCache.Get(ctx, deviceKey)
	if err != nil {
		r.logger.Warnf("failed to check persisted session for device %s: %v", deviceKey, err)
		return true
	}

	return s != nil
}

func (r *Registry) BillingLocator() billing.Locator {
	return func(req *http.Request) (billing.PipelineInterface, error) {
		p, err := r.fromRequest(req)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func NewRegistry(deps Dependencies, idleTTL time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registry {
	r := new(Registry)

	r.deps = deps

	cleanup := idleTTL / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}

	r.pipelines = gocache.New(idleTTL, cleanup)
	r.pipelines.OnEvicted(func(key string, v any) {
		v.(*Pipeline).Close()
		logger.Debugf("closed access pipeline for device %s", key)
	})

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
