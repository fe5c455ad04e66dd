// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"sync"
	"time"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/tenancy"
)

// State is the billing snapshot of the current tenant. The entitlement itself
// is derived from it on every read.
type State struct {
	Billing  *types.Billing
	Loading  bool
	TenantID string
}

// View is what callers consume: the entitlement at read time and the access decision
type View struct {
	Entitlement  *types.EntitlementState `json:"entitlement"`
	Loading      bool                    `json:"loading"`
	CanAccessApp bool                    `json:"can_access_app"`
}

// ViewAt derives the View of st at now
func ViewAt(st State, now time.Time) View {
	v := View{Loading: st.Loading}

	if !st.Loading && st.Billing != nil {
		e := Compute(*st.Billing, now)
		v.Entitlement = &e
	}

	v.CanAccessApp = CanAccessApp(v.Loading, v.Entitlement)

	return v
}

type key struct {
	loading    bool
	identityID string
	tenantID   string
}

type Evaluator struct {
	tenancy TenancySourceInterface
	storage StorageInterface
	now     func() time.Time

	state *observable.Value[State]

	mu          sync.Mutex
	generation  uint64
	initialized bool
	current     key
	closed      bool

	unsubscribe func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (e *Evaluator) State() State {
	return e.state.Get()
}

func (e *Evaluator) Subscribe(fn func(State)) func() {
	return e.state.Subscribe(fn)
}

func (e *Evaluator) Observable() *observable.Value[State] {
	return e.state
}

func (e *Evaluator) View() View {
	return ViewAt(e.state.Get(), e.now())
}

// Entitlement returns nil while loading and when nothing could be computed
func (e *Evaluator) Entitlement() *types.EntitlementState {
	return e.View().Entitlement
}

func (e *Evaluator) CanAccessApp() bool {
	return e.View().CanAccessApp
}

func (e *Evaluator) onTenancy(tenancy.State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	st := e.tenancy.State()
	k := key{loading: st.Loading, identityID: st.IdentityID, tenantID: st.CurrentID()}

	if e.initialized && k == e.current {
		return
	}

	e.initialized = true
	e.current = k
	e.generation++
	generation := e.generation

	switch {
	case k.loading:
		e.state.Set(State{Loading: true})
	case k.identityID == "" || k.tenantID == "":
		e.state.Set(State{Loading: false})
	default:
		e.state.Set(State{Loading: true, TenantID: k.tenantID})
		e.spawnLocked(func(ctx context.Context) {
			e.load(ctx, generation, k.tenantID)
		})
	}
}

// load fetches the billing fields of tenantID and publishes them if generation
// is still current. Failures publish an empty result.
func (e *Evaluator) load(ctx context.Context, generation uint64, tenantID string) {
	ctx, span := e.tracer.Start(ctx, "entitlement.Evaluator.load")
	defer span.End()

	b, err := e.storage.GetTenantBilling(ctx, tenantID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || generation != e.generation {
		e.logger.Debugf("discarding stale billing for tenant %s", tenantID)
		return
	}

	if err != nil {
		e.logger.Errorf("failed to load billing for tenant %s, allowing access: %v", tenantID, err)
		e.state.Set(State{Loading: false, TenantID: tenantID})
		return
	}

	e.state.Set(State{Billing: b, Loading: false, TenantID: tenantID})
}

// Refresh reloads billing for the current tenant without going back to loading
func (e *Evaluator) Refresh(ctx context.Context) {
	ctx, span := e.tracer.Start(ctx, "entitlement.Evaluator.Refresh")
	defer span.End()

	e.mu.Lock()
	if e.closed || e.current.loading || e.current.identityID == "" || e.current.tenantID == "" {
		e.mu.Unlock()
		return
	}

	e.generation++
	generation := e.generation
	tenantID := e.current.tenantID
	e.mu.Unlock()

	e.load(ctx, generation, tenantID)
}

func (e *Evaluator) spawnLocked(fn func(context.Context)) {
	if e.closed {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		fn(e.ctx)
	}()
}

func (e *Evaluator) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.cancel()
	e.mu.Unlock()

	e.unsubscribe()
	e.wg.Wait()
}

func NewEvaluator(
	src TenancySourceInterface,
	s StorageInterface,
	now func() time.Time,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Evaluator {
	e := new(Evaluator)

	e.tenancy = src
	e.storage = s
	e.now = now
	if e.now == nil {
		e.now = time.Now
	}

	e.state = observable.New(State{Loading: true})
	e.ctx, e.cancel = context.WithCancel(context.Background())

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	e.unsubscribe = src.Subscribe(e.onTenancy)
	e.onTenancy(src.State())

	return e
}
