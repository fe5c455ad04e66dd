// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/storage"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/session"
)

// lastCurrentTenantID is the process wide peek slot, written by every resolver
var lastCurrentTenantID atomic.Pointer[string]

// CurrentTenantID returns the current tenant id last published by any resolver
// in the process. It is a snapshot and may be one update behind.
//
// With more than one resolver alive (one per device in the server) the value
// belongs to whichever published last, so it is only meaningful in a process
// driving a single device. Per device code reads Resolver.PeekCurrentTenantID.
func CurrentTenantID() string {
	if id := lastCurrentTenantID.Load(); id != nil {
		return *id
	}

	return ""
}

// Resolver derives the tenants of the signed in identity and the one it is
// currently operating as.
//
// Lock order: mu may be taken while the session value is notifying, and mu is
// held while this resolver's own value notifies. writeMu is taken before mu.
type Resolver struct {
	session SessionSourceInterface
	storage StorageInterface
	authz   AuthorizerInterface

	state *observable.Value[State]
	peek  atomic.Pointer[string]

	// writeMu serializes writes of the persisted current tenant
	writeMu sync.Mutex

	mu         sync.Mutex
	generation uint64
	// selection counts explicit switches, selectedID is the latest target.
	// A switch does not invalidate an in-flight resolution, it is re-applied
	// onto its result instead.
	selection      uint64
	selectedID     string
	initialized    bool
	sessionLoading bool
	identityID     string
	closed         bool

	unsubscribe func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Resolver) State() State {
	return r.state.Get()
}

func (r *Resolver) Subscribe(fn func(State)) func() {
	return r.state.Subscribe(fn)
}

func (r *Resolver) Observable() *observable.Value[State] {
	return r.state
}

// PeekCurrentTenantID returns the last published current tenant id of this resolver
func (r *Resolver) PeekCurrentTenantID() string {
	if id := r.peek.Load(); id != nil {
		return *id
	}

	return ""
}

func (r *Resolver) onSession(session.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	// always act on the latest snapshot, notifications may interleave with the
	// initial catch up in NewResolver
	st := r.session.State()

	identityID := ""
	if st.Identity != nil {
		identityID = st.Identity.ID
	}

	if r.initialized && st.Loading == r.sessionLoading && identityID == r.identityID {
		return
	}

	r.initialized = true
	r.sessionLoading = st.Loading
	r.identityID = identityID
	r.generation++
	generation := r.generation

	switch {
	case st.Loading:
		r.publishLocked(State{Loading: true})
	case identityID == "":
		r.publishLocked(State{Loading: false})
	default:
		r.publishLocked(State{Loading: true, IdentityID: identityID})
		r.spawnLocked(func(ctx context.Context) {
			_ = r.resolve(ctx, generation, identityID)
		})
	}
}

// resolve loads memberships and the persisted selection for identityID and
// publishes the result if generation is still current
func (r *Resolver) resolve(ctx context.Context, generation uint64, identityID string) error {
	ctx, span := r.tracer.Start(ctx, "tenancy.Resolver.resolve")
	defer span.End()

	r.mu.Lock()
	selection := r.selection
	r.mu.Unlock()

	tenants, currentID, err := r.fetch(ctx, identityID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || generation != r.generation {
		r.logger.Debugf("discarding stale tenancy resolution for %s", identityID)
		return nil
	}

	r.generation++
	generation = r.generation

	if err != nil {
		r.logger.Errorf("failed to resolve tenants for %s: %v", identityID, err)
		r.publishLocked(State{Tenants: []*types.Tenant{}, Loading: false, IdentityID: identityID})
		return err
	}

	// a switch that landed while fetching may not be reflected in currentID
	if r.selection != selection && find(tenants, r.selectedID) != nil {
		currentID = r.selectedID
	}

	current := find(tenants, currentID)

	if current == nil && len(tenants) > 0 {
		current = tenants[0]

		tenantID := current.ID
		selected := r.selection
		r.spawnLocked(func(ctx context.Context) {
			r.persistDefault(ctx, generation, selected, identityID, tenantID)
		})
	}

	r.publishLocked(State{Tenants: tenants, Current: current, Loading: false, IdentityID: identityID})

	return nil
}

func (r *Resolver) fetch(ctx context.Context, identityID string) ([]*types.Tenant, string, error) {
	var (
		tenants   []*types.Tenant
		currentID string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tenants, err = r.storage.ListTenantsByUserID(gctx, identityID)
		return err
	})

	g.Go(func() error {
		var err error
		currentID, err = r.storage.GetCurrentTenantID(gctx, identityID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	if tenants == nil {
		tenants = []*types.Tenant{}
	}

	return tenants, currentID, nil
}

// persistDefault stores the automatically selected tenant, skipped when a new
// resolution or an explicit switch happened since. Failures are logged only.
func (r *Resolver) persistDefault(ctx context.Context, generation, selection uint64, identityID, tenantID string) {
	ctx, span := r.tracer.Start(ctx, "tenancy.Resolver.persistDefault")
	defer span.End()

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	r.mu.Lock()
	stale := generation != r.generation || selection != r.selection
	r.mu.Unlock()

	if stale {
		return
	}

	if err := r.storage.SetCurrentTenantID(ctx, identityID, tenantID); err != nil {
		r.logger.Warnf("failed to persist default tenant %s for %s: %v", tenantID, identityID, err)
	}
}

// SetCurrentTenant persists tenantID as the current tenant and then publishes
// it. On error the published state is left as it was.
func (r *Resolver) SetCurrentTenant(ctx context.Context, tenantID string) error {
	ctx, span := r.tracer.Start(ctx, "tenancy.Resolver.SetCurrentTenant")
	defer span.End()

	st := r.state.Get()
	if st.IdentityID == "" {
		return ErrUnauthenticated
	}

	if find(st.Tenants, tenantID) == nil {
		return ErrNotMember
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := r.storage.SetCurrentTenantID(ctx, st.IdentityID, tenantID); err != nil {
		return fmt.Errorf("failed to set current tenant: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.identityID != st.IdentityID {
		return nil
	}

	r.selection++
	r.selectedID = tenantID

	next := r.state.Get()
	if t := find(next.Tenants, tenantID); t != nil {
		next.Current = t
		r.publishLocked(next)
	}

	return nil
}

// Refresh reloads memberships for the current identity without going back
// to a loading state
func (r *Resolver) Refresh(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "tenancy.Resolver.Refresh")
	defer span.End()

	r.mu.Lock()
	if r.closed || r.sessionLoading || r.identityID == "" {
		r.mu.Unlock()
		return nil
	}

	r.generation++
	generation := r.generation
	identityID := r.identityID
	r.mu.Unlock()

	return r.resolve(ctx, generation, identityID)
}

// CreateTenant creates a tenant owned by the signed in identity and reloads
// the membership list. A blank name gets the generated slug as its name.
func (r *Resolver) CreateTenant(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "tenancy.Resolver.CreateTenant")
	defer span.End()

	identityID := r.state.Get().IdentityID
	if identityID == "" {
		return nil, ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	slug := Slugify(name)
	if name == "" {
		name = slug
	}

	tenant, err := r.storage.CreateTenantWithOwner(ctx, &types.Tenant{Name: name, Slug: slug}, identityID)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrTenantExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := r.authz.AssignTenantOwner(ctx, tenant.ID, identityID); err != nil {
		r.logger.Warnf("failed to assign ownership of tenant %s to %s: %v", tenant.ID, identityID, err)
	}

	if err := r.Refresh(ctx); err != nil {
		r.logger.Warnf("failed to reload tenants after creating %s: %v", tenant.ID, err)
	}

	return tenant, nil
}

// publishLocked sets the state and the peek slots, r.mu must be held
func (r *Resolver) publishLocked(st State) {
	id := st.CurrentID()
	r.peek.Store(&id)
	lastCurrentTenantID.Store(&id)

	r.state.Set(st)
}

func (r *Resolver) spawnLocked(fn func(context.Context)) {
	if r.closed {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(r.ctx)
	}()
}

func (r *Resolver) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.cancel()
	r.mu.Unlock()

	r.unsubscribe()
	r.wg.Wait()
}

func NewResolver(
	src SessionSourceInterface,
	s StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	r := new(Resolver)

	r.session = src
	r.storage = s
	r.authz = authz

	r.state = observable.New(State{Loading: true})
	r.ctx, r.cancel = context.WithCancel(context.Background())

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	r.unsubscribe = src.Subscribe(r.onSession)
	r.onSession(src.State())

	return r
}
