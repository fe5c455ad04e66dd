// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

// Store owns the identity of one browser device.
//
// Every identity change bumps the generation; background results (privilege
// lookups, token refreshes) carry the generation they were issued under and are
// dropped when it no longer matches.
type Store struct {
	deviceKey       string
	refreshInterval time.Duration

	idp        IdentityProviderInterface
	privileges PrivilegeCheckerInterface
	cache      SessionCacheInterface

	state *observable.Value[State]

	mu         sync.Mutex
	generation uint64
	token      string
	started    bool
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Store) State() State {
	return s.state.Get()
}

func (s *Store) Subscribe(fn func(State)) func() {
	return s.state.Subscribe(fn)
}

// Observable exposes the underlying value for callers that need to wait on it
func (s *Store) Observable() *observable.Value[State] {
	return s.state
}

func (s *Store) DeviceKey() string {
	return s.deviceKey
}

// Init publishes the cached session for the device and starts the background
// refresher, it never waits for the privilege lookup
func (s *Store) Init(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.Store.Init")
	defer span.End()

	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	session, err := s.cache.Get(ctx, s.deviceKey)
	if err != nil {
		s.logger.Warnf("failed to read persisted session for device %s: %v", s.deviceKey, err)
		session = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.publishLocked(session, false)

	if s.refreshInterval > 0 {
		s.spawnLocked(s.refresher)
	}
}

func (s *Store) SignIn(ctx context.Context, email, password string) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.SignIn")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	session, err := s.idp.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.logger.Security().AuthnLoginFail(email)
		return err
	}

	if err := s.cache.Set(ctx, s.deviceKey, session); err != nil {
		s.logger.Errorf("failed to persist session for device %s: %v", s.deviceKey, err)
	}

	s.logger.Security().AuthnLoginSuccess(session.Identity.ID)
	s.Notify(Event{Kind: EventSignedIn, Session: session})

	return nil
}

// SignUp registers a new identity, the device is signed in only when the
// identity provider issued a session right away
func (s *Store) SignUp(ctx context.Context, email, password, displayName string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "session.Store.SignUp")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	identity, session, err := s.idp.SignUp(ctx, email, password, strings.TrimSpace(displayName))
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnRegistration(identity.ID)

	if session == nil {
		return identity, nil
	}

	if err := s.cache.Set(ctx, s.deviceKey, session); err != nil {
		s.logger.Errorf("failed to persist session for device %s: %v", s.deviceKey, err)
	}

	s.Notify(Event{Kind: EventSignedIn, Session: session})

	return identity, nil
}

// SignOut always leaves the device signed out, failures are only logged
func (s *Store) SignOut(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.Store.SignOut")
	defer span.End()

	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	identity := s.state.Get().Identity

	if token != "" {
		if err := s.idp.SignOut(ctx, token); err != nil {
			s.logger.Warnf("remote sign out failed for device %s: %v", s.deviceKey, err)
		}
	}

	if err := s.cache.Delete(ctx, s.deviceKey); err != nil {
		s.logger.Errorf("failed to delete persisted session for device %s: %v", s.deviceKey, err)
	}

	if identity != nil {
		s.logger.Security().AuthnLogout(identity.ID)
	}

	s.Notify(Event{Kind: EventSignedOut})
}

func (s *Store) ResetPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.ResetPassword")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInput
	}

	return s.idp.ResetPassword(ctx, email)
}

// Notify applies an identity change event
func (s *Store) Notify(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	switch e.Kind {
	case EventSignedIn:
		s.publishLocked(e.Session, false)
	case EventTokenRefreshed:
		s.publishLocked(e.Session, true)
	case EventSignedOut:
		s.publishLocked(nil, false)
	default:
		s.logger.Warnf("ignoring unknown session event %q", e.Kind)
	}
}

// publishLocked replaces the identity and schedules a privilege lookup for it.
// keepElevated carries the current flag over when the identity did not change.
func (s *Store) publishLocked(session *types.Session, keepElevated bool) {
	s.generation++
	generation := s.generation

	prev := s.state.Get()

	next := State{Loading: false}
	s.token = ""

	if session != nil {
		identity := session.Identity
		next.Identity = &identity
		s.token = session.Token

		if keepElevated && prev.Identity != nil && prev.Identity.ID == identity.ID {
			next.IsElevated = prev.IsElevated
		}
	}

	s.state.Set(next)

	if next.Identity != nil {
		id := next.Identity.ID
		s.spawnLocked(func(ctx context.Context) {
			s.checkPrivilege(ctx, generation, id)
		})
	}
}

func (s *Store) checkPrivilege(ctx context.Context, generation uint64, identityID string) {
	ctx, span := s.tracer.Start(ctx, "session.Store.checkPrivilege")
	defer span.End()

	elevated := false

	status, err := s.privileges.GetUserRoleStatus(ctx, identityID)
	if err != nil {
		s.logger.Warnf("privilege lookup failed for %s, treating as not elevated: %v", identityID, err)
	} else if status != nil {
		elevated = status.IsSuperAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		return
	}

	current := s.state.Get()
	if current.Identity == nil || current.Identity.ID != identityID || current.IsElevated == elevated {
		return
	}

	current.IsElevated = elevated
	s.state.Set(current)

	if elevated {
		s.logger.Security().PrivilegeElevated(identityID)
	}
}

func (s *Store) refresher(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.revalidate(ctx); err != nil {
				s.logger.Warnf("session refresh failed for device %s: %v", s.deviceKey, err)
			}
		}
	}
}

// revalidate checks the current token against the identity provider and emits
// token_refreshed or signed_out accordingly
func (s *Store) revalidate(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.revalidate")
	defer span.End()

	s.mu.Lock()
	token := s.token
	generation := s.generation
	s.mu.Unlock()

	if token == "" {
		return nil
	}

	session, err := s.idp.GetSession(ctx, token)

	if err != nil && !errors.Is(err, ErrSessionInvalid) {
		return err
	}

	if err != nil {
		if err := s.cache.Delete(ctx, s.deviceKey); err != nil {
			s.logger.Errorf("failed to delete expired session for device %s: %v", s.deviceKey, err)
		}
	} else if err := s.cache.Set(ctx, s.deviceKey, session); err != nil {
		s.logger.Errorf("failed to persist refreshed session for device %s: %v", s.deviceKey, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		return nil
	}

	if session == nil {
		s.publishLocked(nil, false)
		return nil
	}

	s.publishLocked(session, true)

	return nil
}

// spawnLocked runs fn in a tracked goroutine, s.mu must be held
func (s *Store) spawnLocked(fn func(context.Context)) {
	if s.closed {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Close stops background work and waits for it to finish
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}

func NewStore(
	deviceKey string,
	idp IdentityProviderInterface,
	privileges PrivilegeCheckerInterface,
	cache SessionCacheInterface,
	refreshInterval time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	s := new(Store)

	s.deviceKey = deviceKey
	s.refreshInterval = refreshInterval

	s.idp = idp
	s.privileges = privileges
	s.cache = cache

	s.state = observable.New(State{Loading: true})
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
