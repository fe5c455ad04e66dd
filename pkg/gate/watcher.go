// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"sync"

	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

// Watcher keeps the decision for one path current as the pipeline changes
type Watcher struct {
	policy  Policy
	path    string
	exempt  bool
	sources Sources

	mu       sync.Mutex
	decision *observable.Value[Decision]
	unsubs   []func()
	closed   bool
}

func (w *Watcher) Decision() Decision {
	return w.decision.Get()
}

func (w *Watcher) Observable() *observable.Value[Decision] {
	return w.decision
}

func (w *Watcher) input() Input {
	return Input{
		Session:     w.sources.Session.State(),
		Tenancy:     w.sources.Tenancy.State(),
		Entitlement: w.sources.Entitlement.View(),
		Path:        w.path,
		Exempt:      w.exempt,
	}
}

func (w *Watcher) recompute() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	d := w.policy.Decide(w.input())
	if d == w.decision.Get() {
		return
	}

	w.decision.Set(d)
}

func (w *Watcher) Close() {
	w.mu.Lock()
	w.closed = true
	unsubs := w.unsubs
	w.unsubs = nil
	w.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
}

func NewWatcher(policy Policy, sources Sources, path string, exempt bool) *Watcher {
	w := new(Watcher)

	w.policy = policy
	w.path = path
	w.exempt = exempt
	w.sources = sources

	w.decision = observable.New(policy.Decide(w.input()))

	w.unsubs = []func(){
		sources.Session.Subscribe(func(session.State) { w.recompute() }),
		sources.Tenancy.Subscribe(func(tenancy.State) { w.recompute() }),
		sources.Entitlement.Subscribe(func(entitlement.State) { w.recompute() }),
	}

	// catch up with anything that changed before the subscriptions were in place
	w.recompute()

	return w
}
