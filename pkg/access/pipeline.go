// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"sync"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/pkg/billing"
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

var _ billing.PipelineInterface = (*Pipeline)(nil)

// Pipeline is the Session -> Tenancy -> Entitlement chain of one device
type Pipeline struct {
	DeviceKey   string
	Session     *session.Store
	Tenancy     *tenancy.Resolver
	Entitlement *entitlement.Evaluator

	once sync.Once
	done chan struct{}

	logger logging.LoggerInterface
}

func (p *Pipeline) Sources() gate.Sources {
	return gate.Sources{
		Session:     p.Session,
		Tenancy:     p.Tenancy,
		Entitlement: p.Entitlement,
	}
}

func (p *Pipeline) IdentityID() string {
	if id := p.Session.State().Identity; id != nil {
		return id.ID
	}
	return ""
}

func (p *Pipeline) CurrentTenantID() string {
	return p.Tenancy.State().CurrentID()
}

// RefreshBilling reloads the tenant list and the billing fields of the current
// tenant, then returns the recomputed entitlement
func (p *Pipeline) RefreshBilling(ctx context.Context) entitlement.View {
	if err := p.Tenancy.Refresh(ctx); err != nil {
		p.logger.Warnf("failed to refresh tenants of device %s: %v", p.DeviceKey, err)
	}

	p.Entitlement.Refresh(ctx)

	return p.Entitlement.View()
}

// Done is closed once the pipeline has been closed
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

// Close tears the stages down from the bottom up, it is safe to call more than once
func (p *Pipeline) Close() {
	p.once.Do(func() {
		p.Entitlement.Close()
		p.Tenancy.Close()
		p.Session.Close()
		close(p.done)
	})
}
