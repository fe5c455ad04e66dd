// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

type Plan struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MonthlyPriceCents int    `json:"monthly_price_cents"`
	MaxAthletes       int    `json:"max_athletes"`
}

var catalogue = []Plan{
	{ID: "starter", Name: "Starter", MonthlyPriceCents: 1900, MaxAthletes: 50},
	{ID: "pro", Name: "Pro", MonthlyPriceCents: 4900, MaxAthletes: 250},
	{ID: "club", Name: "Club", MonthlyPriceCents: 9900, MaxAthletes: 0},
}

func lookupPlan(id string) (Plan, bool) {
	for _, p := range catalogue {
		if p.ID == id {
			return p, true
		}
	}

	return Plan{}, false
}
