// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Riverside", expected: "riverside"},
		{name: "spaces", input: "Riverside Rowing Club", expected: "riverside-rowing-club"},
		{name: "collapses runs", input: "FC  --  Bayern!!", expected: "fc-bayern"},
		{name: "trims separators", input: "  --Eagles--  ", expected: "eagles"},
		{name: "keeps digits", input: "Team 2026", expected: "team-2026"},
		{name: "accents are separators", input: "Atlético Madrid", expected: "atl-tico-madrid"},
		{name: "already a slug", input: "under-12s", expected: "under-12s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyDegenerateNames(t *testing.T) {
	pattern := regexp.MustCompile(`^club-[0-9a-f]{8}$`)

	for _, input := range []string{"", "   ", "!!!", "---", "日本"} {
		got := Slugify(input)
		if !pattern.MatchString(got) {
			t.Errorf("Slugify(%q) = %q, want generated slug", input, got)
		}
	}
}
