// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"strings"

	"github.com/google/uuid"
)

const slugFallbackPrefix = "club-"

// Slugify lowercases name and collapses every run of characters outside
// [a-z0-9] into a single dash, leading and trailing dashes are dropped.
// Names with nothing usable get a generated slug.
func Slugify(name string) string {
	var b strings.Builder

	pending := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	if b.Len() == 0 {
		return fallbackSlug()
	}

	return b.String()
}

func fallbackSlug() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	hex := strings.ReplaceAll(id.String(), "-", "")

	// the tail of a v7 id is random, the head is a millisecond timestamp
	return slugFallbackPrefix + hex[len(hex)-8:]
}
