// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/club-access/internal/types"
)

// SessionCache persists the session of each device under its device key
type SessionCache struct {
	client ClientInterface
	now    func() time.Time
}

func (s *SessionCache) key(deviceKey string) string {
	return "session:" + deviceKey
}

// Get returns the cached session, nil when the device has none
func (s *SessionCache) Get(ctx context.Context, deviceKey string) (*types.Session, error) {
	raw, err := s.client.Get(ctx, s.key(deviceKey))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached session: %w", err)
	}

	session := new(types.Session)
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, fmt.Errorf("failed to decode cached session: %w", err)
	}

	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(s.now()) {
		return nil, nil
	}

	return session, nil
}

func (s *SessionCache) Set(ctx context.Context, deviceKey string, session *types.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx, deviceKey)
		}
	}

	return s.client.Set(ctx, s.key(deviceKey), raw, ttl)
}

func (s *SessionCache) Delete(ctx context.Context, deviceKey string) error {
	return s.client.Delete(ctx, s.key(deviceKey))
}

func NewSessionCache(client ClientInterface) *SessionCache {
	return &SessionCache{client: client, now: time.Now}
}
