// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var _ ClientInterface = (*Memory)(nil)

// Memory keeps entries in process, only suitable for a single replica
type Memory struct {
	prefix string
	c      *gocache.Cache
}

func (m *Memory) key(k string) string {
	if m.prefix == "" {
		return k
	}
	return m.prefix + ":" + k
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(m.key(key))
	if !ok {
		return nil, ErrNotFound
	}

	b, ok := v.([]byte)
	if !ok {
		return nil, ErrNotFound
	}

	return b, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	m.c.Set(m.key(key), value, ttl)

	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Delete(m.key(key))
	return nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}

func NewMemory(prefix string) *Memory {
	return &Memory{
		prefix: prefix,
		c:      gocache.New(gocache.NoExpiration, time.Minute),
	}
}
