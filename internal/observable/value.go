// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package observable holds a value that notifies subscribers on every change.
//
// Notifications for one Value are delivered one change at a time and in the order
// the changes were made, on the goroutine that made the change. A subscriber must
// not call Set on the Value it is subscribed to.
package observable

import (
	"context"
	"sync"
)

type Value[T any] struct {
	// notify serializes Set calls together with their notifications
	notify sync.Mutex

	mu   sync.RWMutex
	v    T
	subs map[uint64]func(T)
	next uint64
	keys []uint64
}

func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.v
}

// Set stores v and calls every subscriber with it
func (o *Value[T]) Set(v T) {
	o.notify.Lock()
	defer o.notify.Unlock()

	o.mu.Lock()
	o.v = v
	subs := make([]func(T), 0, len(o.keys))
	for _, k := range o.keys {
		subs = append(subs, o.subs[k])
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn for future changes, fn is not called with the current value
func (o *Value[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	k := o.next
	o.next++
	o.subs[k] = fn
	o.keys = append(o.keys, k)

	var once sync.Once

	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()

			delete(o.subs, k)
			for i, key := range o.keys {
				if key == k {
					o.keys = append(o.keys[:i:i], o.keys[i+1:]...)
					break
				}
			}
		})
	}
}

// Await blocks until the value satisfies ready or ctx is done
func Await[T any](ctx context.Context, o *Value[T], ready func(T) bool) (T, error) {
	ch := make(chan T, 1)

	unsubscribe := o.Subscribe(func(v T) {
		if !ready(v) {
			return
		}

		select {
		case ch <- v:
		default:
		}
	})
	defer unsubscribe()

	if v := o.Get(); ready(v) {
		return v, nil
	}

	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		v:    initial,
		subs: make(map[uint64]func(T)),
	}
}
