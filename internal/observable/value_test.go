// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package observable

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetNotifiesInOrder(t *testing.T) {
	v := New(0)

	var seen []int
	v.Subscribe(func(n int) { seen = append(seen, n) })

	v.Set(1)
	v.Set(2)
	v.Set(3)

	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("unexpected notifications %v", seen)
	}

	if v.Get() != 3 {
		t.Errorf("expected 3, got %d", v.Get())
	}
}

func TestUnsubscribe(t *testing.T) {
	v := New("a")

	calls := 0
	unsubscribe := v.Subscribe(func(string) { calls++ })

	v.Set("b")
	unsubscribe()
	unsubscribe()
	v.Set("c")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestUnsubscribeFromCallback(t *testing.T) {
	v := New(0)

	calls := 0
	var unsubscribe func()
	unsubscribe = v.Subscribe(func(int) {
		calls++
		unsubscribe()
	})

	v.Set(1)
	v.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestAwait(t *testing.T) {
	v := New(0)

	go func() {
		for i := 1; i <= 5; i++ {
			v.Set(i)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := Await(ctx, v, func(n int) bool { return n >= 5 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestAwaitAlreadyReady(t *testing.T) {
	v := New(7)

	got, err := Await(context.Background(), v, func(n int) bool { return n == 7 })
	if err != nil || got != 7 {
		t.Errorf("expected 7, nil got %d, %v", got, err)
	}
}

func TestAwaitTimeout(t *testing.T) {
	v := New(0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Await(ctx, v, func(n int) bool { return n > 0 })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
