// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/capa"
)

func TestCellWithGetSet(t *testing.T) {
	c := capa.NewCell(10)

	c.With(func(v *int) { *v += 5 })
	if got := c.Get(); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}

	c.Set(1)
	if got := c.Get(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestCellReentrantBorrowPanics(t *testing.T) {
	c := capa.NewCell(0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on reentrant borrow")
		}
		if s, ok := r.(string); !ok || s != "capa: cell already mutably borrowed" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	c.With(func(*int) {
		c.With(func(*int) {})
	})
}

func TestCellGetDuringBorrowPanics(t *testing.T) {
	c := capa.NewCell(0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a mutably borrowed cell")
		}
	}()

	c.With(func(*int) {
		_ = c.Get()
	})
}

func TestCellBorrowReleasedAfterPanic(t *testing.T) {
	c := capa.NewCell(0)

	func() {
		defer func() { _ = recover() }()
		c.With(func(*int) { panic("payload") })
	}()

	// The single-goroutine cell is not poisoned; the borrow flag must be
	// clear again.
	c.With(func(v *int) { *v = 7 })
	if got := c.Get(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestSyncCellWithGetSet(t *testing.T) {
	c := capa.NewSyncCell("a")

	c.With(func(v *string) { *v += "b" })
	if got := c.Get(); got != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}

	c.Set("z")
	if got := c.Get(); got != "z" {
		t.Fatalf("got %q, want %q", got, "z")
	}
}

func TestSyncCellConcurrentWith(t *testing.T) {
	c := capa.NewSyncCell(0)

	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perGoroutine {
				c.With(func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	if got := c.Get(); got != goroutines*perGoroutine {
		t.Fatalf("got %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestSyncCellPoisonOnPayloadPanic(t *testing.T) {
	c := capa.NewSyncCell(0)

	// The payload panic must propagate unchanged.
	func() {
		defer func() {
			r := recover()
			if r != "payload failure" {
				t.Fatalf("unexpected panic value: %v", r)
			}
		}()
		c.With(func(*int) { panic("payload failure") })
	}()

	// The lock must have been released and the cell poisoned: the next
	// acquirer fails loudly instead of observing torn state.
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on poisoned cell")
		}
		if s, ok := r.(string); !ok || s != "capa: cell poisoned by earlier panic" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	c.With(func(*int) {})
}

func TestSyncCellPoisonedGetPanics(t *testing.T) {
	c := capa.NewSyncCell(0)

	func() {
		defer func() { _ = recover() }()
		c.With(func(*int) { panic("payload failure") })
	}()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Get to panic on poisoned cell")
		}
	}()
	_ = c.Get()
}

// --- Benchmarks ---

func BenchmarkCellWith(b *testing.B) {
	c := capa.NewCell(0)
	for b.Loop() {
		c.With(func(v *int) { *v++ })
	}
}

func BenchmarkSyncCellWith(b *testing.B) {
	c := capa.NewSyncCell(0)
	for b.Loop() {
		c.With(func(v *int) { *v++ })
	}
}
