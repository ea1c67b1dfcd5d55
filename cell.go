// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

import (
	"sync"
)

// Interior mutation cells. A cell lets a capability whose receiver is
// borrowed still mutate captured state, with the mutation discipline made
// explicit: borrow-checked for single-goroutine use ([Cell]), mutex-guarded
// with poisoning for concurrent use ([SyncCell]).

// Cell is a non-atomic, borrow-checked mutation cell for single-goroutine
// use. At most one mutable borrow may be live at a time; a reentrant
// borrow — typically a payload that recursively invokes itself through a
// cloned handle — panics immediately. The conflict is a programming
// error, not a recoverable condition.
//
// Cell performs no synchronization. Concurrent use from multiple
// goroutines is undefined by contract.
type Cell[S any] struct {
	borrowed bool
	value    S
}

// NewCell creates a cell holding the initial value.
func NewCell[S any](initial S) *Cell[S] {
	return &Cell[S]{value: initial}
}

// With runs f with mutable access to the cell's value.
// Panics if the cell is already mutably borrowed.
func (c *Cell[S]) With(f func(*S)) {
	if c.borrowed {
		panic("capa: cell already mutably borrowed")
	}
	c.borrowed = true
	defer func() { c.borrowed = false }()
	f(&c.value)
}

// Get returns a copy of the cell's value.
// Panics if the cell is mutably borrowed.
func (c *Cell[S]) Get() S {
	if c.borrowed {
		panic("capa: cell already mutably borrowed")
	}
	return c.value
}

// Set replaces the cell's value.
// Panics if the cell is mutably borrowed.
func (c *Cell[S]) Set(v S) {
	if c.borrowed {
		panic("capa: cell already mutably borrowed")
	}
	c.value = v
}

// SyncCell is a mutex-guarded mutation cell safe for concurrent use.
// With holds the lock for the duration of the call and releases it
// unconditionally, on return or unwind. A payload panic while the lock is
// held poisons the cell before the panic propagates; every later access
// to a poisoned cell panics, so torn state is never silently observed.
type SyncCell[S any] struct {
	mu       sync.Mutex
	poisoned bool
	value    S
}

// NewSyncCell creates a goroutine-safe cell holding the initial value.
func NewSyncCell[S any](initial S) *SyncCell[S] {
	return &SyncCell[S]{value: initial}
}

// With runs f with mutable access to the cell's value, holding the lock
// for the duration of the call. If f panics, the cell is poisoned and the
// panic propagates unchanged. Panics if the cell is already poisoned.
func (c *SyncCell[S]) With(f func(*S)) {
	c.mu.Lock()
	if c.poisoned {
		c.mu.Unlock()
		panic("capa: cell poisoned by earlier panic")
	}
	defer func() {
		if r := recover(); r != nil {
			c.poisoned = true
			c.mu.Unlock()
			panic(r)
		}
		c.mu.Unlock()
	}()
	f(&c.value)
}

// Get returns a copy of the cell's value under the lock.
// Panics if the cell is poisoned.
func (c *SyncCell[S]) Get() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		panic("capa: cell poisoned by earlier panic")
	}
	return c.value
}

// Set replaces the cell's value under the lock.
// Panics if the cell is poisoned.
func (c *SyncCell[S]) Set(v S) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		panic("capa: cell poisoned by earlier panic")
	}
	c.value = v
}
