// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

import (
	"sync/atomic"
)

// OnceEffect is a one-shot effect-shape capability: it may be applied at
// most once, after which any further application panics (Apply) or
// reports failure (TryApply). The guard is atomic, so racing goroutines
// agree on the single winner.
//
// One-shot semantics exist only for the effect shape. The test shape is
// pure, so repeated invocation is free and a one-shot form would add
// nothing.
type OnceEffect[V any] struct {
	used  atomic.Uintptr
	apply func(*V)
}

// OnceEffectOf creates a one-shot effect from a raw callable.
func OnceEffectOf[V any](f func(*V)) *OnceEffect[V] {
	return &OnceEffect[V]{apply: f}
}

// Apply runs the effect against the value.
// Panics if the effect has already been used.
func (e *OnceEffect[V]) Apply(v *V) {
	if e.used.Add(1) != 1 {
		panic("capa: one-shot effect applied twice")
	}
	e.apply(v)
}

// TryApply attempts to run the effect against the value.
// Reports false without running anything if the effect was already used.
func (e *OnceEffect[V]) TryApply(v *V) bool {
	if e.used.Add(1) != 1 {
		return false
	}
	e.apply(v)
	return true
}

// Discard marks the effect as used without running it.
func (e *OnceEffect[V]) Discard() {
	e.used.Store(1)
}

// take consumes the remaining shot for conversion.
// Panics if the effect has already been used.
func (e *OnceEffect[V]) take() func(*V) {
	if e.used.Add(1) != 1 {
		panic("capa: one-shot effect applied twice")
	}
	return e.apply
}

// Own converts the unused effect into the exclusive variant, consuming
// the one shot. The resulting instance is repeatedly invocable.
func (e *OnceEffect[V]) Own() *OwnedEffect[V] { return OwnedEffectOf(e.take()) }

// Share converts the unused effect into the shared single-goroutine
// variant, consuming the one shot.
func (e *OnceEffect[V]) Share() *SharedEffect[V] { return SharedEffectOf(e.take()) }

// Sync converts the unused effect into the shared goroutine-safe variant,
// consuming the one shot. The payload and its captures must be safe for
// concurrent use.
func (e *OnceEffect[V]) Sync() *SyncEffect[V] { return SyncEffectOf(e.take()) }
