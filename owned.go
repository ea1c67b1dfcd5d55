// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

import (
	"sync/atomic"
)

// Exclusive ownership variant. An owned capability has a single owner and
// cannot be cloned. Combinators consume both operands: composition is
// structural rewriting, building a bigger behavior once, so there is no
// cloning machinery when there is exactly one owner. Invocation borrows,
// so a built capability can be invoked repeatedly.
//
// Go has no move semantics, so consumption is enforced with an atomic
// use-guard: any use of a moved-out instance panics immediately.

// OwnedPred is an exclusive test-shape capability.
type OwnedPred[V any] struct {
	moved atomic.Uintptr
	test  func(V) bool
}

// OwnedPredOf creates an exclusive predicate from a raw callable.
func OwnedPredOf[V any](f func(V) bool) *OwnedPred[V] {
	return &OwnedPred[V]{test: f}
}

// move takes the payload out, consuming the instance.
// Panics if the instance was already moved.
func (p *OwnedPred[V]) move() func(V) bool {
	if p.moved.Add(1) != 1 {
		panic("capa: owned predicate moved twice")
	}
	return p.test
}

// Test implements Tester. Invocation borrows; the instance remains usable.
// Panics if the instance was moved into a combinator or conversion.
func (p *OwnedPred[V]) Test(v V) bool {
	if p.moved.Load() != 0 {
		panic("capa: owned predicate used after move")
	}
	return p.test(v)
}

// And combines with next into a predicate that holds when both hold,
// consuming both operands. next is not evaluated when p reports false.
func (p *OwnedPred[V]) And(next *OwnedPred[V]) *OwnedPred[V] {
	pf, nf := p.move(), next.move()
	return OwnedPredOf(func(v V) bool { return pf(v) && nf(v) })
}

// Or combines with next into a predicate that holds when either holds,
// consuming both operands. next is not evaluated when p reports true.
func (p *OwnedPred[V]) Or(next *OwnedPred[V]) *OwnedPred[V] {
	pf, nf := p.move(), next.move()
	return OwnedPredOf(func(v V) bool { return pf(v) || nf(v) })
}

// Not negates the predicate, consuming it.
func (p *OwnedPred[V]) Not() *OwnedPred[V] {
	pf := p.move()
	return OwnedPredOf(func(v V) bool { return !pf(v) })
}

// Guard builds an effect that runs consequent only when p holds for the
// value, consuming both operands. p is evaluated exactly once per
// invocation; consequent is never evaluated speculatively.
func (p *OwnedPred[V]) Guard(consequent *OwnedEffect[V]) *OwnedEffect[V] {
	pf, cf := p.move(), consequent.move()
	return OwnedEffectOf(func(v *V) {
		if pf(*v) {
			cf(v)
		}
	})
}

// GuardElse builds an effect that runs consequent when p holds for the
// value and alternative otherwise, consuming all three operands.
func (p *OwnedPred[V]) GuardElse(consequent, alternative *OwnedEffect[V]) *OwnedEffect[V] {
	pf, cf, af := p.move(), consequent.move(), alternative.move()
	return OwnedEffectOf(func(v *V) {
		if pf(*v) {
			cf(v)
		} else {
			af(v)
		}
	})
}

// Own implements Tester. The instance is already exclusive; this is the
// identity conversion.
func (p *OwnedPred[V]) Own() *OwnedPred[V] { return p }

// Share converts into the shared single-goroutine variant, consuming the
// instance.
func (p *OwnedPred[V]) Share() *SharedPred[V] { return SharedPredOf(p.move()) }

// Sync converts into the shared goroutine-safe variant, consuming the
// instance. The payload and its captures must be safe for concurrent use.
func (p *OwnedPred[V]) Sync() *SyncPred[V] { return SyncPredOf(p.move()) }

// OwnedEffect is an exclusive effect-shape capability.
//
// Captured mutable state lives inside the payload closure; with a single
// owner on a single goroutine no interior cell is needed. Wrap state in a
// [Cell] before converting with Share, or a [SyncCell] before Sync, when
// the state must survive the stricter discipline.
type OwnedEffect[V any] struct {
	moved atomic.Uintptr
	apply func(*V)
}

// OwnedEffectOf creates an exclusive effect from a raw callable.
func OwnedEffectOf[V any](f func(*V)) *OwnedEffect[V] {
	return &OwnedEffect[V]{apply: f}
}

// move takes the payload out, consuming the instance.
// Panics if the instance was already moved.
func (e *OwnedEffect[V]) move() func(*V) {
	if e.moved.Add(1) != 1 {
		panic("capa: owned effect moved twice")
	}
	return e.apply
}

// Apply implements Effector. Invocation borrows; the instance remains
// usable. Panics if the instance was moved into a combinator or conversion.
func (e *OwnedEffect[V]) Apply(v *V) {
	if e.moved.Load() != 0 {
		panic("capa: owned effect used after move")
	}
	e.apply(v)
}

// AndThen combines with next into an effect that runs e, then next,
// strictly in that order, consuming both operands.
func (e *OwnedEffect[V]) AndThen(next *OwnedEffect[V]) *OwnedEffect[V] {
	ef, nf := e.move(), next.move()
	return OwnedEffectOf(func(v *V) {
		ef(v)
		nf(v)
	})
}

// Own implements Effector. The instance is already exclusive; this is the
// identity conversion.
func (e *OwnedEffect[V]) Own() *OwnedEffect[V] { return e }

// Share converts into the shared single-goroutine variant, consuming the
// instance.
func (e *OwnedEffect[V]) Share() *SharedEffect[V] { return SharedEffectOf(e.move()) }

// Sync converts into the shared goroutine-safe variant, consuming the
// instance. The payload and its captures must be safe for concurrent use.
func (e *OwnedEffect[V]) Sync() *SyncEffect[V] { return SyncEffectOf(e.move()) }
