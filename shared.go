// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

// Shared single-goroutine ownership variant. A shared capability is a
// cloneable handle over one logical instance: cloning duplicates the
// handle, not the payload, so every clone observes the same interior
// state. Combinators borrow their operands, which remain independently
// usable afterwards — the key ergonomic advantage over the exclusive
// variant.
//
// No synchronization is performed. Moving handles across goroutines is
// undefined by contract; reentrant invocation through a clone is caught
// by the [Cell] borrow check.

// SharedPred is a shared single-goroutine test-shape capability.
// The test shape is pure, so invocation needs no borrow check.
type SharedPred[V any] struct {
	test func(V) bool
}

// SharedPredOf creates a shared predicate from a raw callable.
func SharedPredOf[V any](f func(V) bool) *SharedPred[V] {
	return &SharedPred[V]{test: f}
}

// Test implements Tester.
func (p *SharedPred[V]) Test(v V) bool { return p.test(v) }

// Clone returns a new handle over the same payload.
func (p *SharedPred[V]) Clone() *SharedPred[V] {
	return &SharedPred[V]{test: p.test}
}

// And combines with next into a predicate that holds when both hold.
// Both operands are borrowed and remain usable. next is not evaluated
// when p reports false.
func (p *SharedPred[V]) And(next *SharedPred[V]) *SharedPred[V] {
	pf, nf := p.test, next.test
	return SharedPredOf(func(v V) bool { return pf(v) && nf(v) })
}

// Or combines with next into a predicate that holds when either holds.
// Both operands are borrowed and remain usable. next is not evaluated
// when p reports true.
func (p *SharedPred[V]) Or(next *SharedPred[V]) *SharedPred[V] {
	pf, nf := p.test, next.test
	return SharedPredOf(func(v V) bool { return pf(v) || nf(v) })
}

// Not returns the negated predicate, borrowing the receiver.
func (p *SharedPred[V]) Not() *SharedPred[V] {
	pf := p.test
	return SharedPredOf(func(v V) bool { return !pf(v) })
}

// Guard builds an effect that runs consequent only when p holds for the
// value. Both operands are borrowed; the consequent handle is cloned into
// the result, so its interior state stays shared with the original.
// p is evaluated exactly once per invocation.
func (p *SharedPred[V]) Guard(consequent *SharedEffect[V]) *SharedEffect[V] {
	pf, c := p.test, consequent.Clone()
	return SharedEffectOf(func(v *V) {
		if pf(*v) {
			c.Apply(v)
		}
	})
}

// GuardElse builds an effect that runs consequent when p holds for the
// value and alternative otherwise. All operands are borrowed.
func (p *SharedPred[V]) GuardElse(consequent, alternative *SharedEffect[V]) *SharedEffect[V] {
	pf, c, a := p.test, consequent.Clone(), alternative.Clone()
	return SharedEffectOf(func(v *V) {
		if pf(*v) {
			c.Apply(v)
		} else {
			a.Apply(v)
		}
	})
}

// Own converts into the exclusive variant, consuming the handle.
func (p *SharedPred[V]) Own() *OwnedPred[V] { return OwnedPredOf(p.test) }

// Share implements Tester. The instance is already shared; this is the
// identity conversion.
func (p *SharedPred[V]) Share() *SharedPred[V] { return p }

// Sync converts into the shared goroutine-safe variant, consuming the
// handle. The payload and its captures must be safe for concurrent use.
func (p *SharedPred[V]) Sync() *SyncPred[V] { return SyncPredOf(p.test) }

// SharedEffect is a shared single-goroutine effect-shape capability.
// Invocation runs through a [Cell]: a payload that re-enters itself
// through a cloned handle panics on the conflicting borrow instead of
// corrupting state.
type SharedEffect[V any] struct {
	cell *Cell[func(*V)]
}

// SharedEffectOf creates a shared effect from a raw callable.
func SharedEffectOf[V any](f func(*V)) *SharedEffect[V] {
	return &SharedEffect[V]{cell: NewCell(f)}
}

// SharedEffectWith creates a shared effect whose captured state lives in
// a [Cell]. Returns the effect and a function to read the current state;
// the state is shared by every clone.
func SharedEffectWith[S, V any](initial S, f func(st *S, v *V)) (*SharedEffect[V], func() S) {
	st := NewCell(initial)
	e := SharedEffectOf(func(v *V) {
		st.With(func(s *S) { f(s, v) })
	})
	return e, st.Get
}

// Apply implements Effector. Panics on reentrant invocation.
func (e *SharedEffect[V]) Apply(v *V) {
	e.cell.With(func(f *func(*V)) { (*f)(v) })
}

// Clone returns a new handle over the same cell. Mutation through one
// clone is visible through every other.
func (e *SharedEffect[V]) Clone() *SharedEffect[V] {
	return &SharedEffect[V]{cell: e.cell}
}

// AndThen combines with next into an effect that runs e, then next,
// strictly in that order. Both operands are borrowed and remain usable;
// their cells are borrowed one at a time, never nested.
func (e *SharedEffect[V]) AndThen(next *SharedEffect[V]) *SharedEffect[V] {
	a, b := e.Clone(), next.Clone()
	return SharedEffectOf(func(v *V) {
		a.Apply(v)
		b.Apply(v)
	})
}

// payload reads the callable out of the cell for conversion.
func (e *SharedEffect[V]) payload() func(*V) {
	var f func(*V)
	e.cell.With(func(p *func(*V)) { f = *p })
	return f
}

// Own converts into the exclusive variant, consuming the handle.
// The caller must hold the sole handle; surviving clones keep operating
// through the old cell.
func (e *SharedEffect[V]) Own() *OwnedEffect[V] { return OwnedEffectOf(e.payload()) }

// Share implements Effector. The instance is already shared; this is the
// identity conversion.
func (e *SharedEffect[V]) Share() *SharedEffect[V] { return e }

// Sync converts into the shared goroutine-safe variant, consuming the
// handle. The payload and its captures must be safe for concurrent use;
// the caller must hold the sole handle.
func (e *SharedEffect[V]) Sync() *SyncEffect[V] { return SyncEffectOf(e.payload()) }
