// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

// Shared goroutine-safe ownership variant. Like the single-goroutine
// shared variant, a handle is cloneable and combinators borrow their
// operands; in addition, handles may be moved across goroutines and
// invoked concurrently.
//
// Effect-shape invocation holds the instance's [SyncCell] lock for the
// duration of the call. Exactly one lock is held at a time per
// invocation: a composed effect acquires each operand's lock
// independently and sequentially, never both simultaneously, so the
// combinators themselves cannot deadlock across instances. A payload
// that transitively re-enters the same cell deadlocks on itself; that
// reentrancy is the caller's responsibility.
//
// The test shape is pure and takes no lock.

// SyncPred is a shared goroutine-safe test-shape capability.
// It is safe for concurrent invocation provided its payload is.
type SyncPred[V any] struct {
	test func(V) bool
}

// SyncPredOf creates a goroutine-safe predicate from a raw callable.
// The callable and its captures must be safe for concurrent use.
func SyncPredOf[V any](f func(V) bool) *SyncPred[V] {
	return &SyncPred[V]{test: f}
}

// Test implements Tester.
func (p *SyncPred[V]) Test(v V) bool { return p.test(v) }

// Clone returns a new handle over the same payload.
func (p *SyncPred[V]) Clone() *SyncPred[V] {
	return &SyncPred[V]{test: p.test}
}

// And combines with next into a predicate that holds when both hold.
// Both operands are borrowed and remain usable. next is not evaluated
// when p reports false.
func (p *SyncPred[V]) And(next *SyncPred[V]) *SyncPred[V] {
	pf, nf := p.test, next.test
	return SyncPredOf(func(v V) bool { return pf(v) && nf(v) })
}

// Or combines with next into a predicate that holds when either holds.
// Both operands are borrowed and remain usable. next is not evaluated
// when p reports true.
func (p *SyncPred[V]) Or(next *SyncPred[V]) *SyncPred[V] {
	pf, nf := p.test, next.test
	return SyncPredOf(func(v V) bool { return pf(v) || nf(v) })
}

// Not returns the negated predicate, borrowing the receiver.
func (p *SyncPred[V]) Not() *SyncPred[V] {
	pf := p.test
	return SyncPredOf(func(v V) bool { return !pf(v) })
}

// Guard builds an effect that runs consequent only when p holds for the
// value. Both operands are borrowed; the consequent handle is cloned into
// the result, so its interior state stays shared with the original.
// p is evaluated exactly once per invocation.
func (p *SyncPred[V]) Guard(consequent *SyncEffect[V]) *SyncEffect[V] {
	pf, c := p.test, consequent.Clone()
	return SyncEffectOf(func(v *V) {
		if pf(*v) {
			c.Apply(v)
		}
	})
}

// GuardElse builds an effect that runs consequent when p holds for the
// value and alternative otherwise. All operands are borrowed.
func (p *SyncPred[V]) GuardElse(consequent, alternative *SyncEffect[V]) *SyncEffect[V] {
	pf, c, a := p.test, consequent.Clone(), alternative.Clone()
	return SyncEffectOf(func(v *V) {
		if pf(*v) {
			c.Apply(v)
		} else {
			a.Apply(v)
		}
	})
}

// Own converts into the exclusive variant, consuming the handle.
func (p *SyncPred[V]) Own() *OwnedPred[V] { return OwnedPredOf(p.test) }

// Share converts into the shared single-goroutine variant, consuming the
// handle.
func (p *SyncPred[V]) Share() *SharedPred[V] { return SharedPredOf(p.test) }

// Sync implements Tester. The instance is already goroutine-safe; this is
// the identity conversion.
func (p *SyncPred[V]) Sync() *SyncPred[V] { return p }

// SyncEffect is a shared goroutine-safe effect-shape capability.
// Apply holds the instance's [SyncCell] lock for the duration of the
// call; concurrent callers block until the lock is available. A payload
// panic poisons the cell and propagates.
type SyncEffect[V any] struct {
	cell *SyncCell[func(*V)]
}

// SyncEffectOf creates a goroutine-safe effect from a raw callable.
// The callable and its captures must be safe for concurrent use.
func SyncEffectOf[V any](f func(*V)) *SyncEffect[V] {
	return &SyncEffect[V]{cell: NewSyncCell(f)}
}

// SyncEffectWith creates a goroutine-safe effect whose captured state
// lives in a [SyncCell]. Returns the effect and a function to read the
// current state; the state is shared by every clone.
func SyncEffectWith[S, V any](initial S, f func(st *S, v *V)) (*SyncEffect[V], func() S) {
	st := NewSyncCell(initial)
	e := SyncEffectOf(func(v *V) {
		st.With(func(s *S) { f(s, v) })
	})
	return e, st.Get
}

// Apply implements Effector. Blocks until the cell lock is available;
// panics if an earlier payload panic poisoned the cell.
func (e *SyncEffect[V]) Apply(v *V) {
	e.cell.With(func(f *func(*V)) { (*f)(v) })
}

// Clone returns a new handle over the same cell. Mutation through one
// clone is visible through every other.
func (e *SyncEffect[V]) Clone() *SyncEffect[V] {
	return &SyncEffect[V]{cell: e.cell}
}

// AndThen combines with next into an effect that runs e, then next,
// strictly in that order. Both operands are borrowed and remain usable;
// their locks are acquired one at a time, never both simultaneously.
func (e *SyncEffect[V]) AndThen(next *SyncEffect[V]) *SyncEffect[V] {
	a, b := e.Clone(), next.Clone()
	return SyncEffectOf(func(v *V) {
		a.Apply(v)
		b.Apply(v)
	})
}

// payload reads the callable out of the cell for conversion.
func (e *SyncEffect[V]) payload() func(*V) {
	var f func(*V)
	e.cell.With(func(p *func(*V)) { f = *p })
	return f
}

// Own converts into the exclusive variant, consuming the handle.
// The caller must hold the sole handle; surviving clones keep operating
// through the old cell.
func (e *SyncEffect[V]) Own() *OwnedEffect[V] { return OwnedEffectOf(e.payload()) }

// Share converts into the shared single-goroutine variant, consuming the
// handle. The caller must hold the sole handle.
func (e *SyncEffect[V]) Share() *SharedEffect[V] { return SharedEffectOf(e.payload()) }

// Sync implements Effector. The instance is already goroutine-safe; this
// is the identity conversion.
func (e *SyncEffect[V]) Sync() *SyncEffect[V] { return e }
