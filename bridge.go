// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

// Closure bridge: named func types satisfy the capability contracts with
// direct pass-through calls, so a raw closure is a capability without
// wrapping. Extension combinators on the func types bootstrap a
// composition chain, producing the exclusive variant.

// PredFunc is a raw test-shape callable.
// Converting a closure to PredFunc allocates nothing; Test is a direct call.
type PredFunc[V any] func(V) bool

// Test implements Tester.
func (f PredFunc[V]) Test(v V) bool { return f(v) }

// Own wraps the callable into an exclusive predicate.
func (f PredFunc[V]) Own() *OwnedPred[V] { return OwnedPredOf(f) }

// Share wraps the callable into a shared single-goroutine predicate.
func (f PredFunc[V]) Share() *SharedPred[V] { return SharedPredOf(f) }

// Sync wraps the callable into a shared goroutine-safe predicate.
// The callable and its captures must be safe for concurrent use.
func (f PredFunc[V]) Sync() *SyncPred[V] { return SyncPredOf(f) }

// And combines with next into an exclusive predicate that holds when both
// hold. next is not evaluated when f reports false.
// Both callables are moved into the result.
func (f PredFunc[V]) And(next PredFunc[V]) *OwnedPred[V] {
	return OwnedPredOf(func(v V) bool { return f(v) && next(v) })
}

// Or combines with next into an exclusive predicate that holds when either
// holds. next is not evaluated when f reports true.
func (f PredFunc[V]) Or(next PredFunc[V]) *OwnedPred[V] {
	return OwnedPredOf(func(v V) bool { return f(v) || next(v) })
}

// Not negates the callable into an exclusive predicate.
func (f PredFunc[V]) Not() *OwnedPred[V] {
	return OwnedPredOf(func(v V) bool { return !f(v) })
}

// Guard builds an exclusive effect that runs consequent only when f holds
// for the value. f is evaluated exactly once per invocation.
func (f PredFunc[V]) Guard(consequent EffectFunc[V]) *OwnedEffect[V] {
	return OwnedEffectOf(func(v *V) {
		if f(*v) {
			consequent(v)
		}
	})
}

// GuardElse builds an exclusive effect that runs consequent when f holds
// for the value and alternative otherwise.
func (f PredFunc[V]) GuardElse(consequent, alternative EffectFunc[V]) *OwnedEffect[V] {
	return OwnedEffectOf(func(v *V) {
		if f(*v) {
			consequent(v)
		} else {
			alternative(v)
		}
	})
}

// EffectFunc is a raw effect-shape callable.
// Converting a closure to EffectFunc allocates nothing; Apply is a direct call.
type EffectFunc[V any] func(*V)

// Apply implements Effector.
func (f EffectFunc[V]) Apply(v *V) { f(v) }

// Own wraps the callable into an exclusive effect.
func (f EffectFunc[V]) Own() *OwnedEffect[V] { return OwnedEffectOf(f) }

// Share wraps the callable into a shared single-goroutine effect.
func (f EffectFunc[V]) Share() *SharedEffect[V] { return SharedEffectOf(f) }

// Sync wraps the callable into a shared goroutine-safe effect.
// The callable and its captures must be safe for concurrent use.
func (f EffectFunc[V]) Sync() *SyncEffect[V] { return SyncEffectOf(f) }

// AndThen combines with next into an exclusive effect that runs f, then
// next, strictly in that order. Both callables are moved into the result.
func (f EffectFunc[V]) AndThen(next EffectFunc[V]) *OwnedEffect[V] {
	return OwnedEffectOf(func(v *V) {
		f(v)
		next(v)
	})
}

// truePred is the constant true test-shape payload.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func truePred[V any](V) bool { return true }

// falsePred is the constant false test-shape payload.
func falsePred[V any](V) bool { return false }

// nopEffect is the no-op effect-shape payload.
func nopEffect[V any](*V) {}

// TruePred returns the test-shape identity for And: it holds for every value.
func TruePred[V any]() PredFunc[V] { return truePred[V] }

// FalsePred returns the test-shape identity for Or: it holds for no value.
func FalsePred[V any]() PredFunc[V] { return falsePred[V] }

// NopEffect returns the effect-shape identity for AndThen: it does nothing.
func NopEffect[V any]() EffectFunc[V] { return nopEffect[V] }
