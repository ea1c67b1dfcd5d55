// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package capa provides first-class functional capabilities with explicit
// ownership disciplines in Go.
//
// A capability is a unit of behavior captured as a value: test a value
// (returning a boolean) or act on a value (mutating it or captured state).
// Capabilities are stored, cloned according to a chosen ownership
// discipline, and composed into larger behaviors without losing the
// guarantees of that discipline.
//
// # Design Philosophy
//
// capa provides:
//   - Minimal capability contracts ([Tester], [Effector]) satisfied by raw
//     closures with no wrapping
//   - Three parallel ownership variants with type-preserving composition
//   - Interior mutation cells that keep captured state explicit, checked,
//     and lock-disciplined
//
// # Shapes
//
// Two call shapes cover the pattern; every other arity is a mechanical
// repetition of the same rules:
//
//   - Test shape: func(V) bool — pure inspection, no side effects
//   - Effect shape: func(*V) — mutation of the value and/or captured state
//
// # Closure Bridge
//
// [PredFunc] and [EffectFunc] are named func types whose [PredFunc.Test]
// and [EffectFunc.Apply] methods are direct pass-through calls. Converting
// a raw closure introduces no allocation and no indirection. Extension
// combinators on the func types bootstrap a composition chain, producing
// the exclusive variant:
//
//   - [PredFunc.And], [PredFunc.Or], [PredFunc.Not]
//   - [PredFunc.Guard], [PredFunc.GuardElse]
//   - [EffectFunc.AndThen]
//
// Constant factories: [TruePred], [FalsePred], [NopEffect].
//
// # Ownership Variants
//
// Exclusive — [OwnedPred], [OwnedEffect]: single owner, not cloneable.
// Combinators consume both operands and return a new exclusive instance;
// any later use of a consumed operand panics, following the affine
// use-guard discipline. Invocation borrows, so a built capability can be
// invoked repeatedly.
//
// Shared single-goroutine — [SharedPred], [SharedEffect]: cloneable handle
// over one logical instance, not safe to move across goroutines.
// Combinators borrow both operands, which remain independently usable.
// Effect-shape state lives in a [Cell], a non-atomic borrow-checked cell
// that panics on reentrant mutable borrow. All clones observe the same
// cell, so mutation through one clone is visible through every other.
//
// Shared goroutine-safe — [SyncPred], [SyncEffect]: cloneable and safe to
// invoke concurrently from multiple goroutines. Effect-shape state lives
// in a [SyncCell], a mutex-guarded cell; invocation holds the lock for
// the duration of the call and releases it even on panic, poisoning the
// cell so later acquirers fail loudly instead of observing torn state.
// The test shape is pure and takes no lock.
//
// # Type-Preserving Composition
//
// Each variant implements its own combinators rather than sharing one
// generic implementation: composing two SyncPred values yields a SyncPred,
// composing two OwnedPred values yields an OwnedPred. This is a required
// property of the design, not an optimization — it is what lets a
// goroutine-safe composition stay goroutine-safe and an exclusive
// composition consume its operands.
//
// # Combinators
//
// Test shape: And (short-circuits on false), Or (short-circuits on true),
// Not. Effect shape: AndThen (strict left-to-right sequencing; the left
// effect on the value is observable before the right runs). Composed
// shared effects acquire each operand's cell independently and
// sequentially, never holding two operand cells at once.
//
// Conditional dispatch on every predicate variant: Guard(consequent) runs
// the consequent only when the predicate holds; GuardElse(consequent,
// alternative) branches both ways. The predicate is evaluated exactly once
// per invocation and neither branch is evaluated speculatively. The result
// has the receiver's variant.
//
// # Conversions
//
// Every capability converts one-directionally via Own, Share, and Sync,
// each consuming the receiver. Go's type system cannot state Rust-style
// thread-transferability, so Sync carries a documented contract instead:
// the payload and everything it captures must be safe to share across
// goroutines. Converting a shared handle moves the payload reference into
// the new variant; the caller must hold the sole handle, otherwise
// surviving clones keep operating through the old cell.
//
// # One-Shot Variant
//
// [OnceEffect] is an optional fourth discipline for the effect shape:
// invoke at most once, enforced with an atomic use-guard.
//
//   - [OnceEffectOf]: Create a one-shot effect
//   - [OnceEffect.Apply]: Invoke (panics on reuse)
//   - [OnceEffect.TryApply]: Non-panicking variant
//   - [OnceEffect.Discard]: Drop without invoking
//
// The test shape has no one-shot form: it is pure, so repeatability is
// free.
//
// # Interior Mutation Cells
//
//   - [Cell]: borrow-flag checked, single-goroutine; panics on reentrant
//     mutable borrow
//   - [SyncCell]: mutex-guarded with poisoning; a payload panic while the
//     lock is held poisons the cell and re-panics
//
// Both are exported so custom stateful payloads can use the same cells
// the variants use. [SharedEffectWith] and [SyncEffectWith] build a
// stateful effect around a cell and return a getter for the captured
// state.
//
// # Error Discipline
//
// Programming errors — use after move, reentrant borrow, poisoned cell,
// one-shot reuse — panic immediately with a "capa:"-prefixed message.
// Payload panics propagate unchanged; the package never recovers them,
// converts them, or logs. Lock release is the only guaranteed cleanup.
//
// # Mixed Storage
//
// [Tester] and [Effector] are ordinary Go interfaces, so a single
// []Tester[V] holds instances of any variant; no tagged-union wrapper is
// needed.
//
// # Example
//
//	positive := capa.PredFunc[int](func(v int) bool { return v > 0 })
//	even := capa.PredFunc[int](func(v int) bool { return v%2 == 0 })
//
//	double := capa.EffectFunc[int](func(v *int) { *v *= 2 })
//
//	p := positive.And(even)    // *OwnedPred[int], operands consumed
//	e := p.Guard(double.Own()) // double only positive even values
//
//	v := 6
//	e.Apply(&v)
//	// v == 12
package capa
