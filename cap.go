// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa

// Tester is the capability contract for the test shape.
// A Tester inspects a value and reports a boolean, with no side effects.
//
// Every ownership variant and every raw [PredFunc] satisfies Tester.
// The three conversions consume the receiver and produce the named
// ownership variant; see the package documentation for the consumption
// rules of each variant.
type Tester[V any] interface {
	// Test reports whether the value satisfies the capability.
	Test(v V) bool

	// Own converts into the exclusive variant, consuming the receiver.
	Own() *OwnedPred[V]
	// Share converts into the shared single-goroutine variant,
	// consuming the receiver.
	Share() *SharedPred[V]
	// Sync converts into the shared goroutine-safe variant, consuming
	// the receiver. The payload must be safe for concurrent use; see
	// the package documentation.
	Sync() *SyncPred[V]
}

// Effector is the capability contract for the effect shape.
// An Effector inspects and possibly mutates a value, and may carry
// captured mutable state of its own. The receiver is always borrowed:
// mutation of captured state is confined to an interior cell
// ([Cell] or [SyncCell]) so Apply never requires exclusive access to
// the instance itself.
type Effector[V any] interface {
	// Apply runs the capability against the value.
	Apply(v *V)

	// Own converts into the exclusive variant, consuming the receiver.
	Own() *OwnedEffect[V]
	// Share converts into the shared single-goroutine variant,
	// consuming the receiver.
	Share() *SharedEffect[V]
	// Sync converts into the shared goroutine-safe variant, consuming
	// the receiver. The payload must be safe for concurrent use; see
	// the package documentation.
	Sync() *SyncEffect[V]
}
