// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capa_test

import (
	"testing"

	"code.hybscloud.com/capa"
)

func TestSharedPredBorrowNonConsumption(t *testing.T) {
	a := capa.SharedPredOf(func(v int) bool { return v > 0 })
	b := capa.SharedPredOf(func(v int) bool { return v%2 == 0 })

	c := a.And(b)

	// Composition borrows: both operands keep their original behavior.
	if !a.Test(3) {
		t.Fatal("expected a usable after composition")
	}
	if !b.Test(4) || b.Test(3) {
		t.Fatal("expected b usable after composition")
	}
	if !c.Test(4) || c.Test(3) {
		t.Fatal("expected composed predicate to require both")
	}
}

func TestSharedPredOrNotShortCircuit(t *testing.T) {
	calls := 0
	q := capa.SharedPredOf(func(int) bool {
		calls++
		return false
	})

	p := capa.SharedPredOf(func(int) bool { return true }).Or(q)
	if !p.Test(1) {
		t.Fatal("expected true OR q to hold")
	}
	if calls != 0 {
		t.Fatalf("right operand invoked %d times, want 0", calls)
	}

	n := q.Not()
	if !n.Test(1) {
		t.Fatal("expected NOT q to hold")
	}
}

func TestSharedPredClone(t *testing.T) {
	p := capa.SharedPredOf(func(v int) bool { return v > 0 })
	q := p.Clone()

	if !q.Test(1) || q.Test(-1) {
		t.Fatal("expected clone to share the payload behavior")
	}
}

func TestSharedEffectCloneVisibility(t *testing.T) {
	e, count := capa.SharedEffectWith(0, func(st *int, _ *struct{}) { *st++ })

	c1 := e.Clone()
	c2 := e.Clone()

	var v struct{}
	c1.Apply(&v)
	c1.Apply(&v)
	c1.Apply(&v)
	c2.Apply(&v)

	// All clones observe the same interior cell.
	if got := count(); got != 4 {
		t.Fatalf("got counter %d, want 4", got)
	}
}

func TestSharedEffectAndThenOrder(t *testing.T) {
	a := capa.SharedEffectOf(func(v *[]string) { *v = append(*v, "A") })
	b := capa.SharedEffectOf(func(v *[]string) { *v = append(*v, "B") })

	e := a.AndThen(b)

	var log []string
	e.Apply(&log)
	if len(log) != 2 || log[0] != "A" || log[1] != "B" {
		t.Fatalf("got %v, want [A B]", log)
	}

	// Operands stay independently usable after composition.
	log = nil
	a.Apply(&log)
	if len(log) != 1 || log[0] != "A" {
		t.Fatalf("got %v, want [A]", log)
	}
}

func TestSharedEffectReentrantInvocationPanics(t *testing.T) {
	var clone *capa.SharedEffect[int]
	e := capa.SharedEffectOf(func(v *int) {
		clone.Apply(v)
	})
	clone = e.Clone()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on reentrant invocation through a clone")
		}
		if s, ok := r.(string); !ok || s != "capa: cell already mutably borrowed" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	v := 0
	e.Apply(&v)
}

func TestSharedGuard(t *testing.T) {
	positive := capa.SharedPredOf(func(v int) bool { return v > 0 })
	double := capa.SharedEffectOf(func(v *int) { *v *= 2 })

	e := positive.Guard(double)

	v := 3
	e.Apply(&v)
	if v != 6 {
		t.Fatalf("got %d, want 6", v)
	}

	v = -3
	e.Apply(&v)
	if v != -3 {
		t.Fatalf("got %d, want -3 untouched", v)
	}

	// The guard borrowed its operands.
	if !positive.Test(1) {
		t.Fatal("expected predicate usable after guard")
	}
	v = 2
	double.Apply(&v)
	if v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
}

func TestSharedGuardSharesConsequentState(t *testing.T) {
	p := capa.SharedPredOf(func(struct{}) bool { return true })
	e, count := capa.SharedEffectWith(0, func(st *int, _ *struct{}) { *st++ })

	g := p.Guard(e)

	var v struct{}
	g.Apply(&v)
	e.Apply(&v)

	// The guard's clone and the original share the counter cell.
	if got := count(); got != 2 {
		t.Fatalf("got counter %d, want 2", got)
	}
}

func TestSharedGuardElse(t *testing.T) {
	positive := capa.SharedPredOf(func(v int) bool { return v > 0 })
	double := capa.SharedEffectOf(func(v *int) { *v *= 2 })
	negate := capa.SharedEffectOf(func(v *int) { *v = -*v })

	e := positive.GuardElse(double, negate)

	v := 5
	e.Apply(&v)
	if v != 10 {
		t.Fatalf("got %d, want 10 from consequent", v)
	}

	v = -5
	e.Apply(&v)
	if v != 5 {
		t.Fatalf("got %d, want 5 from alternative", v)
	}
}

func TestSharedPredConversions(t *testing.T) {
	p := capa.SharedPredOf(func(v int) bool { return v > 0 })

	if p.Share() != p {
		t.Fatal("expected Share on shared predicate to be identity")
	}

	op := p.Clone().Own()
	if !op.Test(1) || op.Test(-1) {
		t.Fatal("owned conversion lost behavior")
	}

	sp := p.Clone().Sync()
	if !sp.Test(1) || sp.Test(-1) {
		t.Fatal("sync conversion lost behavior")
	}
}

func TestSharedEffectConversions(t *testing.T) {
	e := capa.SharedEffectOf(func(v *int) { *v++ })

	if e.Share() != e {
		t.Fatal("expected Share on shared effect to be identity")
	}

	v := 0
	e.Own().Apply(&v)
	e.Sync().Apply(&v)
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

// --- Benchmarks ---

func BenchmarkSharedPredTest(b *testing.B) {
	p := capa.SharedPredOf(func(v int) bool { return v > 0 })
	for b.Loop() {
		_ = p.Test(42)
	}
}

func BenchmarkSharedEffectApply(b *testing.B) {
	e := capa.SharedEffectOf(func(v *int) { *v++ })
	v := 0
	for b.Loop() {
		e.Apply(&v)
	}
}
