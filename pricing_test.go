package bourse

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestPriceModel_Reprice(t *testing.T) {
	inst, err := NewStock("ACME", 100.0, 50)
	if err != nil {
		t.Fatal(err)
	}

	// Replay the same seeded source to know the exact draw the model made.
	model := PriceModel{Src: rand.NewPCG(1, 2)}
	shock := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(1, 2)}.Rand()
	want := math.Max(0, 100.0+shock*100.0*shockScale)

	model.Reprice(inst)

	if got := inst.Price(); got != want {
		t.Errorf("Price() = %v, want %v", got, want)
	}
	if got := inst.History(); len(got) != 2 || got[0] != 100.0 || got[1] != want {
		t.Errorf("History() = %v, want [100 %v]", got, want)
	}
}

func TestPriceModel_SuccessiveTicksUseFreshDraws(t *testing.T) {
	inst, err := NewStock("ACME", 100.0, 50)
	if err != nil {
		t.Fatal(err)
	}
	model := PriceModel{Src: rand.NewPCG(3, 4)}

	const ticks = 50
	for i := 0; i < ticks; i++ {
		model.Reprice(inst)
	}

	if got, want := len(inst.History()), 1+ticks; got != want {
		t.Fatalf("history length = %d, want %d", got, want)
	}
	// With a 1% tick the walk must actually move.
	moved := false
	for _, p := range inst.History()[1:] {
		if p != 100.0 {
			moved = true
		}
		if p < 0 {
			t.Errorf("history holds negative price %v", p)
		}
	}
	if !moved {
		t.Error("price never moved over 50 ticks")
	}
}

func TestPriceModel_ZeroPriceStaysClamped(t *testing.T) {
	// The shock scales with the price, so a price at the zero floor cannot
	// move; the clamp still applies and history keeps growing.
	inst, err := NewStock("DUST", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	model := PriceModel{Src: rand.NewPCG(5, 6)}

	model.Reprice(inst)
	model.Reprice(inst)

	if got := inst.Price(); got != 0 {
		t.Errorf("Price() = %v, want 0", got)
	}
	if got := inst.History(); len(got) != 3 {
		t.Errorf("history length = %d, want 3", len(got))
	}
}

func TestPriceModel_IgnoresItems(t *testing.T) {
	inst, err := NewItem("sword", 250.0, 4)
	if err != nil {
		t.Fatal(err)
	}
	PriceModel{Src: rand.NewPCG(8, 9)}.Reprice(inst)

	if inst.Price() != 250.0 {
		t.Errorf("Price() = %v, want unchanged 250", inst.Price())
	}
	if inst.History() != nil {
		t.Errorf("History() = %v, want nil", inst.History())
	}
}
