package bourse

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// shockScale sizes the random perturbation to 1% of the current price.
const shockScale = 0.01

// PriceModel evolves a stock price by one simulated tick: a standard normal
// draw scaled to 1% of the current price, clamped at zero.
//
// The zero value uses the process-wide random source. Set Src to make the
// draws reproducible.
type PriceModel struct {
	Src rand.Source
}

// Reprice applies one tick to inst and appends the new price to its
// history. Items are left untouched: their price is static.
func (pm PriceModel) Reprice(inst *Instrument) {
	if inst.kind != Stock {
		return
	}
	shock := distuv.Normal{Mu: 0, Sigma: 1, Src: pm.Src}.Rand()
	inst.price = math.Max(0, inst.price+shock*inst.price*shockScale)
	inst.history = append(inst.history, inst.price)
}
