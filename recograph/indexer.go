// SPDX-License-Identifier: MIT

package recograph

import (
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/lund"
)

// CategoryOf returns the candidate block a particle code is stored in.
// The second result is false for codes that belong to no block.
func CategoryOf(code int) (event.Category, bool) {
	switch lund.Abs(code) {
	case lund.Upsilon:
		return event.CatY, true
	case lund.B0, lund.Bc:
		return event.CatB, true
	case lund.D0, lund.Dc, lund.Dstar0, lund.Dstarc:
		return event.CatD, true
	case lund.KS, lund.Rho, lund.Pi0:
		return event.CatC, true
	case lund.K, lund.Pi:
		return event.CatH, true
	case lund.E, lund.Mu:
		return event.CatL, true
	case lund.Gamma:
		return event.CatGamma, true
	}
	return 0, false
}

// Indexer assigns every reconstructed particle of one event a unique reco
// index. Indices are laid out in contiguous bands, one per category in
// Y, B, D, C, h, l, gamma order:
//
//	index = offset(category) + block
//
// Offsets depend on the event's counts, so Set must be called once per event
// before any lookup.
type Indexer struct {
	// offsets[c] is the first index of band c; offsets[NumCategories] is
	// the total.
	offsets [event.NumCategories + 1]int
}

// Set recomputes the band offsets from the event's candidate counts.
func (x *Indexer) Set(counts event.Counts) {
	x.offsets[0] = 0
	for i, n := range counts {
		x.offsets[i+1] = x.offsets[i] + n
	}
}

// Index returns the reco index of the candidate at position block of the
// block that stores code, or -1 if code belongs to no block or block is
// outside it.
func (x *Indexer) Index(code, block int) int {
	cat, ok := CategoryOf(code)
	if !ok || block < 0 || x.offsets[cat]+block >= x.offsets[cat+1] {
		return -1
	}
	return x.offsets[cat] + block
}

// Total returns the number of reco indices in the current event.
func (x *Indexer) Total() int { return x.offsets[event.NumCategories] }

// Band returns the category whose band contains id.
func (x *Indexer) Band(id int) (event.Category, bool) {
	if id < 0 {
		return 0, false
	}
	for c := 0; c < event.NumCategories; c++ {
		if id < x.offsets[c+1] {
			return event.Category(c), true
		}
	}
	return 0, false
}

// Block returns the block index of id within its band, or -1.
func (x *Indexer) Block(id int) int {
	cat, ok := x.Band(id)
	if !ok {
		return -1
	}
	return id - x.offsets[cat]
}

func (x *Indexer) in(id int, c event.Category) bool {
	return id >= x.offsets[c] && id < x.offsets[c+1]
}

// IsH reports whether id is in the charged-hadron band.
func (x *Indexer) IsH(id int) bool { return x.in(id, event.CatH) }

// IsL reports whether id is in the lepton band.
func (x *Indexer) IsL(id int) bool { return x.in(id, event.CatL) }

// IsGamma reports whether id is in the photon band.
func (x *Indexer) IsGamma(id int) bool { return x.in(id, event.CatGamma) }
