// SPDX-License-Identifier: MIT

package event

// Limits are the per-event array capacities of the ntuple producer. Events
// that reach them were not stored faithfully and must be skipped.
type Limits struct {
	Y     int `yaml:"y"`
	B     int `yaml:"b"`
	D     int `yaml:"d"`
	C     int `yaml:"c"`
	H     int `yaml:"h"`
	L     int `yaml:"l"`
	Gamma int `yaml:"gamma"`
	Mc    int `yaml:"mc"`
}

// DefaultLimits returns the capacities of the standard ntuples.
func DefaultLimits() Limits {
	return Limits{Y: 800, B: 400, D: 200, C: 100, H: 100, L: 100, Gamma: 100, Mc: 100}
}

// Reco returns the reco capacities in category order.
func (l Limits) Reco() Counts {
	return Counts{l.Y, l.B, l.D, l.C, l.H, l.L, l.Gamma}
}

// RecoExceeded reports the first category whose count reached its limit.
// A count equal to the limit already overflows.
func (l Limits) RecoExceeded(c Counts) (Category, bool) {
	caps := l.Reco()
	for i := range c {
		if c[i] >= caps[i] {
			return Category(i), true
		}
	}
	return 0, false
}

// McExceeded reports whether an mc record of length n overflowed. Unlike
// the reco blocks, a record exactly at the limit is still valid.
func (l Limits) McExceeded(n int) bool { return n > l.Mc }
