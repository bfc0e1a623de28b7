// SPDX-License-Identifier: MIT

// Package mcgraph builds and classifies the generator-level (truth) decay
// graph of a simulated event.
//
// Vertex ids are mc indices: the position of the particle in the truth
// arrays. Classify attaches a record to the Υ(4S), to each B and to each τ,
// giving the truth category of every B and τ decay.
package mcgraph

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/mode"
)

// NoRef marks a missing cross-reference between records.
const NoRef = -1

var (
	// ErrInconsistentInput reports truth arrays that cannot describe a decay
	// graph. It wraps core.ErrContractViolation.
	ErrInconsistentInput = fmt.Errorf("mcgraph: inconsistent input: %w", core.ErrContractViolation)

	// ErrUnexpectedMultiplicity reports an event with more than one Υ(4S) or
	// a B count other than zero or two. It wraps core.ErrContractViolation.
	ErrUnexpectedMultiplicity = fmt.Errorf("mcgraph: unexpected multiplicity: %w", core.ErrContractViolation)
)

// Y is the record of the truth Υ(4S). B1 and B2 are the mc indices of its B
// daughters in daughter order, or NoRef.
type Y struct {
	ID      int
	IsBBbar bool
	B1      int
	B2      int
}

// B is the record of a truth B. Tau is the mc index of its τ daughter, or
// NoRef.
type B struct {
	ID     int
	Flavor mode.BFlavor
	McType mode.BMcType
	Tau    int
}

// Tau is the record of a truth τ.
type Tau struct {
	ID     int
	McType mode.TauMcType
}

// Analysis holds the records of one event in mc-index order.
type Analysis struct {
	ys   *redblacktree.Tree
	bs   *redblacktree.Tree
	taus *redblacktree.Tree
}

func newAnalysis() *Analysis {
	return &Analysis{
		ys:   redblacktree.NewWithIntComparator(),
		bs:   redblacktree.NewWithIntComparator(),
		taus: redblacktree.NewWithIntComparator(),
	}
}

// Y returns the Υ(4S) record. It is absent for continuum events and for
// events whose Υ decays to anything but B mesons.
func (a *Analysis) Y() (*Y, bool) {
	if a.ys.Empty() {
		return nil, false
	}
	return a.ys.Left().Value.(*Y), true
}

// B returns the record of the B with mc index id.
func (a *Analysis) B(id int) (*B, bool) {
	v, ok := a.bs.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*B), true
}

// Tau returns the record of the τ with mc index id.
func (a *Analysis) Tau(id int) (*Tau, bool) {
	v, ok := a.taus.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Tau), true
}

// Bs returns every B record in ascending mc index.
func (a *Analysis) Bs() []*B {
	out := make([]*B, 0, a.bs.Size())
	it := a.bs.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*B))
	}
	return out
}

// NumY returns the number of Υ records.
func (a *Analysis) NumY() int { return a.ys.Size() }

// NumB returns the number of B records.
func (a *Analysis) NumB() int { return a.bs.Size() }

// NumTau returns the number of τ records.
func (a *Analysis) NumTau() int { return a.taus.Size() }

// B1 returns the B with the lowest mc index.
func (a *Analysis) B1() (*B, bool) {
	if a.bs.Empty() {
		return nil, false
	}
	return a.bs.Left().Value.(*B), true
}

// B2 returns the B with the second lowest mc index.
func (a *Analysis) B2() (*B, bool) {
	bs := a.Bs()
	if len(bs) < 2 {
		return nil, false
	}
	return bs[1], true
}

// Summary is the per-event truth classification.
type Summary struct {
	Continuum bool
	B1Type    mode.BMcType
	B2Type    mode.BMcType
	B1TauType mode.TauMcType
	B2TauType mode.TauMcType
}

// DefaultSummary is the summary of an event without truth information:
// continuum, no B and no τ.
func DefaultSummary() Summary {
	return Summary{
		Continuum: true,
		B1Type:    mode.BMcNoB,
		B2Type:    mode.BMcNoB,
		B1TauType: mode.TauMcNoTau,
		B2TauType: mode.TauMcNoTau,
	}
}

// Summary derives the event summary from the records.
func (a *Analysis) Summary() Summary {
	s := DefaultSummary()
	if y, ok := a.Y(); ok {
		s.Continuum = !y.IsBBbar
	}
	if b, ok := a.B1(); ok {
		s.B1Type, s.B1TauType = b.McType, a.tauType(b, s.B1TauType)
	}
	if b, ok := a.B2(); ok {
		s.B2Type, s.B2TauType = b.McType, a.tauType(b, s.B2TauType)
	}
	return s
}

func (a *Analysis) tauType(b *B, fallback mode.TauMcType) mode.TauMcType {
	if t, ok := a.Tau(b.Tau); ok {
		return t.McType
	}
	return fallback
}

// Option configures Classify.
type Option func(*Options)

// Options holds the Classify parameters.
type Options struct {
	// Ctx cancels the traversal; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the traversal context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
