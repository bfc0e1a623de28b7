// SPDX-License-Identifier: MIT

// Package recograph builds and classifies the reconstructed decay graph of
// one event.
//
// Build turns the per-category candidate blocks into a core.Graph whose
// vertex ids are reco indices (see Indexer). Classify then walks the graph
// bottom-up and attaches a record to every Υ, B, D/D* and τ placeholder:
// decay modes from the catalogue package, B flavour, tag/signal side
// assignment and the block indices used for particle-ID lookups.
package recograph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/mode"
)

// NoRef marks a missing cross-reference between records.
const NoRef = -1

var (
	// ErrInconsistentInput reports candidate blocks that cannot describe a
	// decay graph. It wraps core.ErrContractViolation.
	ErrInconsistentInput = fmt.Errorf("recograph: inconsistent input: %w", core.ErrContractViolation)

	// ErrUnexpectedDaughter reports a daughter code that cannot appear under
	// its parent. It wraps core.ErrContractViolation.
	ErrUnexpectedDaughter = fmt.Errorf("recograph: unexpected daughter: %w", core.ErrContractViolation)
)

// Y is the record of an Υ(4S) candidate. TagB and SigB are reco indices of
// records in Analysis.Bs, or NoRef. Paired is true when exactly one
// daughter qualified for each side.
type Y struct {
	ID     int
	Block  int
	TagB   int
	SigB   int
	Paired bool
}

// B is the record of a B candidate. D and Lepton are reco indices into
// Analysis.Ds and Analysis.Leptons, or NoRef.
type B struct {
	ID     int
	Block  int
	Flavor mode.BFlavor
	D      int
	Lepton int
}

// D is the record of a D or D* candidate. For a plain D the D* mode is
// NoDstar; for a D* the D mode is copied from its D daughter.
type D struct {
	ID        int
	Block     int
	DType     mode.DType
	DstarType mode.DstarType
}

// Lepton is the record of a τ placeholder: a real lepton on the tag side or
// a π/ρ standing in for a hadronic τ on the signal side. LBlock and PiBlock
// are block indices in the l and h blocks, or -1.
type Lepton struct {
	ID      int
	Block   int
	LBlock  int
	PiBlock int
	TauMode mode.TauType
}

// Analysis holds the records of one event, keyed by reco index.
type Analysis struct {
	Ys      map[int]*Y
	Bs      map[int]*B
	Ds      map[int]*D
	Leptons map[int]*Lepton
}

func newAnalysis() *Analysis {
	return &Analysis{
		Ys:      make(map[int]*Y),
		Bs:      make(map[int]*B),
		Ds:      make(map[int]*D),
		Leptons: make(map[int]*Lepton),
	}
}

// TagB returns the tag-side B of y, if any.
func (a *Analysis) TagB(y *Y) (*B, bool) {
	b, ok := a.Bs[y.TagB]
	return b, ok
}

// SigB returns the signal-side B of y, if any.
func (a *Analysis) SigB(y *Y) (*B, bool) {
	b, ok := a.Bs[y.SigB]
	return b, ok
}

// DOf returns the D record referenced by b, if any.
func (a *Analysis) DOf(b *B) (*D, bool) {
	d, ok := a.Ds[b.D]
	return d, ok
}

// LeptonOf returns the lepton record referenced by b, if any.
func (a *Analysis) LeptonOf(b *B) (*Lepton, bool) {
	l, ok := a.Leptons[b.Lepton]
	return l, ok
}

// Option configures Classify.
type Option func(*Options)

// Options holds the Classify parameters.
type Options struct {
	// Ctx cancels the traversal; defaults to context.Background().
	Ctx context.Context

	// DistinctElectronMode labels electron placeholders tau_e. By default
	// electrons carry tau_mu like muons, which keeps the historical output.
	DistinctElectronMode bool
}

// DefaultOptions returns Background context and the historical electron
// labelling.
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

// WithDistinctElectronMode makes electron placeholders carry tau_e.
func WithDistinctElectronMode(on bool) Option {
	return func(o *Options) {
		o.DistinctElectronMode = on
	}
}
