// SPDX-License-Identifier: MIT

// Package truthmatch links reconstructed candidates to the generator
// particles they come from.
//
// The truth graph is first contracted (Contract): particles the detector
// cannot reconstruct (neutrinos, τ, K⁰), the beams, decay products of
// final-state particles and radiated photons are removed and their
// daughters re-attached to their mother. Match then walks the reco graph
// bottom-up. Final-state candidates take their mc index from the detector
// hit tables; a composite candidate matches the first mc particle with the
// same signed code whose daughters are exactly the matches of its own
// daughters.
package truthmatch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
)

// NoMatch is the table value of a candidate without a truth counterpart.
const NoMatch = -1

var (
	// ErrUnknownCandidate is returned by Table.Get for reco indices that
	// are not part of the matched event.
	ErrUnknownCandidate = errors.New("truthmatch: unknown candidate")

	// ErrMultipleMothers reports a truth particle other than the Υ(4S) with
	// more than one mother. It wraps core.ErrContractViolation.
	ErrMultipleMothers = fmt.Errorf("truthmatch: particle with several mothers: %w", core.ErrContractViolation)

	// ErrHitOutOfRange reports a final-state candidate whose block index is
	// outside its hit table. It wraps core.ErrContractViolation.
	ErrHitOutOfRange = fmt.Errorf("truthmatch: block index outside hit table: %w", core.ErrContractViolation)

	// ErrUnmatchableCode reports a reco particle code that is neither a
	// known composite nor a final-state particle. It wraps
	// core.ErrContractViolation.
	ErrUnmatchableCode = fmt.Errorf("truthmatch: code cannot be matched: %w", core.ErrContractViolation)
)

// HitTables map block indices of the final-state blocks to mc indices
// (negative when the detector hit has no truth particle).
type HitTables struct {
	H     []int
	L     []int
	Gamma []int
}

// HitTablesOf returns the hit tables stored in a truth record.
func HitTablesOf(t *event.Truth) HitTables {
	return HitTables{H: t.HMcIdx, L: t.LMcIdx, Gamma: t.GammaMcIdx}
}

// Table maps reco indices to mc indices (or NoMatch). It is read-only once
// returned by Match.
type Table struct {
	m map[int]int
}

// Get returns the mc index matched to recoID.
func (t *Table) Get(recoID int) (int, error) {
	v, ok := t.m[recoID]
	if !ok {
		return NoMatch, fmt.Errorf("%w: %d", ErrUnknownCandidate, recoID)
	}
	return v, nil
}

// Matched reports whether recoID has a truth counterpart.
func (t *Table) Matched(recoID int) bool {
	v, ok := t.m[recoID]
	return ok && v >= 0
}

// Map returns a copy of the whole table.
func (t *Table) Map() map[int]int { return maps.Clone(t.m) }

// Len returns the number of reco indices in the table.
func (t *Table) Len() int { return len(t.m) }

// Option configures Match.
type Option func(*Options)

// Options holds the Match parameters.
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
