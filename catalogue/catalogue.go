// Package catalogue maps multisets of particle codes to decay-mode labels.
//
// Each catalogue works over its own small alphabet. A particle list is
// reduced to alphabet symbols, sorted by the alphabet's fixed order (which
// turns the multiset into a canonical sequence), terminated, and looked up
// by exact match. Absent sequences resolve to the catalogue's null label.
//
// The process-wide catalogues (DModes, DstarModes, BMcModes) are built once
// on first use and never mutated afterwards, so they are safe to share.
package catalogue

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/decaygraph/core"
)

var (
	// ErrConflictingEntry is returned when a sequence is registered twice
	// with different labels.
	ErrConflictingEntry = errors.New("catalogue: conflicting entry")

	// ErrUnknownParticle is returned when a code falls outside a closed
	// alphabet. It wraps core.ErrContractViolation.
	ErrUnknownParticle = fmt.Errorf("catalogue: unknown particle code: %w", core.ErrContractViolation)
)

// Catalogue is an exact-sequence lookup table from canonical symbol
// sequences to labels.
type Catalogue[S constraints.Integer, L comparable] struct {
	terminator S
	null       L
	rows       map[string]L
}

// New returns an empty catalogue. terminator closes every sequence and
// null is returned by Lookup for unregistered sequences.
func New[S constraints.Integer, L comparable](terminator S, null L) *Catalogue[S, L] {
	return &Catalogue[S, L]{
		terminator: terminator,
		null:       null,
		rows:       make(map[string]L),
	}
}

// Register inserts one row. The sequence is canonicalised (sorted and
// terminated) before insertion, so callers may list symbols in any order.
//
// Re-registering a sequence with the same label is a no-op; with a
// different label it returns ErrConflictingEntry and leaves the row intact.
func (c *Catalogue[S, L]) Register(seq []S, label L) error {
	k := c.key(seq)
	if prev, ok := c.rows[k]; ok {
		if prev == label {
			return nil
		}
		return fmt.Errorf("%w: %v already maps to %v, not %v", ErrConflictingEntry, seq, prev, label)
	}
	c.rows[k] = label

	return nil
}

// Lookup returns the label registered for the multiset seq, or the null
// label. seq is not modified.
func (c *Catalogue[S, L]) Lookup(seq []S) L {
	if l, ok := c.rows[c.key(seq)]; ok {
		return l
	}
	return c.null
}

// Len returns the number of registered rows.
func (c *Catalogue[S, L]) Len() int { return len(c.rows) }

// key sorts a copy of seq, appends the terminator and encodes it.
func (c *Catalogue[S, L]) key(seq []S) string {
	word := slices.Clone(seq)
	slices.Sort(word)
	word = append(word, c.terminator)

	buf := make([]byte, 0, 3*len(word))
	for i, s := range word {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(s), 10)
	}

	return string(buf)
}
