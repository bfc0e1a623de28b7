// SPDX-License-Identifier: MIT

// Package event defines the per-event input buffer shared by every stage of
// the analysis: the reconstructed candidate blocks, the Υ(4S) kinematics,
// the particle-ID maps and, for simulated samples, the generator truth.
//
// A Source fills a Buffer one event at a time. The buffer is reused between
// events; Reset restores the sentinel values before each read.
package event

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/decaygraph/core"
)

// Unset is the sentinel stored in scalar fields before a read and in
// float outputs that were never filled.
const Unset = -999

var (
	// ErrMalformed reports a buffer whose array lengths disagree with its
	// counts. It wraps core.ErrContractViolation.
	ErrMalformed = fmt.Errorf("event: malformed buffer: %w", core.ErrContractViolation)

	// ErrSourceClosed is returned by a Source after Close.
	ErrSourceClosed = errors.New("event: source closed")
)

// Status is the outcome of reading one event.
type Status int

const (
	// ReadSucceeded: the event was read and every derived quantity is valid.
	ReadSucceeded Status = iota
	// EOF: the input is exhausted.
	EOF
	// MaxRecoCandExceeded: some reco category overflowed its limit. The
	// event is skipped and nothing is derived from it.
	MaxRecoCandExceeded
	// MaxMcParticlesExceeded: the truth record overflowed. Reco results are
	// computed but truth results are not.
	MaxMcParticlesExceeded
)

var statusNames = [...]string{"ReadSucceeded", "EOF", "MaxRecoCandExceeded", "MaxMcParticlesExceeded"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// Category is one of the reconstructed candidate blocks, ordered from the
// coarsest (Υ) to the finest (photons).
type Category int

const (
	CatY Category = iota
	CatB
	CatD
	CatC // K_S, ρ, π⁰
	CatH // π±, K±
	CatL // e, μ
	CatGamma

	// NumCategories is the number of candidate blocks.
	NumCategories = int(CatGamma) + 1
)

var (
	categoryNames = [NumCategories]string{"Y", "B", "D", "C", "h", "l", "gamma"}
	categorySlots = [NumCategories]int{2, 4, 5, 2, 2, 3, 0}
)

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Slots returns the number of daughter slots stored per candidate.
func (c Category) Slots() int { return categorySlots[c] }

// Counts holds the number of candidates per category.
type Counts [NumCategories]int

// Candidates is one category block in struct-of-arrays layout. DauIdx and
// DauLund are indexed [slot][candidate]; a DauIdx of -1 marks an unused slot
// and every later slot of that candidate is unused too.
type Candidates struct {
	Lund    []int
	DauIdx  [][]int
	DauLund [][]int
}

// Len returns the number of candidates in the block.
func (c *Candidates) Len() int { return len(c.Lund) }

// Daughter returns the block index and code stored in slot of candidate i.
func (c *Candidates) Daughter(i, slot int) (block, lund int) {
	return c.DauIdx[slot][i], c.DauLund[slot][i]
}

// Reco holds every reconstructed candidate block of one event.
type Reco struct {
	Blocks [NumCategories]Candidates
}

// Counts returns the candidate count of every block.
func (r *Reco) Counts() Counts {
	var c Counts
	for i := range r.Blocks {
		c[i] = r.Blocks[i].Len()
	}
	return c
}

// Validate checks that every block carries the right number of daughter
// slots and that each slot is as long as the block.
func (r *Reco) Validate() error {
	for i := range r.Blocks {
		cat := Category(i)
		b := &r.Blocks[i]
		if len(b.DauIdx) != cat.Slots() || len(b.DauLund) != cat.Slots() {
			return fmt.Errorf("%w: %s block has %d/%d slots, want %d",
				ErrMalformed, cat, len(b.DauIdx), len(b.DauLund), cat.Slots())
		}
		for s := 0; s < cat.Slots(); s++ {
			if len(b.DauIdx[s]) != b.Len() || len(b.DauLund[s]) != b.Len() {
				return fmt.Errorf("%w: %s slot %d has length %d/%d, want %d",
					ErrMalformed, cat, s+1, len(b.DauIdx[s]), len(b.DauLund[s]), b.Len())
			}
		}
	}
	return nil
}

// Kinematics holds the per-Υ-candidate floating point quantities, indexed
// by Υ block index.
type Kinematics struct {
	BPairMmissPrime2    []float32
	BPairEextra50       []float32
	BPairCosThetaT      []float32
	TagBlP3MagCM        []float32
	TagBCosBY           []float32
	TagBCosThetaDlCM    []float32
	TagBDMass           []float32
	TagBDstarDeltaM     []float32
	TagBCosThetaDSoftCM []float32
	TagBsoftP3MagCM     []float32
	SigBhP3MagCM        []float32
	SigBCosBY           []float32
	SigBCosThetaDtauCM  []float32
	SigBVtxProbB        []float32
	SigBDMass           []float32
	SigBDstarDeltaM     []float32
	SigBCosThetaDSoftCM []float32
	SigBsoftP3MagCM     []float32
	SigBhMass           []float32
	SigBVtxProbh        []float32
}

// KinematicField is one per-Υ array with the name of its ntuple branch.
type KinematicField struct {
	Name   string
	Values *[]float32
}

// Fields lists the arrays in declaration order.
func (k *Kinematics) Fields() []KinematicField {
	return []KinematicField{
		{"YBPairMmissPrime2", &k.BPairMmissPrime2},
		{"YBPairEextra50", &k.BPairEextra50},
		{"YBPairCosThetaT", &k.BPairCosThetaT},
		{"YTagBlP3MagCM", &k.TagBlP3MagCM},
		{"YTagBCosBY", &k.TagBCosBY},
		{"YTagBCosThetaDlCM", &k.TagBCosThetaDlCM},
		{"YTagBDMass", &k.TagBDMass},
		{"YTagBDstarDeltaM", &k.TagBDstarDeltaM},
		{"YTagBCosThetaDSoftCM", &k.TagBCosThetaDSoftCM},
		{"YTagBsoftP3MagCM", &k.TagBsoftP3MagCM},
		{"YSigBhP3MagCM", &k.SigBhP3MagCM},
		{"YSigBCosBY", &k.SigBCosBY},
		{"YSigBCosThetaDtauCM", &k.SigBCosThetaDtauCM},
		{"YSigBVtxProbB", &k.SigBVtxProbB},
		{"YSigBDMass", &k.SigBDMass},
		{"YSigBDstarDeltaM", &k.SigBDstarDeltaM},
		{"YSigBCosThetaDSoftCM", &k.SigBCosThetaDSoftCM},
		{"YSigBsoftP3MagCM", &k.SigBsoftP3MagCM},
		{"YSigBhMass", &k.SigBhMass},
		{"YSigBVtxProbh", &k.SigBVtxProbh},
	}
}

// PID holds the track maps. LTrkIdx and HTrkIdx map l and h block indices
// to track indices; the selector maps are indexed by track index.
type PID struct {
	LTrkIdx        []int
	HTrkIdx        []int
	ESelectorsMap  []int
	MuSelectorsMap []int
	KSelectorsMap  []int
	PiSelectorsMap []int
}

// Truth is the generator record of a simulated event. Index i of every
// slice describes mc particle i.
type Truth struct {
	Lund    []int
	MothIdx []int
	DauIdx  []int
	DauLen  []int
	Energy  []float32

	// Reco-to-truth hit tables, indexed by h, l and gamma block index.
	HMcIdx     []int
	LMcIdx     []int
	GammaMcIdx []int
}

// Len returns the number of mc particles.
func (t *Truth) Len() int { return len(t.Lund) }

// Buffer is the complete input of one event.
type Buffer struct {
	Platform  int
	Partition int
	UpperID   int
	LowerID   int
	NTrk      int
	R2All     float32

	Reco Reco
	Kin  Kinematics
	PID  PID

	// Truth is nil for real data.
	Truth *Truth
}

// EventID formats the experiment's event identifier as
// "platform:partition:upperID/lowerID".
func (b *Buffer) EventID() string {
	return strconv.Itoa(b.Platform) + ":" + strconv.Itoa(b.Partition) + ":" +
		strconv.Itoa(b.UpperID) + "/" + strconv.Itoa(b.LowerID)
}

// HasTruth reports whether the buffer carries a generator record.
func (b *Buffer) HasTruth() bool { return b.Truth != nil }

// Reset restores the sentinel scalars and empties every block, keeping the
// allocated capacity. A non-nil Truth is emptied, not dropped.
func (b *Buffer) Reset() {
	b.Platform, b.Partition, b.UpperID, b.LowerID = Unset, Unset, Unset, Unset
	b.NTrk = Unset
	b.R2All = Unset
	for i := range b.Reco.Blocks {
		blk := &b.Reco.Blocks[i]
		blk.Lund = blk.Lund[:0]
		for s := range blk.DauIdx {
			blk.DauIdx[s] = blk.DauIdx[s][:0]
			blk.DauLund[s] = blk.DauLund[s][:0]
		}
	}
	b.Kin = Kinematics{}
	b.PID = PID{}
	if b.Truth != nil {
		*b.Truth = Truth{}
	}
}

// Source delivers events into a caller-owned Buffer.
//
// Next returns EOF once the input is exhausted. It reports only
// ReadSucceeded or EOF; overflow statuses are decided by the pipeline from
// the buffer contents and Limits.
type Source interface {
	Next(ctx context.Context, buf *Buffer) (Status, error)
}
