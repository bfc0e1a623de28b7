// SPDX-License-Identifier: MIT

// Package record defines the flat per-candidate output of the analysis.
package record

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decaygraph/mode"
)

// Unset is the value of float fields that were never filled.
const Unset = -999

// ErrUndefinedInput is returned by the derived classifications when one of
// their inputs is still null.
var ErrUndefinedInput = errors.New("record: derived type needs a defined input")

// UpsilonCandidate is one reconstructed Υ(4S) candidate: an identified tag
// side (B → D(*) ℓ ν) and signal side (B → D(*) τ ν with τ → π ν or ρ ν).
type UpsilonCandidate struct {
	EventID    string
	BlockIndex int
	RecoIndex  int
	TruthMatch int

	BFlavor     mode.BFlavor
	Eextra50    float32
	MmissPrime2 float32
	CosThetaT   float32

	TagLp3           float32
	TagCosBY         float32
	TagCosThetaDl    float32
	TagDmass         float32
	TagDeltaM        float32
	TagCosThetaDSoft float32
	TagSoftP3MagCM   float32
	TagDMode         mode.DType
	TagDstarMode     mode.DstarType
	LEPidMap         int
	LMuPidMap        int

	SigHp3           float32
	SigCosBY         float32
	SigCosThetaDtau  float32
	SigVtxB          float32
	SigDmass         float32
	SigDeltaM        float32
	SigCosThetaDSoft float32
	SigSoftP3MagCM   float32
	SigHmass         float32
	SigVtxh          float32
	SigDMode         mode.DType
	SigDstarMode     mode.DstarType
	SigTauMode       mode.TauType
	HEPidMap         int
	HMuPidMap        int
}

// New returns a candidate with every field at its undefined value: -999
// for floats and the block index, -1 for the reco index and truth match,
// null for enums and 0 for the PID maps.
func New() UpsilonCandidate {
	return UpsilonCandidate{
		BlockIndex: Unset,
		RecoIndex:  -1,
		TruthMatch: -1,

		BFlavor:     mode.FlavorNull,
		Eextra50:    Unset,
		MmissPrime2: Unset,
		CosThetaT:   Unset,

		TagLp3:           Unset,
		TagCosBY:         Unset,
		TagCosThetaDl:    Unset,
		TagDmass:         Unset,
		TagDeltaM:        Unset,
		TagCosThetaDSoft: Unset,
		TagSoftP3MagCM:   Unset,
		TagDMode:         mode.DNull,
		TagDstarMode:     mode.DstarNull,

		SigHp3:           Unset,
		SigCosBY:         Unset,
		SigCosThetaDtau:  Unset,
		SigVtxB:          Unset,
		SigDmass:         Unset,
		SigDeltaM:        Unset,
		SigCosThetaDSoft: Unset,
		SigSoftP3MagCM:   Unset,
		SigHmass:         Unset,
		SigVtxh:          Unset,
		SigDMode:         mode.DNull,
		SigDstarMode:     mode.DstarNull,
		SigTauMode:       mode.TauNull,
	}
}

// CandType packs the signal τ hypothesis and the presence of a D* on each
// side into three bits:
//
//	bit 2: signal τ → ρ ν
//	bit 1: tag side has a D*
//	bit 0: signal side has a D*
//
// It fails when the τ mode or either D* mode is null.
func (c *UpsilonCandidate) CandType() (mode.CandType, error) {
	if c.SigTauMode == mode.TauNull || c.TagDstarMode == mode.DstarNull || c.SigDstarMode == mode.DstarNull {
		return mode.CandNull, fmt.Errorf("%w: tau %v, tag D* %v, signal D* %v",
			ErrUndefinedInput, c.SigTauMode, c.TagDstarMode, c.SigDstarMode)
	}
	t := 0
	if c.SigTauMode == mode.TauRho {
		t |= 1 << 2
	}
	if c.TagDstarMode != mode.NoDstar {
		t |= 1 << 1
	}
	if c.SigDstarMode != mode.NoDstar {
		t |= 1
	}
	return mode.CandType(t), nil
}

// SampleType packs the B flavour and the presence of a signal-side D* into
// two bits:
//
//	bit 1: B⁰
//	bit 0: signal side has a D*
//
// It fails when the flavour or the signal D* mode is null.
func (c *UpsilonCandidate) SampleType() (mode.SampleType, error) {
	if c.BFlavor == mode.FlavorNull || c.SigDstarMode == mode.DstarNull {
		return mode.SampleNull, fmt.Errorf("%w: flavour %v, signal D* %v",
			ErrUndefinedInput, c.BFlavor, c.SigDstarMode)
	}
	t := 0
	if c.BFlavor == mode.FlavorB0 {
		t |= 1 << 1
	}
	if c.SigDstarMode != mode.NoDstar {
		t |= 1
	}
	return mode.SampleType(t), nil
}
