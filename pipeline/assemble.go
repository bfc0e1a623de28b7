// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/record"
	"github.com/katalvlaran/decaygraph/recograph"
	"github.com/katalvlaran/decaygraph/truthmatch"
)

// Assemble flattens every Υ candidate of buf into a record.
//
// Implementation:
//   - Stage 1: Check that every kinematic array covers the Υ block.
//   - Stage 2: For Υ block i, copy the kinematics at index i and resolve the
//     tag and signal sides through the classifier records.
//   - Stage 3: Read the particle-ID maps through the track index of the tag
//     lepton (l block) and of the signal π (h block).
//   - Stage 4: Look up the truth match when table is non-nil.
//
// A side that Classify could not pair keeps the null modes and zero PID
// maps of record.New. A Υ without a classifier record, or an index outside
// a PID array, returns an error wrapping core.ErrContractViolation.
//
// Complexity: O(nY).
func Assemble(buf *event.Buffer, idx *recograph.Indexer, a *recograph.Analysis, table *truthmatch.Table) ([]record.UpsilonCandidate, error) {
	ys := &buf.Reco.Blocks[event.CatY]
	n := ys.Len()

	// Stage 1
	for _, f := range buf.Kin.Fields() {
		if len(*f.Values) < n {
			return nil, fmt.Errorf("%w: %s has %d entries for %d Υ candidates", event.ErrMalformed, f.Name, len(*f.Values), n)
		}
	}

	out := make([]record.UpsilonCandidate, 0, n)
	for i := 0; i < n; i++ {
		// Stage 2
		c := record.New()
		c.EventID = buf.EventID()
		c.BlockIndex = i
		c.RecoIndex = idx.Index(ys.Lund[i], i)

		y, ok := a.Ys[c.RecoIndex]
		if !ok {
			return nil, fmt.Errorf("%w: Υ block %d has no record", recograph.ErrInconsistentInput, i)
		}
		fillKinematics(&c, &buf.Kin, i)

		if b, ok := a.TagB(y); ok {
			c.BFlavor = b.Flavor
			if d, ok := a.DOf(b); ok {
				c.TagDMode, c.TagDstarMode = d.DType, d.DstarType
			}
			// Stage 3
			if l, ok := a.LeptonOf(b); ok {
				var err error
				if c.LEPidMap, c.LMuPidMap, err = pidMaps(&buf.PID, buf.PID.LTrkIdx, l.LBlock); err != nil {
					return nil, fmt.Errorf("pipeline: Υ block %d tag lepton: %w", i, err)
				}
			}
		}
		if b, ok := a.SigB(y); ok {
			if d, ok := a.DOf(b); ok {
				c.SigDMode, c.SigDstarMode = d.DType, d.DstarType
			}
			if l, ok := a.LeptonOf(b); ok {
				c.SigTauMode = l.TauMode
				var err error
				if c.HEPidMap, c.HMuPidMap, err = pidMaps(&buf.PID, buf.PID.HTrkIdx, l.PiBlock); err != nil {
					return nil, fmt.Errorf("pipeline: Υ block %d signal π: %w", i, err)
				}
			}
		}

		// Stage 4
		if table != nil {
			m, err := table.Get(c.RecoIndex)
			if err != nil {
				return nil, err
			}
			c.TruthMatch = m
		}
		out = append(out, c)
	}

	return out, nil
}

// pidMaps returns the e and μ selector maps of the track behind block in a
// final-state block whose track indices are trk. A negative block has no
// track and yields zero maps.
func pidMaps(pid *event.PID, trk []int, block int) (e, mu int, err error) {
	if block < 0 {
		return 0, 0, nil
	}
	if block >= len(trk) {
		return 0, 0, fmt.Errorf("%w: block %d outside %d track indices", event.ErrMalformed, block, len(trk))
	}
	t := trk[block]
	if t < 0 || t >= len(pid.ESelectorsMap) || t >= len(pid.MuSelectorsMap) {
		return 0, 0, fmt.Errorf("%w: track %d outside selector maps", event.ErrMalformed, t)
	}
	return pid.ESelectorsMap[t], pid.MuSelectorsMap[t], nil
}

func fillKinematics(c *record.UpsilonCandidate, k *event.Kinematics, i int) {
	c.MmissPrime2 = k.BPairMmissPrime2[i]
	c.Eextra50 = k.BPairEextra50[i]
	c.CosThetaT = k.BPairCosThetaT[i]

	c.TagLp3 = k.TagBlP3MagCM[i]
	c.TagCosBY = k.TagBCosBY[i]
	c.TagCosThetaDl = k.TagBCosThetaDlCM[i]
	c.TagDmass = k.TagBDMass[i]
	c.TagDeltaM = k.TagBDstarDeltaM[i]
	c.TagCosThetaDSoft = k.TagBCosThetaDSoftCM[i]
	c.TagSoftP3MagCM = k.TagBsoftP3MagCM[i]

	c.SigHp3 = k.SigBhP3MagCM[i]
	c.SigCosBY = k.SigBCosBY[i]
	c.SigCosThetaDtau = k.SigBCosThetaDtauCM[i]
	c.SigVtxB = k.SigBVtxProbB[i]
	c.SigDmass = k.SigBDMass[i]
	c.SigDeltaM = k.SigBDstarDeltaM[i]
	c.SigCosThetaDSoft = k.SigBCosThetaDSoftCM[i]
	c.SigSoftP3MagCM = k.SigBsoftP3MagCM[i]
	c.SigHmass = k.SigBhMass[i]
	c.SigVtxh = k.SigBVtxProbh[i]
}
