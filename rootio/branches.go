// SPDX-License-Identifier: MIT

package rootio

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/event"
)

// blockNames are the branch prefixes of the candidate blocks, in category
// order. The count branch of block p is "n"+p.
var blockNames = [event.NumCategories]string{"Y", "B", "D", "C", "h", "l", "gamma"}

// branch binds one ntuple branch to a field of branches. count names the
// leaf holding the length of a variable-size array, empty for scalars.
type branch struct {
	name  string
	count string
	ptr   any
}

// branches is the flat read target of one entry. ROOT stores Int_t and
// Float_t, so everything is int32 or float32 here and converted in fill.
type branches struct {
	platform, partition, upperID, lowerID int32
	nTrk                                  int32
	r2All                                 float32

	n       [event.NumCategories]int32
	lund    [event.NumCategories][]int32
	dauIdx  [event.NumCategories][][]int32
	dauLund [event.NumCategories][][]int32

	kin [][]float32

	lTrkIdx, hTrkIdx []int32
	eSel, muSel      []int32
	kSel, piSel      []int32

	mcLen                            int32
	mcLund, mothIdx, mcDau, mcDauLen []int32
	mcEnergy                         []float32
	hMc, lMc, gammaMc                []int32
}

func newBranches() *branches {
	b := &branches{}
	for c := event.Category(0); int(c) < event.NumCategories; c++ {
		b.dauIdx[c] = make([][]int32, c.Slots())
		b.dauLund[c] = make([][]int32, c.Slots())
	}
	var k event.Kinematics
	b.kin = make([][]float32, len(k.Fields()))
	return b
}

// list returns the branches of the reco part and, with mc, of the truth
// part. Count branches come before the arrays they size.
func (b *branches) list(mc bool) []branch {
	out := []branch{
		{name: "platform", ptr: &b.platform},
		{name: "partition", ptr: &b.partition},
		{name: "upperID", ptr: &b.upperID},
		{name: "lowerID", ptr: &b.lowerID},
		{name: "nTRK", ptr: &b.nTrk},
		{name: "R2All", ptr: &b.r2All},
	}
	for c, p := range blockNames {
		out = append(out, branch{name: "n" + p, ptr: &b.n[c]})
	}

	var k event.Kinematics
	for i, f := range k.Fields() {
		out = append(out, branch{name: f.Name, count: "nY", ptr: &b.kin[i]})
	}

	for c, p := range blockNames {
		cnt := "n" + p
		out = append(out, branch{name: p + "Lund", count: cnt, ptr: &b.lund[c]})
		for s := range b.dauIdx[c] {
			out = append(out,
				branch{name: fmt.Sprintf("%sd%dIdx", p, s+1), count: cnt, ptr: &b.dauIdx[c][s]},
				branch{name: fmt.Sprintf("%sd%dLund", p, s+1), count: cnt, ptr: &b.dauLund[c][s]},
			)
		}
	}

	out = append(out,
		branch{name: "lTrkIdx", count: "nl", ptr: &b.lTrkIdx},
		branch{name: "hTrkIdx", count: "nh", ptr: &b.hTrkIdx},
		branch{name: "eSelectorsMap", count: "nTRK", ptr: &b.eSel},
		branch{name: "muSelectorsMap", count: "nTRK", ptr: &b.muSel},
		branch{name: "KSelectorsMap", count: "nTRK", ptr: &b.kSel},
		branch{name: "piSelectorsMap", count: "nTRK", ptr: &b.piSel},
	)
	if !mc {
		return out
	}

	return append(out,
		branch{name: "mcLen", ptr: &b.mcLen},
		branch{name: "mcLund", count: "mcLen", ptr: &b.mcLund},
		branch{name: "mothIdx", count: "mcLen", ptr: &b.mothIdx},
		branch{name: "dauIdx", count: "mcLen", ptr: &b.mcDau},
		branch{name: "dauLen", count: "mcLen", ptr: &b.mcDauLen},
		branch{name: "mcenergy", count: "mcLen", ptr: &b.mcEnergy},
		branch{name: "hMCIdx", count: "nh", ptr: &b.hMc},
		branch{name: "lMCIdx", count: "nl", ptr: &b.lMc},
		branch{name: "gammaMCIdx", count: "ngamma", ptr: &b.gammaMc},
	)
}

// fill copies the current entry into buf. The slices of b are reused by
// the reader, so every array is copied.
func (b *branches) fill(buf *event.Buffer, mc bool) {
	*buf = event.Buffer{
		Platform:  int(b.platform),
		Partition: int(b.partition),
		UpperID:   int(b.upperID),
		LowerID:   int(b.lowerID),
		NTrk:      int(b.nTrk),
		R2All:     b.r2All,
	}
	for c := range blockNames {
		blk := &buf.Reco.Blocks[c]
		blk.Lund = ints(b.lund[c])
		blk.DauIdx = make([][]int, len(b.dauIdx[c]))
		blk.DauLund = make([][]int, len(b.dauLund[c]))
		for s := range b.dauIdx[c] {
			blk.DauIdx[s] = ints(b.dauIdx[c][s])
			blk.DauLund[s] = ints(b.dauLund[c][s])
		}
	}
	for i, f := range buf.Kin.Fields() {
		*f.Values = append([]float32(nil), b.kin[i]...)
	}
	buf.PID = event.PID{
		LTrkIdx:        ints(b.lTrkIdx),
		HTrkIdx:        ints(b.hTrkIdx),
		ESelectorsMap:  ints(b.eSel),
		MuSelectorsMap: ints(b.muSel),
		KSelectorsMap:  ints(b.kSel),
		PiSelectorsMap: ints(b.piSel),
	}
	if !mc {
		return
	}
	buf.Truth = &event.Truth{
		Lund:       ints(b.mcLund),
		MothIdx:    ints(b.mothIdx),
		DauIdx:     ints(b.mcDau),
		DauLen:     ints(b.mcDauLen),
		Energy:     append([]float32(nil), b.mcEnergy...),
		HMcIdx:     ints(b.hMc),
		LMcIdx:     ints(b.lMc),
		GammaMcIdx: ints(b.gammaMc),
	}
}

// load is the inverse of fill, used when writing.
func (b *branches) load(buf *event.Buffer) {
	b.platform, b.partition = int32(buf.Platform), int32(buf.Partition)
	b.upperID, b.lowerID = int32(buf.UpperID), int32(buf.LowerID)
	b.nTrk, b.r2All = int32(buf.NTrk), buf.R2All
	for c := range blockNames {
		blk := &buf.Reco.Blocks[c]
		b.n[c] = int32(blk.Len())
		b.lund[c] = int32s(blk.Lund)
		for s := range b.dauIdx[c] {
			b.dauIdx[c][s], b.dauLund[c][s] = nil, nil
			if s < len(blk.DauIdx) {
				b.dauIdx[c][s] = int32s(blk.DauIdx[s])
				b.dauLund[c][s] = int32s(blk.DauLund[s])
			}
		}
	}
	for i, f := range buf.Kin.Fields() {
		b.kin[i] = *f.Values
	}
	b.lTrkIdx, b.hTrkIdx = int32s(buf.PID.LTrkIdx), int32s(buf.PID.HTrkIdx)
	b.eSel, b.muSel = int32s(buf.PID.ESelectorsMap), int32s(buf.PID.MuSelectorsMap)
	b.kSel, b.piSel = int32s(buf.PID.KSelectorsMap), int32s(buf.PID.PiSelectorsMap)

	if t := buf.Truth; t != nil {
		b.mcLen = int32(t.Len())
		b.mcLund, b.mothIdx = int32s(t.Lund), int32s(t.MothIdx)
		b.mcDau, b.mcDauLen = int32s(t.DauIdx), int32s(t.DauLen)
		b.mcEnergy = t.Energy
		b.hMc, b.lMc, b.gammaMc = int32s(t.HMcIdx), int32s(t.LMcIdx), int32s(t.GammaMcIdx)
	}
}

func ints(s []int32) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}

func int32s(s []int) []int32 {
	out := make([]int32, len(s))
	for i, v := range s {
		out[i] = int32(v)
	}
	return out
}
