package pipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/internal/fixture"
	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
	"github.com/katalvlaran/decaygraph/pipeline"
	"github.com/katalvlaran/decaygraph/record"
	"github.com/katalvlaran/decaygraph/recograph"
)

// signalCandidate is the record expected for the single Υ of
// fixture.SignalEvent, without truth match.
func signalCandidate() record.UpsilonCandidate {
	c := record.New()
	c.EventID = "1:2:3/4"
	c.BlockIndex = 0
	c.RecoIndex = fixture.RecoY
	c.BFlavor = mode.FlavorBc

	v := fixture.YValue
	c.MmissPrime2, c.Eextra50, c.CosThetaT = v(0), v(1), v(2)
	c.TagLp3, c.TagCosBY, c.TagCosThetaDl, c.TagDmass = v(3), v(4), v(5), v(6)
	c.TagDeltaM, c.TagCosThetaDSoft, c.TagSoftP3MagCM = v(7), v(8), v(9)
	c.SigHp3, c.SigCosBY, c.SigCosThetaDtau, c.SigVtxB = v(10), v(11), v(12), v(13)
	c.SigDmass, c.SigDeltaM, c.SigCosThetaDSoft = v(14), v(15), v(16)
	c.SigSoftP3MagCM, c.SigHmass, c.SigVtxh = v(17), v(18), v(19)

	c.TagDMode, c.TagDstarMode = mode.D0Kpi, mode.NoDstar
	c.LEPidMap, c.LMuPidMap = 3, 15
	c.SigDMode, c.SigDstarMode, c.SigTauMode = mode.D0Kpi, mode.Dstar0D0pi0, mode.TauRho
	c.HEPidMap, c.HMuPidMap = 1, 2

	return c
}

func analyse(t *testing.T, buf *event.Buffer) (*recograph.Indexer, *recograph.Analysis) {
	t.Helper()
	g, idx, err := recograph.Build(&buf.Reco)
	require.NoError(t, err)
	a, err := recograph.Classify(g)
	require.NoError(t, err)
	return idx, a
}

func TestAssemble_SignalEvent(t *testing.T) {
	buf := fixture.SignalEvent()
	idx, a := analyse(t, &buf)

	got, err := pipeline.Assemble(&buf, idx, a, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(signalCandidate(), got[0]); diff != "" {
		t.Errorf("candidate mismatch (-want +got):\n%s", diff)
	}

	ct, err := got[0].CandType()
	require.NoError(t, err)
	assert.Equal(t, mode.CandDDstarrho, ct)
	st, err := got[0].SampleType()
	require.NoError(t, err)
	assert.Equal(t, mode.SampleBcDstar, st)
}

func TestAssemble_UnpairedTagOnly(t *testing.T) {
	var r event.Reco
	steps := []struct {
		cat  event.Category
		code int
		daus []event.Daughter
	}{
		{event.CatY, lund.Upsilon, []event.Daughter{{Block: 0, Lund: -lund.Bc}}},
		{event.CatB, -lund.Bc, []event.Daughter{{Block: 0, Lund: lund.D0}, {Block: 0, Lund: lund.Mu}}},
		{event.CatD, lund.D0, []event.Daughter{{Block: 0, Lund: -lund.K}, {Block: 1, Lund: lund.Pi}}},
		{event.CatH, -lund.K, nil},
		{event.CatH, lund.Pi, nil},
		{event.CatL, lund.Mu, nil},
	}
	for _, s := range steps {
		_, err := r.Append(s.cat, s.code, s.daus...)
		require.NoError(t, err)
	}
	buf := event.Buffer{Platform: 9, Partition: 8, UpperID: 7, LowerID: 6, Reco: r}
	fillKinematics(&buf.Kin, 1)
	buf.PID = event.PID{
		LTrkIdx:        []int{2},
		HTrkIdx:        []int{0, 1},
		ESelectorsMap:  []int{0, 0, 5},
		MuSelectorsMap: []int{0, 0, 6},
	}
	idx, a := analyse(t, &buf)

	got, err := pipeline.Assemble(&buf, idx, a, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, "9:8:7/6", c.EventID)
	assert.Equal(t, mode.FlavorBc, c.BFlavor)
	assert.Equal(t, mode.D0Kpi, c.TagDMode)
	assert.Equal(t, 5, c.LEPidMap)
	assert.Equal(t, 6, c.LMuPidMap)

	assert.Equal(t, mode.DNull, c.SigDMode)
	assert.Equal(t, mode.DstarNull, c.SigDstarMode)
	assert.Equal(t, mode.TauNull, c.SigTauMode)
	assert.Zero(t, c.HEPidMap)
	assert.Zero(t, c.HMuPidMap)

	_, err = c.CandType()
	assert.ErrorIs(t, err, record.ErrUndefinedInput)
}

func TestAssemble_ShortKinematics(t *testing.T) {
	buf := fixture.SignalEvent()
	buf.Kin.SigBVtxProbh = nil
	idx, a := analyse(t, &buf)

	_, err := pipeline.Assemble(&buf, idx, a, nil)
	assert.ErrorIs(t, err, event.ErrMalformed)
	assert.ErrorContains(t, err, "YSigBVtxProbh")
}

func TestAssemble_TrackOutsideSelectorMaps(t *testing.T) {
	buf := fixture.SignalEvent()
	buf.PID.LTrkIdx = []int{40}
	idx, a := analyse(t, &buf)

	_, err := pipeline.Assemble(&buf, idx, a, nil)
	assert.ErrorIs(t, err, core.ErrContractViolation)
}

func fillKinematics(k *event.Kinematics, n int) {
	for _, f := range k.Fields() {
		*f.Values = make([]float32, n)
	}
}
