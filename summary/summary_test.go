package summary_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/mcgraph"
	"github.com/katalvlaran/decaygraph/mode"
	"github.com/katalvlaran/decaygraph/record"
	"github.com/katalvlaran/decaygraph/summary"
)

func candidate() record.UpsilonCandidate {
	c := record.New()
	c.BFlavor = mode.FlavorB0
	c.TagDstarMode = mode.NoDstar
	c.SigDstarMode = mode.DstarcD0pi
	c.SigTauMode = mode.TauPi
	return c
}

func TestHistograms_Fill(t *testing.T) {
	h := summary.New()
	s := mcgraph.Summary{B1Type: mode.BMcDstartau, B2Type: mode.BMcDl}

	h.Fill([]record.UpsilonCandidate{candidate(), candidate(), record.New()}, s)

	assert.Equal(t, int64(2), h.CandType.Entries())
	assert.Equal(t, int64(2), h.SampleType.Entries())
	assert.Equal(t, int64(2), h.BMcType.Entries())
	assert.Equal(t, 2, h.Nulls, "the undefined candidate misses both types")

	assert.InDelta(t, 2.0, h.CandType.Binning.Bins[int(mode.CandDDstarpi)].SumW(), 1e-9)
	assert.InDelta(t, 2.0, h.SampleType.Binning.Bins[int(mode.SampleB0Dstar)].SumW(), 1e-9)
	assert.InDelta(t, 1.0, h.BMcType.Binning.Bins[int(mode.BMcDl)].SumW(), 1e-9)
}

func TestHistograms_FillDefaultSummary(t *testing.T) {
	h := summary.New()
	h.Fill(nil, mcgraph.DefaultSummary())
	assert.InDelta(t, 2.0, h.BMcType.Binning.Bins[int(mode.BMcNoB)].SumW(), 1e-9)

	h.Fill(nil, mcgraph.Summary{B1Type: mode.BMcNull, B2Type: mode.BMcNull})
	assert.Equal(t, 2, h.Nulls)
}

func TestHistograms_Save(t *testing.T) {
	h := summary.New()
	h.Fill([]record.UpsilonCandidate{candidate()}, mcgraph.DefaultSummary())

	paths, err := h.Save(t.TempDir())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}
}
