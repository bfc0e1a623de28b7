package mcgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/dfs"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/internal/fixture"
	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mcgraph"
	"github.com/katalvlaran/decaygraph/mode"
)

// part is one truth particle: its code and its daughter range.
type part struct{ code, first, n int }

func truth(parts ...part) *event.Truth {
	t := &event.Truth{}
	for _, p := range parts {
		t.Lund = append(t.Lund, p.code)
		t.DauIdx = append(t.DauIdx, p.first)
		t.DauLen = append(t.DauLen, p.n)
	}
	return t
}

func classify(t *testing.T, tr *event.Truth) (*mcgraph.Analysis, error) {
	t.Helper()
	g, err := mcgraph.Build(tr)
	require.NoError(t, err)
	return mcgraph.Classify(g)
}

func TestBuild_SignalTruth(t *testing.T) {
	g, err := mcgraph.Build(fixture.SignalTruth())
	require.NoError(t, err)

	assert.Equal(t, fixture.McLen, g.VertexCount())
	assert.Equal(t, 25, g.EdgeCount())
	assert.Equal(t, []int{0, 1}, g.Roots(), "the beams")

	parents, err := g.Parents(fixture.McY)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, parents)

	kids, err := g.Children(fixture.McSigB)
	require.NoError(t, err)
	assert.Equal(t, []int{fixture.McDst, fixture.McTau, 10}, kids)

	v, err := g.Vertex(fixture.McRho)
	require.NoError(t, err)
	assert.Equal(t, lund.Rho, v.Lund)
	assert.Equal(t, core.NoBlock, v.Block)
}

func TestBuild_Inconsistent(t *testing.T) {
	tr := truth(part{lund.Upsilon, 1, 2}, part{lund.B0, -1, 0})
	_, err := mcgraph.Build(tr)
	assert.ErrorIs(t, err, mcgraph.ErrInconsistentInput)
	assert.ErrorIs(t, err, core.ErrContractViolation)

	tr = truth(part{lund.Upsilon, 1, 1}, part{lund.B0, -1, 0})
	tr.DauLen = tr.DauLen[:1]
	_, err = mcgraph.Build(tr)
	assert.ErrorIs(t, err, mcgraph.ErrInconsistentInput)
}

func TestBuild_SelfLoop(t *testing.T) {
	tr := truth(part{lund.Upsilon, 1, 1}, part{lund.B0, 1, 1})
	_, err := mcgraph.Build(tr)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.ErrorIs(t, err, mcgraph.ErrInconsistentInput)
	assert.ErrorIs(t, err, core.ErrContractViolation)
}

func TestClassify_Cycle(t *testing.T) {
	// 1 → 2 → 1
	tr := truth(part{lund.Upsilon, 1, 1}, part{lund.B0, 2, 1}, part{lund.D0, 1, 1})
	g, err := mcgraph.Build(tr)
	require.NoError(t, err)

	a, err := mcgraph.Classify(g)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.ErrorIs(t, err, core.ErrContractViolation)
}

func TestBuild_Empty(t *testing.T) {
	g, err := mcgraph.Build(&event.Truth{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())

	a, err := mcgraph.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, mcgraph.DefaultSummary(), a.Summary())
}

func TestClassify_SignalTruth(t *testing.T) {
	a, err := classify(t, fixture.SignalTruth())
	require.NoError(t, err)

	y, ok := a.Y()
	require.True(t, ok)
	assert.Equal(t, &mcgraph.Y{ID: fixture.McY, IsBBbar: true, B1: fixture.McTagB, B2: fixture.McSigB}, y)

	tag, ok := a.B(fixture.McTagB)
	require.True(t, ok)
	assert.Equal(t, mode.BMcDl, tag.McType)
	assert.Equal(t, mcgraph.NoRef, tag.Tau)

	sig, ok := a.B(fixture.McSigB)
	require.True(t, ok)
	assert.Equal(t, mode.BMcDstartau, sig.McType)
	assert.Equal(t, mode.FlavorBc, sig.Flavor)
	assert.Equal(t, fixture.McTau, sig.Tau)

	tau, ok := a.Tau(fixture.McTau)
	require.True(t, ok)
	assert.Equal(t, mode.TauMcH, tau.McType)

	assert.Equal(t, mcgraph.Summary{
		Continuum: false,
		B1Type:    mode.BMcDl,
		B2Type:    mode.BMcDstartau,
		B1TauType: mode.TauMcNoTau,
		B2TauType: mode.TauMcH,
	}, a.Summary())
}

func TestClassify_Continuum(t *testing.T) {
	// e+e- → Υ-like vertex with quark daughters: not a BB̄ event
	tr := truth(
		part{lund.Upsilon, 1, 2},
		part{2, -1, 0},
		part{-2, -1, 0},
	)
	a, err := classify(t, tr)
	require.NoError(t, err)

	_, ok := a.Y()
	assert.False(t, ok)
	assert.Equal(t, 0, a.NumB())
	assert.Equal(t, mcgraph.DefaultSummary(), a.Summary())
}

func TestClassify_LeptonicTau(t *testing.T) {
	tr := truth(
		part{lund.Upsilon, 1, 2},
		part{lund.B0, 3, 3},  // 1
		part{-lund.B0, 6, 2}, // 2
		part{-lund.Dc, -1, 0},
		part{lund.Tau, 8, 3}, // 4
		part{-lund.NuTau, -1, 0},
		part{lund.D0, -1, 0},
		part{-lund.Pi, -1, 0},
		part{lund.NuTau, -1, 0},
		part{lund.E, -1, 0},
		part{-lund.NuE, -1, 0},
	)
	a, err := classify(t, tr)
	require.NoError(t, err)

	s := a.Summary()
	assert.False(t, s.Continuum)
	assert.Equal(t, mode.BMcDtau, s.B1Type)
	assert.Equal(t, mode.TauMcE, s.B1TauType)
	assert.Equal(t, mode.BMcHad, s.B2Type)
	assert.Equal(t, mode.TauMcNoTau, s.B2TauType)

	b1, ok := a.B1()
	require.True(t, ok)
	b2, ok := a.B2()
	require.True(t, ok)
	assert.Less(t, b1.ID, b2.ID)
	assert.Equal(t, []*mcgraph.B{b1, b2}, a.Bs())
}

func TestClassify_TauPriority(t *testing.T) {
	cases := []struct {
		name string
		daus []int
		want mode.TauMcType
	}{
		{"muonic", []int{lund.NuTau, lund.Mu, -lund.NuMu}, mode.TauMcMu},
		{"hadronic", []int{lund.NuTau, lund.Pi}, mode.TauMcH},
		{"electron before muon", []int{lund.NuTau, lund.E, lund.Mu}, mode.TauMcE},
		{"muon before electron", []int{lund.NuTau, lund.Mu, lund.E}, mode.TauMcMu},
		{"lepton after hadron", []int{lund.Pi, lund.NuTau, -lund.Mu}, mode.TauMcMu},
		{"no daughters", nil, mode.TauMcNull},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			parts := []part{{lund.Tau, 1, len(c.daus)}}
			if len(c.daus) == 0 {
				parts[0].first = -1
			}
			for _, d := range c.daus {
				parts = append(parts, part{d, -1, 0})
			}
			a, err := classify(t, truth(parts...))
			require.NoError(t, err)
			tau, ok := a.Tau(0)
			require.True(t, ok)
			assert.Equal(t, c.want, tau.McType)
		})
	}
}

func TestClassify_Multiplicity(t *testing.T) {
	_, err := classify(t, truth(part{lund.B0, -1, 0}))
	assert.ErrorIs(t, err, mcgraph.ErrUnexpectedMultiplicity)
	assert.ErrorIs(t, err, core.ErrContractViolation)

	_, err = classify(t, truth(part{lund.Upsilon, -1, 0}, part{lund.Upsilon, -1, 0}))
	assert.ErrorIs(t, err, mcgraph.ErrUnexpectedMultiplicity)
}
