package recograph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/internal/fixture"
	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
	"github.com/katalvlaran/decaygraph/recograph"
)

func TestIndexer_Bands(t *testing.T) {
	var x recograph.Indexer
	x.Set(event.Counts{1, 2, 3, 3, 5, 1, 4})

	assert.Equal(t, 19, x.Total())
	assert.Equal(t, 0, x.Index(lund.Upsilon, 0))
	assert.Equal(t, 2, x.Index(-lund.Bc, 1))
	assert.Equal(t, 5, x.Index(lund.Dstarc, 2))
	assert.Equal(t, 8, x.Index(lund.Rho, 2))
	assert.Equal(t, 13, x.Index(-lund.Pi, 4))
	assert.Equal(t, 14, x.Index(lund.E, 0))
	assert.Equal(t, 18, x.Index(lund.Gamma, 3))

	assert.Equal(t, -1, x.Index(lund.Tau, 0), "no band")
	assert.Equal(t, -1, x.Index(lund.Mu, 1), "outside the l band")
	assert.Equal(t, -1, x.Index(lund.Pi, -1))

	assert.True(t, x.IsH(9))
	assert.True(t, x.IsH(13))
	assert.False(t, x.IsH(14))
	assert.True(t, x.IsL(14))
	assert.True(t, x.IsGamma(15))
	assert.False(t, x.IsGamma(19))

	cat, ok := x.Band(7)
	require.True(t, ok)
	assert.Equal(t, event.CatC, cat)
	assert.Equal(t, 1, x.Block(7))
	_, ok = x.Band(19)
	assert.False(t, ok)
}

func TestIndexer_Injective(t *testing.T) {
	var x recograph.Indexer
	counts := event.Counts{3, 4, 5, 6, 7, 8, 9}
	x.Set(counts)
	codes := []int{lund.Upsilon, lund.B0, lund.D0, lund.KS, lund.K, lund.Mu, lund.Gamma}

	seen := make(map[int]bool)
	for c, code := range codes {
		for b := 0; b < counts[c]; b++ {
			id := x.Index(code, b)
			require.GreaterOrEqual(t, id, 0)
			require.False(t, seen[id], "id %d assigned twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, x.Total())
}

func TestBuild_SignalEvent(t *testing.T) {
	reco := fixture.SignalReco()
	g, x, err := recograph.Build(&reco)
	require.NoError(t, err)

	assert.Equal(t, fixture.RecoTotal, x.Total())
	assert.Equal(t, fixture.RecoTotal, g.VertexCount())
	assert.Equal(t, []int{fixture.RecoY}, g.Roots())

	kids, err := g.Children(fixture.RecoSigB)
	require.NoError(t, err)
	assert.Equal(t, []int{fixture.RecoSigDst, fixture.RecoRho}, kids)

	v, err := g.Vertex(fixture.RecoRhoPi)
	require.NoError(t, err)
	assert.Equal(t, lund.Pi, v.Lund)
	assert.Equal(t, 4, v.Block)

	// Y→2, B→2+2, D→2+2+2, C→2+2+2
	assert.Equal(t, 18, g.EdgeCount())
}

func TestBuild_SharedDaughter(t *testing.T) {
	var r event.Reco
	_, _ = r.Append(event.CatH, lund.Pi)
	_, _ = r.Append(event.CatH, -lund.K)
	_, _ = r.Append(event.CatH, lund.K)
	_, _ = r.Append(event.CatD, lund.D0, event.Daughter{Block: 1, Lund: -lund.K}, event.Daughter{Block: 0, Lund: lund.Pi})
	_, _ = r.Append(event.CatD, -lund.D0, event.Daughter{Block: 2, Lund: lund.K}, event.Daughter{Block: 0, Lund: lund.Pi})

	g, _, err := recograph.Build(&r)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	parents, err := g.Parents(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, parents)
}

func TestBuild_Idempotent(t *testing.T) {
	reco := fixture.SignalReco()
	g1, _, err := recograph.Build(&reco)
	require.NoError(t, err)
	g2, _, err := recograph.Build(&reco)
	require.NoError(t, err)
	assert.Equal(t, g1.Vertices(), g2.Vertices())
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestBuild_InconsistentInput(t *testing.T) {
	t.Run("code in the wrong block", func(t *testing.T) {
		var r event.Reco
		_, _ = r.Append(event.CatH, lund.Mu)
		_, _, err := recograph.Build(&r)
		assert.ErrorIs(t, err, recograph.ErrInconsistentInput)
		assert.ErrorIs(t, err, core.ErrContractViolation)
	})
	t.Run("daughter outside its block", func(t *testing.T) {
		var r event.Reco
		_, _ = r.Append(event.CatC, lund.Pi0, event.Daughter{Block: 0, Lund: lund.Gamma}, event.Daughter{Block: 1, Lund: lund.Gamma})
		_, _ = r.Append(event.CatGamma, lund.Gamma)
		_, _, err := recograph.Build(&r)
		assert.ErrorIs(t, err, core.ErrContractViolation)
	})
	t.Run("π⁰ listed as its own daughter", func(t *testing.T) {
		var r event.Reco
		_, _ = r.Append(event.CatC, lund.Pi0, event.Daughter{Block: 0, Lund: lund.Pi0})
		_, _, err := recograph.Build(&r)
		assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
		assert.ErrorIs(t, err, recograph.ErrInconsistentInput)
	})
	t.Run("daughter code disagrees with its block", func(t *testing.T) {
		var r event.Reco
		_, _ = r.Append(event.CatD, lund.D0, event.Daughter{Block: 0, Lund: lund.K}, event.Daughter{Block: 1, Lund: lund.Pi})
		_, _ = r.Append(event.CatH, -lund.K)
		_, _ = r.Append(event.CatH, lund.Pi)
		_, _, err := recograph.Build(&r)
		assert.ErrorIs(t, err, recograph.ErrInconsistentInput)
	})
}

func classifySignal(t *testing.T, opts ...recograph.Option) *recograph.Analysis {
	t.Helper()
	reco := fixture.SignalReco()
	g, _, err := recograph.Build(&reco)
	require.NoError(t, err)
	a, err := recograph.Classify(g, opts...)
	require.NoError(t, err)
	return a
}

func TestClassify_SignalEvent(t *testing.T) {
	a := classifySignal(t)

	require.Len(t, a.Ys, 1)
	y := a.Ys[fixture.RecoY]
	assert.Equal(t, &recograph.Y{ID: 0, Block: 0, TagB: fixture.RecoTagB, SigB: fixture.RecoSigB, Paired: true}, y)

	tag, ok := a.TagB(y)
	require.True(t, ok)
	assert.Equal(t, mode.FlavorBc, tag.Flavor)
	assert.Equal(t, fixture.RecoTagD, tag.D)
	assert.Equal(t, fixture.RecoMu, tag.Lepton)

	sig, ok := a.SigB(y)
	require.True(t, ok)
	d, ok := a.DOf(sig)
	require.True(t, ok)
	assert.Equal(t, mode.D0Kpi, d.DType)
	assert.Equal(t, mode.Dstar0D0pi0, d.DstarType)

	l, ok := a.LeptonOf(sig)
	require.True(t, ok)
	assert.Equal(t, recograph.Lepton{ID: fixture.RecoRho, Block: 2, LBlock: -1, PiBlock: 4, TauMode: mode.TauRho}, *l)

	tagD := a.Ds[fixture.RecoTagD]
	assert.Equal(t, mode.D0Kpi, tagD.DType)
	assert.Equal(t, mode.NoDstar, tagD.DstarType)

	mu := a.Leptons[fixture.RecoMu]
	assert.Equal(t, 0, mu.LBlock)
	assert.Equal(t, -1, mu.PiBlock)
	assert.Equal(t, mode.TauMu, mu.TauMode)

	// every charged pion gets a placeholder record, kaons do not
	assert.Contains(t, a.Leptons, fixture.RecoTagPi)
	assert.NotContains(t, a.Leptons, fixture.RecoTagK)
	assert.Len(t, a.Bs, 2)
	assert.Len(t, a.Ds, 3)
}

func electronEvent() event.Reco {
	var r event.Reco
	_, _ = r.Append(event.CatY, lund.Upsilon, event.Daughter{Block: 0, Lund: lund.B0}, event.Daughter{Block: 1, Lund: -lund.B0})
	_, _ = r.Append(event.CatB, lund.B0, event.Daughter{Block: 0, Lund: -lund.Dc}, event.Daughter{Block: 0, Lund: lund.E})
	_, _ = r.Append(event.CatB, -lund.B0, event.Daughter{Block: 1, Lund: lund.Dc}, event.Daughter{Block: 4, Lund: -lund.Pi})
	_, _ = r.Append(event.CatD, -lund.Dc, event.Daughter{Block: 0, Lund: lund.K}, event.Daughter{Block: 1, Lund: -lund.Pi}, event.Daughter{Block: 2, Lund: -lund.Pi})
	_, _ = r.Append(event.CatD, lund.Dc, event.Daughter{Block: 0, Lund: lund.KS}, event.Daughter{Block: 3, Lund: lund.K})
	_, _ = r.Append(event.CatC, lund.KS)
	for _, c := range []int{lund.K, -lund.Pi, -lund.Pi, lund.K, -lund.Pi} {
		_, _ = r.Append(event.CatH, c)
	}
	_, _ = r.Append(event.CatL, lund.E)
	return r
}

func TestClassify_ElectronTagSide(t *testing.T) {
	r := electronEvent()
	g, _, err := recograph.Build(&r)
	require.NoError(t, err)

	a, err := recograph.Classify(g)
	require.NoError(t, err)
	y := a.Ys[0]
	assert.True(t, y.Paired, "electron carries an l block index and marks the tag side")
	assert.Equal(t, 1, y.TagB)
	assert.Equal(t, 2, y.SigB)

	tag, _ := a.TagB(y)
	e, _ := a.LeptonOf(tag)
	assert.Equal(t, 0, e.LBlock)
	assert.Equal(t, mode.TauMu, e.TauMode)
	assert.Equal(t, mode.FlavorB0, tag.Flavor)

	tagD, _ := a.DOf(tag)
	assert.Equal(t, mode.DcKpipi, tagD.DType)
	sig, _ := a.SigB(y)
	sigD, _ := a.DOf(sig)
	assert.Equal(t, mode.DcKsK, sigD.DType, "K_S K matches whatever the daughter order")

	a, err = recograph.Classify(g, recograph.WithDistinctElectronMode(true))
	require.NoError(t, err)
	tag, _ = a.TagB(a.Ys[0])
	e, _ = a.LeptonOf(tag)
	assert.Equal(t, mode.TauE, e.TauMode)
}

func TestClassify_UnpairedY(t *testing.T) {
	// both B daughters carry a muon: no signal side
	var r event.Reco
	_, _ = r.Append(event.CatY, lund.Upsilon, event.Daughter{Block: 0, Lund: lund.Bc}, event.Daughter{Block: 1, Lund: -lund.Bc})
	_, _ = r.Append(event.CatB, lund.Bc, event.Daughter{Block: 0, Lund: lund.Mu})
	_, _ = r.Append(event.CatB, -lund.Bc, event.Daughter{Block: 1, Lund: -lund.Mu})
	_, _ = r.Append(event.CatL, lund.Mu)
	_, _ = r.Append(event.CatL, -lund.Mu)

	g, _, err := recograph.Build(&r)
	require.NoError(t, err)
	a, err := recograph.Classify(g)
	require.NoError(t, err)
	y := a.Ys[0]
	assert.False(t, y.Paired)
	assert.Equal(t, recograph.NoRef, y.SigB)
	_, ok := a.SigB(y)
	assert.False(t, ok)

	b := a.Bs[1]
	assert.Equal(t, recograph.NoRef, b.D)
}

func TestClassify_Violations(t *testing.T) {
	cases := []struct {
		name  string
		build func(r *event.Reco)
	}{
		{"non-B under Y", func(r *event.Reco) {
			_, _ = r.Append(event.CatY, lund.Upsilon, event.Daughter{Block: 0, Lund: lund.D0})
			_, _ = r.Append(event.CatD, lund.D0)
		}},
		{"photon under B", func(r *event.Reco) {
			_, _ = r.Append(event.CatB, lund.B0, event.Daughter{Block: 0, Lund: lund.Gamma})
			_, _ = r.Append(event.CatGamma, lund.Gamma)
		}},
		{"kaon under D*", func(r *event.Reco) {
			_, _ = r.Append(event.CatD, lund.Dstarc, event.Daughter{Block: 0, Lund: lund.K})
			_, _ = r.Append(event.CatH, lund.K)
		}},
		{"rho without pion", func(r *event.Reco) {
			_, _ = r.Append(event.CatC, lund.Rho, event.Daughter{Block: 1, Lund: lund.Pi0})
			_, _ = r.Append(event.CatC, lund.Pi0)
		}},
		{"D* cycle", func(r *event.Reco) {
			_, _ = r.Append(event.CatD, lund.Dstar0, event.Daughter{Block: 1, Lund: lund.Dstar0})
			_, _ = r.Append(event.CatD, lund.Dstar0, event.Daughter{Block: 0, Lund: lund.Dstar0})
		}},
		{"electron inside D", func(r *event.Reco) {
			_, _ = r.Append(event.CatD, lund.D0, event.Daughter{Block: 0, Lund: lund.E})
			_, _ = r.Append(event.CatL, lund.E)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r event.Reco
			c.build(&r)
			g, _, err := recograph.Build(&r)
			require.NoError(t, err)
			a, err := recograph.Classify(g)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, core.ErrContractViolation)
		})
	}
}

func TestClassify_UnknownDModeIsNull(t *testing.T) {
	var r event.Reco
	_, _ = r.Append(event.CatD, lund.D0, event.Daughter{Block: 0, Lund: lund.Pi}, event.Daughter{Block: 1, Lund: -lund.Pi})
	_, _ = r.Append(event.CatH, lund.Pi)
	_, _ = r.Append(event.CatH, -lund.Pi)
	g, _, err := recograph.Build(&r)
	require.NoError(t, err)
	a, err := recograph.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, mode.DNull, a.Ds[0].DType)
}

func TestClassify_Cancelled(t *testing.T) {
	reco := fixture.SignalReco()
	g, _, err := recograph.Build(&reco)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = recograph.Classify(g, recograph.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
