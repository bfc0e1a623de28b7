// SPDX-License-Identifier: MIT

package truthmatch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/dfs"
	"github.com/katalvlaran/decaygraph/lund"
)

// matcher fills a Table from the post-order hook of a DFS over the reco
// graph.
type matcher struct {
	reco *core.Graph
	mc   *core.Graph
	hits HitTables

	// byCode lists mc indices per signed code, ascending.
	byCode map[int][]int
	res    map[int]int
}

// Match truth-matches every vertex of the reco graph against the contracted
// truth graph mc.
//
// Implementation:
//   - Stage 1: Index the mc particles by signed code in ascending mc index.
//   - Stage 2: Full post-order DFS over reco. Final-state candidates (e, μ,
//     π±, K±, γ) read the hit table of their block.
//   - Stage 3: A composite (Υ, B, D*, D, K_S, ρ, π⁰) without daughters, or
//     with any unmatched daughter, is NoMatch. Otherwise its sorted daughter
//     matches are compared with the sorted daughter set of every mc particle
//     of the same signed code; the lowest mc index that agrees wins.
//
// mc must already be contracted (see Contract). A block index outside its
// hit table returns ErrHitOutOfRange and an unsupported code returns
// ErrUnmatchableCode; no table is returned with an error.
//
// Complexity: O(V_reco · (d log d + k·d)) with k the candidates per code.
func Match(reco, mc *core.Graph, hits HitTables, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Stage 1
	m := &matcher{
		reco:   reco,
		mc:     mc,
		hits:   hits,
		byCode: make(map[int][]int),
		res:    make(map[int]int, reco.VertexCount()),
	}
	for _, id := range mc.Vertices() {
		v, err := mc.Vertex(id)
		if err != nil {
			return nil, err
		}
		m.byCode[v.Lund] = append(m.byCode[v.Lund], id)
	}

	// Stage 2
	_, err := dfs.DFS(reco, 0,
		dfs.WithContext(o.Ctx),
		dfs.WithFullTraversal(),
		dfs.WithOnExit(m.finish),
	)
	if errors.Is(err, dfs.ErrCycleDetected) {
		return nil, fmt.Errorf("%w: truthmatch: match: %w", core.ErrContractViolation, err)
	}
	if err != nil {
		return nil, fmt.Errorf("truthmatch: match: %w", err)
	}

	return &Table{m: m.res}, nil
}

func (m *matcher) finish(id int) error {
	v, err := m.reco.Vertex(id)
	if err != nil {
		return err
	}
	switch lund.Abs(v.Lund) {
	case lund.Upsilon, lund.B0, lund.Bc, lund.Dstar0, lund.Dstarc,
		lund.D0, lund.Dc, lund.KS, lund.Rho, lund.Pi0:
		return m.matchComposite(v)
	case lund.E, lund.Mu:
		return m.matchFinal(v, m.hits.L, "l")
	case lund.Pi, lund.K:
		return m.matchFinal(v, m.hits.H, "h")
	case lund.Gamma:
		return m.matchFinal(v, m.hits.Gamma, "gamma")
	}
	return fmt.Errorf("%w: %d (code %d)", ErrUnmatchableCode, id, v.Lund)
}

func (m *matcher) matchFinal(v *core.Vertex, table []int, name string) error {
	if v.Block < 0 || v.Block >= len(table) {
		return fmt.Errorf("%w: %s block %d, table has %d entries", ErrHitOutOfRange, name, v.Block, len(table))
	}
	mcID := table[v.Block]
	if mcID < 0 {
		mcID = NoMatch
	}
	m.res[v.ID] = mcID

	return nil
}

// matchComposite is stage 3 of Match.
func (m *matcher) matchComposite(v *core.Vertex) error {
	m.res[v.ID] = NoMatch

	kids, err := m.reco.Children(v.ID)
	if err != nil {
		return err
	}
	if len(kids) == 0 {
		return nil
	}
	want := make([]int, 0, len(kids))
	for _, k := range kids {
		want = append(want, m.res[k])
	}
	slices.Sort(want)
	if want[0] < 0 {
		return nil
	}

	for _, cand := range m.byCode[v.Lund] {
		got, err := m.mc.Children(cand)
		if err != nil {
			return err
		}
		slices.Sort(got)
		if slices.Equal(want, got) {
			m.res[v.ID] = cand
			return nil
		}
	}

	return nil
}
