// SPDX-License-Identifier: MIT

package recograph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decaygraph/catalogue"
	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/dfs"
	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
)

// classifier fills an Analysis from the post-order hook of a DFS.
type classifier struct {
	g    *core.Graph
	opts Options
	res  *Analysis
}

// Classify analyses every Υ, B, D/D* and τ placeholder of g.
//
// The traversal is a full post-order DFS, so a vertex is analysed only after
// all its daughters are; every daughter record a parent needs is already in
// the arenas. Codes other than the ones listed above are skipped.
//
// A daughter that cannot appear under its parent, a ρ without a π daughter
// or an unknown code inside a D decay returns an error wrapping
// core.ErrContractViolation; the partial Analysis is discarded.
//
// Complexity: O(V + E).
func Classify(g *core.Graph, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := &classifier{g: g, opts: o, res: newAnalysis()}
	_, err := dfs.DFS(g, 0,
		dfs.WithContext(o.Ctx),
		dfs.WithFullTraversal(),
		dfs.WithOnExit(c.finish),
	)
	if errors.Is(err, dfs.ErrCycleDetected) {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("recograph: classify: %w", err)
	}

	return c.res, nil
}

// finish dispatches on the code of a vertex whose daughters are all done.
func (c *classifier) finish(id int) error {
	v, err := c.g.Vertex(id)
	if err != nil {
		return err
	}
	switch lund.Abs(v.Lund) {
	case lund.Upsilon:
		return c.analyzeY(v)
	case lund.B0, lund.Bc:
		return c.analyzeB(v)
	case lund.Dstar0, lund.Dstarc:
		return c.analyzeDstar(v)
	case lund.D0, lund.Dc:
		return c.analyzeD(v)
	case lund.Pi, lund.Rho, lund.E, lund.Mu:
		return c.analyzeLepton(v)
	}
	return nil
}

// daughters returns the vertices of v's daughters in insertion order.
func (c *classifier) daughters(v *core.Vertex) ([]*core.Vertex, error) {
	ids, err := c.g.Children(v.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Vertex, 0, len(ids))
	for _, id := range ids {
		d, err := c.g.Vertex(id)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func unexpected(parent, daughter *core.Vertex) error {
	return fmt.Errorf("%w: %d (code %d) under %d (code %d)",
		ErrUnexpectedDaughter, daughter.ID, daughter.Lund, parent.ID, parent.Lund)
}

// analyzeD looks up the D mode from the D and its daughters.
func (c *classifier) analyzeD(v *core.Vertex) error {
	daus, err := c.daughters(v)
	if err != nil {
		return err
	}
	codes := make([]int, 0, len(daus)+1)
	codes = append(codes, v.Lund)
	for _, d := range daus {
		codes = append(codes, d.Lund)
	}
	dt, err := catalogue.LookupD(codes)
	if err != nil {
		return fmt.Errorf("D %d: %w", v.ID, err)
	}
	c.res.Ds[v.ID] = &D{ID: v.ID, Block: v.Block, DType: dt, DstarType: mode.NoDstar}

	return nil
}

// analyzeDstar looks up the D* mode and copies the D mode of the D daughter.
func (c *classifier) analyzeDstar(v *core.Vertex) error {
	daus, err := c.daughters(v)
	if err != nil {
		return err
	}
	rec := &D{ID: v.ID, Block: v.Block, DType: mode.DNull}
	codes := make([]int, 0, len(daus)+1)
	codes = append(codes, v.Lund)
	for _, d := range daus {
		switch lund.Abs(d.Lund) {
		case lund.D0, lund.Dc:
			if dr, ok := c.res.Ds[d.ID]; ok {
				rec.DType = dr.DType
			}
		case lund.Pi, lund.Pi0, lund.Gamma:
		default:
			return unexpected(v, d)
		}
		codes = append(codes, d.Lund)
	}
	if rec.DstarType, err = catalogue.LookupDstar(codes); err != nil {
		return fmt.Errorf("D* %d: %w", v.ID, err)
	}
	c.res.Ds[v.ID] = rec

	return nil
}

// analyzeLepton derives the τ hypothesis and PID block indices of a
// placeholder from its own code.
func (c *classifier) analyzeLepton(v *core.Vertex) error {
	rec := &Lepton{ID: v.ID, Block: v.Block, LBlock: -1, PiBlock: -1, TauMode: mode.TauNull}
	switch lund.Abs(v.Lund) {
	case lund.E:
		rec.LBlock = v.Block
		rec.TauMode = mode.TauMu
		if c.opts.DistinctElectronMode {
			rec.TauMode = mode.TauE
		}
	case lund.Mu:
		rec.LBlock = v.Block
		rec.TauMode = mode.TauMu
	case lund.Pi:
		rec.PiBlock = v.Block
		rec.TauMode = mode.TauPi
	case lund.Rho:
		daus, err := c.daughters(v)
		if err != nil {
			return err
		}
		found := false
		for _, d := range daus {
			if lund.Abs(d.Lund) != lund.Pi {
				continue
			}
			if pr, ok := c.res.Leptons[d.ID]; ok {
				rec.PiBlock = pr.PiBlock
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: ρ %d has no π daughter", ErrUnexpectedDaughter, v.ID)
		}
		rec.TauMode = mode.TauRho
	}
	c.res.Leptons[v.ID] = rec

	return nil
}

// analyzeB sets the flavour and links the D and lepton daughters.
func (c *classifier) analyzeB(v *core.Vertex) error {
	daus, err := c.daughters(v)
	if err != nil {
		return err
	}
	rec := &B{ID: v.ID, Block: v.Block, Flavor: mode.FlavorBc, D: NoRef, Lepton: NoRef}
	if lund.Abs(v.Lund) == lund.B0 {
		rec.Flavor = mode.FlavorB0
	}
	for _, d := range daus {
		switch lund.Abs(d.Lund) {
		case lund.D0, lund.Dc, lund.Dstar0, lund.Dstarc:
			rec.D = d.ID
		case lund.E, lund.Mu, lund.Pi, lund.Rho:
			rec.Lepton = d.ID
		default:
			return unexpected(v, d)
		}
	}
	c.res.Bs[v.ID] = rec

	return nil
}

// analyzeY assigns the B daughters to the tag side (lepton in the l block)
// and the signal side (π or ρ standing in for the τ).
func (c *classifier) analyzeY(v *core.Vertex) error {
	daus, err := c.daughters(v)
	if err != nil {
		return err
	}
	rec := &Y{ID: v.ID, Block: v.Block, TagB: NoRef, SigB: NoRef}
	nB := 0
	for _, d := range daus {
		if !lund.IsB(d.Lund) {
			return unexpected(v, d)
		}
		b, ok := c.res.Bs[d.ID]
		if !ok {
			continue
		}
		nB++
		if l, ok := c.res.LeptonOf(b); ok && l.LBlock >= 0 {
			rec.TagB = b.ID
		} else {
			rec.SigB = b.ID
		}
	}
	rec.Paired = nB == 2 && rec.TagB != NoRef && rec.SigB != NoRef
	c.res.Ys[v.ID] = rec

	return nil
}
