// SPDX-License-Identifier: MIT

package mcgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decaygraph/catalogue"
	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/dfs"
	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
)

type classifier struct {
	g   *core.Graph
	res *Analysis
}

// Classify analyses the Υ(4S), B and τ vertices of a truth graph.
//
// Implementation:
//   - Stage 1: Full post-order DFS; τ records exist before their B, and B
//     records before the Υ.
//   - Stage 2: Check that at most one Υ record and zero or two B records
//     were produced (ErrUnexpectedMultiplicity).
//
// Complexity: O(V + E).
func Classify(g *core.Graph, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Stage 1
	c := &classifier{g: g, res: newAnalysis()}
	_, err := dfs.DFS(g, 0,
		dfs.WithContext(o.Ctx),
		dfs.WithFullTraversal(),
		dfs.WithOnExit(c.finish),
	)
	if errors.Is(err, dfs.ErrCycleDetected) {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("mcgraph: classify: %w", err)
	}

	// Stage 2
	if n := c.res.NumY(); n > 1 {
		return nil, fmt.Errorf("%w: %d Υ(4S)", ErrUnexpectedMultiplicity, n)
	}
	if n := c.res.NumB(); n != 0 && n != 2 {
		return nil, fmt.Errorf("%w: %d B mesons", ErrUnexpectedMultiplicity, n)
	}

	return c.res, nil
}

func (c *classifier) finish(id int) error {
	v, err := c.g.Vertex(id)
	if err != nil {
		return err
	}
	daus, err := c.g.Children(id)
	if err != nil {
		return err
	}
	switch lund.Abs(v.Lund) {
	case lund.Upsilon:
		return c.analyzeY(v, daus)
	case lund.B0, lund.Bc:
		return c.analyzeB(v, daus)
	case lund.Tau:
		return c.analyzeTau(v, daus)
	}
	return nil
}

func (c *classifier) code(id int) (int, error) {
	v, err := c.g.Vertex(id)
	if err != nil {
		return 0, err
	}
	return v.Lund, nil
}

// analyzeY records the B daughters. A Υ with any other daughter is not a
// BB̄ event and leaves no record.
func (c *classifier) analyzeY(v *core.Vertex, daus []int) error {
	rec := &Y{ID: v.ID, IsBBbar: true, B1: NoRef, B2: NoRef}
	for _, d := range daus {
		code, err := c.code(d)
		if err != nil {
			return err
		}
		if !lund.IsB(code) {
			rec.IsBBbar = false
			return nil
		}
		if rec.B1 == NoRef {
			rec.B1 = d
		} else {
			rec.B2 = d
		}
	}
	c.res.ys.Put(v.ID, rec)

	return nil
}

// analyzeB sets the flavour, links the τ daughter and classifies the decay.
func (c *classifier) analyzeB(v *core.Vertex, daus []int) error {
	rec := &B{ID: v.ID, Flavor: mode.FlavorBc, Tau: NoRef}
	if lund.Abs(v.Lund) == lund.B0 {
		rec.Flavor = mode.FlavorB0
	}
	codes := make([]int, 0, len(daus))
	for _, d := range daus {
		code, err := c.code(d)
		if err != nil {
			return err
		}
		if lund.Abs(code) == lund.Tau {
			rec.Tau = d
		}
		codes = append(codes, code)
	}
	rec.McType = catalogue.LookupBMc(codes)
	c.res.bs.Put(v.ID, rec)

	return nil
}

// analyzeTau classifies a τ decay: leptonic if an e or μ daughter is
// present, hadronic otherwise. The first e or μ found decides. A τ without
// daughters stays null.
func (c *classifier) analyzeTau(v *core.Vertex, daus []int) error {
	rec := &Tau{ID: v.ID, McType: mode.TauMcNull}
	for _, d := range daus {
		code, err := c.code(d)
		if err != nil {
			return err
		}
		if a := lund.Abs(code); a == lund.E {
			rec.McType = mode.TauMcE
			break
		} else if a == lund.Mu {
			rec.McType = mode.TauMcMu
			break
		}
		rec.McType = mode.TauMcH
	}
	c.res.taus.Put(v.ID, rec)

	return nil
}
