// SPDX-License-Identifier: MIT

package truthmatch

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/lund"
)

// Contract removes from the truth graph g every particle that must not take
// part in matching, re-attaching its daughters to its mother.
//
// A particle is cleaved when any of these holds:
//   - it is a neutrino, a τ or a K⁰;
//   - it is one of the beams (mc index 0 or 1);
//   - its mother is a final-state particle (e, μ, π±, K±, γ, p, n);
//   - it is a photon whose mother is not a π⁰.
//
// Implementation:
//   - Stage 1: Decide the full cleave set on the current graph before
//     touching it.
//   - Stage 2: In ascending mc index, connect each cleaved particle's
//     mother to its daughters, then remove the particle.
//   - Stage 3: Repeat until a pass cleaves nothing. Re-attached daughters
//     can fall under a final-state mother, so one pass is not always a
//     fixed point.
//
// Contract is idempotent. A particle other than the Υ(4S) with several
// mothers returns ErrMultipleMothers; g may then be partly contracted.
func Contract(g *core.Graph) error {
	for {
		cleave, err := cleaveSet(g)
		if err != nil {
			return err
		}
		if len(cleave) == 0 {
			return nil
		}
		for _, id := range cleave {
			if err = contractVertex(g, id); err != nil {
				return err
			}
		}
	}
}

func cleaveSet(g *core.Graph) ([]int, error) {
	var out []int
	for _, id := range g.Vertices() {
		cut, err := isCleave(g, id)
		if err != nil {
			return nil, err
		}
		if cut {
			out = append(out, id)
		}
	}
	return out, nil
}

func isCleave(g *core.Graph, id int) (bool, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return false, err
	}

	// invisible or unstable
	switch lund.Abs(v.Lund) {
	case lund.NuE, lund.NuMu, lund.NuTau, lund.Tau, lund.K0:
		return true, nil
	}

	// beams
	if id == 0 || id == 1 {
		return true, nil
	}

	parents, err := g.Parents(id)
	if err != nil {
		return false, err
	}
	if len(parents) == 0 {
		return false, nil
	}
	mother, err := g.Vertex(parents[0])
	if err != nil {
		return false, err
	}

	// decay products of final-state particles
	if v.Lund != lund.Upsilon {
		if len(parents) > 1 {
			return false, fmt.Errorf("%w: %d (code %d) has mothers %v", ErrMultipleMothers, id, v.Lund, parents)
		}
		if lund.IsFinalState(mother.Lund) {
			return true, nil
		}
	}

	// radiated photons
	if v.Lund == lund.Gamma && mother.Lund != lund.Pi0 {
		return true, nil
	}

	return false, nil
}

func contractVertex(g *core.Graph, id int) error {
	parents, err := g.Parents(id)
	if err != nil {
		return err
	}
	if len(parents) > 1 {
		return fmt.Errorf("%w: %d has mothers %v", ErrMultipleMothers, id, parents)
	}
	if len(parents) == 1 {
		kids, err := g.Children(id)
		if err != nil {
			return err
		}
		for _, k := range kids {
			if err = g.AddEdge(parents[0], k); err != nil {
				return fmt.Errorf("%w: truthmatch: contract %d: %w", core.ErrContractViolation, id, err)
			}
		}
	}

	return g.RemoveVertex(id)
}
