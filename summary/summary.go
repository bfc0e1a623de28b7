// SPDX-License-Identifier: MIT

// Package summary accumulates classification histograms over a run and
// renders them with hplot.
package summary

import (
	"fmt"
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/decaygraph/mcgraph"
	"github.com/katalvlaran/decaygraph/mode"
	"github.com/katalvlaran/decaygraph/record"
)

const (
	nCandTypes   = 8
	nSampleTypes = 4
	nBMcTypes    = 9
)

// Histograms holds one H1D per classification. Each enum value v >= 0 falls
// in the bin centred on v; null values are counted in Nulls and not filled.
type Histograms struct {
	CandType   *hbook.H1D
	SampleType *hbook.H1D
	BMcType    *hbook.H1D

	Nulls int
}

// New returns empty histograms.
func New() *Histograms {
	return &Histograms{
		CandType:   enumH1D(nCandTypes),
		SampleType: enumH1D(nSampleTypes),
		BMcType:    enumH1D(nBMcTypes),
	}
}

func enumH1D(n int) *hbook.H1D {
	return hbook.NewH1D(n, -0.5, float64(n)-0.5)
}

// Fill adds the candidates of one event and both truth B types of its
// summary. Events without truth fill BMcType with NoB twice.
func (h *Histograms) Fill(cands []record.UpsilonCandidate, s mcgraph.Summary) {
	for i := range cands {
		if ct, err := cands[i].CandType(); err == nil {
			h.CandType.Fill(float64(ct), 1)
		} else {
			h.Nulls++
		}
		if st, err := cands[i].SampleType(); err == nil {
			h.SampleType.Fill(float64(st), 1)
		} else {
			h.Nulls++
		}
	}
	for _, b := range []mode.BMcType{s.B1Type, s.B2Type} {
		if b == mode.BMcNull {
			h.Nulls++
			continue
		}
		h.BMcType.Fill(float64(b), 1)
	}
}

// Save renders every histogram to its own PDF in dir and returns the
// written paths.
func (h *Histograms) Save(dir string) ([]string, error) {
	plots := []struct {
		file, title, xlabel string
		hist                *hbook.H1D
	}{
		{"cand_type.pdf", "Candidate type", "CandType", h.CandType},
		{"sample_type.pdf", "Sample type", "SampleType", h.SampleType},
		{"bmc_type.pdf", "Truth B type", "BMcType", h.BMcType},
	}

	paths := make([]string, 0, len(plots))
	for _, pl := range plots {
		p := hplot.New()
		p.Title.Text = pl.title
		p.Title.Padding = 2 * vg.Millimeter
		p.X.Label.Text = pl.xlabel
		p.Y.Label.Text = "entries"

		hh := hplot.NewH1D(pl.hist)
		hh.Infos.Style = hplot.HInfoSummary
		p.Add(hh)

		path := filepath.Join(dir, pl.file)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, fmt.Errorf("summary: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
