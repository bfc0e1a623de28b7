// SPDX-License-Identifier: MIT

// Package graphviz exports particle graphs to the Graphviz DOT language.
//
// Vertices are labelled "id: name" with names taken from a pdt.Table. When a
// truth-match map is supplied, matched vertices (value >= 0) and edges
// between two matched vertices use a separate attribute set, so a rendered
// reco graph shows at a glance which part of the candidate is real.
//
// Optionally every BFS generation below the roots is pinned to one rank,
// which keeps the Υ(4S), B, D and final-state layers aligned.
package graphviz

import (
	"context"
	"errors"

	"github.com/katalvlaran/decaygraph/pdt"
)

// Titles used by the CLI for the three graphs of an event.
const (
	TitleReco       = "Reco Graph with Truth Match"
	TitleMc         = "MC Graph"
	TitleContracted = "MC Graph with Edge Contraction"
)

// ErrGraphNil is returned when Write is given a nil graph.
var ErrGraphNil = errors.New("graphviz: graph is nil")

// Attrs is a set of DOT attributes. They are written sorted by key.
type Attrs map[string]string

// Style holds the attribute sets of plain and truth-matched elements.
type Style struct {
	Vertex        Attrs
	MatchedVertex Attrs
	Edge          Attrs
	MatchedEdge   Attrs
}

// DefaultStyle is white boxes with red outlines and grey edges. Matched
// vertices are filled light blue with a thick outline, and matched edges are
// thick and black.
func DefaultStyle() Style {
	return Style{
		Vertex: Attrs{"color": "red", "style": "filled", "fillcolor": "white"},
		MatchedVertex: Attrs{
			"color": "red", "penwidth": "3", "style": "filled", "fillcolor": "lightskyblue",
		},
		Edge:        Attrs{"color": "grey"},
		MatchedEdge: Attrs{"color": "black", "weight": "1", "penwidth": "3"},
	}
}

// Option configures Write.
type Option func(*Options)

// Options holds the parameters of one export.
type Options struct {
	Title string
	Names *pdt.Table
	Match map[int]int
	Style Style
	Ranks bool

	// MaxDepth > 0 draws only the vertices at most MaxDepth generations
	// below a root, and the edges between them.
	MaxDepth int
	Ctx      context.Context
}

// DefaultOptions returns no title, numeric labels, no truth match, the
// default style and no rank constraints.
func DefaultOptions() Options {
	return Options{Style: DefaultStyle(), Ctx: context.Background()}
}

// WithTitle sets the graph title printed above the drawing.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithNames resolves particle codes to names. Unknown codes stay numeric.
func WithNames(t *pdt.Table) Option {
	return func(o *Options) { o.Names = t }
}

// WithTruthMatch marks vertex id as matched when m[id] >= 0.
func WithTruthMatch(m map[int]int) Option {
	return func(o *Options) { o.Match = m }
}

// WithStyle replaces the attribute sets.
func WithStyle(s Style) Option {
	return func(o *Options) { o.Style = s }
}

// WithRanks pins each generation below the roots to one rank.
func WithRanks(on bool) Option {
	return func(o *Options) { o.Ranks = on }
}

// WithMaxDepth cuts the drawing d generations below the roots. Zero draws
// the whole graph; a negative depth makes Write fail with
// bfs.ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithContext bounds the generation walk.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
