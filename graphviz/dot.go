package graphviz

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/decaygraph/bfs"
	"github.com/katalvlaran/decaygraph/core"
)

// Write emits g as a DOT digraph. Vertices and edges are written in
// ascending id order, so equal graphs produce byte-identical output.
//
// Implementation:
//   - Stage 1: Multi-source BFS over the roots, when ranks or a depth cut
//     are requested.
//   - Stage 2: Title header, when set.
//   - Stage 3: One statement per drawn vertex with its label and attribute
//     set.
//   - Stage 4: Optional rank=same groups, one per generation.
//   - Stage 5: One statement per edge between drawn vertices, matched when
//     both ends are.
//
// Complexity: O(V log V + E log E).
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1
	var gens *bfs.BFSResult
	if o.Ranks || o.MaxDepth != 0 {
		res, err := bfs.BFS(g, g.Roots(),
			bfs.WithContext(o.Ctx),
			bfs.WithMaxDepth(o.MaxDepth))
		if err != nil {
			return fmt.Errorf("graphviz: generations: %w", err)
		}
		gens = res
	}
	drawn := func(id int) bool {
		if o.MaxDepth == 0 {
			return true
		}
		_, ok := gens.Depth[id]
		return ok
	}

	// Stage 2
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	if o.Title != "" {
		fmt.Fprintln(bw, `graph[fontsize="32"]`)
		fmt.Fprintln(bw, `labelloc="t"`)
		fmt.Fprintf(bw, "label = %s\n", strconv.Quote(o.Title))
	}

	// Stage 3
	for _, id := range g.Vertices() {
		if !drawn(id) {
			continue
		}
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("graphviz: %w", err)
		}
		label := strconv.Itoa(id) + ": " + o.Names.Label(v.Lund)
		attrs := o.Style.Vertex
		if o.matched(id) {
			attrs = o.Style.MatchedVertex
		}
		fmt.Fprintf(bw, "%d[label=%s%s];\n", id, strconv.Quote(label), attrList(attrs, true))
	}

	// Stage 4
	if o.Ranks {
		for _, gen := range gens.Generations() {
			if len(gen) < 2 {
				continue
			}
			ids := make([]string, len(gen))
			for i, id := range gen {
				ids[i] = strconv.Itoa(id)
			}
			fmt.Fprintf(bw, "{rank=same; %s;}\n", strings.Join(ids, "; "))
		}
	}

	// Stage 5
	for _, e := range g.Edges() {
		if !drawn(e.From) || !drawn(e.To) {
			continue
		}
		attrs := o.Style.Edge
		if o.matched(e.From) && o.matched(e.To) {
			attrs = o.Style.MatchedEdge
		}
		fmt.Fprintf(bw, "%d->%d [%s];\n", e.From, e.To, attrList(attrs, false))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func (o *Options) matched(id int) bool {
	m, ok := o.Match[id]
	return ok && m >= 0
}

// attrList renders attrs sorted by key as `k="v"` pairs. With lead every
// pair is prefixed by ", ", otherwise pairs are only separated by it.
func attrList(attrs Attrs, lead bool) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if lead || i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(attrs[k]))
	}
	return sb.String()
}
