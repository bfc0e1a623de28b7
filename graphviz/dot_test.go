package graphviz_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/bfs"
	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/graphviz"
	"github.com/katalvlaran/decaygraph/pdt"
)

// upsilon builds Υ(4S) → B0 anti-B0 with B0 → π+.
func upsilon(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []struct{ id, lund int }{{0, 70553}, {1, 511}, {2, -511}, {3, 211}} {
		_, _, err := g.AddVertex(v.id, v.lund, core.NoBlock)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	return g
}

func TestWrite_TruthMatched(t *testing.T) {
	var buf bytes.Buffer
	err := graphviz.Write(&buf, upsilon(t),
		graphviz.WithTitle(graphviz.TitleReco),
		graphviz.WithNames(pdt.Default()),
		graphviz.WithTruthMatch(map[int]int{0: 5, 1: 7, 2: -1}),
		graphviz.WithRanks(true),
	)
	require.NoError(t, err)

	want := `digraph G {
graph[fontsize="32"]
labelloc="t"
label = "Reco Graph with Truth Match"
0[label="0: Upsilon(4S)", color="red", fillcolor="lightskyblue", penwidth="3", style="filled"];
1[label="1: B0", color="red", fillcolor="lightskyblue", penwidth="3", style="filled"];
2[label="2: anti-B0", color="red", fillcolor="white", style="filled"];
3[label="3: pi+", color="red", fillcolor="white", style="filled"];
{rank=same; 1; 2;}
0->1 [color="black", penwidth="3", weight="1"];
0->2 [color="grey"];
1->3 [color="grey"];
}
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_PlainNumericLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphviz.Write(&buf, upsilon(t)))

	out := buf.String()
	assert.NotContains(t, out, "labelloc", "no title, no header")
	assert.NotContains(t, out, "rank=same")
	assert.Contains(t, out, `1[label="1: 511", color="red", fillcolor="white", style="filled"];`)
	assert.Contains(t, out, `0->1 [color="grey"];`)
}

func TestWrite_CustomStyle(t *testing.T) {
	var buf bytes.Buffer
	style := graphviz.Style{Vertex: graphviz.Attrs{"shape": "box"}, Edge: graphviz.Attrs{}}
	require.NoError(t, graphviz.Write(&buf, upsilon(t), graphviz.WithStyle(style)))
	assert.Contains(t, buf.String(), `3[label="3: 211", shape="box"];`)
	assert.Contains(t, buf.String(), "1->3 [];")
}

func TestWrite_MaxDepth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphviz.Write(&buf, upsilon(t), graphviz.WithMaxDepth(1)))

	out := buf.String()
	assert.Contains(t, out, `2[label="2: -511"`)
	assert.Contains(t, out, "0->2 ")
	assert.NotContains(t, out, "3[label=")
	assert.NotContains(t, out, "1->3")
	assert.NotContains(t, out, "rank=same")
}

func TestWrite_GenerationErrors(t *testing.T) {
	err := graphviz.Write(&bytes.Buffer{}, upsilon(t), graphviz.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = graphviz.Write(&bytes.Buffer{}, upsilon(t), graphviz.WithRanks(true), graphviz.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite_NilGraph(t *testing.T) {
	assert.ErrorIs(t, graphviz.Write(&bytes.Buffer{}, nil), graphviz.ErrGraphNil)
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWrite_PropagatesWriterError(t *testing.T) {
	assert.ErrorIs(t, graphviz.Write(failingWriter{}, upsilon(t)), errWrite)
}
