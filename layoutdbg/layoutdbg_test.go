package layoutdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/graph"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) (*graph.Graph, layout.ID) {
	g := graph.New(nil)
	row := g.Add(layout.NewLinear(layout.Horizontal), nil, css.Element("row"))
	box := g.Add(layout.NewStack(), nil, css.Element("box").WithClass("main"))
	leaf := g.Add(layout.Fixed(layout.Dim(10, 5)), nil, css.Element("label"))
	require.NoError(t, g.AddChild(row, box))
	require.NoError(t, g.AddChild(box, leaf))
	_, err := g.Layout(row, layout.Loose(layout.Dim(40, 20)))
	require.NoError(t, err)
	return g, row
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.graph")
	defer teardown()
	//
	g, root := buildGraph(t)
	out := Print(g, root)
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "#1 row"))
	assert.Contains(t, out, "#2 box.main [(0,0)-(40,20)]")
	assert.Contains(t, out, "#3 label [(0,0)-(40,20)]", "stack forces its child to full size")
	assert.Equal(t, "<no node 7>\n", Print(g, 7))
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.graph")
	defer teardown()
	//
	g, root := buildGraph(t)
	var b strings.Builder
	require.NoError(t, ToGraphViz(g, root, &b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "w1 -> w2")
	assert.Contains(t, out, "w2 -> w3")
	assert.Contains(t, out, "Linear horizontal")
	assert.Contains(t, out, "#2 box.main | Stack | [(0,0)-(40,20)]")
}

func TestRecordEscape(t *testing.T) {
	assert.Equal(t, `window \> frame:hover`, recordEscape("window > frame:hover"))
	assert.Equal(t, `\{a\|b\}`, recordEscape("{a|b}"))
}

func TestSubtreeOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.graph")
	defer teardown()
	//
	g, _ := buildGraph(t)
	out := Print(g, 2)
	assert.True(t, strings.HasPrefix(out, "#2 box.main"))
	assert.NotContains(t, out, "row")
	assert.Contains(t, out, "#3 label")
	//
	var b strings.Builder
	require.NoError(t, ToGraphViz(g, 2, &b))
	assert.NotContains(t, b.String(), "w1 -> w2", "no edge into the diagram root")
	assert.Contains(t, b.String(), "w2 -> w3")
	//
	b.Reset()
	require.NoError(t, ToGraphViz(g, 9, &b))
	assert.NotContains(t, b.String(), "->")
}
