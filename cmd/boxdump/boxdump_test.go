package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/boxlayout/graph"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const columnYAML = `
element: column
layout: linear-vertical
children:
  - element: label
    classes: [title]
    layout: fixed
    width: 50
    height: 10
  - element: body
    layout: stack
    grow: true
`

func TestBuildFromDescription(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.graph")
	defer teardown()
	//
	desc, err := readDescription(strings.NewReader(columnYAML))
	require.NoError(t, err)
	g := graph.New(nil)
	root, err := desc.build(g)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	size, err := g.Layout(root, layout.Loose(layout.Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, layout.Dim(100, 100), size)
	ch := g.Children(root)
	require.Len(t, ch, 2)
	label, _ := g.Node(ch[0])
	assert.Equal(t, "label.title", label.Selector().String())
	r, _ := g.Rect(ch[1])
	assert.Equal(t, layout.Rect{Min: layout.Pt(0, 10), Max: layout.Pt(100, 100)}, r)
}

func TestInvalidDescriptions(t *testing.T) {
	for _, doc := range []string{
		"",
		"element: x\ncolour: red\n",
		"element: x\nlayout: grid\n",
		"element: x\nlayout: fixed\nchildren:\n  - element: y\n",
	} {
		desc, err := readDescription(strings.NewReader(doc))
		if err == nil {
			_, err = desc.build(graph.New(nil))
		}
		assert.ErrorIs(t, err, ErrDescription, "document %q", doc)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd(viper.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPrintsTree(t *testing.T) {
	dir := t.TempDir()
	widgets := writeFile(t, dir, "widgets.yaml", `
element: window
layout: themed-inset
children:
  - element: button
    layout: fixed
    width: 30
    height: 10
`)
	sheet := writeFile(t, dir, "theme.css", `
window { padding: 5 }
button { padding: 99 }
`)
	out, err := run(t, "--css", sheet, "--width", "120", "--height", "80", widgets)
	require.NoError(t, err)
	assert.Contains(t, out, "#1 window [(0,0)-(40,20)]")
	assert.Contains(t, out, "#2 button [(5,5)-(35,15)]")
}

func TestCommandReadsEnvironment(t *testing.T) {
	dir := t.TempDir()
	widgets := writeFile(t, dir, "widgets.yaml", columnYAML)
	t.Setenv("BOXDUMP_FORMAT", "dot")
	out, err := run(t, widgets)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.Contains(t, out, "w1 -> w3")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	widgets := writeFile(t, dir, "widgets.yaml", columnYAML)
	_, err := run(t)
	assert.Error(t, err, "widget file is required")
	_, err = run(t, "--format", "svg", widgets)
	assert.ErrorContains(t, err, "unknown output format")
	_, err = run(t, "--maxdepth", "1", widgets)
	assert.ErrorContains(t, err, "maximum nesting depth")
	_, err = run(t, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
