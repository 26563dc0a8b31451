/*
Package layoutdbg implements helpers to debug a laid out widget graph.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layoutdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/boxlayout/graph"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/boxlayout/tree"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented dump of the subtree at root, one line per
// widget with its id, selector and rectangle.
func Print(g *graph.Graph, root layout.ID) string {
	n, ok := g.Node(root)
	if !ok {
		return fmt.Sprintf("<no node %d>\n", root)
	}
	p := tp.NewWithRoot(label(n))
	branches := map[*graph.Node]tp.Tree{n: p}
	_, _ = g.Walk(root).TopDown(func(tn, parent *tree.Node[*graph.Node], _ int) (*tree.Node[*graph.Node], error) {
		if tn.Payload == n {
			return nil, nil
		}
		b := branches[parent.Payload]
		if tn.ChildCount() == 0 {
			b.AddNode(label(tn.Payload))
		} else {
			branches[tn.Payload] = b.AddBranch(label(tn.Payload))
		}
		return nil, nil
	}).Result()
	return p.String()
}

func label(n *graph.Node) string {
	return fmt.Sprintf("#%d %v %v", n.ID(), n.Selector(), n.Rect())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for the subtree at root. The diagram is in
// GraphViz (DOT) format. Every widget is drawn as a record showing its
// selector, layout algorithm and rectangle.
func ToGraphViz(g *graph.Graph, root layout.ID, w io.Writer) error {
	tmpl, err := template.New("graph").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("widget").Funcs(
		template.FuncMap{
			"algo": algoName,
			"esc":  recordEscape,
		}).Parse(widgetTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if g.Contains(root) {
		if _, err = g.Walk(root).TopDown(func(tn, parent *tree.Node[*graph.Node], _ int) (*tree.Node[*graph.Node], error) {
			return nil, writeNode(tn.Payload, parent, root, w, &gparams)
		}).Result(); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a graph and a testing.T, it will
// create a Graphviz image of the subtree at root and write it to a file in
// the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(g *graph.Graph, root layout.ID, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "widgets.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing widget digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(g, root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing widget tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type edge struct {
	From, To layout.ID
}

// writeNode writes the record for n and the edge from its parent, unless n
// is the root of the diagram.
func writeNode(n *graph.Node, parent *tree.Node[*graph.Node], root layout.ID, w io.Writer, gparams *graphParamsType) error {
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	if n.ID() == root || parent == nil {
		return nil
	}
	return gparams.EdgeTmpl.Execute(w, edge{parent.Payload.ID(), n.ID()})
}

// algoName returns a short name for the layout algorithm of a node.
func algoName(n *graph.Node) string {
	switch a := n.Layout().(type) {
	case nil:
		return "none"
	case *layout.Linear:
		return "Linear " + strings.ToLower(a.Direction.String())
	case *layout.Stack:
		return "Stack"
	case *layout.Childless:
		return "Childless"
	case *layout.Inset:
		return "Inset"
	default:
		return fmt.Sprintf("%T", a)
	}
}

var recordEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

// recordEscape escapes characters with a meaning in DOT record labels.
func recordEscape(s string) string {
	return recordEscaper.Replace(s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const widgetTmpl = `w{{ .ID }}	[ shape=record style=filled fillcolor=lightblue3 label="{ #{{ .ID }} {{ esc .Selector.String }} | {{ algo . }} | {{ esc .Rect.String }} }" ] ;
`

const edgeTmpl = `w{{ .From }} -> w{{ .To }} [weight=1] ;
`
