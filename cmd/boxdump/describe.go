package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/graph"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/boxlayout/theme"
	"gopkg.in/yaml.v3"
)

// ErrDescription is returned for widget tree descriptions which cannot be
// turned into a widget graph.
var ErrDescription = errors.New("invalid widget description")

// widgetDesc is the YAML form of a widget and its subtree:
//
//	element: column
//	layout: linear-vertical
//	children:
//	  - element: label
//	    layout: fixed
//	    width: 50
//	    height: 10
//	  - element: body
//	    layout: stack
//	    grow: true
type widgetDesc struct {
	Element  string       `yaml:"element"`
	ID       string       `yaml:"id"`
	Classes  []string     `yaml:"classes"`
	Layout   string       `yaml:"layout"`
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Padding  float64      `yaml:"padding"`
	Grow     bool         `yaml:"grow"`
	Children []widgetDesc `yaml:"children"`
}

// readDescription decodes a widget tree description. Unknown keys are
// rejected.
func readDescription(r io.Reader) (*widgetDesc, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var desc widgetDesc
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrDescription)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrDescription)
	}
	return &desc, nil
}

// readDescriptionFile reads a widget tree description from a file.
func readDescriptionFile(path string) (*widgetDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return readDescription(bytes.NewReader(data))
}

// build adds the described subtree to g and returns the id of its root.
func (d *widgetDesc) build(g *graph.Graph) (layout.ID, error) {
	algo, err := d.algorithm()
	if err != nil {
		return layout.NoID, err
	}
	var item layout.Item
	if d.Grow {
		item = layout.Grow()
	}
	id := g.Add(algo, item, d.selector())
	for i := range d.Children {
		ch, err := d.Children[i].build(g)
		if err != nil {
			return layout.NoID, err
		}
		if err = g.AddChild(id, ch); err != nil {
			return layout.NoID, err
		}
	}
	return id, nil
}

func (d *widgetDesc) selector() css.Selector {
	sel := css.Any()
	if d.Element != "" {
		sel = css.Element(d.Element)
	}
	if d.ID != "" {
		sel = sel.WithID(d.ID)
	}
	for _, c := range d.Classes {
		sel = sel.WithClass(c)
	}
	return sel
}

func (d *widgetDesc) algorithm() (layout.Layout, error) {
	switch strings.ToLower(d.Layout) {
	case "", "none":
		return nil, nil
	case "fixed":
		if len(d.Children) > 0 {
			return nil, fmt.Errorf("fixed widget %q has children: %w", d.Element, ErrDescription)
		}
		return layout.Fixed(layout.Dim(d.Width, d.Height)), nil
	case "stack":
		return layout.NewStack(), nil
	case "linear-vertical", "column":
		return layout.NewLinear(layout.Vertical), nil
	case "linear-horizontal", "row":
		return layout.NewLinear(layout.Horizontal), nil
	case "inset":
		return layout.NewInset(theme.Uniform(d.Padding)), nil
	case "themed-inset":
		return layout.ThemedInset(), nil
	}
	return nil, fmt.Errorf("unknown layout %q: %w", d.Layout, ErrDescription)
}
