package graphio

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/suurballe/core"
)

// Decode reads a graph file from r, validates its shape, and converts
// it into a Graph ready to hand to suurballe.New.
func Decode(r io.Reader) (*Graph, error) {
	var doc graphDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("graphio: validate: %w", err)
	}

	return build(doc)
}

// build converts a validated graphDoc into a Graph, assigning each
// named node a dense core.Node ID in file order.
func build(doc graphDoc) (*Graph, error) {
	ids := make(map[string]core.Node, len(doc.Nodes))
	names := make(map[core.Node]string, len(doc.Nodes))
	g := core.NewDiGraph(len(doc.Nodes))

	for i, name := range doc.Nodes {
		if _, dup := ids[name]; dup {
			return nil, fmt.Errorf("graphio: %w: %q", ErrDuplicateNode, name)
		}
		n := core.Node(i)
		ids[name] = n
		names[n] = name
		g.AddNode(n)
	}

	length := make(core.LengthMap, len(doc.Arcs))
	for _, e := range doc.Arcs {
		from, ok := ids[e.From]
		if !ok {
			return nil, fmt.Errorf("graphio: %w: %q", ErrUnknownNode, e.From)
		}
		to, ok := ids[e.To]
		if !ok {
			return nil, fmt.Errorf("graphio: %w: %q", ErrUnknownNode, e.To)
		}
		arc := g.AddArc(from, to)
		length[arc] = e.Length
	}

	source, ok := ids[doc.Source]
	if !ok {
		return nil, fmt.Errorf("graphio: %w: %q", ErrUnknownNode, doc.Source)
	}
	target, ok := ids[doc.Target]
	if !ok {
		return nil, fmt.Errorf("graphio: %w: %q", ErrUnknownNode, doc.Target)
	}

	return &Graph{
		Digraph:   g,
		Length:    length,
		Source:    source,
		Target:    target,
		NodeNames: names,
	}, nil
}
