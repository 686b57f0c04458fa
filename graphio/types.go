package graphio

import (
	"errors"

	"github.com/katalvlaran/suurballe/core"
)

// Sentinel errors for graph file decoding.
var (
	// ErrDuplicateNode indicates the nodes list names the same node twice.
	ErrDuplicateNode = errors.New("graphio: duplicate node name")

	// ErrUnknownNode indicates an arc or the source/target field
	// references a node absent from the nodes list.
	ErrUnknownNode = errors.New("graphio: arc references an undeclared node")
)

// arcDoc is one arc entry of a graph file.
type arcDoc struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Length int64  `yaml:"length" validate:"gte=0"`
}

// graphDoc is the top-level shape of a graph file.
type graphDoc struct {
	Source string   `yaml:"source" validate:"required"`
	Target string   `yaml:"target" validate:"required"`
	Nodes  []string `yaml:"nodes" validate:"required,min=1,dive,required"`
	Arcs   []arcDoc `yaml:"arcs" validate:"dive"`
}

// Graph is the decoded, validated result of parsing a graph file:
// a ready-to-run digraph, its arc lengths, and the resolved source
// and target nodes.
type Graph struct {
	Digraph *core.DiGraph
	Length  core.LengthMap
	Source  core.Node
	Target  core.Node

	// NodeNames maps a decoded node back to its original file name,
	// for reporting paths in terms the caller recognizes.
	NodeNames map[core.Node]string
}
