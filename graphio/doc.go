// Package graphio decodes the YAML graph file format consumed by the
// suurballe CLI into a core.Digraph and core.LengthMap. A graph file
// lists nodes by name and arcs by (from, to, length) triples; names
// are assigned dense integer core.Node IDs in file order.
//
//	source: A
//	target: D
//	nodes: [A, B, C, D]
//	arcs:
//	  - {from: A, to: B, length: 3}
//	  - {from: B, to: D, length: 4}
//
// Decoded documents are validated with
// github.com/go-playground/validator/v10 struct tags before being
// converted, so malformed files fail with a field-level error instead
// of a confusing downstream panic from the suurballe package.
package graphio
