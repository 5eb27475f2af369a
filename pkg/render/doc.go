// Package render produces human-readable dumps of an asset graph.
//
// # Overview
//
// A dump shows a package the way an operator reasons about it: imports at
// negative indices, exports at positive ones, and each export's property
// tree. Three formats are provided:
//
//   - [Text]: indented listing for terminals and diffs
//   - [JSON]: the same content with every name resolved to its string
//   - [DOT]: the export dependency graph as Graphviz source
//
// Indices are always printed in signed form so they can be pasted into
// edit expressions and actor selectors unchanged.
//
// # Dependency Graphs
//
// [DOT] draws one node per export and, with [Options.Imports], one per
// import. Edges follow the three ordering lists of each export and the
// level's actor list:
//
//   - create-before-serialization: solid
//   - serialization-before-create: dashed
//   - create-before-create: dotted
//   - level to actor: bold
//
// The result can be rendered in-process with [SVG]:
//
//	dot := render.DOT(g, render.Options{Imports: true})
//	svg, err := render.SVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for SVG rendering.
package render
