// Package asset models the object graph of a cooked asset package.
//
// # Overview
//
// A package is three cross-referencing lists: a deduplicated name table, a
// list of imports (objects defined elsewhere) and a list of exports
// (objects defined here). Every textual identifier is a [NameRef] into the
// name table, and every object reference is an [Index] into the import or
// export list. Exports additionally carry a tree of [Property] values that
// may reference names and objects at any nesting depth.
//
// Editing a package is therefore an exercise in referential integrity. This
// package provides the model plus the checks that keep it honest; the edit
// and transplant engines build on it.
//
// # Reference Index
//
// On disk an object reference is a signed integer: 0 for none, positive for
// exports, negative for imports, both 1-based. [Index] stores the list and a
// 0-based position instead and converts with [FromRaw] and [Index.Raw] only
// at the codec boundary:
//
//	x := asset.FromRaw(-3) // third import
//	x.IsImport()           // true
//	x.Position()           // 2
//	x.Raw()                // -3
//
// # Graph-local Names
//
// A [NameRef] records the identity of the [NameTable] that issued it. A ref
// taken from one graph and stored in another does not resolve there:
// [NameTable.Lookup] returns a FOREIGN_NAME error and [Graph.Validate]
// refuses the graph. Moving a record between graphs therefore requires
// resolving its names in the source and interning them in the destination.
//
// # Property Traversal
//
// Struct and Array properties nest further properties. [Walk] and
// [Visitor] are the one traversal used for dumping, validating and
// rewriting property trees:
//
//	err := asset.Visitor{
//	    Object: func(p *asset.ObjectProperty) error {
//	        fmt.Println(p.Value)
//	        return nil
//	    },
//	}.Walk(export.Properties)
//
// # Level Root
//
// Map packages have exactly one Level export named "PersistentLevel" whose
// actor list decides which actors the level spawns. [Graph.LevelRoot]
// finds it.
//
// # Concurrency
//
// Graphs are mutated in place and are not safe for concurrent use.
package asset
