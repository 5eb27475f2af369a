// Package transplant copies actors from one package into another.
//
// A transplant starts at a root export of the donor package and collects
// everything that export needs to be constructed:
//
//  1. Exports reachable over create-before-serialization dependencies,
//     visited depth-first with an explicit stack.
//  2. Imports named in the create-before-serialization and
//     serialization-before-create lists of those exports, each with its
//     direct outer import.
//
// The collected entries are given slots after the target's existing exports
// and imports. One remap table translates donor indices to those slots, and
// maps the donor's level root onto the target's. Names are re-interned into
// the target's name table; indices are passed through the table; the
// property tree is rewritten with an [asset.Visitor].
//
// Finally the copied root is appended to the target level's actor list and
// to its create-before-serialization list so the engine constructs the
// actor before the level is serialized.
//
// # Limits
//
// Only one level of import outer is followed. An import whose outer chain
// is deeper keeps its donor-space grandparent and is logged; validate the
// target before saving it.
//
// Str properties and Raw exports have no rewrite rule and fail the
// transplant with UNSUPPORTED_PROPERTY_KIND or UNSUPPORTED_EXPORT. An
// Object property pointing outside the copied closure fails with
// REMAP_CONSISTENCY.
package transplant
