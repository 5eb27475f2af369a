// Package codec reads and writes packages on disk.
//
// A package is stored as two files sharing a base name: the container
// (for example Arena.umap) and the payload file (Arena.uexp). The
// container holds the name table, the import list and the base record of
// every export. The payload file holds, for each export in order, its
// property tree, its actor list when it is a level, and any raw bytes.
//
// # Format
//
// Both files are JSON. Reference indices are stored in their signed form
// (0 null, positive export, negative import) and name references as an
// index into the container's name list:
//
//	{
//	  "names": ["/Script/Engine", "PersistentLevel", "Door"],
//	  "imports": [{"class_package": {"index": 0}, "class_name": {"index": 0},
//	               "object_name": {"index": 0}}],
//	  "exports": [{"object_name": {"index": 1}, "kind": "Level"},
//	              {"object_name": {"index": 2}, "kind": "Normal", "outer": 1}]
//	}
//
// Conversion between signed integers and [asset.Index] happens only in this
// package.
//
// # Errors
//
// [Load] reports a missing or unreadable container as INPUT_NOT_FOUND and
// undecodable content as CODEC_PARSE. A missing payload file is not an
// error; exports are then loaded without properties. [Save] and
// [Codec.Write] run [asset.Graph.Validate] first, so a graph holding a
// dangling index or a name from another graph is never written. Failures
// while writing are CODEC_WRITE.
package codec
