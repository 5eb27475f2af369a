// Package edit applies structural edits to an asset graph in place.
//
// The operations are:
//
//   - [DisableImport]: detach imports from their outer scope
//   - [RenameImport]: point the first matching import at a new name
//   - [DisableActors]: remove exports from the level root's actor list
//   - [EditProperty]: overwrite a Name, Vector or Rotator field addressed
//     by an expression such as "5.RelativeLocation.RelativeLocation=1,2,3"
//   - [RetargetNames]: carry a package's self-references over to a new
//     file name
//
// Each returns the [Change] values it made so callers can report them.
// Failed edits are not rolled back; callers are expected to discard the
// graph rather than write it when an edit fails with anything other than
// a recoverable error (see errors.Recoverable).
package edit
