// Package plan describes the edits requested for one run.
//
// A plan is built from command-line flags, from a plan file, or both; flag
// values are merged after the file's. Plan files are TOML or YAML with the
// same keys:
//
//	disable_imports = ["Default__BP_Door_C"]
//	rename_imports = ["/Game/Old/Door>/Game/New/Door"]
//	disable_actors_by_name = ["PlayerStart"]
//	disable_actors_by_index = [3]
//	edit_exports = ["5.RelativeLocation.RelativeLocation=1,2,3"]
//	transplant_donor = "Donor.umap"
//	actors_to_transplant = [7]
//
// [Plan.Parse] checks every expression up front, so a typo fails the run
// before any package is loaded.
package plan
