// Package pipeline runs a complete edit of one package.
//
// This package implements the load → edit → transplant → save sequence used
// by the CLI. Keeping it out of the command layer lets tests drive a full
// run against files in a temporary directory.
//
// # Stages
//
//  1. Load: decode the target package
//  2. Retarget: rewrite the package's self-references when the output file
//     name differs from the input's
//  3. Edit: disable imports, rename imports, disable actors, edit
//     properties, in that order
//  4. Transplant: load the donor once and copy each requested root
//  5. Save: validate and write the result
//
// Import renames that find nothing are reported as warnings and the run
// continues. Every other failure stops the run before anything is written.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Input:  "Arena.umap",
//	    Output: "Arena_Mod.umap",
//	    Plan:   plan.Plan{DisableActorsByIndex: []int{3}},
//	})
package pipeline

import (
	"time"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/edit"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/plan"
	"github.com/matzehuels/assetgraft/pkg/transplant"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures one run.
type Options struct {
	// Input is the package to edit.
	Input string
	// Output is where the edited package is written. It may equal Input.
	Output string
	// DryRun applies and validates every edit without writing Output.
	DryRun bool
	// Plan lists the requested edits.
	Plan plan.Plan
}

// Validate checks paths and the syntax of every requested edit.
func (o *Options) Validate() error {
	if err := apperr.ValidateAssetPath(o.Input); err != nil {
		return err
	}
	if !o.DryRun {
		if err := apperr.ValidateAssetPath(o.Output); err != nil {
			return err
		}
	}
	return o.Plan.Validate()
}

// =============================================================================
// Result - Run Outcome
// =============================================================================

// Result is what a run did.
type Result struct {
	// Graph is the edited target package.
	Graph *asset.Graph
	// Changes lists every applied edit in order.
	Changes []edit.Change
	// Warnings holds the failed edits the run continued past.
	Warnings []error
	// Transplants has one entry per transplanted root.
	Transplants []*transplant.Result
	Stats       Stats
}

// Stats records stage timings.
type Stats struct {
	LoadTime       time.Duration
	EditTime       time.Duration
	TransplantTime time.Duration
	SaveTime       time.Duration
}
