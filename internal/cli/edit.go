package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraft/pkg/edit"
	"github.com/matzehuels/assetgraft/pkg/pipeline"
	"github.com/matzehuels/assetgraft/pkg/plan"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	input    string   // package to edit
	output   string   // where to write the result (dry run if empty)
	planFile string   // TOML or YAML plan applied before the flag requests
	dryRun   bool     // apply and validate without writing
	actors   []string // --disable-actor-by-index values, parsed in plan
	requests plan.Plan
}

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a package and transplant actors into it",
		Long: `Edit applies the requested changes to a cooked package in a fixed order:
disable imports, rename imports, disable actors, edit properties, then
transplant actors from a donor. Name-table entries containing the input
file name are rewritten to the output file name.

Import renames that find nothing are reported as warnings. Any other
failure stops the run before the output is written.`,
		Example: `  # Detach an import and move the player start
  assetgraft edit -i Arena.umap -o Arena_Mod.umap \
      -d Default__StaticMeshActor \
      --edit-export "2.RelativeLocation.RelativeLocation=100,0,50"

  # Graft actor 3 of Lobby.umap into Arena.umap
  assetgraft edit -i Arena.umap -o Arena_Mod.umap \
      --transplant-donor Lobby.umap --actor-to-transplant 3

  # Apply a plan file and check it without writing
  assetgraft edit -i Arena.umap --plan arena.toml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), &opts)
		},
	}

	r := &opts.requests
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "package to edit")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output package (omit for a dry run)")
	cmd.Flags().StringVar(&opts.planFile, "plan", "", "edit plan file (.toml, .yaml)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "apply and validate edits without writing")
	cmd.Flags().StringArrayVarP(&r.DisableImports, "disable-import", "d", nil, "detach every import with this object name from its outer")
	cmd.Flags().StringArrayVarP(&r.RenameImports, "rename-import", "r", nil, "rename the first matching import (old>new)")
	cmd.Flags().StringArrayVar(&r.DisableActorsByName, "disable-actor-by-name", nil, "remove actors with this name from the level")
	cmd.Flags().StringSliceVar(&opts.actors, "disable-actor-by-index", nil, "remove the actor at this export index from the level")
	cmd.Flags().StringArrayVar(&r.EditExports, "edit-export", nil, "set a property value (export.field[.field]=value)")
	cmd.Flags().StringVar(&r.TransplantDonor, "transplant-donor", "", "package to transplant actors from")
	cmd.Flags().IntSliceVar(&r.ActorsToTransplant, "actor-to-transplant", nil, "donor export index to transplant")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runEdit resolves the plan and runs the pipeline.
func (c *CLI) runEdit(ctx context.Context, opts *editOpts) error {
	logger := loggerFromContext(ctx)

	p, err := opts.plan()
	if err != nil {
		return err
	}
	if p.Empty() {
		logger.Info("no edits requested, only retargeting names")
	}

	runOpts := pipeline.Options{
		Input:  opts.input,
		Output: opts.output,
		DryRun: opts.dryRun || opts.output == "",
		Plan:   *p,
	}

	timer := startTimer(logger)
	result, err := pipeline.NewRunner(nil, logger).Run(ctx, runOpts)
	if err != nil {
		return err
	}

	out := printer{w: c.Out}
	if runOpts.DryRun {
		timer.done(fmt.Sprintf("Checked %s", opts.input), result.Stats)
		out.info("Dry run, nothing written")
	} else {
		timer.done(fmt.Sprintf("Edited %s", opts.input), result.Stats)
	}
	out.stats(len(result.Changes), len(result.Warnings), len(result.Transplants))
	return nil
}

// plan loads the plan file, if any, and appends the flag requests to it.
func (o *editOpts) plan() (*plan.Plan, error) {
	requests := o.requests
	requests.DisableActorsByIndex = nil
	for _, s := range o.actors {
		sel, err := edit.ParseIndexSelector(s)
		if err != nil {
			return nil, err
		}
		requests.DisableActorsByIndex = append(requests.DisableActorsByIndex, sel.Index)
	}
	if o.planFile == "" {
		return &requests, nil
	}
	p, err := plan.Load(o.planFile)
	if err != nil {
		return nil, err
	}
	p.Merge(&requests)
	return p, nil
}
