package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/codec"
	"github.com/matzehuels/assetgraft/pkg/edit"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/observability"
	"github.com/matzehuels/assetgraft/pkg/plan"
	"github.com/matzehuels/assetgraft/pkg/transplant"
)

// Codec loads and saves packages.
type Codec interface {
	Load(path string) (*asset.Graph, error)
	Save(g *asset.Graph, path string) error
}

// Runner executes edit runs.
//
// The Runner keeps no state between runs. It is not safe to share one
// graph between concurrent runs.
type Runner struct {
	Codec  Codec
	Logger *log.Logger
	// Hooks receives run events; nil uses observability.Edit().
	Hooks observability.EditHooks
}

// NewRunner creates a runner. A nil codec uses codec.Default and a nil
// logger uses log.Default().
func NewRunner(c Codec, logger *log.Logger) *Runner {
	if c == nil {
		c = codec.Default
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Codec: c, Logger: logger}
}

func (r *Runner) hooks() observability.EditHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Edit()
}

// Run loads opts.Input, applies opts.Plan and writes opts.Output.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	parsed, err := opts.Plan.Parse()
	if err != nil {
		return nil, err
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result := &Result{Graph: g}
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Retarget
	if !opts.DryRun {
		r.record(ctx, result, edit.RetargetNames(g, edit.Stem(opts.Input), edit.Stem(opts.Output)))
	}

	// Stage 3: Edit
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	editStart := time.Now()
	if err := r.Edit(ctx, g, parsed, result); err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}
	result.Stats.EditTime = time.Since(editStart)

	// Stage 4: Transplant
	if len(parsed.Roots) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		transplantStart := time.Now()
		if err := r.Transplant(ctx, g, parsed.Donor, parsed.Roots, result); err != nil {
			return nil, fmt.Errorf("transplant: %w", err)
		}
		result.Stats.TransplantTime = time.Since(transplantStart)
	}

	// Stage 5: Save
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if opts.DryRun {
		r.Logger.Info("dry run, nothing written", "changes", len(result.Changes))
		return result, nil
	}
	saveStart := time.Now()
	if err := r.Save(ctx, g, opts.Output); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	result.Stats.SaveTime = time.Since(saveStart)

	return result, nil
}

// Load decodes the package at path and reports it to the hooks.
func (r *Runner) Load(ctx context.Context, path string) (*asset.Graph, error) {
	start := time.Now()
	g, err := r.Codec.Load(path)
	if err != nil {
		r.hooks().OnLoad(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	r.hooks().OnLoad(ctx, path, len(g.Exports), len(g.Imports), time.Since(start), nil)
	r.Logger.Info("loaded package",
		"path", path,
		"names", g.Names.Len(),
		"imports", len(g.Imports),
		"exports", len(g.Exports),
		"duration", time.Since(start))
	return g, nil
}

// Save writes g to path and reports it to the hooks.
func (r *Runner) Save(ctx context.Context, g *asset.Graph, path string) error {
	start := time.Now()
	err := r.Codec.Save(g, path)
	r.hooks().OnSave(ctx, path, time.Since(start), err)
	if err != nil {
		return err
	}
	r.Logger.Info("saved package", "path", path, "duration", time.Since(start))
	return nil
}

// Edit applies the parsed edits to g in order, appending to result. Import
// renames that find nothing become warnings; anything else stops the edit.
func (r *Runner) Edit(ctx context.Context, g *asset.Graph, p *plan.Parsed, result *Result) error {
	for _, name := range p.DisableImports {
		changes := edit.DisableImport(g, name)
		if len(changes) == 0 {
			r.Logger.Debug("import already detached or absent", "name", name)
		}
		r.record(ctx, result, changes)
	}

	for _, rn := range p.Renames {
		c, err := edit.RenameImport(g, rn.Old, rn.New)
		if apperr.Recoverable(err) {
			r.Logger.Warn("import not found", "name", rn.Old)
			result.Warnings = append(result.Warnings, err)
			r.hooks().OnWarning(ctx, err)
			continue
		}
		if err != nil {
			return err
		}
		r.record(ctx, result, []edit.Change{c})
	}

	if len(p.Selectors) > 0 {
		changes, err := edit.DisableActors(g, p.Selectors)
		if err != nil {
			return err
		}
		r.record(ctx, result, changes)
	}

	for _, e := range p.Edits {
		c, err := edit.Apply(g, e)
		if err != nil {
			return err
		}
		r.record(ctx, result, []edit.Change{c})
	}
	return nil
}

// Transplant loads the donor once and transplants each root into g.
func (r *Runner) Transplant(ctx context.Context, g *asset.Graph, donorPath string, roots []asset.Index, result *Result) error {
	donor, err := r.Load(ctx, donorPath)
	if err != nil {
		return fmt.Errorf("donor: %w", err)
	}
	t, err := transplant.New(donor, g, r.Logger)
	if err != nil {
		return err
	}
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := t.Transplant(root)
		if err != nil {
			return fmt.Errorf("root %s: %w", root, err)
		}
		for _, p := range res.Exports {
			r.hooks().OnTransplant(ctx, "export", p.Src.Raw(), p.Dst.Raw(), p.Name)
		}
		for _, p := range res.Imports {
			r.hooks().OnTransplant(ctx, "import", p.Src.Raw(), p.Dst.Raw(), p.Name)
		}
		result.Transplants = append(result.Transplants, res)
	}
	return nil
}

func (r *Runner) record(ctx context.Context, result *Result, changes []edit.Change) {
	for _, c := range changes {
		r.Logger.Debug("applied edit", "kind", c.Kind, "target", c.Target, "subject", c.Subject)
		r.hooks().OnChange(ctx, string(c.Kind), c.String())
	}
	result.Changes = append(result.Changes, changes...)
}
