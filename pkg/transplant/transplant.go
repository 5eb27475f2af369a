package transplant

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// Result reports what one root brought into the target.
type Result struct {
	// Root is the transplanted donor export and its new target index.
	Root Pair
	// Exports and Imports list every copied entry in append order, which is
	// ascending destination position.
	Exports []Pair
	Imports []Pair
}

// Transplanter copies subgraphs from a donor package into a target package.
// The donor is only read.
type Transplanter struct {
	Donor  *asset.Graph
	Target *asset.Graph
	Logger *log.Logger
}

// New creates a Transplanter. A nil logger falls back to log.Default().
// Donor and target must be distinct graphs.
func New(donor, target *asset.Graph, logger *log.Logger) (*Transplanter, error) {
	if donor == nil || target == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "transplant needs both a donor and a target")
	}
	if donor == target || donor.ID() == target.ID() {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "donor and target are the same package")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Transplanter{Donor: donor, Target: target, Logger: logger}, nil
}

// Transplant copies the export closure of root into the target and adds the
// copied root as an actor of the target level.
//
// The target's export, import and actor lists are only modified once every
// copied record has been rewritten. Names interned before a failure stay in
// the target's name table.
func (t *Transplanter) Transplant(root asset.Index) (*Result, error) {
	donorLevel, _, err := t.Donor.LevelRoot()
	if err != nil {
		return nil, fmt.Errorf("donor: %w", err)
	}
	targetLevel, _, err := t.Target.LevelRoot()
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	c, err := collect(t.Donor, root)
	if err != nil {
		return nil, err
	}
	tbl, err := allocate(t.Donor, t.Target, c, donorLevel, targetLevel)
	if err != nil {
		return nil, err
	}
	t.Logger.Debug("collected transplant closure",
		"root", root, "exports", len(c.exports), "imports", len(c.imports))

	w := &rewriter{donor: t.Donor, target: t.Target, table: tbl}
	exports := make([]asset.Export, 0, len(c.exports))
	for _, src := range c.exports {
		e, err := w.export(src)
		if err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}
	imports := make([]asset.Import, 0, len(c.imports))
	for _, src := range c.imports {
		imp, err := w.importEntry(src)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	dst := tbl.remap(root)
	// take the level pointer after the append
	t.Target.Exports = append(t.Target.Exports, exports...)
	t.Target.Imports = append(t.Target.Imports, imports...)
	level := &t.Target.Exports[targetLevel.Position()]
	level.Actors = append(level.Actors, dst)
	level.CreateBeforeSerialization = append(level.CreateBeforeSerialization, dst)

	res := &Result{
		Root:    Pair{Src: root, Dst: dst, Name: t.Donor.ObjectName(root)},
		Exports: tbl.exports,
		Imports: tbl.imports,
	}
	t.Logger.Info("transplanted actor",
		"name", res.Root.Name, "src", root, "dst", dst,
		"exports", len(res.Exports), "imports", len(res.Imports))
	return res, nil
}

// TransplantAll transplants each root in turn. Later roots are appended
// after the content of earlier ones.
func (t *Transplanter) TransplantAll(roots []asset.Index) ([]*Result, error) {
	results := make([]*Result, 0, len(roots))
	for _, root := range roots {
		res, err := t.Transplant(root)
		if err != nil {
			return results, fmt.Errorf("transplant %s: %w", root, err)
		}
		results = append(results, res)
	}
	return results, nil
}
