package transplant

import (
	"fmt"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// closure is the set of donor entries copied for one root, in the order
// they will be appended to the target.
type closure struct {
	exports []asset.Index
	imports []asset.Index
}

// collect gathers the export closure of root over create-before-serialization
// edges, then the imports those exports depend on.
func collect(donor *asset.Graph, root asset.Index) (*closure, error) {
	c := &closure{}
	if err := c.collectExports(donor, root); err != nil {
		return nil, err
	}
	if err := c.collectImports(donor); err != nil {
		return nil, err
	}
	return c, nil
}

// collectExports walks depth-first with an explicit stack. Exports are
// recorded in the order they are popped, so the result follows discovery
// rather than dependency order.
func (c *closure) collectExports(donor *asset.Graph, root asset.Index) error {
	if _, err := donor.Export(root); err != nil {
		return fmt.Errorf("transplant root: %w", err)
	}
	seen := make(map[asset.Index]bool)
	stack := []asset.Index{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		exp, err := donor.Export(cur)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeDanglingReference, err, "donor export %s", cur)
		}
		if !exp.HasProperties() {
			return apperr.New(apperr.ErrCodeUnsupportedExport,
				"donor export %s has a %s payload and cannot be transplanted", cur, exp.Kind)
		}
		seen[cur] = true
		c.exports = append(c.exports, cur)
		for _, dep := range exp.CreateBeforeSerialization {
			if dep.IsExport() && !seen[dep] {
				stack = append(stack, dep)
			}
		}
	}
	return nil
}

// collectImports copies every import referenced from the create-before-
// serialization and serialization-before-create lists of the collected
// exports, each followed by its direct outer import. Only one level of
// outer is followed.
func (c *closure) collectImports(donor *asset.Graph) error {
	seen := make(map[asset.Index]bool)
	add := func(x asset.Index) (*asset.Import, error) {
		imp, err := donor.Import(x)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeDanglingReference, err, "donor import %s", x)
		}
		seen[x] = true
		c.imports = append(c.imports, x)
		return imp, nil
	}

	for _, x := range c.exports {
		exp := &donor.Exports[x.Position()]
		deps := append(append([]asset.Index(nil), exp.CreateBeforeSerialization...), exp.SerializationBeforeCreate...)
		for _, dep := range deps {
			if !dep.IsImport() || seen[dep] {
				continue
			}
			imp, err := add(dep)
			if err != nil {
				return err
			}
			if !imp.Outer.IsImport() || seen[imp.Outer] {
				continue
			}
			if _, err := add(imp.Outer); err != nil {
				return err
			}
		}
	}
	return nil
}
