package transplant

import (
	"fmt"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// rewriter moves donor records into the target's name and index spaces.
type rewriter struct {
	donor  *asset.Graph
	target *asset.Graph
	table  *table
}

// name re-interns a donor name in the target. Unset references stay unset.
func (w *rewriter) name(r asset.NameRef) (asset.NameRef, error) {
	if r.IsZero() {
		return r, nil
	}
	s, err := w.donor.Names.Lookup(r)
	if err != nil {
		return asset.NameRef{}, err
	}
	out := w.target.Intern(s)
	out.Number = r.Number
	return out, nil
}

func (w *rewriter) namePtr(r *asset.NameRef) error {
	if r == nil {
		return nil
	}
	out, err := w.name(*r)
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// label resolves an already rewritten name for messages.
func (w *rewriter) label(r asset.NameRef) string {
	s, _ := w.target.Names.Lookup(r)
	return s
}

// export returns a copy of the donor export at src expressed in target space.
func (w *rewriter) export(src asset.Index) (asset.Export, error) {
	e := w.donor.Exports[src.Position()].Clone()

	var err error
	if e.ObjectName, err = w.name(e.ObjectName); err != nil {
		return asset.Export{}, fmt.Errorf("export %s object name: %w", src, err)
	}
	e.Class = w.table.remap(e.Class)
	e.Super = w.table.remap(e.Super)
	e.Template = w.table.remap(e.Template)
	e.Outer = w.table.remap(e.Outer)
	w.table.remapAll(e.CreateBeforeSerialization)
	w.table.remapAll(e.SerializationBeforeCreate)
	w.table.remapAll(e.CreateBeforeCreate)
	w.table.remapAll(e.Actors)

	if err := w.properties(src, e.Properties); err != nil {
		return asset.Export{}, err
	}
	return e, nil
}

// properties rewrites a cloned property tree in place.
func (w *rewriter) properties(src asset.Index, props []asset.Property) error {
	v := asset.Visitor{
		Any: func(p asset.Property) error {
			return w.namePtr(&p.PropertyTag().Name)
		},
		Name: func(p *asset.NameProperty) error {
			return w.namePtr(&p.Value)
		},
		Object: func(p *asset.ObjectProperty) error {
			if p.Value.IsNull() {
				return nil
			}
			if !w.table.has(p.Value) {
				return apperr.New(apperr.ErrCodeRemapConsistency,
					"export %s property %q references %s outside the transplanted closure",
					src, w.label(p.Tag.Name), p.Value)
			}
			p.Value = w.table.remap(p.Value)
			return nil
		},
		Struct: func(p *asset.StructProperty) error {
			return w.namePtr(p.StructType)
		},
		Enum: func(p *asset.EnumProperty) error {
			if err := w.namePtr(p.EnumType); err != nil {
				return err
			}
			return w.namePtr(p.Value)
		},
		Array:   func(*asset.ArrayProperty) error { return nil },
		Vector:  func(*asset.VectorProperty) error { return nil },
		Rotator: func(*asset.RotatorProperty) error { return nil },
		Scalar:  func(asset.Property) error { return nil },
		Other: func(p asset.Property) error {
			return apperr.New(apperr.ErrCodeUnsupportedPropertyKind,
				"export %s property %q has kind %s, which cannot be transplanted",
				src, w.label(p.PropertyTag().Name), p.Kind())
		},
	}
	return v.Walk(props)
}

// importEntry returns a copy of the donor import at src expressed in target
// space. The outer must be null or part of the closure.
func (w *rewriter) importEntry(src asset.Index) (asset.Import, error) {
	imp := w.donor.Imports[src.Position()]

	var err error
	if imp.ClassPackage, err = w.name(imp.ClassPackage); err != nil {
		return asset.Import{}, fmt.Errorf("import %s class package: %w", src, err)
	}
	if imp.ClassName, err = w.name(imp.ClassName); err != nil {
		return asset.Import{}, fmt.Errorf("import %s class name: %w", src, err)
	}
	if imp.ObjectName, err = w.name(imp.ObjectName); err != nil {
		return asset.Import{}, fmt.Errorf("import %s object name: %w", src, err)
	}
	if !imp.Outer.IsNull() && !w.table.has(imp.Outer) {
		return asset.Import{}, apperr.New(apperr.ErrCodeRemapConsistency,
			"import %s %q has outer %s outside the transplanted closure",
			src, w.label(imp.ObjectName), imp.Outer)
	}
	imp.Outer = w.table.remap(imp.Outer)
	return imp, nil
}
