package asset

import (
	"fmt"

	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// problem is one integrity violation found by Validate.
type problem struct {
	code apperr.Code
	msg  string
}

// Validate checks that every reference reachable from g belongs to g: each
// index addresses an existing export or import, and each name reference was
// issued by g's own name table. A graph that fails Validate must not be
// written out.
//
// The returned error carries the code of the first problem found and
// mentions how many more were seen.
func (g *Graph) Validate() error {
	var problems []problem
	name := func(where string, r NameRef) {
		if _, err := g.Names.Lookup(r); err != nil {
			problems = append(problems, problem{apperr.GetCode(err), fmt.Sprintf("%s: %s", where, apperr.UserMessage(err))})
		}
	}
	index := func(where string, x Index) {
		if !g.Resolves(x) {
			problems = append(problems, problem{apperr.ErrCodeDanglingReference, fmt.Sprintf("%s: index %s does not resolve", where, x)})
		}
	}

	for i := range g.Imports {
		imp := &g.Imports[i]
		where := fmt.Sprintf("import %s", ImportAt(i))
		name(where+" class package", imp.ClassPackage)
		name(where+" class name", imp.ClassName)
		name(where+" object name", imp.ObjectName)
		index(where+" outer", imp.Outer)
	}

	for i := range g.Exports {
		e := &g.Exports[i]
		where := fmt.Sprintf("export %s", ExportAt(i))
		name(where+" object name", e.ObjectName)
		index(where+" class", e.Class)
		index(where+" super", e.Super)
		index(where+" template", e.Template)
		index(where+" outer", e.Outer)
		for _, d := range e.Dependencies() {
			index(where+" dependency", d)
		}
		for _, a := range e.Actors {
			index(where+" actor", a)
		}
		err := Visitor{
			Any: func(p Property) error {
				if p == nil {
					return apperr.New(apperr.ErrCodeInternal, "%s: nil property", where)
				}
				name(where+" property name", p.PropertyTag().Name)
				return nil
			},
			Name: func(p *NameProperty) error {
				name(where+" name value", p.Value)
				return nil
			},
			Object: func(p *ObjectProperty) error {
				index(where+" object value", p.Value)
				return nil
			},
			Struct: func(p *StructProperty) error {
				if p.StructType != nil {
					name(where+" struct type", *p.StructType)
				}
				return nil
			},
			Enum: func(p *EnumProperty) error {
				if p.EnumType != nil {
					name(where+" enum type", *p.EnumType)
				}
				if p.Value != nil {
					name(where+" enum value", *p.Value)
				}
				return nil
			},
		}.Walk(e.Properties)
		if err != nil {
			problems = append(problems, problem{apperr.GetCode(err), apperr.UserMessage(err)})
		}
	}

	if len(problems) == 0 {
		return nil
	}
	first := problems[0]
	if len(problems) == 1 {
		return apperr.New(first.code, "%s", first.msg)
	}
	return apperr.New(first.code, "%s (and %d more)", first.msg, len(problems)-1)
}
