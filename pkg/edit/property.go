package edit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// ValueKind is the shape of the right-hand side of a property edit.
type ValueKind int

const (
	// ValueName is a single token, written to a Name property.
	ValueName ValueKind = iota
	// ValueVector is three numbers, written to a Vector or Rotator property.
	ValueVector
)

// Expression is a parsed property edit of the form
//
//	<export>.<field>=<value>
//	<export>.<struct>.<field>=<value>
//
// where value is either one token or three comma-separated numbers, e.g.
// "5.RelativeLocation.RelativeLocation=1,2,3" or "12.PlayerStartTag=red".
type Expression struct {
	Export int    // 1-based export index
	Struct string // optional struct property holding Field
	Field  string
	Kind   ValueKind
	Name   string
	Vector asset.Vector
}

// ParseExpression parses a property edit expression.
func ParseExpression(s string) (Expression, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Expression{}, malformed(s, "missing '='")
	}

	var e Expression
	fields := strings.Split(lhs, ".")
	if len(fields) != 2 && len(fields) != 3 {
		return Expression{}, malformed(s, "left side needs 2 or 3 dot-separated fields, got %d", len(fields))
	}
	for _, f := range fields {
		if f == "" {
			return Expression{}, malformed(s, "empty field on the left side")
		}
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return Expression{}, malformed(s, "first field %q is not an export index", fields[0])
	}
	e.Export = idx
	if len(fields) == 3 {
		e.Struct, e.Field = fields[1], fields[2]
	} else {
		e.Field = fields[1]
	}

	values := strings.Split(rhs, ",")
	switch len(values) {
	case 1:
		if err := apperr.ValidateName(values[0]); err != nil {
			return Expression{}, malformed(s, "invalid name value: %s", apperr.UserMessage(err))
		}
		e.Kind = ValueName
		e.Name = values[0]
	case 3:
		var comps [3]float64
		for i, v := range values {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return Expression{}, malformed(s, "vector component %q is not a number", v)
			}
			comps[i] = f
		}
		e.Kind = ValueVector
		e.Vector = asset.Vector{X: comps[0], Y: comps[1], Z: comps[2]}
	default:
		return Expression{}, malformed(s, "right side needs 1 or 3 comma-separated values, got %d", len(values))
	}
	return e, nil
}

func malformed(expr, format string, args ...any) error {
	return apperr.New(apperr.ErrCodeMalformedExpression, "%q: %s", expr, fmt.Sprintf(format, args...))
}

// Path returns the dotted property path the expression addresses.
func (e Expression) Path() string {
	if e.Struct != "" {
		return e.Struct + "." + e.Field
	}
	return e.Field
}

// Value formats the right-hand side.
func (e Expression) Value() string {
	if e.Kind == ValueVector {
		return formatVector(e.Vector)
	}
	return e.Name
}

func formatVector(v asset.Vector) string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// EditProperty parses expr and applies it; see [Apply].
func EditProperty(g *asset.Graph, expr string) (Change, error) {
	e, err := ParseExpression(expr)
	if err != nil {
		return Change{}, err
	}
	return Apply(g, e)
}

// Apply overwrites the first property on the selected export (or inside
// the selected struct) whose name is e.Field and whose kind accepts the
// value: Name values go to Name properties, vectors to Vector or Rotator
// properties. Every other property is left untouched.
func Apply(g *asset.Graph, e Expression) (Change, error) {
	if e.Export < 1 {
		return Change{}, apperr.New(apperr.ErrCodeExportNotFound, "export index %d out of range", e.Export)
	}
	x := asset.ExportAt(e.Export - 1)
	exp, err := g.Export(x)
	if err != nil {
		return Change{}, err
	}
	if !exp.HasProperties() {
		return Change{}, apperr.New(apperr.ErrCodeUnsupportedExport,
			"export %s has a %s payload without properties", x, exp.Kind)
	}

	props := exp.Properties
	if e.Struct != "" {
		s := findStruct(g, props, e.Struct)
		if s == nil {
			return Change{}, apperr.New(apperr.ErrCodeStructNotFound,
				"export %s has no struct property %q", x, e.Struct)
		}
		props = s.Value
	}

	old, ok := assign(g, props, e)
	if !ok {
		return Change{}, apperr.New(apperr.ErrCodePropertyNotFound,
			"export %s has no %s property %q", x, valueTarget(e.Kind), e.Path())
	}
	return Change{
		Kind:    ChangeProperty,
		Target:  x,
		Subject: g.NameOf(exp.ObjectName) + "." + e.Path(),
		Old:     old,
		New:     e.Value(),
	}, nil
}

func findStruct(g *asset.Graph, props []asset.Property, name string) *asset.StructProperty {
	for _, p := range props {
		s, ok := p.(*asset.StructProperty)
		if ok && g.Names.Equal(s.Name, name) {
			return s
		}
	}
	return nil
}

func assign(g *asset.Graph, props []asset.Property, e Expression) (old string, ok bool) {
	for _, p := range props {
		if !g.Names.Equal(p.PropertyTag().Name, e.Field) {
			continue
		}
		switch p := p.(type) {
		case *asset.NameProperty:
			if e.Kind != ValueName {
				continue
			}
			old = g.NameOf(p.Value)
			p.Value = g.Intern(e.Name)
			return old, true
		case *asset.VectorProperty:
			if e.Kind != ValueVector {
				continue
			}
			old = formatVector(p.Value)
			p.Value = e.Vector
			return old, true
		case *asset.RotatorProperty:
			if e.Kind != ValueVector {
				continue
			}
			old = formatVector(p.Value)
			p.Value = e.Vector
			return old, true
		}
	}
	return "", false
}

func valueTarget(k ValueKind) string {
	if k == ValueVector {
		return "Vector or Rotator"
	}
	return "Name"
}
