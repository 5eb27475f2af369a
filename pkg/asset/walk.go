package asset

import "errors"

// SkipChildren can be returned by a [WalkFunc] to keep [Walk] from
// descending into the current container property.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every property visited by [Walk]. depth is 0 for
// the list passed to Walk and grows by one per Struct or Array level.
type WalkFunc func(p Property, depth int) error

// Walk visits props in order, depth-first, calling fn on each property
// before its children. Struct and Array are the only containers. Any error
// other than [SkipChildren] stops the walk and is returned.
func Walk(props []Property, fn WalkFunc) error {
	return walk(props, 0, fn)
}

func walk(props []Property, depth int, fn WalkFunc) error {
	for _, p := range props {
		err := fn(p, depth)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if kids := Children(p); len(kids) > 0 {
			if err := walk(kids, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Visitor dispatches [Walk] to per-kind callbacks.
//
// Each is called when set and the property has that kind; Any runs first
// for every property. Kinds without a callback go to Other, or are skipped
// when Other is nil. Dump, transplant rewriting and reference checks are
// all Visitors over the same traversal.
type Visitor struct {
	Any     func(Property) error
	Name    func(*NameProperty) error
	Object  func(*ObjectProperty) error
	Struct  func(*StructProperty) error
	Array   func(*ArrayProperty) error
	Enum    func(*EnumProperty) error
	Vector  func(*VectorProperty) error
	Rotator func(*RotatorProperty) error
	Scalar  func(Property) error // Bool, Byte, Int, Float, MulticastDelegate
	Other   func(Property) error
}

// Walk runs v over props and everything nested in them.
func (v Visitor) Walk(props []Property) error {
	return Walk(props, func(p Property, _ int) error {
		if v.Any != nil {
			if err := v.Any(p); err != nil {
				return err
			}
		}
		return v.dispatch(p)
	})
}

func (v Visitor) dispatch(p Property) error {
	switch p := p.(type) {
	case *NameProperty:
		if v.Name != nil {
			return v.Name(p)
		}
	case *ObjectProperty:
		if v.Object != nil {
			return v.Object(p)
		}
	case *StructProperty:
		if v.Struct != nil {
			return v.Struct(p)
		}
	case *ArrayProperty:
		if v.Array != nil {
			return v.Array(p)
		}
	case *EnumProperty:
		if v.Enum != nil {
			return v.Enum(p)
		}
	case *VectorProperty:
		if v.Vector != nil {
			return v.Vector(p)
		}
	case *RotatorProperty:
		if v.Rotator != nil {
			return v.Rotator(p)
		}
	case *BoolProperty, *ByteProperty, *IntProperty, *FloatProperty, *MulticastDelegateProperty:
		if v.Scalar != nil {
			return v.Scalar(p)
		}
	}
	if v.Other != nil {
		return v.Other(p)
	}
	return nil
}
