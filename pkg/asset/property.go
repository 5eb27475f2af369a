package asset

// Kind identifies the concrete type of a [Property].
type Kind int

const (
	KindBool Kind = iota
	KindByte
	KindInt
	KindFloat
	KindEnum
	KindName
	KindStr
	KindObject
	KindStruct
	KindArray
	KindVector
	KindRotator
	KindMulticastDelegate
)

var kindNames = map[Kind]string{
	KindBool:              "Bool",
	KindByte:              "Byte",
	KindInt:               "Int",
	KindFloat:             "Float",
	KindEnum:              "Enum",
	KindName:              "Name",
	KindStr:               "Str",
	KindObject:            "Object",
	KindStruct:            "Struct",
	KindArray:             "Array",
	KindVector:            "Vector",
	KindRotator:           "Rotator",
	KindMulticastDelegate: "MulticastDelegate",
}

// String returns the short kind name used in dumps and on disk.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, bool) {
	for k, n := range kindNames {
		if n == s {
			return k, true
		}
	}
	return 0, false
}

// Tag is the part every property shares: the field name.
type Tag struct {
	Name NameRef
}

// PropertyTag gives access to the shared tag of any property.
func (t *Tag) PropertyTag() *Tag { return t }

// Property is one node of an export's field data.
//
// The set of implementations is closed; switch on the concrete type or use
// [Walk] and [Visitor] rather than adding kinds from outside the package.
type Property interface {
	Kind() Kind
	PropertyTag() *Tag
	sealed()
}

// Vector holds three double-precision components (X, Y, Z or Pitch, Yaw, Roll).
type Vector struct {
	X, Y, Z float64
}

type (
	// BoolProperty is a boolean field.
	BoolProperty struct {
		Tag
		Value bool
	}

	// ByteProperty is an unsigned byte field.
	ByteProperty struct {
		Tag
		Value uint8
	}

	// IntProperty is a 32-bit signed field.
	IntProperty struct {
		Tag
		Value int32
	}

	// FloatProperty is a 32-bit float field.
	FloatProperty struct {
		Tag
		Value float32
	}

	// EnumProperty is an enumerator value; both the enum type and the value
	// are names and either may be absent.
	EnumProperty struct {
		Tag
		EnumType *NameRef
		Value    *NameRef
	}

	// NameProperty holds a name-table reference as its value.
	NameProperty struct {
		Tag
		Value NameRef
	}

	// StrProperty holds an inline string.
	StrProperty struct {
		Tag
		Value string
	}

	// ObjectProperty points at an export or import of the same graph.
	ObjectProperty struct {
		Tag
		Value Index
	}

	// StructProperty nests an ordered list of properties.
	StructProperty struct {
		Tag
		StructType *NameRef
		Value      []Property
	}

	// ArrayProperty nests an ordered list of elements.
	ArrayProperty struct {
		Tag
		Value []Property
	}

	// VectorProperty is a three-component location or scale.
	VectorProperty struct {
		Tag
		Value Vector
	}

	// RotatorProperty is a three-component rotation.
	RotatorProperty struct {
		Tag
		Value Vector
	}

	// MulticastDelegateProperty carries an opaque delegate list.
	MulticastDelegateProperty struct {
		Tag
		Value []byte
	}
)

func (*BoolProperty) Kind() Kind              { return KindBool }
func (*ByteProperty) Kind() Kind              { return KindByte }
func (*IntProperty) Kind() Kind               { return KindInt }
func (*FloatProperty) Kind() Kind             { return KindFloat }
func (*EnumProperty) Kind() Kind              { return KindEnum }
func (*NameProperty) Kind() Kind              { return KindName }
func (*StrProperty) Kind() Kind               { return KindStr }
func (*ObjectProperty) Kind() Kind            { return KindObject }
func (*StructProperty) Kind() Kind            { return KindStruct }
func (*ArrayProperty) Kind() Kind             { return KindArray }
func (*VectorProperty) Kind() Kind            { return KindVector }
func (*RotatorProperty) Kind() Kind           { return KindRotator }
func (*MulticastDelegateProperty) Kind() Kind { return KindMulticastDelegate }

func (*BoolProperty) sealed()              {}
func (*ByteProperty) sealed()              {}
func (*IntProperty) sealed()               {}
func (*FloatProperty) sealed()             {}
func (*EnumProperty) sealed()              {}
func (*NameProperty) sealed()              {}
func (*StrProperty) sealed()               {}
func (*ObjectProperty) sealed()            {}
func (*StructProperty) sealed()            {}
func (*ArrayProperty) sealed()             {}
func (*VectorProperty) sealed()            {}
func (*RotatorProperty) sealed()           {}
func (*MulticastDelegateProperty) sealed() {}

// Children returns the nested list of a container property, or nil.
func Children(p Property) []Property {
	switch p := p.(type) {
	case *StructProperty:
		return p.Value
	case *ArrayProperty:
		return p.Value
	}
	return nil
}

// CloneProperties deep-copies a property list. Name and index references
// are copied as values, so the clone still belongs to the source graph.
func CloneProperties(props []Property) []Property {
	if props == nil {
		return nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		out[i] = cloneProperty(p)
	}
	return out
}

func cloneProperty(p Property) Property {
	switch p := p.(type) {
	case *BoolProperty:
		c := *p
		return &c
	case *ByteProperty:
		c := *p
		return &c
	case *IntProperty:
		c := *p
		return &c
	case *FloatProperty:
		c := *p
		return &c
	case *EnumProperty:
		c := *p
		c.EnumType = cloneRef(p.EnumType)
		c.Value = cloneRef(p.Value)
		return &c
	case *NameProperty:
		c := *p
		return &c
	case *StrProperty:
		c := *p
		return &c
	case *ObjectProperty:
		c := *p
		return &c
	case *StructProperty:
		c := *p
		c.StructType = cloneRef(p.StructType)
		c.Value = CloneProperties(p.Value)
		return &c
	case *ArrayProperty:
		c := *p
		c.Value = CloneProperties(p.Value)
		return &c
	case *VectorProperty:
		c := *p
		return &c
	case *RotatorProperty:
		c := *p
		return &c
	case *MulticastDelegateProperty:
		c := *p
		c.Value = append([]byte(nil), p.Value...)
		return &c
	}
	panic("asset: unknown property type")
}

func cloneRef(r *NameRef) *NameRef {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
