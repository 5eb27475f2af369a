package codec

import (
	"fmt"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

// containerFile is the container: everything except export payloads.
type containerFile struct {
	EngineVersion string       `json:"engine_version,omitempty"`
	Names         []string     `json:"names"`
	Imports       []wireImport `json:"imports"`
	Exports       []wireExport `json:"exports"`
}

// payloadFile is the sibling file holding one entry per export, in export order.
type payloadFile struct {
	Exports []wirePayload `json:"exports"`
}

type wireName struct {
	Index  int   `json:"index"`
	Number int32 `json:"number,omitempty"`
}

type wireImport struct {
	ClassPackage wireName `json:"class_package"`
	ClassName    wireName `json:"class_name"`
	ObjectName   wireName `json:"object_name"`
	Outer        int32    `json:"outer,omitempty"`
}

type wireExport struct {
	ObjectName                wireName `json:"object_name"`
	Kind                      string   `json:"kind"`
	Class                     int32    `json:"class,omitempty"`
	Super                     int32    `json:"super,omitempty"`
	Template                  int32    `json:"template,omitempty"`
	Outer                     int32    `json:"outer,omitempty"`
	CreateBeforeSerialization []int32  `json:"create_before_serialization,omitempty"`
	SerializationBeforeCreate []int32  `json:"serialization_before_create,omitempty"`
	CreateBeforeCreate        []int32  `json:"create_before_create,omitempty"`
}

type wirePayload struct {
	Properties []wireProperty `json:"properties,omitempty"`
	Actors     []int32        `json:"actors,omitempty"`
	Extra      []byte         `json:"extra,omitempty"`
}

// wireProperty is the union of every property kind; Kind selects which
// value fields are meaningful.
type wireProperty struct {
	Kind       string         `json:"kind"`
	Name       wireName       `json:"name"`
	Bool       bool           `json:"bool,omitempty"`
	Int        int64          `json:"int,omitempty"`
	Float      float32        `json:"float,omitempty"`
	Str        string         `json:"str,omitempty"`
	Object     int32          `json:"object,omitempty"`
	Value      *wireName      `json:"value,omitempty"`
	EnumType   *wireName      `json:"enum_type,omitempty"`
	StructType *wireName      `json:"struct_type,omitempty"`
	Vector     *[3]float64    `json:"vector,omitempty"`
	Data       []byte         `json:"data,omitempty"`
	Children   []wireProperty `json:"children,omitempty"`
}

var exportKindFromString = map[string]asset.ExportKind{
	asset.ExportNormal.String(): asset.ExportNormal,
	asset.ExportLevel.String():  asset.ExportLevel,
	asset.ExportRaw.String():    asset.ExportRaw,
}

// encoder converts graph records to wire records.
type encoder struct{}

func (encoder) name(r asset.NameRef) wireName {
	return wireName{Index: r.Index(), Number: r.Number}
}

func (e encoder) namePtr(r *asset.NameRef) *wireName {
	if r == nil {
		return nil
	}
	w := e.name(*r)
	return &w
}

func raws(xs []asset.Index) []int32 {
	if len(xs) == 0 {
		return nil
	}
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = x.Raw()
	}
	return out
}

func (e encoder) properties(props []asset.Property) []wireProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]wireProperty, len(props))
	for i, p := range props {
		out[i] = e.property(p)
	}
	return out
}

func (e encoder) property(p asset.Property) wireProperty {
	w := wireProperty{Kind: p.Kind().String(), Name: e.name(p.PropertyTag().Name)}
	switch p := p.(type) {
	case *asset.BoolProperty:
		w.Bool = p.Value
	case *asset.ByteProperty:
		w.Int = int64(p.Value)
	case *asset.IntProperty:
		w.Int = int64(p.Value)
	case *asset.FloatProperty:
		w.Float = p.Value
	case *asset.EnumProperty:
		w.EnumType = e.namePtr(p.EnumType)
		w.Value = e.namePtr(p.Value)
	case *asset.NameProperty:
		w.Value = e.namePtr(&p.Value)
	case *asset.StrProperty:
		w.Str = p.Value
	case *asset.ObjectProperty:
		w.Object = p.Value.Raw()
	case *asset.StructProperty:
		w.StructType = e.namePtr(p.StructType)
		w.Children = e.properties(p.Value)
	case *asset.ArrayProperty:
		w.Children = e.properties(p.Value)
	case *asset.VectorProperty:
		w.Vector = &[3]float64{p.Value.X, p.Value.Y, p.Value.Z}
	case *asset.RotatorProperty:
		w.Vector = &[3]float64{p.Value.X, p.Value.Y, p.Value.Z}
	case *asset.MulticastDelegateProperty:
		w.Data = p.Value
	}
	return w
}

// decoder converts wire records into a graph, resolving name indices
// against the graph's table.
type decoder struct {
	g *asset.Graph
}

func (d decoder) name(w wireName) (asset.NameRef, error) {
	r, err := d.g.Names.Ref(w.Index)
	if err != nil {
		return asset.NameRef{}, err
	}
	r.Number = w.Number
	return r, nil
}

func (d decoder) namePtr(w *wireName) (*asset.NameRef, error) {
	if w == nil {
		return nil, nil
	}
	r, err := d.name(*w)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func indices(raw []int32) []asset.Index {
	if len(raw) == 0 {
		return nil
	}
	out := make([]asset.Index, len(raw))
	for i, r := range raw {
		out[i] = asset.FromRaw(r)
	}
	return out
}

func (d decoder) properties(ws []wireProperty) ([]asset.Property, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]asset.Property, len(ws))
	for i, w := range ws {
		p, err := d.property(w)
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

func (d decoder) property(w wireProperty) (asset.Property, error) {
	kind, ok := asset.ParseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown property kind %q", w.Kind)
	}
	name, err := d.name(w.Name)
	if err != nil {
		return nil, err
	}
	tag := asset.Tag{Name: name}

	switch kind {
	case asset.KindBool:
		return &asset.BoolProperty{Tag: tag, Value: w.Bool}, nil
	case asset.KindByte:
		if w.Int < 0 || w.Int > 255 {
			return nil, fmt.Errorf("byte value %d out of range", w.Int)
		}
		return &asset.ByteProperty{Tag: tag, Value: uint8(w.Int)}, nil
	case asset.KindInt:
		return &asset.IntProperty{Tag: tag, Value: int32(w.Int)}, nil
	case asset.KindFloat:
		return &asset.FloatProperty{Tag: tag, Value: w.Float}, nil
	case asset.KindEnum:
		enumType, err := d.namePtr(w.EnumType)
		if err != nil {
			return nil, err
		}
		value, err := d.namePtr(w.Value)
		if err != nil {
			return nil, err
		}
		return &asset.EnumProperty{Tag: tag, EnumType: enumType, Value: value}, nil
	case asset.KindName:
		if w.Value == nil {
			return nil, fmt.Errorf("name property %d has no value", w.Name.Index)
		}
		value, err := d.name(*w.Value)
		if err != nil {
			return nil, err
		}
		return &asset.NameProperty{Tag: tag, Value: value}, nil
	case asset.KindStr:
		return &asset.StrProperty{Tag: tag, Value: w.Str}, nil
	case asset.KindObject:
		return &asset.ObjectProperty{Tag: tag, Value: asset.FromRaw(w.Object)}, nil
	case asset.KindStruct:
		structType, err := d.namePtr(w.StructType)
		if err != nil {
			return nil, err
		}
		children, err := d.properties(w.Children)
		if err != nil {
			return nil, err
		}
		return &asset.StructProperty{Tag: tag, StructType: structType, Value: children}, nil
	case asset.KindArray:
		children, err := d.properties(w.Children)
		if err != nil {
			return nil, err
		}
		return &asset.ArrayProperty{Tag: tag, Value: children}, nil
	case asset.KindVector, asset.KindRotator:
		var v asset.Vector
		if w.Vector != nil {
			v = asset.Vector{X: w.Vector[0], Y: w.Vector[1], Z: w.Vector[2]}
		}
		if kind == asset.KindVector {
			return &asset.VectorProperty{Tag: tag, Value: v}, nil
		}
		return &asset.RotatorProperty{Tag: tag, Value: v}, nil
	case asset.KindMulticastDelegate:
		return &asset.MulticastDelegateProperty{Tag: tag, Value: w.Data}, nil
	}
	return nil, fmt.Errorf("unhandled property kind %s", kind)
}
