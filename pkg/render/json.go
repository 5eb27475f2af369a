package render

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

type jsonOutput struct {
	EngineVersion string       `json:"engine_version,omitempty"`
	Names         int          `json:"names"`
	Imports       []jsonImport `json:"imports"`
	Exports       []jsonExport `json:"exports"`
}

type jsonImport struct {
	Index        int32  `json:"index"`
	ObjectName   string `json:"object_name"`
	ClassPackage string `json:"class_package"`
	ClassName    string `json:"class_name"`
	Outer        int32  `json:"outer"`
}

type jsonExport struct {
	Index                     int32          `json:"index"`
	ObjectName                string         `json:"object_name"`
	Kind                      string         `json:"kind"`
	Class                     int32          `json:"class"`
	Super                     int32          `json:"super,omitempty"`
	Template                  int32          `json:"template,omitempty"`
	Outer                     int32          `json:"outer"`
	CreateBeforeSerialization []int32        `json:"create_before_serialization,omitempty"`
	SerializationBeforeCreate []int32        `json:"serialization_before_create,omitempty"`
	CreateBeforeCreate        []int32        `json:"create_before_create,omitempty"`
	Actors                    []int32        `json:"actors,omitempty"`
	Properties                []jsonProperty `json:"properties,omitempty"`
	ExtraBytes                int            `json:"extra_bytes,omitempty"`
}

type jsonProperty struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Type     string         `json:"type,omitempty"`
	Value    any            `json:"value,omitempty"`
	Children []jsonProperty `json:"children,omitempty"`
}

// JSON writes g to w with every name resolved to its string and every
// index in signed form.
func JSON(w io.Writer, g *asset.Graph) error {
	out := jsonOutput{
		EngineVersion: g.EngineVersion,
		Names:         g.Names.Len(),
		Imports:       make([]jsonImport, len(g.Imports)),
		Exports:       make([]jsonExport, len(g.Exports)),
	}
	for i := range g.Imports {
		imp := &g.Imports[i]
		out.Imports[i] = jsonImport{
			Index:        asset.ImportAt(i).Raw(),
			ObjectName:   name(g, imp.ObjectName),
			ClassPackage: name(g, imp.ClassPackage),
			ClassName:    name(g, imp.ClassName),
			Outer:        imp.Outer.Raw(),
		}
	}
	for i := range g.Exports {
		e := &g.Exports[i]
		je := jsonExport{
			Index:                     asset.ExportAt(i).Raw(),
			ObjectName:                name(g, e.ObjectName),
			Kind:                      e.Kind.String(),
			Class:                     e.Class.Raw(),
			Super:                     e.Super.Raw(),
			Template:                  e.Template.Raw(),
			Outer:                     e.Outer.Raw(),
			CreateBeforeSerialization: raws(e.CreateBeforeSerialization),
			SerializationBeforeCreate: raws(e.SerializationBeforeCreate),
			CreateBeforeCreate:        raws(e.CreateBeforeCreate),
			ExtraBytes:                len(e.Extra),
		}
		if e.Kind == asset.ExportLevel {
			je.Actors = raws(e.Actors)
		}
		if e.HasProperties() {
			je.Properties = jsonProperties(g, e.Properties)
		}
		out.Exports[i] = je
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonProperties(g *asset.Graph, props []asset.Property) []jsonProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]jsonProperty, len(props))
	for i, p := range props {
		jp := jsonProperty{
			Name: name(g, p.PropertyTag().Name),
			Kind: p.Kind().String(),
		}
		switch p := p.(type) {
		case *asset.BoolProperty:
			jp.Value = p.Value
		case *asset.ByteProperty:
			jp.Value = p.Value
		case *asset.IntProperty:
			jp.Value = p.Value
		case *asset.FloatProperty:
			jp.Value = p.Value
		case *asset.EnumProperty:
			if p.EnumType != nil {
				jp.Type = name(g, *p.EnumType)
			}
			if p.Value != nil {
				jp.Value = name(g, *p.Value)
			}
		case *asset.NameProperty:
			jp.Value = name(g, p.Value)
		case *asset.StrProperty:
			jp.Value = p.Value
		case *asset.ObjectProperty:
			jp.Value = p.Value.Raw()
		case *asset.VectorProperty:
			jp.Value = [3]float64{p.Value.X, p.Value.Y, p.Value.Z}
		case *asset.RotatorProperty:
			jp.Value = [3]float64{p.Value.X, p.Value.Y, p.Value.Z}
		case *asset.MulticastDelegateProperty:
			jp.Value = p.Value
		case *asset.StructProperty:
			if p.StructType != nil {
				jp.Type = name(g, *p.StructType)
			}
		}
		jp.Children = jsonProperties(g, asset.Children(p))
		out[i] = jp
	}
	return out
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
