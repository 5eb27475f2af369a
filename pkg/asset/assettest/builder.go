// Package assettest builds small asset graphs for tests.
package assettest

import "github.com/matzehuels/assetgraft/pkg/asset"

// Builder appends imports, exports and properties to a graph with string
// names, interning them as it goes.
type Builder struct {
	G *asset.Graph
}

// New returns a builder over an empty graph.
func New() *Builder {
	return &Builder{G: asset.New()}
}

// Name interns s.
func (b *Builder) Name(s string) asset.NameRef { return b.G.Intern(s) }

// NamePtr interns s and returns a pointer to the reference.
func (b *Builder) NamePtr(s string) *asset.NameRef {
	r := b.G.Intern(s)
	return &r
}

// Import appends an import and returns its index.
func (b *Builder) Import(classPackage, className, objectName string, outer asset.Index) asset.Index {
	return b.G.AppendImport(asset.Import{
		ClassPackage: b.Name(classPackage),
		ClassName:    b.Name(className),
		ObjectName:   b.Name(objectName),
		Outer:        outer,
	})
}

// Export appends a Normal export and returns its index.
func (b *Builder) Export(name string, class, outer asset.Index, props ...asset.Property) asset.Index {
	return b.G.AppendExport(asset.Export{
		ExportBase: asset.ExportBase{
			ObjectName: b.Name(name),
			Class:      class,
			Outer:      outer,
		},
		Kind:       asset.ExportNormal,
		Properties: props,
	})
}

// Level appends the level root export and returns its index.
func (b *Builder) Level(actors ...asset.Index) asset.Index {
	return b.G.AppendExport(asset.Export{
		ExportBase: asset.ExportBase{ObjectName: b.Name(asset.LevelRootName)},
		Kind:       asset.ExportLevel,
		Actors:     actors,
	})
}

// DependsOn appends deps to the create-before-serialization list of x.
func (b *Builder) DependsOn(x asset.Index, deps ...asset.Index) {
	e := &b.G.Exports[x.Position()]
	e.CreateBeforeSerialization = append(e.CreateBeforeSerialization, deps...)
}

// SerializedAfter appends deps to the serialization-before-create list of x.
func (b *Builder) SerializedAfter(x asset.Index, deps ...asset.Index) {
	e := &b.G.Exports[x.Position()]
	e.SerializationBeforeCreate = append(e.SerializationBeforeCreate, deps...)
}

// AddActors appends actors to the actor list of the Level export at x.
func (b *Builder) AddActors(x asset.Index, actors ...asset.Index) {
	e := &b.G.Exports[x.Position()]
	e.Actors = append(e.Actors, actors...)
}

// Tag builds a property tag.
func (b *Builder) Tag(name string) asset.Tag { return asset.Tag{Name: b.Name(name)} }

// NameProp builds a Name property.
func (b *Builder) NameProp(name, value string) *asset.NameProperty {
	return &asset.NameProperty{Tag: b.Tag(name), Value: b.Name(value)}
}

// ObjectProp builds an Object property.
func (b *Builder) ObjectProp(name string, value asset.Index) *asset.ObjectProperty {
	return &asset.ObjectProperty{Tag: b.Tag(name), Value: value}
}

// StructProp builds a Struct property; an empty structType leaves it unset.
func (b *Builder) StructProp(name, structType string, fields ...asset.Property) *asset.StructProperty {
	p := &asset.StructProperty{Tag: b.Tag(name), Value: fields}
	if structType != "" {
		p.StructType = b.NamePtr(structType)
	}
	return p
}

// ArrayProp builds an Array property.
func (b *Builder) ArrayProp(name string, elems ...asset.Property) *asset.ArrayProperty {
	return &asset.ArrayProperty{Tag: b.Tag(name), Value: elems}
}

// VectorProp builds a Vector property.
func (b *Builder) VectorProp(name string, x, y, z float64) *asset.VectorProperty {
	return &asset.VectorProperty{Tag: b.Tag(name), Value: asset.Vector{X: x, Y: y, Z: z}}
}

// RotatorProp builds a Rotator property.
func (b *Builder) RotatorProp(name string, pitch, yaw, roll float64) *asset.RotatorProperty {
	return &asset.RotatorProperty{Tag: b.Tag(name), Value: asset.Vector{X: pitch, Y: yaw, Z: roll}}
}

// IntProp builds an Int property.
func (b *Builder) IntProp(name string, v int32) *asset.IntProperty {
	return &asset.IntProperty{Tag: b.Tag(name), Value: v}
}

// BoolProp builds a Bool property.
func (b *Builder) BoolProp(name string, v bool) *asset.BoolProperty {
	return &asset.BoolProperty{Tag: b.Tag(name), Value: v}
}

// EnumProp builds an Enum property; empty strings leave the parts unset.
func (b *Builder) EnumProp(name, enumType, value string) *asset.EnumProperty {
	p := &asset.EnumProperty{Tag: b.Tag(name)}
	if enumType != "" {
		p.EnumType = b.NamePtr(enumType)
	}
	if value != "" {
		p.Value = b.NamePtr(value)
	}
	return p
}

// StrProp builds a Str property.
func (b *Builder) StrProp(name, value string) *asset.StrProperty {
	return &asset.StrProperty{Tag: b.Tag(name), Value: value}
}

// Arena builds a small map package used across test suites:
//
//	-1 /Script/Engine            (package)
//	-2 StaticMeshActor           (class, outer -1)
//	-3 Default__StaticMeshActor  (template, outer -1)
//	 1 PersistentLevel           (level, actors 2 and 3)
//	 2 PlayerStart               (Name tag, Struct RelativeLocation)
//	 3 Door                      (Object ref to 4)
//	 4 DoorMesh                  (outer 3)
func Arena() *Builder {
	b := New()
	engine := b.Import("/Script/CoreUObject", "Package", "/Script/Engine", asset.Null())
	class := b.Import("/Script/CoreUObject", "Class", "StaticMeshActor", engine)
	template := b.Import("/Script/Engine", "StaticMeshActor", "Default__StaticMeshActor", engine)

	level := b.Level()
	start := b.Export("PlayerStart", class, level,
		b.NameProp("PlayerStartTag", "spawn"),
		b.StructProp("RelativeLocation", "Vector",
			b.VectorProp("RelativeLocation", 10, 20, 30),
		),
		b.StructProp("RelativeRotation", "Rotator",
			b.RotatorProp("RelativeRotation", 0, 90, 0),
		),
	)
	door := b.Export("Door", class, level)
	mesh := b.Export("DoorMesh", class, door)
	b.G.Exports[door.Position()].Properties = []asset.Property{b.ObjectProp("Mesh", mesh)}
	b.G.Exports[start.Position()].Template = template

	b.AddActors(level, start, door)
	b.DependsOn(door, mesh, class)
	b.DependsOn(level, start, door)
	return b
}
