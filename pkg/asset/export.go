package asset

import "slices"

// ExportKind names the payload variant of an [Export].
type ExportKind int

const (
	// ExportNormal carries an ordered property list.
	ExportNormal ExportKind = iota
	// ExportLevel additionally carries the level's actor list.
	ExportLevel
	// ExportRaw carries only opaque bytes this package does not interpret.
	ExportRaw
)

// String returns the variant name used on disk.
func (k ExportKind) String() string {
	switch k {
	case ExportNormal:
		return "Normal"
	case ExportLevel:
		return "Level"
	case ExportRaw:
		return "Raw"
	}
	return "Unknown"
}

// LevelRootName is the object name of the export that owns a map's actors.
const LevelRootName = "PersistentLevel"

// Import describes an object defined outside the package.
type Import struct {
	ClassPackage NameRef
	ClassName    NameRef
	ObjectName   NameRef
	// Outer is the parent import, or null for a root-level package import.
	Outer Index
}

// ExportBase is the record every export carries regardless of payload.
type ExportBase struct {
	ObjectName NameRef
	Class      Index
	Super      Index
	Template   Index
	Outer      Index

	// Ordering constraints for the engine's construction scheduler: the
	// referenced object must be created before this one is serialized,
	// serialized before this one is created, or created before this one is
	// created.
	CreateBeforeSerialization []Index
	SerializationBeforeCreate []Index
	CreateBeforeCreate        []Index
}

// Export is an object owned by the package.
type Export struct {
	ExportBase
	Kind ExportKind

	// Properties is the field data of Normal and Level exports.
	Properties []Property
	// Actors lists the level's actors; only meaningful for ExportLevel.
	Actors []Index
	// Extra holds bytes following the interpreted payload, or the whole
	// payload of a Raw export.
	Extra []byte
}

// HasProperties reports whether the payload variant carries a property list.
func (e *Export) HasProperties() bool {
	return e.Kind == ExportNormal || e.Kind == ExportLevel
}

// Dependencies returns every index in the three dependency lists, in list order.
func (b *ExportBase) Dependencies() []Index {
	out := make([]Index, 0, len(b.CreateBeforeSerialization)+len(b.SerializationBeforeCreate)+len(b.CreateBeforeCreate))
	out = append(out, b.CreateBeforeSerialization...)
	out = append(out, b.SerializationBeforeCreate...)
	return append(out, b.CreateBeforeCreate...)
}

// Clone returns a deep copy of e. References are copied as values and still
// belong to the graph e came from.
func (e *Export) Clone() Export {
	c := *e
	c.CreateBeforeSerialization = slices.Clone(e.CreateBeforeSerialization)
	c.SerializationBeforeCreate = slices.Clone(e.SerializationBeforeCreate)
	c.CreateBeforeCreate = slices.Clone(e.CreateBeforeCreate)
	c.Properties = CloneProperties(e.Properties)
	c.Actors = slices.Clone(e.Actors)
	c.Extra = slices.Clone(e.Extra)
	return c
}
