package asset

import "fmt"

// IndexKind tells which list, if any, an [Index] addresses.
type IndexKind uint8

const (
	// IndexNull is the absent reference.
	IndexNull IndexKind = iota
	// IndexExport addresses the export list.
	IndexExport
	// IndexImport addresses the import list.
	IndexImport
)

// Index is a reference to an export, an import, or nothing.
//
// On disk the same information is a signed integer: 0 is null, i > 0 is
// export i-1, i < 0 is import -i-1. Index keeps the list and the 0-based
// position apart so that sign and off-by-one mistakes cannot creep into
// edit code; [FromRaw] and [Index.Raw] convert at the codec boundary.
//
// An Index is only meaningful relative to the graph whose lists it
// addresses. Index is comparable and usable as a map key.
type Index struct {
	kind IndexKind
	pos  uint32
}

// Null returns the absent reference.
func Null() Index { return Index{} }

// ExportAt returns a reference to the export at 0-based position pos.
func ExportAt(pos int) Index {
	return Index{kind: IndexExport, pos: uint32(pos)}
}

// ImportAt returns a reference to the import at 0-based position pos.
func ImportAt(pos int) Index {
	return Index{kind: IndexImport, pos: uint32(pos)}
}

// FromRaw converts the signed on-disk convention to an Index.
func FromRaw(raw int32) Index {
	switch {
	case raw > 0:
		return ExportAt(int(raw) - 1)
	case raw < 0:
		return ImportAt(int(-int64(raw)) - 1)
	default:
		return Null()
	}
}

// Raw converts x to the signed on-disk convention.
func (x Index) Raw() int32 {
	switch x.kind {
	case IndexExport:
		return int32(x.pos) + 1
	case IndexImport:
		return -int32(x.pos) - 1
	default:
		return 0
	}
}

// Kind returns which list x addresses.
func (x Index) Kind() IndexKind { return x.kind }

// Position returns the 0-based position in the addressed list, or -1 for null.
func (x Index) Position() int {
	if x.kind == IndexNull {
		return -1
	}
	return int(x.pos)
}

// IsNull reports whether x is the absent reference.
func (x Index) IsNull() bool { return x.kind == IndexNull }

// IsExport reports whether x addresses the export list.
func (x Index) IsExport() bool { return x.kind == IndexExport }

// IsImport reports whether x addresses the import list.
func (x Index) IsImport() bool { return x.kind == IndexImport }

// String formats x in the signed convention operators see in dumps.
func (x Index) String() string {
	return fmt.Sprintf("%d", x.Raw())
}
