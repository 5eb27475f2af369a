package asset

import (
	"github.com/google/uuid"

	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// Graph is the in-memory object graph of one package: its name table, its
// import list and its export list.
//
// Export and import order is significant because an [Index] encodes a
// position. New entries are appended; existing entries are never reordered
// or removed, so every index handed out earlier stays valid.
//
// Graph is not safe for concurrent use.
type Graph struct {
	Names   *NameTable
	Imports []Import
	Exports []Export

	// EngineVersion is carried through load and save untouched.
	EngineVersion string
}

// New creates an empty graph with its own name table.
func New() *Graph {
	return &Graph{Names: NewNameTable()}
}

// ID returns the identity of the graph's name table.
func (g *Graph) ID() uuid.UUID { return g.Names.ID() }

// Intern adds s to the name table if needed and returns its reference.
func (g *Graph) Intern(s string) NameRef { return g.Names.Intern(s) }

// NameOf resolves a reference known to belong to g.
func (g *Graph) NameOf(r NameRef) string { return g.Names.String(r) }

// Export returns the export x addresses.
func (g *Graph) Export(x Index) (*Export, error) {
	if !x.IsExport() {
		return nil, apperr.New(apperr.ErrCodeExportNotFound, "index %s is not an export", x)
	}
	if x.Position() >= len(g.Exports) {
		return nil, apperr.New(apperr.ErrCodeExportNotFound,
			"export %s out of range (package has %d exports)", x, len(g.Exports))
	}
	return &g.Exports[x.Position()], nil
}

// Import returns the import x addresses.
func (g *Graph) Import(x Index) (*Import, error) {
	if !x.IsImport() {
		return nil, apperr.New(apperr.ErrCodeImportNotFound, "index %s is not an import", x)
	}
	if x.Position() >= len(g.Imports) {
		return nil, apperr.New(apperr.ErrCodeImportNotFound,
			"import %s out of range (package has %d imports)", x, len(g.Imports))
	}
	return &g.Imports[x.Position()], nil
}

// Resolves reports whether x is null or addresses an existing entry of g.
func (g *Graph) Resolves(x Index) bool {
	switch x.Kind() {
	case IndexExport:
		return x.Position() < len(g.Exports)
	case IndexImport:
		return x.Position() < len(g.Imports)
	}
	return true
}

// NextExport returns the index the next appended export will receive.
func (g *Graph) NextExport() Index { return ExportAt(len(g.Exports)) }

// NextImport returns the index the next appended import will receive.
func (g *Graph) NextImport() Index { return ImportAt(len(g.Imports)) }

// AppendExport adds e at the end of the export list and returns its index.
func (g *Graph) AppendExport(e Export) Index {
	x := g.NextExport()
	g.Exports = append(g.Exports, e)
	return x
}

// AppendImport adds imp at the end of the import list and returns its index.
func (g *Graph) AppendImport(imp Import) Index {
	x := g.NextImport()
	g.Imports = append(g.Imports, imp)
	return x
}

// ObjectName returns the object name behind x, or "" for null or a
// reference g cannot resolve.
func (g *Graph) ObjectName(x Index) string {
	var ref NameRef
	switch {
	case x.IsExport() && g.Resolves(x):
		ref = g.Exports[x.Position()].ObjectName
	case x.IsImport() && g.Resolves(x):
		ref = g.Imports[x.Position()].ObjectName
	default:
		return ""
	}
	s, err := g.Names.Lookup(ref)
	if err != nil {
		return ""
	}
	return s
}

// FindExports returns every export whose object name is name, in list order.
func (g *Graph) FindExports(name string) []Index {
	var out []Index
	for i := range g.Exports {
		if g.Names.Equal(g.Exports[i].ObjectName, name) {
			out = append(out, ExportAt(i))
		}
	}
	return out
}

// FindImports returns every import whose object name is name, in list order.
func (g *Graph) FindImports(name string) []Index {
	var out []Index
	for i := range g.Imports {
		if g.Names.Equal(g.Imports[i].ObjectName, name) {
			out = append(out, ImportAt(i))
		}
	}
	return out
}

// LevelRoot locates the first Level export named [LevelRootName].
func (g *Graph) LevelRoot() (Index, *Export, error) {
	for i := range g.Exports {
		e := &g.Exports[i]
		if e.Kind != ExportLevel || !g.Names.Equal(e.ObjectName, LevelRootName) {
			continue
		}
		return ExportAt(i), e, nil
	}
	return Null(), nil, apperr.New(apperr.ErrCodeLevelRootNotFound,
		"no Level export named %q", LevelRootName)
}
