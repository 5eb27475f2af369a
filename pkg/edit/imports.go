package edit

import (
	"strings"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// DisableImport detaches every import whose object name is name from its
// outer scope by setting the outer index to null. The import is then read
// as top-level. Imports that are already top-level are left alone, so
// applying DisableImport twice is the same as applying it once.
func DisableImport(g *asset.Graph, name string) []Change {
	var changes []Change
	for _, x := range g.FindImports(name) {
		imp := &g.Imports[x.Position()]
		if imp.Outer.IsNull() {
			continue
		}
		old := imp.Outer
		imp.Outer = asset.Null()
		changes = append(changes, Change{
			Kind:    ChangeImportOuter,
			Target:  x,
			Subject: name,
			Old:     old.String(),
			New:     imp.Outer.String(),
		})
	}
	return changes
}

// RenameImport points the first import named oldName at newName.
//
// newName is interned before the search, matching how the name table is
// prepared for the write even when nothing matches. When no import matches
// the error has code ErrCodeImportNotFound, which callers treat as
// recoverable.
func RenameImport(g *asset.Graph, oldName, newName string) (Change, error) {
	ref := g.Intern(newName)
	matches := g.FindImports(oldName)
	if len(matches) == 0 {
		return Change{}, apperr.New(apperr.ErrCodeImportNotFound, "import %q not found", oldName)
	}
	x := matches[0]
	g.Imports[x.Position()].ObjectName = ref
	return Change{
		Kind:    ChangeImportRename,
		Target:  x,
		Subject: oldName,
		Old:     oldName,
		New:     newName,
	}, nil
}

// ParseRename splits the operator syntax "old>new".
func ParseRename(s string) (oldName, newName string, err error) {
	oldName, newName, ok := strings.Cut(s, ">")
	if !ok || oldName == "" || newName == "" {
		return "", "", apperr.New(apperr.ErrCodeMalformedExpression,
			"rename %q must have the form old>new", s)
	}
	if err := apperr.ValidateName(newName); err != nil {
		return "", "", err
	}
	return oldName, newName, nil
}
