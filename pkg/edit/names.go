package edit

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

// RetargetNames rewrites every name-table entry containing oldStem so that
// it contains newStem instead. Packages name themselves inside their own
// name table (their path, their generated class), so a package written
// under a new file name has to carry the new name internally as well.
//
// Nothing happens when oldStem is empty or equal to newStem.
func RetargetNames(g *asset.Graph, oldStem, newStem string) []Change {
	var changes []Change
	for _, c := range g.Names.RenameMatching(oldStem, newStem) {
		changes = append(changes, Change{
			Kind: ChangeName,
			Old:  c.Old,
			New:  c.New,
		})
	}
	return changes
}

// Stem returns the file name of path without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
