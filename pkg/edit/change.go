package edit

import (
	"fmt"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

// ChangeKind classifies a [Change].
type ChangeKind string

const (
	ChangeName         ChangeKind = "name"
	ChangeImportOuter  ChangeKind = "import-outer"
	ChangeImportRename ChangeKind = "import-rename"
	ChangeActorRemoved ChangeKind = "actor-removed"
	ChangeProperty     ChangeKind = "property"
)

// Change describes one mutation applied to a graph, for the operator.
type Change struct {
	Kind ChangeKind
	// Target is the affected export or import; null for name table changes.
	Target asset.Index
	// Subject names what was changed: an import name, a property path.
	Subject string
	Old     string
	New     string
}

// String renders the change the way the CLI reports it.
func (c Change) String() string {
	switch c.Kind {
	case ChangeName:
		return fmt.Sprintf("Updated name: %s -> %s", c.Old, c.New)
	case ChangeImportOuter:
		return fmt.Sprintf("Updated import: %s %s: outer %s -> %s", c.Target, c.Subject, c.Old, c.New)
	case ChangeImportRename:
		return fmt.Sprintf("Renamed import: %s %s -> %s", c.Target, c.Old, c.New)
	case ChangeActorRemoved:
		return fmt.Sprintf("Removed actor from %s: %s: %s", asset.LevelRootName, c.Target, c.Subject)
	case ChangeProperty:
		return fmt.Sprintf("Edited export: %s: %s = %s (was %s)", c.Target, c.Subject, c.New, c.Old)
	}
	return fmt.Sprintf("%s %s %s: %s -> %s", c.Kind, c.Target, c.Subject, c.Old, c.New)
}
