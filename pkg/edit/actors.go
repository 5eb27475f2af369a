package edit

import (
	"slices"
	"strconv"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// Selector picks actors to remove from the level, either by object name or
// by 1-based export index.
type Selector struct {
	Name  string
	Index int
}

// ByName selects every export whose object name is name.
func ByName(name string) Selector { return Selector{Name: name} }

// ByIndex selects the export at 1-based index i.
func ByIndex(i int) Selector { return Selector{Index: i} }

// ParseIndexSelector parses a decimal 1-based export index.
func ParseIndexSelector(s string) (Selector, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return Selector{}, apperr.New(apperr.ErrCodeMalformedExpression,
			"actor index %q must be a positive integer", s)
	}
	return ByIndex(i), nil
}

func (s Selector) resolve(g *asset.Graph) ([]asset.Index, error) {
	if s.Name != "" {
		found := g.FindExports(s.Name)
		if len(found) == 0 {
			return nil, apperr.New(apperr.ErrCodeAmbiguousRootSelector,
				"no export named %q", s.Name)
		}
		return found, nil
	}
	if s.Index < 1 || s.Index > len(g.Exports) {
		return nil, apperr.New(apperr.ErrCodeAmbiguousRootSelector,
			"export index %d out of range (package has %d exports)", s.Index, len(g.Exports))
	}
	return []asset.Index{asset.ExportAt(s.Index - 1)}, nil
}

// DisableActors removes the selected exports from the level root's actor
// list. The exports themselves stay in the package; they are only no
// longer spawned by the level.
//
// Every selector must resolve to at least one export. The level root is
// only required when something was selected.
func DisableActors(g *asset.Graph, selectors []Selector) ([]Change, error) {
	var selected []asset.Index
	for _, s := range selectors {
		found, err := s.resolve(g)
		if err != nil {
			return nil, err
		}
		for _, x := range found {
			if !slices.Contains(selected, x) {
				selected = append(selected, x)
			}
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	_, level, err := g.LevelRoot()
	if err != nil {
		return nil, err
	}

	var changes []Change
	for _, x := range selected {
		if !slices.Contains(level.Actors, x) {
			continue
		}
		changes = append(changes, Change{
			Kind:    ChangeActorRemoved,
			Target:  x,
			Subject: g.ObjectName(x),
		})
	}
	level.Actors = slices.DeleteFunc(level.Actors, func(a asset.Index) bool {
		return slices.Contains(selected, a)
	})
	return changes, nil
}
