package edit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/asset/assettest"
	"github.com/matzehuels/assetgraft/pkg/edit"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

func actorRaws(g *asset.Graph) []int32 {
	_, level, _ := g.LevelRoot()
	out := []int32{}
	for _, a := range level.Actors {
		out = append(out, a.Raw())
	}
	return out
}

func TestDisableActorByIndex(t *testing.T) {
	g := assettest.Arena().G

	sel, err := edit.ParseIndexSelector("3")
	if err != nil {
		t.Fatalf("ParseIndexSelector() error = %v", err)
	}
	changes, err := edit.DisableActors(g, []edit.Selector{sel})
	if err != nil {
		t.Fatalf("DisableActors() error = %v", err)
	}

	if diff := cmp.Diff([]int32{2}, actorRaws(g)); diff != "" {
		t.Errorf("actors mismatch (-want +got):\n%s", diff)
	}
	if len(changes) != 1 || changes[0].Target.Raw() != 3 || changes[0].Subject != "Door" {
		t.Errorf("changes = %+v, want one removal of 3 Door", changes)
	}
	// detached, not deleted
	if len(g.Exports) != 4 || g.ObjectName(asset.FromRaw(3)) != "Door" {
		t.Error("export 3 should still be present after disabling")
	}
}

func TestDisableActorByName(t *testing.T) {
	b := assettest.Arena()
	extra := b.Export("Door", asset.Null(), asset.FromRaw(1))
	b.AddActors(asset.FromRaw(1), extra)
	g := b.G

	changes, err := edit.DisableActors(g, []edit.Selector{edit.ByName("Door"), edit.ByIndex(3)})
	if err != nil {
		t.Fatalf("DisableActors() error = %v", err)
	}
	if diff := cmp.Diff([]int32{2}, actorRaws(g)); diff != "" {
		t.Errorf("actors mismatch (-want +got):\n%s", diff)
	}
	if len(changes) != 2 {
		t.Errorf("changes = %d, want 2 (duplicate selection reported once)", len(changes))
	}
}

func TestDisableActorsErrors(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *asset.Graph
		selectors []edit.Selector
		code      apperr.Code
	}{
		{
			name:      "unknown name",
			build:     func() *asset.Graph { return assettest.Arena().G },
			selectors: []edit.Selector{edit.ByName("Window")},
			code:      apperr.ErrCodeAmbiguousRootSelector,
		},
		{
			name:      "index out of range",
			build:     func() *asset.Graph { return assettest.Arena().G },
			selectors: []edit.Selector{edit.ByIndex(9)},
			code:      apperr.ErrCodeAmbiguousRootSelector,
		},
		{
			name: "no level root",
			build: func() *asset.Graph {
				b := assettest.New()
				b.Export("Door", asset.Null(), asset.Null())
				return b.G
			},
			selectors: []edit.Selector{edit.ByIndex(1)},
			code:      apperr.ErrCodeLevelRootNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := edit.DisableActors(tt.build(), tt.selectors)
			if !apperr.Is(err, tt.code) {
				t.Errorf("DisableActors() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDisableActorsNothingSelected(t *testing.T) {
	b := assettest.New()
	changes, err := edit.DisableActors(b.G, nil)
	if err != nil || changes != nil {
		t.Errorf("DisableActors(nil) = %v, %v; want nil, nil without needing a level", changes, err)
	}
}

func TestParseIndexSelector(t *testing.T) {
	for _, in := range []string{"", "0", "-2", "x3"} {
		if _, err := edit.ParseIndexSelector(in); !apperr.Is(err, apperr.ErrCodeMalformedExpression) {
			t.Errorf("ParseIndexSelector(%q) error = %v, want %s", in, err, apperr.ErrCodeMalformedExpression)
		}
	}
}
