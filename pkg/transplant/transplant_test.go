package transplant_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/asset/assettest"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/transplant"
)

var quiet = log.New(io.Discard)

func raws(xs []asset.Index) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = x.Raw()
	}
	return out
}

func newTransplanter(t *testing.T, donor, target *asset.Graph) *transplant.Transplanter {
	t.Helper()
	tr, err := transplant.New(donor, target, quiet)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tr
}

func TestTransplantDoor(t *testing.T) {
	donor := assettest.Arena().G
	target := assettest.Arena().G

	res, err := newTransplanter(t, donor, target).Transplant(asset.FromRaw(3))
	if err != nil {
		t.Fatalf("Transplant() error = %v", err)
	}

	if len(target.Exports) != 6 || len(target.Imports) != 5 {
		t.Fatalf("target has %d exports, %d imports; want 6, 5", len(target.Exports), len(target.Imports))
	}

	wantPairs := []string{"5 <- 3 Door", "6 <- 4 DoorMesh"}
	var gotPairs []string
	for _, p := range res.Exports {
		gotPairs = append(gotPairs, fmt.Sprintf("%s <- %s %s", p.Dst, p.Src, p.Name))
	}
	if diff := cmp.Diff(wantPairs, gotPairs); diff != "" {
		t.Errorf("export pairs mismatch (-want +got):\n%s", diff)
	}
	gotPairs = nil
	for _, p := range res.Imports {
		gotPairs = append(gotPairs, fmt.Sprintf("%s <- %s %s", p.Dst, p.Src, p.Name))
	}
	if diff := cmp.Diff([]string{"-4 <- -2 StaticMeshActor", "-5 <- -1 /Script/Engine"}, gotPairs); diff != "" {
		t.Errorf("import pairs mismatch (-want +got):\n%s", diff)
	}

	door := target.Exports[4]
	if door.Class.Raw() != -4 || door.Outer.Raw() != 1 {
		t.Errorf("door class, outer = %v, %v; want -4, 1", door.Class, door.Outer)
	}
	if diff := cmp.Diff([]int32{6, -4}, raws(door.CreateBeforeSerialization)); diff != "" {
		t.Errorf("door dependencies mismatch (-want +got):\n%s", diff)
	}
	mesh := door.Properties[0].(*asset.ObjectProperty)
	if mesh.Value.Raw() != 6 {
		t.Errorf("Mesh = %v, want 6", mesh.Value)
	}
	if got := target.Exports[5].Outer.Raw(); got != 5 {
		t.Errorf("DoorMesh outer = %d, want 5", got)
	}
	if got := target.Imports[3].Outer.Raw(); got != -5 {
		t.Errorf("StaticMeshActor outer = %d, want -5", got)
	}

	level := target.Exports[0]
	if diff := cmp.Diff([]int32{2, 3, 5}, raws(level.Actors)); diff != "" {
		t.Errorf("level actors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{2, 3, 5}, raws(level.CreateBeforeSerialization)); diff != "" {
		t.Errorf("level dependencies mismatch (-want +got):\n%s", diff)
	}
	if res.Root.Dst.Raw() != 5 || res.Root.Name != "Door" {
		t.Errorf("root = %+v, want Door at 5", res.Root)
	}
}

func TestTransplantIndexIsolation(t *testing.T) {
	donor := assettest.Arena().G
	target := assettest.Arena().G
	before := len(target.Exports)

	if _, err := newTransplanter(t, donor, target).Transplant(asset.FromRaw(3)); err != nil {
		t.Fatalf("Transplant() error = %v", err)
	}
	if err := target.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	for i := before; i < len(target.Exports); i++ {
		e := &target.Exports[i]
		refs := append([]asset.Index{e.Class, e.Super, e.Template, e.Outer}, e.Dependencies()...)
		err := asset.Visitor{Object: func(p *asset.ObjectProperty) error {
			refs = append(refs, p.Value)
			return nil
		}}.Walk(e.Properties)
		if err != nil {
			t.Fatal(err)
		}
		for _, x := range refs {
			if !target.Resolves(x) {
				t.Errorf("export %d: %v does not resolve in target", i+1, x)
			}
		}
		if !target.Names.Owns(e.ObjectName) {
			t.Errorf("export %d: object name belongs to another table", i+1)
		}
	}
}

// shape flattens appended exports into table-independent strings.
func shape(g *asset.Graph, from int) []string {
	var out []string
	for i := from; i < len(g.Exports); i++ {
		e := &g.Exports[i]
		s := fmt.Sprintf("%s class=%s outer=%s deps=%v", g.NameOf(e.ObjectName), e.Class, e.Outer, raws(e.Dependencies()))
		_ = asset.Visitor{Any: func(p asset.Property) error {
			s += fmt.Sprintf(" %s:%s", g.NameOf(p.PropertyTag().Name), p.Kind())
			return nil
		}}.Walk(e.Properties)
		out = append(out, s)
	}
	return out
}

func TestTransplantDeterminism(t *testing.T) {
	donor := assettest.Arena().G
	a := assettest.Arena().G
	b := assettest.Arena().G

	if _, err := newTransplanter(t, donor, a).Transplant(asset.FromRaw(3)); err != nil {
		t.Fatal(err)
	}
	if _, err := newTransplanter(t, donor, b).Transplant(asset.FromRaw(3)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shape(a, 4), shape(b, 4)); diff != "" {
		t.Errorf("appended content differs (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Names.Names(), b.Names.Names()); diff != "" {
		t.Errorf("name tables differ (-a +b):\n%s", diff)
	}
}

func TestTransplantLeafActor(t *testing.T) {
	db := assettest.New()
	level := db.Level()
	var lamp asset.Index
	for _, n := range []string{"A", "B", "C", "D", "E", "F"} {
		lamp = db.Export("Lamp"+n, asset.Null(), level, db.IntProp("Intensity", 5))
	}
	target := assettest.Arena().G

	res, err := newTransplanter(t, db.G, target).Transplant(lamp)
	if err != nil {
		t.Fatalf("Transplant() error = %v", err)
	}
	if len(res.Exports) != 1 || len(res.Imports) != 0 {
		t.Errorf("copied %d exports, %d imports; want 1, 0", len(res.Exports), len(res.Imports))
	}
	if len(target.Exports) != 5 || len(target.Imports) != 3 {
		t.Errorf("target has %d exports, %d imports; want 5, 3", len(target.Exports), len(target.Imports))
	}
	actors := target.Exports[0].Actors
	if len(actors) != 3 || actors[2] != res.Root.Dst || res.Root.Dst.Raw() != 5 {
		t.Errorf("level actors = %v, want one new entry equal to %v", raws(actors), res.Root.Dst)
	}
}

func TestTransplantAllSequential(t *testing.T) {
	donor := assettest.Arena().G
	target := assettest.Arena().G

	results, err := newTransplanter(t, donor, target).TransplantAll([]asset.Index{asset.FromRaw(3), asset.FromRaw(3)})
	if err != nil {
		t.Fatalf("TransplantAll() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[1].Root.Dst.Raw() != 7 || results[1].Imports[0].Dst.Raw() != -6 {
		t.Errorf("second root at %v with first import %v; want 7 and -6", results[1].Root.Dst, results[1].Imports[0].Dst)
	}
	if diff := cmp.Diff([]int32{2, 3, 5, 7}, raws(target.Exports[0].Actors)); diff != "" {
		t.Errorf("level actors mismatch (-want +got):\n%s", diff)
	}
	if err := target.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestTransplantFollowsOneImportLevel(t *testing.T) {
	db := assettest.New()
	class := db.Import("/Script/Engine", "BlueprintGeneratedClass", "Crate_C", asset.Null())
	cdo := db.Import("/Game/Props", "Crate_C", "Default__Crate_C", class)
	level := db.Level()
	crate := db.Export("Crate", cdo, level)
	db.DependsOn(crate, cdo)
	target := assettest.Arena().G

	res, err := newTransplanter(t, db.G, target).Transplant(crate)
	if err != nil {
		t.Fatalf("Transplant() error = %v", err)
	}
	if len(res.Imports) != 2 || res.Imports[0].Src != cdo || res.Imports[1].Src != class {
		t.Fatalf("copied imports %+v, want the dependency and its direct outer", res.Imports)
	}
	if got := target.Imports[4].Outer; !got.IsNull() {
		t.Errorf("parent outer = %v, want null", got)
	}
	if got := target.Imports[3].Outer; got != res.Imports[1].Dst {
		t.Errorf("child outer = %v, want %v", got, res.Imports[1].Dst)
	}
}

func TestTransplantRejectsDeepImportChain(t *testing.T) {
	db := assettest.New()
	pkg := db.Import("/Script/CoreUObject", "Package", "/Game/Props", asset.Null())
	class := db.Import("/Script/Engine", "BlueprintGeneratedClass", "Crate_C", pkg)
	cdo := db.Import("/Game/Props", "Crate_C", "Default__Crate_C", class)
	level := db.Level()
	crate := db.Export("Crate", cdo, level)
	db.DependsOn(crate, cdo)
	target := assettest.Arena().G
	exports, imports := len(target.Exports), len(target.Imports)

	_, err := newTransplanter(t, db.G, target).Transplant(crate)
	if !apperr.Is(err, apperr.ErrCodeRemapConsistency) {
		t.Fatalf("Transplant() error = %v, want %s", err, apperr.ErrCodeRemapConsistency)
	}
	if len(target.Exports) != exports || len(target.Imports) != imports {
		t.Errorf("target changed to %d exports, %d imports; want %d, %d",
			len(target.Exports), len(target.Imports), exports, imports)
	}
	if got := target.Exports[0].Actors; len(got) != 2 {
		t.Errorf("level actors = %v, want the original two", raws(got))
	}
}

func TestTransplantPreservesNameNumbers(t *testing.T) {
	db := assettest.New()
	level := db.Level()
	x := db.Export("Torch", asset.Null(), level)
	db.G.Exports[x.Position()].ObjectName.Number = 4
	target := assettest.Arena().G

	if _, err := newTransplanter(t, db.G, target).Transplant(x); err != nil {
		t.Fatal(err)
	}
	got := target.Exports[len(target.Exports)-1].ObjectName
	if target.NameOf(got) != "Torch" || got.Number != 4 {
		t.Errorf("object name = %q_%d, want Torch_4", target.NameOf(got), got.Number)
	}
}

func TestTransplantErrors(t *testing.T) {
	tests := []struct {
		name  string
		donor func() (*asset.Graph, asset.Index)
		code  apperr.Code
	}{
		{
			name: "str property",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.New()
				level := b.Level()
				x := b.Export("Sign", asset.Null(), level, b.StructProp("Text", "", b.StrProp("Body", "hello")))
				return b.G, x
			},
			code: apperr.ErrCodeUnsupportedPropertyKind,
		},
		{
			name: "object outside closure",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.New()
				level := b.Level()
				other := b.Export("Other", asset.Null(), level)
				x := b.Export("Pointer", asset.Null(), level, b.ObjectProp("Target", other))
				return b.G, x
			},
			code: apperr.ErrCodeRemapConsistency,
		},
		{
			name: "level root in closure",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.New()
				level := b.Level()
				x := b.Export("Clinger", asset.Null(), level)
				b.DependsOn(x, level)
				return b.G, x
			},
			code: apperr.ErrCodeRemapConsistency,
		},
		{
			name: "raw export",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.New()
				b.Level()
				x := b.Export("Blob", asset.Null(), asset.Null())
				b.G.Exports[x.Position()].Kind = asset.ExportRaw
				return b.G, x
			},
			code: apperr.ErrCodeUnsupportedExport,
		},
		{
			name: "root out of range",
			donor: func() (*asset.Graph, asset.Index) {
				return assettest.Arena().G, asset.FromRaw(40)
			},
			code: apperr.ErrCodeExportNotFound,
		},
		{
			name: "dangling dependency",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.Arena()
				b.DependsOn(asset.FromRaw(4), asset.FromRaw(-9))
				return b.G, asset.FromRaw(3)
			},
			code: apperr.ErrCodeDanglingReference,
		},
		{
			name: "root is an import",
			donor: func() (*asset.Graph, asset.Index) {
				return assettest.Arena().G, asset.FromRaw(-1)
			},
			code: apperr.ErrCodeExportNotFound,
		},
		{
			name: "donor without level",
			donor: func() (*asset.Graph, asset.Index) {
				b := assettest.New()
				return b.G, b.Export("Orphan", asset.Null(), asset.Null())
			},
			code: apperr.ErrCodeLevelRootNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donor, root := tt.donor()
			target := assettest.Arena().G
			_, err := newTransplanter(t, donor, target).Transplant(root)
			if !apperr.Is(err, tt.code) {
				t.Fatalf("Transplant() error = %v, want %s", err, tt.code)
			}
			if len(target.Exports) != 4 || len(target.Imports) != 3 || len(target.Exports[0].Actors) != 2 {
				t.Error("failed transplant modified the target lists")
			}
		})
	}
}

func TestNewRejectsSameGraph(t *testing.T) {
	g := assettest.Arena().G
	if _, err := transplant.New(g, g, nil); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("New(g, g) error = %v, want %s", err, apperr.ErrCodeInvalidInput)
	}
	if _, err := transplant.New(nil, g, nil); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("New(nil, g) error = %v, want %s", err, apperr.ErrCodeInvalidInput)
	}
}
