package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/edit"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/plan"
)

const tomlPlan = `
disable_imports = ["Default__BP_Door_C"]
rename_imports = ["BP_Door_C>BP_Gate_C"]
disable_actors_by_name = ["PlayerStart"]
disable_actors_by_index = [3]
edit_exports = ["5.RelativeLocation.RelativeLocation=1,2,3"]
transplant_donor = "Donor.umap"
actors_to_transplant = [7]
`

const yamlPlan = `
disable_imports: [Default__BP_Door_C]
rename_imports: ["BP_Door_C>BP_Gate_C"]
disable_actors_by_name: [PlayerStart]
disable_actors_by_index: [3]
edit_exports: ["5.RelativeLocation.RelativeLocation=1,2,3"]
transplant_donor: Donor.umap
actors_to_transplant: [7]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	want := &plan.Plan{
		DisableImports:       []string{"Default__BP_Door_C"},
		RenameImports:        []string{"BP_Door_C>BP_Gate_C"},
		DisableActorsByName:  []string{"PlayerStart"},
		DisableActorsByIndex: []int{3},
		EditExports:          []string{"5.RelativeLocation.RelativeLocation=1,2,3"},
		TransplantDonor:      "Donor.umap",
		ActorsToTransplant:   []int{7},
	}
	tests := []struct {
		file    string
		content string
	}{
		{"plan.toml", tomlPlan},
		{"plan.yaml", yamlPlan},
		{"plan.YML", yamlPlan},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := plan.Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    apperr.Code
	}{
		{"unknown extension", "plan.json", `{}`, apperr.ErrCodeInvalidInput},
		{"unknown toml key", "plan.toml", `disable_import = ["X"]`, apperr.ErrCodeInvalidInput},
		{"unknown yaml key", "plan.yaml", "disable_import: [X]\n", apperr.ErrCodeInvalidInput},
		{"bad toml", "plan.toml", `disable_imports = [`, apperr.ErrCodeInvalidInput},
		{"wrong type", "plan.yaml", "actors_to_transplant: [seven]\n", apperr.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plan.Load(writeFile(t, tt.file, tt.content))
			if !apperr.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := plan.Load(filepath.Join(t.TempDir(), "missing.toml")); !apperr.Is(err, apperr.ErrCodeInputNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, apperr.ErrCodeInputNotFound)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	p, err := plan.Load(writeFile(t, "plan.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !p.Empty() {
		t.Error("empty file should give an empty plan")
	}
}

func TestMerge(t *testing.T) {
	p := &plan.Plan{DisableImports: []string{"A"}, TransplantDonor: "File.umap", ActorsToTransplant: []int{2}}
	p.Merge(&plan.Plan{DisableImports: []string{"B"}, ActorsToTransplant: []int{4}})
	p.Merge(nil)

	if diff := cmp.Diff([]string{"A", "B"}, p.DisableImports); diff != "" {
		t.Errorf("DisableImports mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 4}, p.ActorsToTransplant); diff != "" {
		t.Errorf("ActorsToTransplant mismatch (-want +got):\n%s", diff)
	}
	if p.TransplantDonor != "File.umap" {
		t.Errorf("TransplantDonor = %q, want it kept when the merged plan has none", p.TransplantDonor)
	}

	p.Merge(&plan.Plan{TransplantDonor: "Flag.umap"})
	if p.TransplantDonor != "Flag.umap" {
		t.Errorf("TransplantDonor = %q, want Flag.umap", p.TransplantDonor)
	}
}

func TestEmpty(t *testing.T) {
	if !(&plan.Plan{}).Empty() {
		t.Error("zero plan should be empty")
	}
	if !(&plan.Plan{TransplantDonor: "Donor.umap"}).Empty() {
		t.Error("a donor without roots requests nothing")
	}
	if (&plan.Plan{DisableActorsByIndex: []int{1}}).Empty() {
		t.Error("plan with an actor index should not be empty")
	}
}

func TestParse(t *testing.T) {
	p := &plan.Plan{
		DisableImports:       []string{"X"},
		RenameImports:        []string{"A>B"},
		DisableActorsByName:  []string{"Door"},
		DisableActorsByIndex: []int{3},
		EditExports:          []string{"2.PlayerStartTag=red"},
		TransplantDonor:      "Donor.umap",
		ActorsToTransplant:   []int{7},
	}
	got, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if diff := cmp.Diff([]plan.Rename{{Old: "A", New: "B"}}, got.Renames); diff != "" {
		t.Errorf("Renames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]edit.Selector{edit.ByName("Door"), edit.ByIndex(3)}, got.Selectors); diff != "" {
		t.Errorf("Selectors mismatch (-want +got):\n%s", diff)
	}
	if len(got.Edits) != 1 || got.Edits[0].Field != "PlayerStartTag" {
		t.Errorf("Edits = %+v", got.Edits)
	}
	if len(got.Roots) != 1 || got.Roots[0] != asset.FromRaw(7) {
		t.Errorf("Roots = %v, want [7]", got.Roots)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		plan plan.Plan
		code apperr.Code
	}{
		{"bad rename", plan.Plan{RenameImports: []string{"AB"}}, apperr.ErrCodeMalformedExpression},
		{"bad edit", plan.Plan{EditExports: []string{"x.Field=1"}}, apperr.ErrCodeMalformedExpression},
		{"zero actor index", plan.Plan{DisableActorsByIndex: []int{0}}, apperr.ErrCodeMalformedExpression},
		{"roots without donor", plan.Plan{ActorsToTransplant: []int{1}}, apperr.ErrCodeInvalidInput},
		{"donor without extension", plan.Plan{TransplantDonor: "Donor", ActorsToTransplant: []int{1}}, apperr.ErrCodeInvalidInput},
		{"negative root", plan.Plan{TransplantDonor: "Donor.umap", ActorsToTransplant: []int{-1}}, apperr.ErrCodeMalformedExpression},
		{"empty import name", plan.Plan{DisableImports: []string{""}}, apperr.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.plan.Validate(); !apperr.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}

	if err := (&plan.Plan{}).Validate(); err != nil {
		t.Errorf("empty plan Validate() error = %v", err)
	}
}

func TestExamplePlansAgree(t *testing.T) {
	fromTOML, err := plan.Load(filepath.Join("..", "..", "examples", "plans", "arena.toml"))
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	fromYAML, err := plan.Load(filepath.Join("..", "..", "examples", "plans", "arena.yaml"))
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("example plans differ (-toml +yaml):\n%s", diff)
	}
	if err := fromTOML.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
