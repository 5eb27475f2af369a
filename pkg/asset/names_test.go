package asset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

func TestNameTableIntern(t *testing.T) {
	tbl := NewNameTable("None", "PersistentLevel")

	existing := tbl.Intern("PersistentLevel")
	if existing.Index() != 1 {
		t.Errorf("Intern(existing).Index() = %d, want 1", existing.Index())
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after re-interning", tbl.Len())
	}

	added := tbl.Intern("PlayerStart")
	if added.Index() != 2 {
		t.Errorf("Intern(new).Index() = %d, want 2", added.Index())
	}
	again := tbl.Intern("PlayerStart")
	if again != added {
		t.Errorf("Intern twice = %v, want %v", again, added)
	}

	// exact-duplicate policy: case differences are distinct names
	if tbl.Intern("playerstart") == added {
		t.Error("Intern should not normalize case")
	}
}

func TestNameTableGrowthIsMonotonic(t *testing.T) {
	tbl := NewNameTable("a", "b", "c")
	before := tbl.Names()

	for _, s := range []string{"d", "a", "e", "c"} {
		tbl.Intern(s)
	}

	after := tbl.Names()
	if diff := cmp.Diff(before, after[:len(before)]); diff != "" {
		t.Errorf("existing entries changed (-before +after):\n%s", diff)
	}
	if len(after) != 5 {
		t.Errorf("Len() = %d, want 5", len(after))
	}
}

func TestNameTableLookup(t *testing.T) {
	tbl := NewNameTable("None")
	other := NewNameTable("None")

	r := tbl.Intern("Door")
	got, err := tbl.Lookup(r)
	if err != nil || got != "Door" {
		t.Fatalf("Lookup() = %q, %v; want Door", got, err)
	}

	if _, err := other.Lookup(r); !apperr.Is(err, apperr.ErrCodeForeignName) {
		t.Errorf("foreign Lookup() error = %v, want %s", err, apperr.ErrCodeForeignName)
	}
	if other.Owns(r) {
		t.Error("Owns(foreign) = true, want false")
	}
	if other.Equal(r, "Door") {
		t.Error("Equal(foreign) = true, want false")
	}

	var zero NameRef
	if !zero.IsZero() {
		t.Error("zero NameRef IsZero() = false")
	}
	if _, err := tbl.Lookup(zero); err == nil {
		t.Error("Lookup(zero) succeeded, want error")
	}
}

func TestNameTableRef(t *testing.T) {
	tbl := NewNameTable("a", "b")
	if _, err := tbl.Ref(2); !apperr.Is(err, apperr.ErrCodeDanglingReference) {
		t.Errorf("Ref(2) error = %v, want %s", err, apperr.ErrCodeDanglingReference)
	}
	r, err := tbl.Ref(1)
	if err != nil {
		t.Fatalf("Ref(1) error = %v", err)
	}
	if tbl.String(r) != "b" {
		t.Errorf("String(Ref(1)) = %q, want b", tbl.String(r))
	}
}

func TestNameTableStringPanicsOnForeignRef(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("String(foreign) did not panic")
		}
	}()
	r := NewNameTable("x").Intern("x")
	NewNameTable("x").String(r)
}

func TestNameTableRenameMatching(t *testing.T) {
	tbl := NewNameTable("/Game/Maps/Arena", "Arena_C", "PlayerStart", "/Game/Maps/Arena.Arena")

	changes := tbl.RenameMatching("Arena", "Colosseum")

	want := []NameChange{
		{Index: 0, Old: "/Game/Maps/Arena", New: "/Game/Maps/Colosseum"},
		{Index: 1, Old: "Arena_C", New: "Colosseum_C"},
		{Index: 3, Old: "/Game/Maps/Arena.Arena", New: "/Game/Maps/Colosseum.Colosseum"},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("RenameMatching() mismatch (-want +got):\n%s", diff)
	}

	r, ok := tbl.Find("Colosseum_C")
	if !ok || r.Index() != 1 {
		t.Errorf("Find(renamed) = %v, %v; want index 1", r, ok)
	}
	if _, ok := tbl.Find("Arena_C"); ok {
		t.Error("Find(old name) still succeeds after rename")
	}

	if got := tbl.RenameMatching("", "x"); got != nil {
		t.Errorf("RenameMatching(empty) = %v, want nil", got)
	}
	if got := tbl.RenameMatching("Colosseum", "Colosseum"); got != nil {
		t.Errorf("RenameMatching(same) = %v, want nil", got)
	}
}
