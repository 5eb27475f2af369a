package asset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// NameRef is a reference into the name table of one graph.
//
// A NameRef remembers which table issued it. Resolving it against any other
// table fails with ErrCodeForeignName, so a record copied between graphs
// without re-interning is caught instead of silently pointing at an
// unrelated string. The zero NameRef belongs to no table and never resolves.
type NameRef struct {
	table  uuid.UUID
	index  int
	Number int32 // instance number, carried but not interpreted
}

// Index returns the position of the referenced entry in its table.
func (r NameRef) Index() int { return r.index }

// IsZero reports whether r was never issued by a table.
func (r NameRef) IsZero() bool { return r.table == uuid.Nil }

// NameChange records one in-place rewrite made by [NameTable.RenameMatching].
type NameChange struct {
	Index int
	Old   string
	New   string
}

// NameTable is the deduplicated, ordered string pool of a package.
//
// Entries are only ever appended or rewritten in place; an index, once
// issued, stays valid for the lifetime of the table.
type NameTable struct {
	id     uuid.UUID
	names  []string
	lookup map[string]int
}

// NewNameTable creates a table seeded with names in order. Seed entries are
// kept verbatim, duplicates included, so a loaded table keeps its indices;
// lookups resolve a duplicated string to its first occurrence.
func NewNameTable(names ...string) *NameTable {
	t := &NameTable{
		id:     uuid.New(),
		names:  slices.Clone(names),
		lookup: make(map[string]int, len(names)),
	}
	t.reindex()
	return t
}

func (t *NameTable) reindex() {
	clear(t.lookup)
	for i, n := range t.names {
		if _, ok := t.lookup[n]; !ok {
			t.lookup[n] = i
		}
	}
}

// ID returns the identity stamped into every NameRef this table issues.
func (t *NameTable) ID() uuid.UUID { return t.id }

// Len returns the number of entries.
func (t *NameTable) Len() int { return len(t.names) }

// Names returns a copy of all entries in index order.
func (t *NameTable) Names() []string { return slices.Clone(t.names) }

// Intern returns a reference to s, appending it if no identical entry exists.
func (t *NameTable) Intern(s string) NameRef {
	if i, ok := t.lookup[s]; ok {
		return t.ref(i)
	}
	t.names = append(t.names, s)
	i := len(t.names) - 1
	t.lookup[s] = i
	return t.ref(i)
}

// Ref returns the reference for an existing entry index.
func (t *NameTable) Ref(index int) (NameRef, error) {
	if index < 0 || index >= len(t.names) {
		return NameRef{}, apperr.New(apperr.ErrCodeDanglingReference,
			"name index %d out of range (table has %d entries)", index, len(t.names))
	}
	return t.ref(index), nil
}

func (t *NameTable) ref(i int) NameRef {
	return NameRef{table: t.id, index: i}
}

// Owns reports whether r was issued by this table and is in range.
func (t *NameTable) Owns(r NameRef) bool {
	return r.table == t.id && r.index >= 0 && r.index < len(t.names)
}

// Lookup resolves r to its string.
func (t *NameTable) Lookup(r NameRef) (string, error) {
	if r.table != t.id {
		return "", apperr.New(apperr.ErrCodeForeignName,
			"name reference %d belongs to another name table", r.index)
	}
	if r.index < 0 || r.index >= len(t.names) {
		return "", apperr.New(apperr.ErrCodeDanglingReference,
			"name index %d out of range (table has %d entries)", r.index, len(t.names))
	}
	return t.names[r.index], nil
}

// String resolves r, panicking if r does not belong to this table.
// Use it where r is known to be local; a foreign ref there is a programming
// error on the same footing as an out-of-range slice index.
func (t *NameTable) String(r NameRef) string {
	s, err := t.Lookup(r)
	if err != nil {
		panic(fmt.Sprintf("asset: %v", err))
	}
	return s
}

// Find returns the reference of an existing entry equal to s.
func (t *NameTable) Find(s string) (NameRef, bool) {
	i, ok := t.lookup[s]
	if !ok {
		return NameRef{}, false
	}
	return t.ref(i), true
}

// Equal reports whether r resolves to s. Foreign or dangling refs never match.
func (t *NameTable) Equal(r NameRef, s string) bool {
	return t.Owns(r) && t.names[r.index] == s
}

// RenameMatching replaces old with replacement inside every entry that
// contains old. Indices are unchanged. It returns one change per rewritten
// entry, in index order.
func (t *NameTable) RenameMatching(old, replacement string) []NameChange {
	if old == "" || old == replacement {
		return nil
	}
	var changes []NameChange
	for i, n := range t.names {
		if !strings.Contains(n, old) {
			continue
		}
		updated := strings.ReplaceAll(n, old, replacement)
		t.names[i] = updated
		changes = append(changes, NameChange{Index: i, Old: n, New: updated})
	}
	if len(changes) > 0 {
		t.reindex()
	}
	return changes
}
