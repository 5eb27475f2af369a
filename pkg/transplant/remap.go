package transplant

import (
	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// Pair is one donor entry and the slot it receives in the target.
type Pair struct {
	Src  asset.Index
	Dst  asset.Index
	Name string
}

// table maps donor indices to target indices for one transplant.
type table struct {
	m       map[asset.Index]asset.Index
	exports []Pair
	imports []Pair
}

// allocate assigns target slots to the closure: exports after the target's
// current exports, imports after its current imports, both in closure
// order. The donor level root maps onto the target level root.
func allocate(donor, target *asset.Graph, c *closure, donorLevel, targetLevel asset.Index) (*table, error) {
	t := &table{m: make(map[asset.Index]asset.Index, len(c.exports)+len(c.imports)+1)}

	for i, src := range c.exports {
		dst := asset.ExportAt(len(target.Exports) + i)
		t.m[src] = dst
		t.exports = append(t.exports, Pair{Src: src, Dst: dst, Name: donor.ObjectName(src)})
	}
	for i, src := range c.imports {
		dst := asset.ImportAt(len(target.Imports) + i)
		t.m[src] = dst
		t.imports = append(t.imports, Pair{Src: src, Dst: dst, Name: donor.ObjectName(src)})
	}
	t.m[donorLevel] = targetLevel

	if want := len(c.exports) + len(c.imports) + 1; len(t.m) != want {
		return nil, apperr.New(apperr.ErrCodeRemapConsistency,
			"remap table has %d entries, want %d (the donor level root is part of the closure?)", len(t.m), want)
	}
	return t, nil
}

// remap translates x, passing null and indices outside the table through.
func (t *table) remap(x asset.Index) asset.Index {
	if dst, ok := t.m[x]; ok {
		return dst
	}
	return x
}

// has reports whether x has a target slot.
func (t *table) has(x asset.Index) bool {
	_, ok := t.m[x]
	return ok
}

func (t *table) remapAll(xs []asset.Index) []asset.Index {
	for i, x := range xs {
		xs[i] = t.remap(x)
	}
	return xs
}
