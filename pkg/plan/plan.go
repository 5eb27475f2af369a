package plan

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/edit"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// Plan lists the edits requested for one run, in the order they are applied.
type Plan struct {
	DisableImports       []string `toml:"disable_imports" yaml:"disable_imports"`
	RenameImports        []string `toml:"rename_imports" yaml:"rename_imports"` // "old>new"
	DisableActorsByName  []string `toml:"disable_actors_by_name" yaml:"disable_actors_by_name"`
	DisableActorsByIndex []int    `toml:"disable_actors_by_index" yaml:"disable_actors_by_index"`
	EditExports          []string `toml:"edit_exports" yaml:"edit_exports"`
	TransplantDonor      string   `toml:"transplant_donor" yaml:"transplant_donor"`
	ActorsToTransplant   []int    `toml:"actors_to_transplant" yaml:"actors_to_transplant"`
}

// Rename is a parsed import rename.
type Rename struct {
	Old string
	New string
}

// Parsed holds the plan's expressions in the form the edit and transplant
// engines take.
type Parsed struct {
	DisableImports []string
	Renames        []Rename
	Selectors      []edit.Selector
	Edits          []edit.Expression
	Donor          string
	Roots          []asset.Index
}

// Load reads a plan file. The decoder is chosen by extension: .toml, or
// .yaml / .yml. Unknown keys are rejected.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInputNotFound, err, "read plan %s", path)
	}
	var p *Plan
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		p, err = decodeTOML(data)
	case ".yaml", ".yml":
		p, err = decodeYAML(data)
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidInput,
			"plan %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "plan %s", path)
	}
	return p, nil
}

func decodeTOML(data []byte) (*Plan, error) {
	var p Plan
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	return &p, nil
}

func decodeYAML(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &p, nil
}

// Merge appends the requests of other after those of p. A donor set in
// other replaces the donor of p.
func (p *Plan) Merge(other *Plan) {
	if other == nil {
		return
	}
	p.DisableImports = append(p.DisableImports, other.DisableImports...)
	p.RenameImports = append(p.RenameImports, other.RenameImports...)
	p.DisableActorsByName = append(p.DisableActorsByName, other.DisableActorsByName...)
	p.DisableActorsByIndex = append(p.DisableActorsByIndex, other.DisableActorsByIndex...)
	p.EditExports = append(p.EditExports, other.EditExports...)
	if other.TransplantDonor != "" {
		p.TransplantDonor = other.TransplantDonor
	}
	p.ActorsToTransplant = append(p.ActorsToTransplant, other.ActorsToTransplant...)
}

// Empty reports whether the plan requests no edit at all.
func (p *Plan) Empty() bool {
	return len(p.DisableImports) == 0 &&
		len(p.RenameImports) == 0 &&
		len(p.DisableActorsByName) == 0 &&
		len(p.DisableActorsByIndex) == 0 &&
		len(p.EditExports) == 0 &&
		len(p.ActorsToTransplant) == 0
}

// Validate checks the syntax of every request without touching a package.
func (p *Plan) Validate() error {
	_, err := p.Parse()
	return err
}

// Parse validates the plan and converts it into engine inputs.
func (p *Plan) Parse() (*Parsed, error) {
	out := &Parsed{Donor: p.TransplantDonor}

	for _, name := range p.DisableImports {
		if err := apperr.ValidateName(name); err != nil {
			return nil, err
		}
		out.DisableImports = append(out.DisableImports, name)
	}
	for _, s := range p.RenameImports {
		old, new, err := edit.ParseRename(s)
		if err != nil {
			return nil, err
		}
		out.Renames = append(out.Renames, Rename{Old: old, New: new})
	}
	for _, name := range p.DisableActorsByName {
		if err := apperr.ValidateName(name); err != nil {
			return nil, err
		}
		out.Selectors = append(out.Selectors, edit.ByName(name))
	}
	for _, i := range p.DisableActorsByIndex {
		if i < 1 {
			return nil, apperr.New(apperr.ErrCodeMalformedExpression,
				"actor index %d must be a positive integer", i)
		}
		out.Selectors = append(out.Selectors, edit.ByIndex(i))
	}
	for _, s := range p.EditExports {
		e, err := edit.ParseExpression(s)
		if err != nil {
			return nil, err
		}
		out.Edits = append(out.Edits, e)
	}

	if len(p.ActorsToTransplant) > 0 {
		if p.TransplantDonor == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidInput,
				"actors to transplant given without a transplant donor")
		}
		if err := apperr.ValidateAssetPath(p.TransplantDonor); err != nil {
			return nil, err
		}
	}
	for _, i := range p.ActorsToTransplant {
		if i < 1 {
			return nil, apperr.New(apperr.ErrCodeMalformedExpression,
				"transplant root %d must be a positive export index", i)
		}
		out.Roots = append(out.Roots, asset.ExportAt(i-1))
	}
	return out, nil
}
