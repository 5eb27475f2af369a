package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/assetgraft/pkg/asset"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

// PayloadExt is the extension of the sibling file holding export payloads.
const PayloadExt = ".uexp"

// PayloadPath returns the payload file that belongs to the container at path.
func PayloadPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + PayloadExt
}

// Codec loads and saves packages as a container file plus a sibling payload
// file. The zero value is ready to use.
type Codec struct {
	// Indent is used for both files; empty writes compact JSON.
	Indent string
}

// Default is the codec used by [Load] and [Save].
var Default = Codec{Indent: "  "}

// Load reads the package at path with [Default].
func Load(path string) (*asset.Graph, error) { return Default.Load(path) }

// Save writes g to path with [Default].
func Save(g *asset.Graph, path string) error { return Default.Save(g, path) }

// Load opens the container at path and, when it exists, its payload file,
// and decodes both with [Codec.Read].
func (c Codec) Load(path string) (*asset.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInputNotFound, err, "open %s", path)
	}
	defer f.Close()

	var payload io.Reader
	pf, err := os.Open(PayloadPath(path))
	switch {
	case err == nil:
		defer pf.Close()
		payload = pf
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, apperr.Wrap(apperr.ErrCodeInputNotFound, err, "open %s", PayloadPath(path))
	}

	g, err := c.Read(f, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read decodes a container from header and export payloads from payload.
// A nil payload leaves every export without properties or actors.
//
// Name indices are checked while decoding; export and import indices are
// taken as they are and only checked by [Codec.Write].
func (c Codec) Read(header, payload io.Reader) (*asset.Graph, error) {
	var h containerFile
	if err := json.NewDecoder(header).Decode(&h); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeCodecParse, err, "decode container")
	}
	var p payloadFile
	if payload != nil {
		if err := json.NewDecoder(payload).Decode(&p); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeCodecParse, err, "decode payload")
		}
		if len(p.Exports) != len(h.Exports) {
			return nil, apperr.New(apperr.ErrCodeCodecParse,
				"payload has %d entries for %d exports", len(p.Exports), len(h.Exports))
		}
	}

	g := &asset.Graph{
		Names:         asset.NewNameTable(h.Names...),
		EngineVersion: h.EngineVersion,
	}
	d := decoder{g: g}

	g.Imports = make([]asset.Import, len(h.Imports))
	for i, w := range h.Imports {
		imp, err := d.importEntry(w)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeCodecParse, err, "import %s", asset.ImportAt(i))
		}
		g.Imports[i] = imp
	}

	g.Exports = make([]asset.Export, len(h.Exports))
	for i, w := range h.Exports {
		var wp wirePayload
		if payload != nil {
			wp = p.Exports[i]
		}
		e, err := d.export(w, wp)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeCodecParse, err, "export %s", asset.ExportAt(i))
		}
		g.Exports[i] = e
	}
	return g, nil
}

func (d decoder) importEntry(w wireImport) (asset.Import, error) {
	var imp asset.Import
	var err error
	if imp.ClassPackage, err = d.name(w.ClassPackage); err != nil {
		return imp, err
	}
	if imp.ClassName, err = d.name(w.ClassName); err != nil {
		return imp, err
	}
	if imp.ObjectName, err = d.name(w.ObjectName); err != nil {
		return imp, err
	}
	imp.Outer = asset.FromRaw(w.Outer)
	return imp, nil
}

func (d decoder) export(w wireExport, wp wirePayload) (asset.Export, error) {
	kind, ok := exportKindFromString[w.Kind]
	if !ok {
		return asset.Export{}, fmt.Errorf("unknown export kind %q", w.Kind)
	}
	name, err := d.name(w.ObjectName)
	if err != nil {
		return asset.Export{}, err
	}
	props, err := d.properties(wp.Properties)
	if err != nil {
		return asset.Export{}, err
	}
	if kind == asset.ExportRaw && len(props) > 0 {
		return asset.Export{}, fmt.Errorf("raw export carries %d properties", len(props))
	}
	return asset.Export{
		ExportBase: asset.ExportBase{
			ObjectName:                name,
			Class:                     asset.FromRaw(w.Class),
			Super:                     asset.FromRaw(w.Super),
			Template:                  asset.FromRaw(w.Template),
			Outer:                     asset.FromRaw(w.Outer),
			CreateBeforeSerialization: indices(w.CreateBeforeSerialization),
			SerializationBeforeCreate: indices(w.SerializationBeforeCreate),
			CreateBeforeCreate:        indices(w.CreateBeforeCreate),
		},
		Kind:       kind,
		Properties: props,
		Actors:     indices(wp.Actors),
		Extra:      wp.Extra,
	}, nil
}

// Save validates g and writes the container to path and the payloads to
// the sibling payload file.
func (c Codec) Save(g *asset.Graph, path string) error {
	if err := g.Validate(); err != nil {
		return err
	}
	hf, err := os.Create(path)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "create %s", path)
	}
	defer hf.Close()
	pf, err := os.Create(PayloadPath(path))
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "create %s", PayloadPath(path))
	}
	defer pf.Close()

	if err := c.Write(g, hf, pf); err != nil {
		return err
	}
	if err := hf.Close(); err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "close %s", path)
	}
	if err := pf.Close(); err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "close %s", PayloadPath(path))
	}
	return nil
}

// Write validates g and encodes it to header and payload. A graph with a
// dangling index or a foreign name is rejected before anything is written.
func (c Codec) Write(g *asset.Graph, header, payload io.Writer) error {
	if err := g.Validate(); err != nil {
		return err
	}

	var e encoder
	h := containerFile{
		EngineVersion: g.EngineVersion,
		Names:         g.Names.Names(),
		Imports:       make([]wireImport, len(g.Imports)),
		Exports:       make([]wireExport, len(g.Exports)),
	}
	p := payloadFile{Exports: make([]wirePayload, len(g.Exports))}

	for i, imp := range g.Imports {
		h.Imports[i] = wireImport{
			ClassPackage: e.name(imp.ClassPackage),
			ClassName:    e.name(imp.ClassName),
			ObjectName:   e.name(imp.ObjectName),
			Outer:        imp.Outer.Raw(),
		}
	}
	for i := range g.Exports {
		x := &g.Exports[i]
		h.Exports[i] = wireExport{
			ObjectName:                e.name(x.ObjectName),
			Kind:                      x.Kind.String(),
			Class:                     x.Class.Raw(),
			Super:                     x.Super.Raw(),
			Template:                  x.Template.Raw(),
			Outer:                     x.Outer.Raw(),
			CreateBeforeSerialization: raws(x.CreateBeforeSerialization),
			SerializationBeforeCreate: raws(x.SerializationBeforeCreate),
			CreateBeforeCreate:        raws(x.CreateBeforeCreate),
		}
		p.Exports[i] = wirePayload{
			Properties: e.properties(x.Properties),
			Actors:     raws(x.Actors),
			Extra:      x.Extra,
		}
	}

	if err := c.encode(header, h); err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "encode container")
	}
	if err := c.encode(payload, p); err != nil {
		return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "encode payload")
	}
	return nil
}

func (c Codec) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	return enc.Encode(v)
}
