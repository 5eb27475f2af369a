package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

// Text writes an indented listing of g to w: a summary line, every import,
// then every export with its ordering lists, actors and property tree.
func Text(w io.Writer, g *asset.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Package: %d names, %d imports, %d exports", g.Names.Len(), len(g.Imports), len(g.Exports))
	if g.EngineVersion != "" {
		fmt.Fprintf(bw, " (engine %s)", g.EngineVersion)
	}
	bw.WriteString("\n")

	if len(g.Imports) > 0 {
		bw.WriteString("\nImports:\n")
	}
	for i := range g.Imports {
		imp := &g.Imports[i]
		fmt.Fprintf(bw, "  %s %s (%s.%s) outer %s\n",
			asset.ImportAt(i), name(g, imp.ObjectName),
			name(g, imp.ClassPackage), name(g, imp.ClassName),
			ref(g, imp.Outer))
	}

	if len(g.Exports) > 0 {
		bw.WriteString("\nExports:\n")
	}
	for i := range g.Exports {
		e := &g.Exports[i]
		fmt.Fprintf(bw, "  %s %s [%s] class %s outer %s\n",
			asset.ExportAt(i), name(g, e.ObjectName), e.Kind, ref(g, e.Class), ref(g, e.Outer))
		if !e.Super.IsNull() || !e.Template.IsNull() {
			fmt.Fprintf(bw, "    super %s template %s\n", ref(g, e.Super), ref(g, e.Template))
		}
		writeList(bw, g, "create-before-serialization", e.CreateBeforeSerialization)
		writeList(bw, g, "serialization-before-create", e.SerializationBeforeCreate)
		writeList(bw, g, "create-before-create", e.CreateBeforeCreate)
		if e.Kind == asset.ExportLevel {
			writeList(bw, g, "actors", e.Actors)
		}
		if e.HasProperties() {
			writeProperties(bw, g, e.Properties)
		}
		if len(e.Extra) > 0 {
			fmt.Fprintf(bw, "    extra: %d bytes\n", len(e.Extra))
		}
	}
	return bw.Flush()
}

func writeList(w *bufio.Writer, g *asset.Graph, label string, xs []asset.Index) {
	if len(xs) == 0 {
		return
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = ref(g, x)
	}
	fmt.Fprintf(w, "    %s: %s\n", label, strings.Join(parts, ", "))
}

func writeProperties(w *bufio.Writer, g *asset.Graph, props []asset.Property) {
	_ = asset.Walk(props, func(p asset.Property, depth int) error {
		indent := strings.Repeat("  ", depth+2)
		label := name(g, p.PropertyTag().Name)
		if v, ok := value(g, p); ok {
			fmt.Fprintf(w, "%s%s: %s = %s\n", indent, label, kindLabel(g, p), v)
		} else {
			fmt.Fprintf(w, "%s%s: %s\n", indent, label, kindLabel(g, p))
		}
		return nil
	})
}

// kindLabel is the property kind, qualified by its type name for Struct
// and Enum.
func kindLabel(g *asset.Graph, p asset.Property) string {
	switch p := p.(type) {
	case *asset.StructProperty:
		if p.StructType != nil {
			return "Struct<" + name(g, *p.StructType) + ">"
		}
	case *asset.EnumProperty:
		if p.EnumType != nil {
			return "Enum<" + name(g, *p.EnumType) + ">"
		}
	case *asset.ArrayProperty:
		return fmt.Sprintf("Array[%d]", len(p.Value))
	}
	return p.Kind().String()
}

// value formats the scalar payload of p. Containers have none.
func value(g *asset.Graph, p asset.Property) (string, bool) {
	switch p := p.(type) {
	case *asset.BoolProperty:
		return strconv.FormatBool(p.Value), true
	case *asset.ByteProperty:
		return strconv.Itoa(int(p.Value)), true
	case *asset.IntProperty:
		return strconv.Itoa(int(p.Value)), true
	case *asset.FloatProperty:
		return strconv.FormatFloat(float64(p.Value), 'g', -1, 32), true
	case *asset.EnumProperty:
		if p.Value == nil {
			return "(none)", true
		}
		return name(g, *p.Value), true
	case *asset.NameProperty:
		return name(g, p.Value), true
	case *asset.StrProperty:
		return strconv.Quote(p.Value), true
	case *asset.ObjectProperty:
		return ref(g, p.Value), true
	case *asset.VectorProperty:
		return vector(p.Value), true
	case *asset.RotatorProperty:
		return vector(p.Value), true
	case *asset.MulticastDelegateProperty:
		return fmt.Sprintf("%d bytes", len(p.Value)), true
	}
	return "", false
}

func vector(v asset.Vector) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return f(v.X) + "," + f(v.Y) + "," + f(v.Z)
}

// name resolves r without panicking on references from another table.
func name(g *asset.Graph, r asset.NameRef) string {
	s, err := g.Names.Lookup(r)
	if err != nil {
		return "<invalid name>"
	}
	if r.Number != 0 {
		return fmt.Sprintf("%s#%d", s, r.Number)
	}
	return s
}

// ref formats x as "raw name", or just "0" for null.
func ref(g *asset.Graph, x asset.Index) string {
	if x.IsNull() {
		return "0"
	}
	n := g.ObjectName(x)
	if n == "" {
		return x.String() + " <dangling>"
	}
	return x.String() + " " + n
}
