package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraft/pkg/asset"
	"github.com/matzehuels/assetgraft/pkg/codec"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/render"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var dumpFormats = []string{formatText, formatJSON, formatDOT, formatSVG}

// dumpOpts holds the command-line flags for the dump command.
type dumpOpts struct {
	output   string // output file path (stdout if empty)
	format   string // one of dumpFormats
	imports  bool   // include imports in dot/svg
	detailed bool   // kind and class in dot/svg labels
}

// dumpCommand creates the dump command for inspecting a package.
func (c *CLI) dumpCommand() *cobra.Command {
	opts := dumpOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the imports, exports and properties of a package",
		Long: `Dump prints a package with imports at negative indices and exports at
positive ones, the same numbering edit expressions and actor selectors use.

Formats:
  text  indented listing with property trees (default)
  json  the same content with names resolved
  dot   export dependency graph as Graphviz source
  svg   export dependency graph rendered with Graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(dumpFormats, opts.format) {
				return apperr.New(apperr.ErrCodeInvalidInput, "unknown format %q (want one of %v)", opts.format, dumpFormats)
			}
			return c.runDump(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot, svg")
	cmd.Flags().BoolVar(&opts.imports, "imports", false, "include imports in the dependency graph (dot, svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind and class in graph labels (dot, svg)")

	return cmd
}

func (c *CLI) runDump(ctx context.Context, path string, opts *dumpOpts) error {
	logger := loggerFromContext(ctx)

	g, err := codec.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded package", "path", path, "imports", len(g.Imports), "exports", len(g.Exports))

	w := c.Out
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeCodecWrite, err, "create %s", opts.output)
		}
		defer f.Close()
		w = f
	}

	if err := writeDump(w, g, opts); err != nil {
		return fmt.Errorf("dump %s: %w", opts.format, err)
	}
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}

func writeDump(w io.Writer, g *asset.Graph, opts *dumpOpts) error {
	ro := render.Options{Imports: opts.imports, Detailed: opts.detailed}
	switch opts.format {
	case formatJSON:
		return render.JSON(w, g)
	case formatDOT:
		_, err := io.WriteString(w, render.DOT(g, ro))
		return err
	case formatSVG:
		svg, err := render.SVG(render.DOT(g, ro))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return render.Text(w, g)
	}
}
