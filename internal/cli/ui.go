package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperr "github.com/matzehuels/assetgraft/pkg/errors"
	"github.com/matzehuels/assetgraft/pkg/observability"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printer writes styled status lines to w.
type printer struct {
	w io.Writer
}

// success prints a success message.
func (p printer) success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// warning prints a warning message.
func (p printer) warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// info prints an info/status message.
func (p printer) info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// detail prints a detail line (indented).
func (p printer) detail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, "  "+StyleDim.Render(msg))
}

// file prints a file output line.
func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// stats prints run totals on a single line, skipping zero counts.
func (p printer) stats(changes, warnings, transplants int) {
	var parts []string
	if changes > 0 {
		parts = append(parts, StyleNumber.Render(fmt.Sprint(changes))+StyleDim.Render(" changes"))
	}
	if warnings > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if transplants > 0 {
		parts = append(parts, StyleNumber.Render(fmt.Sprint(transplants))+StyleDim.Render(" transplanted"))
	}
	if len(parts) == 0 {
		parts = append(parts, StyleDim.Render("no changes"))
	}
	fmt.Fprintln(p.w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// =============================================================================
// Run Reporter
// =============================================================================

// reporter prints edit run events as they happen.
type reporter struct {
	observability.NoopEditHooks
	out printer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{out: printer{w: w}}
}

func (r *reporter) OnChange(_ context.Context, _, message string) {
	r.out.success("%s", message)
}

func (r *reporter) OnWarning(_ context.Context, err error) {
	r.out.warning("%s", apperr.UserMessage(err))
}

func (r *reporter) OnTransplant(_ context.Context, kind string, src, dst int32, name string) {
	r.out.detail("Transplanting %s: %d <- %d %q", kind, dst, src, name)
}

func (r *reporter) OnSave(_ context.Context, path string, _ time.Duration, err error) {
	if err == nil {
		r.out.file(path)
	}
}
