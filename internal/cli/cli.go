// Package cli implements the assetgraft command-line interface.
//
// This package provides commands for editing cooked map packages in place,
// grafting actors from a donor package, and dumping a package's object
// graph. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - edit: Disable or rename imports, remove actors, set property values,
//     and transplant actors from a donor
//   - dump: Print a package as text, JSON, DOT or SVG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; an edit logs its total time and, with
// --verbose, the time spent in each stage. Edit events reach the terminal
// through a reporter installed as the observability hooks before each
// command runs.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "assetgraft"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output: dumps and the change report.
	Out io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}
