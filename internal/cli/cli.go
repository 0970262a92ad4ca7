// Package cli implements the spantree command-line interface.
//
// Two commands wrap the engine:
//   - analyze: read a SNAP-style edge list and report Tau and Rho
//   - gen:     build a named test topology and report its metrics
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; analysis settings can come from a TOML config file
// with explicit flags taking precedence.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used in help output and templates.
const appName = "spantree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "spantree counts spanning trees of weighted networks",
		Long:         `spantree computes the spanning-tree count (Tau) and normalized structural entropy (Rho) of weighted networks by electrical-network reduction, far beyond the reach of direct determinant evaluation.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.genCommand())

	return root
}
