// Package cli implements the cargoscan command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/cargoscan/pkg/buildinfo"
	"github.com/matzehuels/cargoscan/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for the config file and display.
	appName = "cargoscan"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command. Reports go to Stdout; logs and
// user-facing errors go to Stderr.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a new CLI instance with a logger writing to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. cargoscan has no subcommands:
// the root command is the scan.
func (c *CLI) RootCommand() *cobra.Command {
	opts := scanOpts{}
	v := viper.New()

	root := &cobra.Command{
		Use:   "cargoscan [root] [format]",
		Short: "List the external dependencies of every Cargo.toml in a tree",
		Long: `cargoscan walks a directory tree, reads every Cargo.toml it finds and
reports each dependency resolved from a registry or a git remote.

Path dependencies and workspace-inherited dependencies are left out.

Formats: json (default), csv, md / markdown.

Examples:
  cargoscan                          # scan ., JSON to stdout
  cargoscan ~/src/my-workspace csv   # CSV
  cargoscan . md -o DEPENDENCIES.md  # Markdown table to a file
  cargoscan . json --exclude target  # skip build output directories`,
		Args:          cobra.MaximumNArgs(2),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return loadConfig(v, cmd.Flags(), opts.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), opts.resolve(v, args))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	root.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "directory names to skip (repeatable)")
	root.Flags().StringVar(&opts.configFile, "config", "", "config file (default: ./cargoscan.yaml if present)")

	return root
}

// =============================================================================
// Errors & Exit Codes
// =============================================================================

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	case errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidPath):
		return 2
	default:
		return 1
	}
}
