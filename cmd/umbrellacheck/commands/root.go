// Package commands implements CLI command handlers for umbrellacheck.
package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/component"
	"github.com/Sumatoshi-tech/umbrellacheck/internal/config"
	"github.com/Sumatoshi-tech/umbrellacheck/internal/report"
)

// ErrViolationsFound is returned when any import violation was
// reported; it maps to a non-zero process exit.
var ErrViolationsFound = errors.New("umbrella import violations found")

// RootCommand holds the flags for the check run.
type RootCommand struct {
	configPath string
	format     string
	verbose    bool
	quiet      bool
	noColor    bool
}

// NewRootCommand creates and configures the umbrellacheck root
// command. The check itself is the root: the tool is invoked with a
// single positional argument, the component directory.
func NewRootCommand() *cobra.Command {
	cmd := &RootCommand{}

	cobraCmd := &cobra.Command{
		Use:   "umbrellacheck <component-path>",
		Short: "Check umbrella header import hygiene for a component tree",
		Long: `umbrellacheck statically validates import hygiene across a component's
source tree: every source file may import only an allowed umbrella
header or a sibling file within its own module. Upper-case-named
directories under src are checked as independent nested components,
and the examples tree is checked with a relaxed rule chain.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "path to config file (default: .umbrellacheck.yaml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", report.FormatText, "output format: text, json, or yaml")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "verbose output with a run summary")
	cobraCmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false, "suppress log output")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "disable colored output")

	return cobraCmd
}

// Run executes the check over the component path argument.
func (c *RootCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	driver := component.NewDriver(cfg, c.logger())

	result, err := driver.Check(args[0])
	if err != nil {
		return err
	}

	renderErr := report.Render(cmd.OutOrStdout(), result, c.format, c.noColor)
	if renderErr != nil {
		return renderErr
	}

	if c.verbose && c.format == report.FormatText {
		report.RenderSummary(cmd.ErrOrStderr(), result)
	}

	if result.Failed() {
		return ErrViolationsFound
	}

	return nil
}

// logger builds the run logger. Logs go to stderr so stdout stays the
// violation stream.
func (c *RootCommand) logger() *slog.Logger {
	level := slog.LevelWarn

	switch {
	case c.quiet:
		level = slog.LevelError
	case c.verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
