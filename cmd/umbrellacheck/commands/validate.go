package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/config"
)

// ErrInvalidConfig is returned when a config file fails schema
// validation.
var ErrInvalidConfig = errors.New("config file does not match the configuration schema")

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	cmd.AddCommand(validateCmd())

	return cmd
}

func validateCmd() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a config file against the configuration schema",
		Long: `Validate an umbrellacheck YAML config file against the embedded
configuration schema.

Examples:
  umbrellacheck config validate .umbrellacheck.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	issues, err := config.ValidateFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(issues) == 0 {
		color.New(color.FgGreen).Fprintf(out, "config is valid (%s)\n", path)

		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgRed).Sprint("SCHEMA:"), issue)
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, path)
}
