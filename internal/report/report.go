// Package report renders check results for terminals and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/component"
)

// Format mode constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unrecognized output format.
var ErrUnknownFormat = fmt.Errorf("unknown output format (expected %s, %s, or %s)",
	FormatText, FormatJSON, FormatYAML)

// Render writes the result in the requested format.
func Render(w io.Writer, result *component.Result, format string, noColor bool) error {
	switch format {
	case FormatText:
		return RenderText(w, result, noColor)
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatYAML:
		return RenderYAML(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderText writes one line per violation:
//
//	ERROR: <file> imports a non-umbrella header: <import>
//
// A clean result produces no output.
func RenderText(w io.Writer, result *component.Result, noColor bool) error {
	label := "ERROR:"
	if !noColor {
		label = color.New(color.FgRed).Sprint(label)
	}

	for _, violation := range result.Violations {
		_, err := fmt.Fprintf(w, "%s %s %s\n", label, violation.File, violation.Message)
		if err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}

	return nil
}

// RenderSummary writes a per-run totals table.
func RenderSummary(w io.Writer, result *component.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Component", "Components", "Files", "Violations"})
	t.AppendRow(table.Row{result.Component, result.Components, result.Files, len(result.Violations)})
	t.Render()
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, result *component.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	return nil
}

// RenderYAML writes the result as YAML.
func RenderYAML(w io.Writer, result *component.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	return nil
}
