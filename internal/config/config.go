// Package config loads umbrellacheck configuration from file, env
// vars, and defaults.
package config

import (
	"errors"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/rules"
)

// Config is the top-level configuration struct for umbrellacheck.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	UmbrellaPrefix   string   `mapstructure:"umbrella_prefix"`
	FrameworkName    string   `mapstructure:"framework_name"`
	SourceDir        string   `mapstructure:"source_dir"`
	ExamplesDir      string   `mapstructure:"examples_dir"`
	FilteredPrefixes []string `mapstructure:"filtered_prefixes"`
	FilteredSuffixes []string `mapstructure:"filtered_suffixes"`
}

// Default configuration values.
const (
	DefaultUmbrellaPrefix = "Material"
	DefaultFrameworkName  = "MaterialComponents"
	DefaultSourceDir      = "src"
	DefaultExamplesDir    = "examples"
)

// DefaultFilteredPrefixes lists the external and system header
// prefixes exempt from checking by default.
func DefaultFilteredPrefixes() []string {
	return []string{
		"UIKit/",
		"Foundation/",
		"CoreGraphics/",
		"QuartzCore/",
		"CoreText/",
		"XCTest/",
		"MDF",
	}
}

// DefaultFilteredSuffixes lists the header suffixes exempt from
// checking by default.
func DefaultFilteredSuffixes() []string {
	return []string{"Themer.h"}
}

// Validation errors.
var (
	ErrEmptyUmbrellaPrefix = errors.New("umbrella_prefix must not be empty")
	ErrEmptyFrameworkName  = errors.New("framework_name must not be empty")
	ErrEmptySourceDir      = errors.New("source_dir must not be empty")
	ErrEmptyExamplesDir    = errors.New("examples_dir must not be empty")
)

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.UmbrellaPrefix == "" {
		return ErrEmptyUmbrellaPrefix
	}

	if c.FrameworkName == "" {
		return ErrEmptyFrameworkName
	}

	if c.SourceDir == "" {
		return ErrEmptySourceDir
	}

	if c.ExamplesDir == "" {
		return ErrEmptyExamplesDir
	}

	return nil
}

// Naming converts the configuration into the naming conventions the
// rule factory consumes.
func (c *Config) Naming() rules.NamingConfig {
	return rules.NamingConfig{
		UmbrellaPrefix:   c.UmbrellaPrefix,
		FrameworkName:    c.FrameworkName,
		FilteredPrefixes: c.FilteredPrefixes,
		FilteredSuffixes: c.FilteredSuffixes,
	}
}
