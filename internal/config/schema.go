package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// SchemaIssue describes one schema violation in a config file.
type SchemaIssue struct {
	Field       string
	Description string
}

func (i SchemaIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// ValidateFile validates a YAML config file against the embedded
// configuration schema. It returns the list of schema issues; an empty
// list means the file is valid. The error return covers I/O and
// malformed-document failures, not schema violations.
func ValidateFile(path string) ([]SchemaIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var doc any

	unmarshalErr := yaml.Unmarshal(data, &doc)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse config file: %w", unmarshalErr)
	}

	if doc == nil {
		// Empty file: all keys defaulted, trivially valid.
		return nil, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, validateErr := gojsonschema.Validate(schemaLoader, docLoader)
	if validateErr != nil {
		return nil, fmt.Errorf("schema validation: %w", validateErr)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]SchemaIssue, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		issues = append(issues, SchemaIssue{
			Field:       strings.TrimPrefix(resultErr.Field(), "(root)."),
			Description: resultErr.Description(),
		})
	}

	return issues, nil
}
