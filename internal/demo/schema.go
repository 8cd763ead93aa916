package demo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for timekeep demo configuration.
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidationError represents a single schema or structural problem.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the outcome of config validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidateWithSchema validates raw config content against the JSON Schema.
// YAML and JSON content is bridged directly; TOML goes through the koanf
// loader first since gojsonschema only understands JSON-shaped data.
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	var data interface{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return syntaxError(result, "Invalid YAML syntax: %v", err), nil
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return syntaxError(result, "Invalid JSON syntax: %v", err), nil
		}
	case ".toml":
		cfg, err := Parse(content, ext)
		if err != nil {
			return syntaxError(result, "Invalid TOML syntax: %v", err), nil
		}
		data = map[string]interface{}{
			"iterations": cfg.Iterations,
			"csv":        cfg.CSV,
			"workloads":  cfg.Workloads,
		}
	default:
		return nil, fmt.Errorf("unsupported file format")
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, err := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   err.Field(),
				Message: err.Description(),
			})
		}
	}

	return result, nil
}

func syntaxError(result *ValidationResult, format string, err error) *ValidationResult {
	result.Valid = false
	result.Errors = append(result.Errors, ValidationError{
		Field:   "syntax",
		Message: fmt.Sprintf(format, err),
	})
	return result
}
