package cli

import (
	"fmt"
	"os"

	"github.com/NikitaCOEUR/timekeep/internal/demo"
	"github.com/NikitaCOEUR/timekeep/internal/errors"
)

// Validate checks a demo configuration file against the schema and reports
// the result. With an empty path it looks for a config in the current
// directory.
func Validate(configPath string) error {
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = demo.FindConfig(cwd)
		if configPath == "" {
			return fmt.Errorf("no config file found in current directory")
		}
	}

	fmt.Printf("Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.NewConfigurationError(configPath, "failed to read config file", err)
	}

	result, err := demo.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	if result.Valid {
		// Schema passed; make sure it also loads cleanly.
		if _, err := demo.Load(configPath); err != nil {
			return errors.NewConfigurationError(configPath, "config failed to load", err)
		}

		fmt.Println(successStyle.Render("✓ Configuration is valid"))
		return nil
	}

	fmt.Println(errorStyle.Render("✗ Configuration is invalid"))
	for _, e := range result.Errors {
		fmt.Printf("  %s: %s\n", e.Field, e.Message)
	}

	return errors.NewValidationError(configPath,
		fmt.Sprintf("%d validation problem(s)", len(result.Errors)))
}
