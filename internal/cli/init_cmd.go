package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/timekeep/internal/demo"
	"github.com/NikitaCOEUR/timekeep/internal/errors"
)

const sampleHeader = `# Timekeep demo configuration
# Documentation: https://github.com/NikitaCOEUR/timekeep
`

// Init creates a sample .timekeep.yml config file in the given directory
// (the current directory when dir is empty).
func Init(dir string) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.NewExecutionError("init", "failed to get current directory", err)
		}
		dir = cwd
	}

	configPath := filepath.Join(dir, ".timekeep.yml")

	if _, err := os.Stat(configPath); err == nil {
		return errors.NewAlreadyExistsError(configPath,
			fmt.Sprintf("config file already exists: %s", configPath))
	}

	cfg := demo.DefaultConfig()
	body, err := yaml.Marshal(struct {
		Iterations int      `yaml:"iterations"`
		CSV        bool     `yaml:"csv"`
		Workloads  []string `yaml:"workloads"`
	}{cfg.Iterations, cfg.CSV, cfg.Workloads})
	if err != nil {
		return errors.NewConfigurationError(configPath, "failed to render sample config", err)
	}

	content := sampleHeader + string(body)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.NewConfigurationError(configPath, "failed to write config file", err)
	}

	fmt.Println(successStyle.Render("✓") + " Created " + configPath)
	return nil
}
