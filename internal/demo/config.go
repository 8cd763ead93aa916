// Package demo contains the timekeep demo driver: instrumented sample
// workloads and the configuration that shapes a run.
package demo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names (in order
// of preference).
var SupportedConfigNames = []string{
	".timekeep.yml",
	".timekeep.yaml",
	".timekeep.toml",
	".timekeep.json",
}

// Workload names accepted in a config.
const (
	WorkloadSum     = "sum"
	WorkloadSquares = "squares"
	WorkloadThing   = "thing"
	WorkloadBlock   = "block"
)

// KnownWorkloads lists every workload the demo can run, in run order.
var KnownWorkloads = []string{WorkloadSum, WorkloadSquares, WorkloadThing, WorkloadBlock}

// Config shapes one demo run.
type Config struct {
	Iterations int      `koanf:"iterations"`
	CSV        bool     `koanf:"csv"`
	Workloads  []string `koanf:"workloads"`
}

// DefaultConfig returns the configuration used when no file is present:
// every workload, a thousand iterations, table output.
func DefaultConfig() *Config {
	return &Config{
		Iterations: 1000,
		Workloads:  append([]string(nil), KnownWorkloads...),
	}
}

// FindConfig returns the first supported config file present in dir, or ""
// when none exists.
func FindConfig(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a demo configuration file, with the parser chosen
// by file extension. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return unmarshal(k)
}

// Parse parses raw config bytes as the format implied by ext (".yml",
// ".toml", ".json").
func Parse(content []byte, ext string) (*Config, error) {
	parser, err := parserFor("config" + ext)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return unmarshal(k)
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if k.Exists("workloads") {
		cfg.Workloads = k.Strings("workloads")
	}
	return cfg, nil
}
