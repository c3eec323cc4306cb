package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked for in the working directory.
const DefaultFileName = "svgswap.yaml"

// Config controls which files the commands visit and how results are
// written. The transform itself has no configuration.
type Config struct {
	// Root is the directory scanned for component files.
	Root string `yaml:"root"`
	// Extensions are the file extensions considered component files.
	Extensions []string `yaml:"extensions"`
	// Exclude lists directory names pruned during discovery, in addition
	// to the built-in set (node_modules, .git, ...).
	Exclude []string `yaml:"exclude"`
	// DryRun reports changes without writing files.
	DryRun bool `yaml:"dry_run"`
}

func Default() *Config {
	return &Config{
		Root:       ".",
		Extensions: []string{".vue"},
	}
}

// Load reads the config file at path. With an empty path it looks for
// DefaultFileName in the working directory and falls back to Default when
// the file does not exist. An explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".vue"}
	}

	return cfg, nil
}
