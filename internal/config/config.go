// Package config holds the settings of the lcbgen command.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of a database build.
type Config struct {
	// Output is the SQLite file to (re)create.
	Output string `json:"output" yaml:"output"`

	// DataDir is the directory holding the CSV sources.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Files names the CSV sources inside DataDir.
	Files FilesConfig `json:"files" yaml:"files"`

	// Verbose enables progress logging.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// LogFormat is "console" or "json".
	LogFormat string `json:"log_format" yaml:"log_format"`

	// Seed makes the synthesized attributes reproducible when set.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// FilesConfig names the CSV sources. An empty name skips the source.
type FilesConfig struct {
	Comets    string `json:"comets" yaml:"comets"`
	Asteroids string `json:"asteroids" yaml:"asteroids"`
	Moons     string `json:"moons" yaml:"moons"`
	Meteors   string `json:"meteors" yaml:"meteors"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output:    "lcb.db",
		DataDir:   "data",
		LogFormat: "console",
		Files: FilesConfig{
			Comets:    "comet.csv",
			Asteroids: "asteroid.csv",
			Moons:     "moon.csv",
			Meteors:   "meteor.csv",
		},
	}
}

// Resolve normalises paths.
func (c *Config) Resolve() {
	if c.Output != "" {
		c.Output = filepath.Clean(c.Output)
	}
	if c.DataDir != "" {
		c.DataDir = filepath.Clean(c.DataDir)
	}
	for _, f := range c.Files.all() {
		if *f != "" {
			*f = filepath.ToSlash(filepath.Clean(*f))
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	for _, f := range c.Files.all() {
		if *f != "" && !fs.ValidPath(*f) {
			return fmt.Errorf("invalid source file %q: must be a relative path inside data_dir", *f)
		}
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (must be console or json)", c.LogFormat)
	}
	return nil
}

func (f *FilesConfig) all() []*string {
	return []*string{&f.Comets, &f.Asteroids, &f.Moons, &f.Meteors}
}

// LoadFromFile loads configuration from a YAML or JSON file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv overrides cfg with LCB_* environment variables.
func LoadFromEnv(cfg *Config) error {
	if v := os.Getenv("LCB_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LCB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("LCB_VERBOSE"); v != "" {
		cfg.Verbose = v == "true" || v == "1"
	}
	if v := os.Getenv("LCB_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("LCB_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid LCB_SEED: %w", err)
		}
		cfg.Seed = &seed
	}

	// Source files
	if v := os.Getenv("LCB_COMETS_FILE"); v != "" {
		cfg.Files.Comets = v
	}
	if v := os.Getenv("LCB_ASTEROIDS_FILE"); v != "" {
		cfg.Files.Asteroids = v
	}
	if v := os.Getenv("LCB_MOONS_FILE"); v != "" {
		cfg.Files.Moons = v
	}
	if v := os.Getenv("LCB_METEORS_FILE"); v != "" {
		cfg.Files.Meteors = v
	}
	return nil
}
