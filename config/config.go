// Package config loads the jnl configuration.
//
// Values come, by increasing precedence, from the defaults, an optional YAML
// file, the environment and the command line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/journal"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvConfig     = "JNL_CONFIG"
	EnvDir        = "JNL_DIR"
	EnvComparison = "JNL_COMPARISON"
)

// Config is the jnl configuration.
type Config struct {
	Dir        string `yaml:"dir"`        // folder holding the journal files
	Files      Files  `yaml:"files"`      // file names, relative to Dir unless absolute
	Comparison string `yaml:"comparison"` // lexical, numeric or exact
	Coach      Coach  `yaml:"coach"`
}

// Files names the document of each journal.
type Files struct {
	Recommendations string `yaml:"recommendations"`
	Assessments     string `yaml:"assessments"`
	Notes           string `yaml:"notes"`
	Insights        string `yaml:"insights"`
}

// Coach configures the AI coach.
type Coach struct {
	Model string `yaml:"model"`
}

// Default returns the default configuration.
func Default() *Config {
	dir := ".journal"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".journal")
	}
	return &Config{
		Dir: dir,
		Files: Files{
			Recommendations: "recommendations.json",
			Assessments:     "assessments.json",
			Notes:           "notes.json",
			Insights:        "insights.json",
		},
		Comparison: journal.Lexical.String(),
		Coach: Coach{
			Model: "gemini-2.5-pro",
		},
	}
}

// DefaultPath returns the configuration file used when none is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jnl", "config.yaml")
}

// Load reads the configuration file at path over the defaults and applies
// the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.merge(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge unmarshals the YAML file over c. Keys absent from the file keep
// their current value.
func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with the non empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDir); v != "" {
		c.Dir = v
	}
	if v := getenv(EnvComparison); v != "" {
		c.Comparison = v
	}
}

// Validate checks the values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	if _, err := journal.ParseComparison(c.Comparison); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Dir == "" {
		return errors.New("invalid config: dir is empty")
	}
	return nil
}

// Path resolves a journal file name against Dir.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
