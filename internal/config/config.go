// Package config defines the .decoy.yaml configuration schema,
// defaults, and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working
// directory when no explicit path is given.
const DefaultFileName = ".decoy.yaml"

// Config is the decoy configuration.
type Config struct {
	// Strict is the default mode for generated doubles: invoking an
	// unconfigured member fails instead of returning a zero value.
	Strict bool `yaml:"strict"`

	// Contracts selects which contracts are processed.
	Contracts ContractsConfig `yaml:"contracts"`

	// Naming controls the names the emission layer produces.
	Naming NamingConfig `yaml:"naming"`
}

// ContractsConfig holds contract selection patterns.
type ContractsConfig struct {
	// Include lists glob patterns a contract name must match to be
	// processed. Empty means every exported contract.
	Include []string `yaml:"include"`

	// Exclude lists glob patterns that remove contracts from the
	// set after Include is applied.
	Exclude []string `yaml:"exclude"`
}

// NamingConfig holds emission naming hints.
type NamingConfig struct {
	// Suffix is appended to a contract name to form its double's
	// type name.
	Suffix string `yaml:"suffix"`
}

// DefaultConfig returns the built-in defaults: strict doubles, every
// exported contract, "Double" suffix.
func DefaultConfig() *Config {
	return &Config{
		Strict: true,
		Naming: NamingConfig{Suffix: "Double"},
	}
}

// Load reads the configuration. With an empty path it looks for
// DefaultFileName in the working directory and falls back to the
// defaults when the file does not exist; an explicit path must
// exist. The loaded file is validated before it is returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that would produce
// broken generation output.
func (c *Config) Validate() error {
	if c.Naming.Suffix == "" {
		return fmt.Errorf("naming.suffix must not be empty")
	}
	if !validIdentifierFragment(c.Naming.Suffix) {
		return fmt.Errorf("naming.suffix %q is not a valid identifier fragment", c.Naming.Suffix)
	}
	for _, p := range append(append([]string{}, c.Contracts.Include...), c.Contracts.Exclude...) {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("invalid contract pattern %q: %w", p, err)
		}
	}
	return nil
}

// Selects reports whether a contract with the given name passes the
// include/exclude patterns. Include patterns, when present, must
// match at least once; exclude patterns then remove matches.
func (c *Config) Selects(name string) bool {
	if len(c.Contracts.Include) > 0 {
		matched := false
		for _, p := range c.Contracts.Include {
			if ok, _ := filepath.Match(p, name); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, p := range c.Contracts.Exclude {
		if ok, _ := filepath.Match(p, name); ok {
			return false
		}
	}
	return true
}

// validIdentifierFragment reports whether s can be appended to an
// identifier without producing an invalid name.
func validIdentifierFragment(s string) bool {
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}
