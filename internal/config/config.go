// Package config loads the optional YAML settings file for the safety hooks.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment variable read by LoadEnv.
	EnvPrefix = "SAFETY_HOOKS"

	// EnvConfigPath names the environment variable that points at the config file.
	EnvConfigPath = EnvPrefix + "_CONFIG"
)

// Env holds settings taken from SAFETY_HOOKS_* environment variables.
// Non-empty values override the config file.
type Env struct {
	// Env: SAFETY_HOOKS_CONFIG
	ConfigPath string `envconfig:"CONFIG"`

	// Env: SAFETY_HOOKS_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Env: SAFETY_HOOKS_AUDIT_LOG
	AuditLog string `envconfig:"AUDIT_LOG"`
}

// LoadEnv reads the SAFETY_HOOKS_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	return &env, nil
}

// Config is the YAML structure of the settings file.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// AuditLog is a JSON Lines file that receives one entry per decision.
	// Empty disables auditing.
	AuditLog string `yaml:"audit_log,omitempty"`

	// DisabledRules lists rule names to skip.
	DisabledRules []string `yaml:"disabled_rules,omitempty"`

	// ProtectedPaths are extra globs treated as credential files.
	ProtectedPaths []string `yaml:"protected_paths,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load reads the config file at path. An empty path or a missing file yields the defaults.
// knownRules is the list of valid rule names for disabled_rules.
func Load(path string, knownRules []string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(knownRules); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides file settings with the non-empty environment values.
func (c *Config) ApplyEnv(env *Env) {
	if env == nil {
		return
	}
	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.AuditLog != "" {
		c.AuditLog = env.AuditLog
	}
}

// Validate checks rule names and glob syntax.
func (c *Config) Validate(knownRules []string) error {
	known := make(map[string]bool, len(knownRules))
	for _, name := range knownRules {
		known[name] = true
	}

	for _, name := range c.DisabledRules {
		if !known[name] {
			return fmt.Errorf("disabled_rules: unknown rule %q (valid: %s)", name, strings.Join(knownRules, ", "))
		}
	}

	if _, err := c.ProtectedGlobs(); err != nil {
		return err
	}
	return nil
}

// ProtectedGlobs compiles ProtectedPaths. Patterns are lowercased to match the
// case-insensitive credential check; "**" crosses directories, "*" does not.
func (c *Config) ProtectedGlobs() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.ProtectedPaths))
	for i, pattern := range c.ProtectedPaths {
		if pattern == "" {
			return nil, fmt.Errorf("protected_paths[%d]: empty pattern not allowed", i)
		}
		g, err := glob.Compile(strings.ToLower(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("protected_paths[%d]: invalid glob %q: %w", i, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
