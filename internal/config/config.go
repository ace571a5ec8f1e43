// Package config handles promptpress configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HartBrook/promptpress/internal/errors"
	"github.com/HartBrook/promptpress/internal/language"
	"github.com/HartBrook/promptpress/internal/structure"
)

// CompressConfig contains compression settings.
type CompressConfig struct {
	TargetTokens int  `yaml:"target_tokens"` // 0 means no budget
	Strict       bool `yaml:"strict"`        // validate fails on any issue
}

// OptimizeConfig contains structure pass settings.
type OptimizeConfig struct {
	SizeClass string `yaml:"size_class"`
	Language  string `yaml:"language"` // empty means detect
}

// OutputConfig contains output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config represents the promptpress configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Compress CompressConfig `yaml:"compress"`
	Optimize OptimizeConfig `yaml:"optimize"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Default values.
const (
	DefaultVersion      = 1
	DefaultSizeClass    = string(structure.Medium)
	DefaultOutputFormat = FormatText
	DefaultLogLevel     = "info"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadOrDefault reads config from path, returning defaults when the file does
// not exist. Unreadable or invalid files are still errors.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.CodeOf(err) == errors.ErrConfigNotFound {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	if c.Compress.TargetTokens < 0 {
		return errors.ConfigInvalid("compress.target_tokens must not be negative")
	}
	if _, err := structure.ParseSizeClass(c.Optimize.SizeClass); err != nil {
		return errors.ConfigInvalid("optimize.size_class: " + err.Error())
	}
	if _, err := language.Parse(c.Optimize.Language); err != nil {
		return errors.ConfigInvalid("optimize.language: " + err.Error())
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return errors.ConfigInvalid("output.format must be text or json")
	}
	if !logLevels[c.Logging.Level] {
		return errors.ConfigInvalid("logging.level must be debug, info, warn or error")
	}
	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Optimize.SizeClass == "" {
		c.Optimize.SizeClass = DefaultSizeClass
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Exists checks if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
