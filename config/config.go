// Package config defines the configuration of the world checking tool.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/robo-bootcamp/gobotic/logging"
	"github.com/robo-bootcamp/gobotic/utils"
	"github.com/robo-bootcamp/gobotic/worldfile"
)

// Environment variables that override the values read from a config file.
const (
	EnvStrict       = "GOBOTIC_STRICT"
	EnvMaxObstacles = "GOBOTIC_MAX_OBSTACLES"
)

// Config describes which world to load and how strictly to check it.
type Config struct {
	// ConfigFilePath is the path the config was read from, if any.
	ConfigFilePath string `json:"-"`

	WorldFile    string        `json:"world_file"`
	Strict       bool          `json:"strict,omitempty"`
	MaxObstacles int           `json:"max_obstacles,omitempty"`
	LogLevel     logging.Level `json:"log_level,omitempty"`
}

// Validate ensures all parts of the config are valid, including that a world file is named.
func (c *Config) Validate(path string) error {
	if c.WorldFile == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "world_file")
	}
	return c.validateLimits(path)
}

// validateLimits checks the fields that must be valid even in a partial config, one whose world
// file is given elsewhere.
func (c *Config) validateLimits(path string) error {
	if c.MaxObstacles < 0 {
		return errors.Errorf("%s: max_obstacles must be positive, got %d", path, c.MaxObstacles)
	}
	return nil
}

// ApplyEnv overrides fields with the values of the GOBOTIC_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if raw, ok := os.LookupEnv(EnvStrict); ok {
		strict, err := cast.ToBoolE(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvStrict)
		}
		c.Strict = strict
	}
	if raw, ok := os.LookupEnv(EnvMaxObstacles); ok {
		maxObstacles, err := cast.ToIntE(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvMaxObstacles)
		}
		c.MaxObstacles = maxObstacles
	}
	return nil
}

// LoaderOptions turns the config into options for the world description loader.
func (c *Config) LoaderOptions() []worldfile.Option {
	var opts []worldfile.Option
	if c.Strict {
		opts = append(opts, worldfile.WithStrict())
	}
	if c.MaxObstacles > 0 {
		opts = append(opts, worldfile.WithMaxObstacles(c.MaxObstacles))
	}
	return opts
}

// resolveWorldFile expands ~ and makes a relative world file relative to the config file.
func (c *Config) resolveWorldFile() error {
	if c.WorldFile == "" {
		return nil
	}
	expanded, err := utils.ExpandHomeDir(c.WorldFile)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(expanded) && c.ConfigFilePath != "" {
		expanded = filepath.Join(filepath.Dir(c.ConfigFilePath), expanded)
	}
	c.WorldFile = expanded
	return nil
}
