// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "FLIGHTCOMPARE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local use: the simulated load delay is on.
	Development Environment = "development"
	// Production skips the simulated delay unless overridden.
	Production Environment = "production"
)

// Config is the flightcompare configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	Catalog CatalogConfig `yaml:"catalog"`
	Share   ShareConfig   `yaml:"share"`
	Startup StartupConfig `yaml:"startup"`
	Filters FiltersConfig `yaml:"filters"`
	UI      UIConfig      `yaml:"ui"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Catalog *CatalogConfig `yaml:"catalog,omitempty"`
	Share   *ShareConfig   `yaml:"share,omitempty"`
	Startup *StartupConfig `yaml:"startup,omitempty"`
	Filters *FiltersConfig `yaml:"filters,omitempty"`
	UI      *UIConfig      `yaml:"ui,omitempty"`
}

// CatalogConfig locates the flight catalog.
type CatalogConfig struct {
	// Path is a JSON or JSONC catalog file. ${VAR} and
	// ${VAR:-default} are expanded.
	Path string `yaml:"path"`
}

// ShareConfig configures share references.
type ShareConfig struct {
	// BaseLocation is the absolute URL share references are built on.
	BaseLocation string `yaml:"base_location"`
}

// StartupConfig configures the loading phase.
type StartupConfig struct {
	// Delay is the simulated load time before the session is ready.
	Delay time.Duration `yaml:"delay"`
}

// FiltersConfig configures the filter panel sliders.
type FiltersConfig struct {
	PriceStep float64 `yaml:"price_step"`
	HourStep  float64 `yaml:"hour_step"`
}

// UIConfig configures the terminal layout.
type UIConfig struct {
	// SplitRatio is the share of the content height given to the
	// filter and list row. The comparison cards take the rest.
	SplitRatio float64 `yaml:"split_ratio"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Environment: Development,
		Share: ShareConfig{
			BaseLocation: "https://flights.example.com/",
		},
		Startup: StartupConfig{
			Delay: time.Second,
		},
		Filters: FiltersConfig{
			PriceStep: 10,
			HourStep:  0.5,
		},
		UI: UIConfig{
			SplitRatio: 0.6,
		},
	}
}

// Load loads configuration from the file named by
// FLIGHTCOMPARE_CONFIG. When the variable is unset, Load returns the
// defaults.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values in
// the file are merged over [Default], then the environment overrides
// are applied and variables expanded.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		// Production default: no simulated delay.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Startup: &StartupConfig{Delay: 0},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Catalog != nil && overrides.Catalog.Path != "" {
		c.Catalog.Path = overrides.Catalog.Path
	}
	if overrides.Share != nil && overrides.Share.BaseLocation != "" {
		c.Share.BaseLocation = overrides.Share.BaseLocation
	}
	// A present startup section always applies, so a delay of 0s can
	// override a non-zero base.
	if overrides.Startup != nil {
		c.Startup.Delay = overrides.Startup.Delay
	}
	if overrides.Filters != nil {
		if overrides.Filters.PriceStep != 0 {
			c.Filters.PriceStep = overrides.Filters.PriceStep
		}
		if overrides.Filters.HourStep != 0 {
			c.Filters.HourStep = overrides.Filters.HourStep
		}
	}
	if overrides.UI != nil && overrides.UI.SplitRatio != 0 {
		c.UI.SplitRatio = overrides.UI.SplitRatio
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} in the catalog
// path.
func (c *Config) expandVariables() {
	c.Catalog.Path = expandVars(c.Catalog.Path, map[string]string{
		"HOME": os.Getenv("HOME"),
	})
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided
// vars win over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration and reports every problem.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Share.BaseLocation == "" {
		errs = append(errs, errors.New("share.base_location is required"))
	} else if location, err := url.Parse(c.Share.BaseLocation); err != nil || location.Scheme == "" || location.Host == "" {
		errs = append(errs, fmt.Errorf("share.base_location must be an absolute URL, got %q", c.Share.BaseLocation))
	}

	if c.Startup.Delay < 0 {
		errs = append(errs, fmt.Errorf("startup.delay must not be negative, got %s", c.Startup.Delay))
	}

	if c.Filters.PriceStep <= 0 {
		errs = append(errs, fmt.Errorf("filters.price_step must be positive, got %v", c.Filters.PriceStep))
	}
	if c.Filters.HourStep <= 0 || c.Filters.HourStep > 24 {
		errs = append(errs, fmt.Errorf("filters.hour_step must be in (0, 24], got %v", c.Filters.HourStep))
	}

	if c.UI.SplitRatio < 0.3 || c.UI.SplitRatio > 0.85 {
		errs = append(errs, fmt.Errorf("ui.split_ratio must be between 0.3 and 0.85, got %v", c.UI.SplitRatio))
	}

	return errors.Join(errs...)
}
