// SPDX-License-Identifier: MIT

// Package config loads tubemap settings from an optional YAML file overridden by
// TUBEMAP_* environment variables (TUBEMAP_DATA_ZONE, TUBEMAP_SERVER_ADDR, ...).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/tubemap/builder"
	"github.com/katalvlaran/tubemap/loader"
)

// EnvPrefix prefixes every derived environment key.
const EnvPrefix = "TUBEMAP"

// PathEnv names the variable consulted when no config path is given explicitly.
const PathEnv = "TUBEMAP_CONFIG"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config defines tubemap configuration.
type Config struct {
	Data struct {
		Stations    string `yaml:"stations"`
		Connections string `yaml:"connections"`
		Encoding    string `yaml:"encoding"`
		Zone        string `yaml:"zone"`
		Coordinates string `yaml:"coordinates"`
	} `yaml:"data"`
	Network struct {
		Unresolved string `yaml:"unresolved"`
		Isolated   bool   `yaml:"isolated"`
	} `yaml:"network"`
	Server struct {
		Addr     string        `yaml:"addr"`
		CacheTTL time.Duration `yaml:"cacheTTL" env:"TUBEMAP_SERVER_CACHE_TTL"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`
	Lines map[string]string `yaml:"lines"`

	// Overrides lists the environment variables that replaced a value.
	Overrides []string `yaml:"-" env:"-"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	cfg := &Config{}
	cfg.Data.Stations = "London stations.csv"
	cfg.Data.Connections = "London tube lines.csv"
	cfg.Data.Encoding = "latin1"
	cfg.Data.Zone = "1"
	cfg.Data.Coordinates = "geographic"
	cfg.Network.Unresolved = builder.DropUnresolved.String()
	cfg.Server.Addr = ":8080"
	cfg.Server.CacheTTL = 5 * time.Minute
	cfg.Log.Level = "info"

	return cfg
}

// Load reads configuration from path, or from $TUBEMAP_CONFIG when path is empty,
// then applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}

	cfg := Default()
	if path != "" {
		if err := readFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applied, err := applyEnv(cfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	cfg.Overrides = applied
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks paths and enumerated settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Stations) == "" {
		return fmt.Errorf("%w: data.stations required", ErrInvalid)
	}
	if strings.TrimSpace(c.Data.Connections) == "" {
		return fmt.Errorf("%w: data.connections required", ErrInvalid)
	}
	if _, err := c.CoordinateSystem(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.UnresolvedPolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Server.CacheTTL < 0 {
		return fmt.Errorf("%w: server.cacheTTL must not be negative", ErrInvalid)
	}

	return nil
}

// CoordinateSystem returns the parsed data.coordinates setting.
func (c *Config) CoordinateSystem() (loader.CoordinateSystem, error) {
	return loader.ParseCoordinateSystem(c.Data.Coordinates)
}

// UnresolvedPolicy returns the parsed network.unresolved setting.
func (c *Config) UnresolvedPolicy() (builder.UnresolvedPolicy, error) {
	return builder.ParseUnresolvedPolicy(c.Network.Unresolved)
}

// HTTPAddress returns the listen address in host:port or :port form.
func (c *Config) HTTPAddress() string {
	addr := strings.TrimSpace(c.Server.Addr)
	if addr == "" {
		return ":8080"
	}
	if !strings.Contains(addr, ":") {
		return ":" + addr
	}

	return addr
}
