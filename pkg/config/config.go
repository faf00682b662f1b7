// Package config loads the optional YAML configuration used by the
// sixpair CLI. Everything in it can also be set with command-line flags;
// flags win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sixpair/sixpair-go/pkg/registry"
	"github.com/sixpair/sixpair-go/pkg/report"
)

// ErrInvalidLogLevel indicates a log level outside debug/info/warn/error.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config is the root configuration structure.
type Config struct {
	// Logging controls console and file event logging.
	Logging LoggingConfig `yaml:"logging"`

	// Device optionally pins the controller to pair with, for hosts
	// with controllers the registry does not know.
	Device *DeviceConfig `yaml:"device"`
}

// LoggingConfig controls event logging.
type LoggingConfig struct {
	// Level is the console log level: debug, info, warn, or error.
	Level string `yaml:"level"`

	// File, if set, receives the CBOR event stream.
	File string `yaml:"file"`
}

// DeviceConfig pins an explicit device and protocol.
type DeviceConfig struct {
	// ID is the USB vendor/product pair as "vid:pid" hex.
	ID string `yaml:"id"`

	// Protocol names the pairing protocol: sixaxis or dualshock4.
	// Required when ID is set.
	Protocol string `yaml:"protocol"`
}

// Default returns a Config with defaults applied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and validates a YAML config file. A missing file is not an
// error: defaults are returned so the CLI can probe its default path.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return parse(data, cfg)
}

// Parse parses YAML config bytes over the defaults.
func Parse(data []byte) (*Config, error) {
	return parse(data, Default())
}

func parse(data []byte, cfg *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Device != nil {
		if _, err := registry.ParseDeviceID(c.Device.ID); err != nil {
			return fmt.Errorf("device.id: %w", err)
		}
		if _, err := report.ParseProtocol(c.Device.Protocol); err != nil {
			return fmt.Errorf("device.protocol: %w", err)
		}
	}
	return nil
}

// DeviceID returns the pinned device ID, or nil when none is configured.
func (c *Config) DeviceID() (*registry.DeviceID, error) {
	if c.Device == nil {
		return nil, nil
	}
	id, err := registry.ParseDeviceID(c.Device.ID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Protocol returns the pinned protocol, or nil when none is configured.
func (c *Config) Protocol() (*report.Protocol, error) {
	if c.Device == nil {
		return nil, nil
	}
	p, err := report.ParseProtocol(c.Device.Protocol)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
