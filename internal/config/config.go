// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"unit-converter/core/output"
	"unit-converter/core/types"
	"unit-converter/internal/errors"
	"unit-converter/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version" toml:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output" toml:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging" toml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" yaml:"default_format" toml:"default_format" env:"UNITCONV_OUTPUT_FORMAT"`

	// DefaultDomain is the domain used when --domain is not given
	DefaultDomain string `json:"default_domain" yaml:"default_domain" toml:"default_domain" env:"UNITCONV_DEFAULT_DOMAIN"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color" yaml:"no_color" toml:"no_color" env:"UNITCONV_NO_COLOR"`

	// ShowTable prints the quick reference table after every conversion
	ShowTable bool `json:"show_table" yaml:"show_table" toml:"show_table" env:"UNITCONV_SHOW_TABLE"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr" toml:"addr" env:"UNITCONV_HTTP_ADDR"`

	// ReadTimeout is the maximum duration for reading a request
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" toml:"read_timeout" env:"UNITCONV_HTTP_READ_TIMEOUT"`

	// ReadHeaderTimeout is the time allowed to read request headers
	ReadHeaderTimeout time.Duration `json:"read_header_timeout" yaml:"read_header_timeout" toml:"read_header_timeout" env:"UNITCONV_HTTP_READ_HEADER_TIMEOUT"`

	// WriteTimeout is the maximum duration before timing out writes
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" toml:"write_timeout" env:"UNITCONV_HTTP_WRITE_TIMEOUT"`

	// IdleTimeout is the keep-alive idle timeout
	IdleTimeout time.Duration `json:"idle_timeout" yaml:"idle_timeout" toml:"idle_timeout" env:"UNITCONV_HTTP_IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout" env:"UNITCONV_HTTP_SHUTDOWN_TIMEOUT"`

	// MetricsPath is where Prometheus metrics are served
	MetricsPath string `json:"metrics_path" yaml:"metrics_path" toml:"metrics_path" env:"UNITCONV_HTTP_METRICS_PATH"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: string(output.FormatCLI),
			DefaultDomain: types.DomainLength.String(),
			NoColor:       false,
			ShowTable:     false,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MetricsPath:       "/metrics",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file and applies UNITCONV_* environment
// overrides. A missing file yields the defaults. .hcl files are decoded with
// HCL; .json, .yaml, .yml and .toml go through cleanenv.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Config("failed to stat config file", err)
			}
			path = ""
		}
	}

	switch {
	case path == "":
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errors.Config("failed to read environment", err)
		}
	case strings.EqualFold(filepath.Ext(path), ".hcl"):
		if err := decodeHCL(path, cfg); err != nil {
			return nil, errors.Wrapf(errors.TypeConfig, err, "failed to decode %s", path)
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errors.Config("failed to read environment", err)
		}
	default:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that other packages parse later
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Output.DefaultFormat); err != nil {
		return errors.Config("invalid output.default_format", err)
	}
	if _, err := types.ParseDomain(c.Output.DefaultDomain); err != nil {
		return errors.Config("invalid output.default_domain", err)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.TypeConfig, "server.addr must not be empty")
	}
	if !strings.HasPrefix(c.Server.MetricsPath, "/") {
		return errors.New(errors.TypeConfig, "server.metrics_path must start with /")
	}
	return nil
}

// Save saves configuration to a file as JSON or YAML, chosen by extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(filepath.Ext(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the configuration for a file extension
func (c *Config) Marshal(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json", "":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	default:
		return nil, errors.NotSupported("writing " + ext + " config files")
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
