// Package config loads LumaStay runtime settings from YAML, .env files, and
// LUMASTAY_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Dev       bool          `yaml:"dev"`
	AssetsDir string        `yaml:"assets_dir"`
	Server    ServerConfig  `yaml:"server"`
	Export    ExportConfig  `yaml:"export"`
	Logging   LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Metrics         MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Clean     bool   `yaml:"clean"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
		Export: ExportConfig{
			OutputDir: "./dist",
			Clean:     true,
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles never overrides variables already set in the process.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("LUMASTAY_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("LUMASTAY_DEV"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LUMASTAY_DEV=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Dev = dev
	}
	if v, ok := lookup("LUMASTAY_ASSETS_DIR"); ok {
		c.AssetsDir = v
	}
	if v, ok := lookup("LUMASTAY_OUTPUT_DIR"); ok && v != "" {
		c.Export.OutputDir = v
	}
	if v, ok := lookup("LUMASTAY_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = LogLevel(v)
	}
	if v, ok := lookup("LUMASTAY_LOG_FORMAT"); ok && v != "" {
		c.Logging.Format = LogFormat(v)
	}
	return nil
}

func (c *Config) normalize() {
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
	if c.Server.Metrics.Path == "" {
		c.Server.Metrics.Path = "/metrics"
	}
	if !strings.HasPrefix(c.Server.Metrics.Path, "/") {
		c.Server.Metrics.Path = "/" + c.Server.Metrics.Path
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Export.OutputDir == "" {
		errs = append(errs, errors.New("export.output_dir is required"))
	}
	if c.Server.Metrics.Path == "/" {
		errs = append(errs, errors.New("server.metrics.path cannot be the page root"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
