// ABOUTME: YAML configuration parsing and validation
// ABOUTME: Defines the tunes endpoint and logging settings
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/tunes-client/internal/infrastructure/tunes"
)

type Config struct {
	Endpoint EndpointConfig `yaml:"endpoint"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type EndpointConfig struct {
	BaseURL          string            `yaml:"base_url"`
	Path             string            `yaml:"path"`
	TimeoutMs        int               `yaml:"timeout_ms"`
	ConnectTimeoutMs int               `yaml:"connect_timeout_ms"`
	MaxBodyBytes     int64             `yaml:"max_body_bytes"`
	LenientStatus    bool              `yaml:"lenient_status"`
	RequestHeaders   map[string]string `yaml:"request_headers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() *Config {
	cfg := &Config{
		Endpoint: EndpointConfig{BaseURL: "http://localhost:8000"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyDefaults fills zero values. Negative values are left for Validate.
func (c *Config) ApplyDefaults() {
	if c.Endpoint.Path == "" {
		c.Endpoint.Path = tunes.DefaultPath
	}
	if c.Endpoint.TimeoutMs == 0 {
		c.Endpoint.TimeoutMs = int(tunes.DefaultTimeout / time.Millisecond)
	}
	if c.Endpoint.ConnectTimeoutMs == 0 {
		c.Endpoint.ConnectTimeoutMs = int(tunes.DefaultConnectTimeout / time.Millisecond)
	}
	if c.Endpoint.MaxBodyBytes == 0 {
		c.Endpoint.MaxBodyBytes = tunes.DefaultMaxBodyBytes
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.Endpoint.BaseURL)
	switch {
	case c.Endpoint.BaseURL == "":
		errs = append(errs, errors.New("endpoint.base_url is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("endpoint.base_url: %w", err))
	case !u.IsAbs() || u.Host == "":
		errs = append(errs, fmt.Errorf("endpoint.base_url %q must be absolute", c.Endpoint.BaseURL))
	}

	if !strings.HasPrefix(c.Endpoint.Path, "/") {
		errs = append(errs, fmt.Errorf("endpoint.path %q must start with /", c.Endpoint.Path))
	}
	if c.Endpoint.TimeoutMs < 0 {
		errs = append(errs, errors.New("endpoint.timeout_ms must not be negative"))
	}
	if c.Endpoint.ConnectTimeoutMs < 0 {
		errs = append(errs, errors.New("endpoint.connect_timeout_ms must not be negative"))
	}
	if c.Endpoint.MaxBodyBytes < 0 {
		errs = append(errs, errors.New("endpoint.max_body_bytes must not be negative"))
	}

	return errors.Join(errs...)
}

// HTTP converts the endpoint section into fetcher settings.
func (c *Config) HTTP() tunes.HTTPConfig {
	return tunes.HTTPConfig{
		BaseURL:        c.Endpoint.BaseURL,
		Path:           c.Endpoint.Path,
		Timeout:        time.Duration(c.Endpoint.TimeoutMs) * time.Millisecond,
		ConnectTimeout: time.Duration(c.Endpoint.ConnectTimeoutMs) * time.Millisecond,
		MaxBodyBytes:   c.Endpoint.MaxBodyBytes,
		Headers:        c.Endpoint.RequestHeaders,
		LenientStatus:  c.Endpoint.LenientStatus,
	}
}
