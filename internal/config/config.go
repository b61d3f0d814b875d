package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/spliit/internal/spliit"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "spliit.yaml"

// Environment variables overlaid on top of the config file.
const (
	EnvGroupID  = "SPLIIT_GROUP_ID"
	EnvBaseURL  = "SPLIIT_BASE_URL"
	EnvTimeout  = "SPLIIT_TIMEOUT"
	EnvMaxPages = "SPLIIT_MAX_PAGES"
	EnvLogLevel = "LOG_LEVEL"
)

// ErrMissingGroupID is reported by Validate when no group is configured.
var ErrMissingGroupID = errors.New("group_id is not set")

// Config represents spliit.yaml.
type Config struct {
	GroupID  string        `yaml:"group_id"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	MaxPages int           `yaml:"max_pages"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns a Config pointing at the public Spliit instance.
func Default() *Config {
	return &Config{
		BaseURL:  spliit.DefaultBaseURL,
		Timeout:  30 * time.Second,
		MaxPages: spliit.DefaultMaxPages,
		LogLevel: "info",
	}
}

// Load reads a spliit.yaml file from disk on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadEnv overlays environment variables onto cfg. A .env file in the
// working directory is read first; variables already set in the process
// environment take precedence over it.
func LoadEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvGroupID)); v != "" {
		cfg.GroupID = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxPages)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxPages, err)
		}
		cfg.MaxPages = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the config file,
// then the environment. An empty path means DefaultPath, which may be absent;
// an explicit path must exist.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	loaded, err := Load(path)
	switch {
	case err == nil:
		cfg = loaded
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := LoadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem with cfg.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.GroupID) == "" {
		errs = append(errs, ErrMissingGroupID)
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid base_url %q", c.BaseURL))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.MaxPages <= 0 {
		errs = append(errs, fmt.Errorf("max_pages must be positive, got %d", c.MaxPages))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
}
