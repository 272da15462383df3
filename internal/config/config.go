// Package config loads passgen settings from defaults, an optional YAML file
// and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLength is the starting password length before clamping.
const DefaultLength = 16

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port     string
	Env      string
	LogLevel string
	LogFile  string

	JWTSecret string
	JWTExpiry time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	Length        int
	Numbers       bool
	Symbols       bool
	ClipboardTmux bool
}

// File mirrors the YAML config file. Nil fields keep the current value.
type File struct {
	Server struct {
		Port           *string  `yaml:"port"`
		Env            *string  `yaml:"env"`
		JWTExpiry      *string  `yaml:"jwt_expiry"`
		RateLimitRPS   *float64 `yaml:"rate_limit_rps"`
		RateLimitBurst *int     `yaml:"rate_limit_burst"`
	} `yaml:"server"`
	Log struct {
		Level *string `yaml:"level"`
		File  *string `yaml:"file"`
	} `yaml:"log"`
	Generator struct {
		Length  *int  `yaml:"length"`
		Numbers *bool `yaml:"numbers"`
		Symbols *bool `yaml:"symbols"`
	} `yaml:"generator"`
	Clipboard struct {
		Tmux *bool `yaml:"tmux"`
	} `yaml:"clipboard"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:           "8080",
		Env:            "development",
		LogLevel:       "info",
		JWTSecret:      "",
		JWTExpiry:      24 * time.Hour,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		Length:         DefaultLength,
		Numbers:        true,
		Symbols:        true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/passgen/config.yaml or its home fallback.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "passgen.yaml"
	}
	return filepath.Join(dir, "passgen", "config.yaml")
}

// Load builds a Config from defaults, the YAML file at path (skipped when it
// does not exist) and PASSGEN_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := cfg.applyYAML(data); err != nil {
				return Config{}, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse applies YAML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.applyYAML(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyYAML(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	setString(&c.Port, f.Server.Port)
	setString(&c.Env, f.Server.Env)
	setString(&c.LogLevel, f.Log.Level)
	setString(&c.LogFile, f.Log.File)

	if f.Server.JWTExpiry != nil {
		d, err := time.ParseDuration(*f.Server.JWTExpiry)
		if err != nil {
			return fmt.Errorf("%w: server.jwt_expiry: %v", ErrInvalidConfig, err)
		}
		c.JWTExpiry = d
	}
	if f.Server.RateLimitRPS != nil {
		c.RateLimitRPS = *f.Server.RateLimitRPS
	}
	if f.Server.RateLimitBurst != nil {
		c.RateLimitBurst = *f.Server.RateLimitBurst
	}
	if f.Generator.Length != nil {
		c.Length = *f.Generator.Length
	}
	if f.Generator.Numbers != nil {
		c.Numbers = *f.Generator.Numbers
	}
	if f.Generator.Symbols != nil {
		c.Symbols = *f.Generator.Symbols
	}
	if f.Clipboard.Tmux != nil {
		c.ClipboardTmux = *f.Clipboard.Tmux
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.Env = getEnv("PASSGEN_ENV", c.Env)
	c.LogLevel = getEnv("PASSGEN_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("PASSGEN_LOG_FILE", c.LogFile)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)

	var err error
	if c.JWTExpiry, err = getDuration("JWT_EXPIRY", c.JWTExpiry); err != nil {
		return err
	}
	if c.Length, err = getInt("PASSGEN_LENGTH", c.Length); err != nil {
		return err
	}
	if c.RateLimitBurst, err = getInt("PASSGEN_RATE_LIMIT_BURST", c.RateLimitBurst); err != nil {
		return err
	}
	if c.Numbers, err = getBool("PASSGEN_NUMBERS", c.Numbers); err != nil {
		return err
	}
	if c.Symbols, err = getBool("PASSGEN_SYMBOLS", c.Symbols); err != nil {
		return err
	}
	if c.ClipboardTmux, err = getBool("PASSGEN_CLIPBOARD_TMUX", c.ClipboardTmux); err != nil {
		return err
	}
	if v := os.Getenv("PASSGEN_RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: PASSGEN_RATE_LIMIT_RPS: %v", ErrInvalidConfig, err)
		}
		c.RateLimitRPS = rps
	}

	return nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, c.Length)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("%w: rate limit rps must be positive", ErrInvalidConfig)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: rate limit burst must be positive", ErrInvalidConfig)
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("%w: jwt expiry must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.IsProduction() && !c.AuthEnabled() {
		return fmt.Errorf("%w: JWT_SECRET must be set in production environment", ErrInvalidConfig)
	}
	return nil
}

// IsProduction reports whether Env is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether API requests must carry a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}
