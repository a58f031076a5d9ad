package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings liftoff reads from its TOML file.
type Config struct {
	Endpoint  string `validate:"required,url"`
	LogFile   string `validate:"required"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
}

const (
	defaultConfigPath = "~/.config/liftoff/config.toml"
	defaultEndpoint   = "https://api.spacexdata.com/v3/launches"
	defaultLogFile    = "~/.local/state/liftoff/liftoff.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"

	// StderrLogFile routes logs to stderr instead of a file.
	StderrLogFile = "-"
)

var validate = validator.New()

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:  defaultEndpoint,
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load locates and parses the liftoff config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint  string `toml:"endpoint"`
		LogFile   string `toml:"log_file"`
		LogLevel  string `toml:"log_level"`
		LogFormat string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		Endpoint:  orDefault(raw.Endpoint, defaultEndpoint),
		LogFile:   orDefault(raw.LogFile, defaultLogFile),
		LogLevel:  strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel)),
		LogFormat: strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat)),
	}
	if cfg.LogFile != StderrLogFile {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values against their constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("validate config: %s failed %q check", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// LogToStderr reports whether logs go to stderr rather than a file.
func (c Config) LogToStderr() bool {
	return strings.TrimSpace(c.LogFile) == StderrLogFile
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
