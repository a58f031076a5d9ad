// Package logging builds the logrus logger shared by the UI and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/config"
)

// New configures a logger from cfg. The returned func closes the log file;
// it is safe to call when logging to stderr.
func New(cfg config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if cfg.LogToStderr() || cfg.LogFile == "" {
		logger.SetOutput(os.Stderr)
		return logger, func() {}, nil
	}

	file, err := openLogFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(file)
	return logger, func() { _ = file.Close() }, nil
}

// Discard returns a logger that drops everything, for tests and headless paths.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
