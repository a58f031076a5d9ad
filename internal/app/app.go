package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/logging"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/ui"
)

// Options configure the liftoff application.
type Options struct {
	ConfigPath string // empty uses ~/.config/liftoff/config.toml
	PrefsPath  string // empty uses ~/.config/liftoff/prefs.toml
	Endpoint   string // overrides the configured endpoint when set
}

// env is everything a command needs after startup.
type env struct {
	cfg    config.Config
	log    *logrus.Logger
	client *spacex.Client
	close  func()
}

// bootstrap loads config, opens the log and builds the API client.
func bootstrap(opts Options) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}

	log, closeLog, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client, err := spacex.NewClient(cfg.Endpoint)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("init spacex client: %w", err)
	}

	log.WithFields(logrus.Fields{
		"endpoint": client.Endpoint(),
		"version":  spacex.Version,
	}).Info("liftoff starting")

	return &env{cfg: cfg, log: log, client: client, close: closeLog}, nil
}

// Run boots the launch browser until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer e.close()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		e.log.WithError(err).Warn("load prefs failed; using defaults")
	}

	logFile := e.cfg.LogFile
	if e.cfg.LogToStderr() {
		logFile = "" // nothing to tail
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Source:    e.client,
		Logger:    e.log,
		LogFile:   logFile,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
	})
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	e.log.Info("liftoff stopped")
	return nil
}
