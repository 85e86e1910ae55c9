package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/hostcfg"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer // rendered pages, when no output dir is configured
	logger *slog.Logger
	config *Config
	host   *hostcfg.File
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A host config file
// that cannot be loaded is a fatal startup error.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	var host *hostcfg.File
	if appConfig.ConfigPath != "" {
		var err error
		host, err = hostcfg.Load(context.Background(), appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load host config: %w", err))
		}
	}

	// File values fill in whatever the CLI left unset, before the logger
	// is built so log settings from the file take effect.
	cfg := *appConfig
	if host != nil && host.Host != nil {
		if cfg.LogLevel == "" {
			cfg.LogLevel = host.Host.LogLevel
		}
		if cfg.LogFormat == "" {
			cfg.LogFormat = host.Host.LogFormat
		}
		if cfg.OutputDir == "" {
			cfg.OutputDir = host.Host.OutputDir
		}
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: &cfg,
		host:   host,
	}
}

// Config returns the effective configuration. Primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// ctx returns a context carrying the app logger.
func (a *App) ctx(parent context.Context) context.Context {
	return ctxlog.WithLogger(parent, a.logger)
}
