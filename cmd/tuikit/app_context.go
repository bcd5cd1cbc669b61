package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/history"
	"github.com/alexisbeaulieu97/tuikit/internal/i18n"
	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

// startupLogLimit bounds the entries kept before the real logger exists.
const startupLogLimit = 256

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config        *config.Config
	Catalog       *i18n.Catalog
	Bundle        *i18n.Bundle
	Theme         components.Theme
	Logger        ports.Logger
	CorrelationID string

	logFile *os.File
}

// newAppContext loads the configuration, applies flag overrides and builds
// the logger. Interactive commands own the terminal, so their logs go to
// --log-file or nowhere; the others log to stderr.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	startup := logging.NewBuffer(startupLogLimit)
	app := &AppContext{CorrelationID: ports.GenerateCorrelationID()}
	ctx := ports.WithCorrelationID(context.Background(), app.CorrelationID)

	cfg, err := loadConfig(ctx, flags, startup)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	var out io.Writer = stderr
	switch {
	case cfg.Log.File != "":
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Check that the log directory exists and is writable.")
		}
		app.logFile = file
		out = file
	case interactive:
		out = io.Discard
	}

	log, err := newLogger(cfg.Log, out)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	app.Logger = log
	startup.Flush(log)

	catalog, err := i18n.Load()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load message catalogs: %w", err)
	}
	app.Catalog = catalog
	app.Bundle = catalog.Bundle(cfg.Locale, localeFromEnv())
	app.Theme, _ = components.ThemeByName(cfg.Theme)

	log.Debug(ctx, "application ready",
		"theme", app.Theme.Name,
		"locale", app.Bundle.Locale(),
		"sources", len(cfg.Sources),
	)
	return app, nil
}

func loadConfig(ctx context.Context, flags *rootFlags, log ports.Logger) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, newCommandError("load configuration", flags.configPath, err, configSuggestion(err))
		}
		cfg = loaded
		log.Info(ctx, "configuration loaded", "path", flags.configPath)
	} else {
		log.Debug(ctx, "using built-in configuration")
	}

	// Flags win over the file.
	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&cfg.Theme, flags.theme)
	override(&cfg.Locale, flags.locale)
	override(&cfg.Log.Level, flags.logLevel)
	override(&cfg.Log.Format, flags.logFormat)
	override(&cfg.Log.File, flags.logFile)

	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("load configuration", "validating settings", err, configSuggestion(err))
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (ports.Logger, error) {
	if cfg.Format == "json" {
		return logger.New(logger.Options{Level: cfg.Level, Writer: out, Component: "tuikit"})
	}
	return logging.New(logging.Options{Writer: out, Level: cfg.Level, Component: "tuikit"})
}

// openHistory opens the configured history store, or returns nil when
// history is disabled.
func (a *AppContext) openHistory() (*history.Store, error) {
	if !a.Config.History.Enabled {
		return nil, nil
	}
	path := a.Config.History.Path
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(path, a.Config.History.Limit)
}

// CommandContext returns the context and logger for one command run.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, a.CorrelationID)
	return ctx, a.Logger.With("component", component)
}

// Close releases the log file.
func (a *AppContext) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// localeFromEnv turns POSIX locale variables such as fr_CA.UTF-8 into a
// BCP 47 tag.
func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		return strings.ReplaceAll(value, "_", "-")
	}
	return ""
}
