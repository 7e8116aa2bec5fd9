package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/sllist/internal/config"
	"github.com/vk/sllist/internal/ctxlog"
	"github.com/vk/sllist/internal/engine"
	"github.com/vk/sllist/internal/hcl"
	"github.com/vk/sllist/internal/yamlcfg"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
	engine  *engine.Engine
}

// NewApp is the constructor for the main application. Script output goes to
// outW and logs to logW. When no loaders are given, the HCL and YAML loaders
// are registered.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = []config.Loader{hcl.NewLoader(), yamlcfg.NewLoader()}
	}
	byExt := make(map[string]config.Loader)
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
		}
	}
	logger.Debug("Script loaders registered.", "extensions", len(byExt))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: byExt,
		engine:  engine.New(outW, engine.NewRenderer(!cfg.NoColor)),
	}
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// extensions lists the registered suffixes.
func (a *App) extensions() []string {
	exts := make([]string, 0, len(a.loaders))
	for ext := range a.loaders {
		exts = append(exts, ext)
	}
	return exts
}

// loaderFor picks the loader registered for path's extension.
func (a *App) loaderFor(path string) (config.Loader, bool) {
	l, ok := a.loaders[strings.ToLower(filepath.Ext(path))]
	return l, ok
}
