package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/sllist/internal/ctxlog"
	"github.com/vk/sllist/internal/fsutil"
)

// ErrNoScripts is returned when the script path holds no recognized files.
var ErrNoScripts = errors.New("no scripts found")

// Run loads every script under the configured path and executes each one on
// its own list.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "path", a.config.ScriptPath)

	files, err := fsutil.FindFilesByExtension(a.config.ScriptPath, a.extensions()...)
	if err != nil {
		return fmt.Errorf("failed to find scripts in %s: %w", a.config.ScriptPath, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoScripts, a.config.ScriptPath)
	}
	logger.Info("Found scripts to run.", "count", len(files))

	var errs []error
	for _, file := range files {
		if err := a.runFile(ctx, file); err != nil {
			logger.Error("Script failed.", "script", file, "error", err)
			errs = append(errs, err)
			if !a.config.KeepGoing {
				break
			}
		}
	}

	logger.Debug("App.Run method finished.", "failed", len(errs))
	return errors.Join(errs...)
}

func (a *App) runFile(ctx context.Context, file string) error {
	loader, ok := a.loaderFor(file)
	if !ok {
		return fmt.Errorf("no loader registered for %s", file)
	}

	script, err := loader.Load(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	res, err := a.engine.Execute(ctx, script)
	if err != nil {
		return fmt.Errorf("script %s failed: %w", file, err)
	}

	ctxlog.FromContext(ctx).Info("Script passed.", "script", file, "ops", res.Executed, "count", res.List.Count())
	return nil
}
