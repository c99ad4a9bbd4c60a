package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/shellit/internal/logger"
)

// startConfigWatcher runs the config watcher until the returned stop
// function is called. When settings are not file-backed nothing is
// started and stop does nothing.
func startConfigWatcher(ctx context.Context, onReload func(error)) (stop func(), err error) {
	if services == nil || services.WatchConfig == nil {
		return func() {}, nil
	}

	w, err := services.WatchConfig(onReload)
	if err != nil {
		return nil, fmt.Errorf("watching config: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()

	return func() {
		cancel()
		<-done
		_ = w.Close()
	}, nil
}

// applyReloadedSettings re-reads settings after a config reload and
// applies them to the calculator.
func applyReloadedSettings(reloadErr error) error {
	if reloadErr != nil {
		return fmt.Errorf("reloading config: %w", reloadErr)
	}
	if settingsService == nil || calculator == nil {
		return nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if err := calculator.Configure(settings); err != nil {
		return fmt.Errorf("applying settings: %w", err)
	}
	return nil
}
