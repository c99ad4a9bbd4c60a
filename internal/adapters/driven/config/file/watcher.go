package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/shellit/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last write
// before reloading.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a ConfigStore when its file changes on disk.
//
// The directory is watched rather than the file, so editors that save by
// renaming a temporary file are picked up.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	onReload func(error)
	debounce time.Duration
	log      logger.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for store. onReload runs on a timer
// goroutine after each reload with the Load error, if any.
func NewWatcher(store *ConfigStore, onReload func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(store.Path()), err)
	}

	return &Watcher{
		store:    store,
		watcher:  fsw,
		onReload: onReload,
		debounce: DefaultDebounce,
		log:      logger.For("config"),
	}, nil
}

// SetDebounce changes the reload delay. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	name := filepath.Clean(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.log.Debug("%s: %s", event.Op, event.Name)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	err := w.store.Load()
	if err != nil {
		w.log.Warn("reload %s: %v", w.store.Path(), err)
	} else {
		w.log.Debug("reloaded %s", w.store.Path())
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
