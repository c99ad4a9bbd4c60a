package cli

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

type fakeWatcher struct {
	onReload func(error)
	started  chan struct{}
	closed   atomic.Bool
}

func (w *fakeWatcher) Run(ctx context.Context) error {
	close(w.started)
	w.onReload(nil)
	<-ctx.Done()
	return ctx.Err()
}

func (w *fakeWatcher) Close() error {
	w.closed.Store(true)
	return nil
}

func TestStartConfigWatcher_NoWatcher(t *testing.T) {
	useTestServices(t)

	stop, err := startConfigWatcher(context.Background(), func(error) {
		t.Fatal("reload callback should not run")
	})

	require.NoError(t, err)
	stop()
}

func TestStartConfigWatcher_NoServices(t *testing.T) {
	SetServices(nil)

	stop, err := startConfigWatcher(context.Background(), nil)

	require.NoError(t, err)
	stop()
}

func TestStartConfigWatcher_RunsUntilStopped(t *testing.T) {
	env := useTestServices(t)

	w := &fakeWatcher{started: make(chan struct{})}
	SetServices(&Services{
		Calculator: env.calc,
		WatchConfig: func(onReload func(error)) (ConfigWatcher, error) {
			w.onReload = onReload
			return w, nil
		},
	})

	var reloads atomic.Int32
	stop, err := startConfigWatcher(context.Background(), func(err error) {
		assert.NoError(t, err)
		reloads.Add(1)
	})
	require.NoError(t, err)

	select {
	case <-w.started:
	case <-time.After(time.Second):
		t.Fatal("watcher did not start")
	}

	stop()
	assert.True(t, w.closed.Load())
	assert.Equal(t, int32(1), reloads.Load())
}

func TestStartConfigWatcher_Error(t *testing.T) {
	t.Cleanup(func() { SetServices(nil) })
	boom := errors.New("no inotify")
	SetServices(&Services{
		WatchConfig: func(func(error)) (ConfigWatcher, error) { return nil, boom },
	})

	stop, err := startConfigWatcher(context.Background(), func(error) {})

	assert.Nil(t, stop)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "watching config")
}

func TestApplyReloadedSettings(t *testing.T) {
	t.Run("reload error", func(t *testing.T) {
		useTestServices(t)
		boom := errors.New("bad toml")

		err := applyReloadedSettings(boom)

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "reloading config")
	})

	t.Run("applies saved settings", func(t *testing.T) {
		env := useTestServices(t)
		s := domain.DefaultCalculatorSettings()
		s.Precision = 3
		s.AngleUnit = domain.AngleDegrees
		require.NoError(t, env.settings.Save(s))

		require.NoError(t, applyReloadedSettings(nil))

		assert.Equal(t, s, env.calc.Settings())
	})

	t.Run("no services", func(t *testing.T) {
		SetServices(nil)

		assert.NoError(t, applyReloadedSettings(nil))
	})
}
