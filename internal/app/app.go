// Package app wires the core services to their adapters.
package app

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/shellit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shellit/internal/adapters/driven/expression/exprlang"
	"github.com/custodia-labs/shellit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shellit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/shellit/internal/adapters/driving/cli"
	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
	"github.com/custodia-labs/shellit/internal/core/services"
	"github.com/custodia-labs/shellit/internal/logger"
)

var (
	evaluatorOnce sync.Once
	evaluator     *services.Evaluator
)

// Evaluator returns the process-wide evaluator. It is created on first use
// with default settings.
func Evaluator() *services.Evaluator {
	evaluatorOnce.Do(func() {
		evaluator = services.NewEvaluator(exprlang.New(), domain.DefaultCalculatorSettings())
	})
	return evaluator
}

// Bootstrap builds the services the CLI runs against. With opts.Memory
// settings and history live in memory; otherwise settings are read from
// config.toml in opts.ConfigDir and history is kept in data/history.db
// beneath it.
func Bootstrap(opts cli.Options) (*cli.Services, error) {
	logger.Section("Startup")
	log := logger.For("app")

	var (
		configStore  driven.ConfigStore
		historyStore driven.HistoryStore
		fileStore    *file.ConfigStore
		db           *sqlite.Store
	)

	if opts.Memory {
		configStore = memory.NewConfigStore()
		historyStore = memory.NewHistoryStore()
		log.Debug("using in-memory stores")
	} else {
		dir := opts.ConfigDir
		if dir == "" {
			d, err := file.DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}

		var err error
		fileStore, err = file.NewConfigStore(dir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		db, err = sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		configStore = fileStore
		historyStore = db.HistoryStore()
		log.Debug("config %s, history %s", fileStore.Path(), db.Path())
	}

	settingsService := services.NewSettingsService(configStore)
	calc := Evaluator()
	if err := configure(calc, settingsService); err != nil {
		log.Warn("%v, using defaults", err)
	}

	registry := services.NewServiceRegistry()
	s := &cli.Services{
		Calculator: calc,
		History:    services.NewHistoryService(calc, historyStore),
		Settings:   settingsService,
		Registry:   registry,
		Close: func() error {
			registry.DestroyAll()
			if db != nil {
				return db.Close()
			}
			return nil
		},
	}

	if fileStore != nil {
		s.WatchConfig = func(onReload func(error)) (cli.ConfigWatcher, error) {
			return file.NewWatcher(fileStore, onReload)
		}
	}

	return s, nil
}

func configure(calc *services.Evaluator, settingsService *services.SettingsService) error {
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if err := calc.Configure(settings); err != nil {
		return fmt.Errorf("applying settings: %w", err)
	}
	return nil
}
