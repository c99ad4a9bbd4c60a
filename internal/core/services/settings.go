package services

import (
	"fmt"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPrecision    = "calculator.precision"
	keyAngleUnit    = "calculator.angle_unit"
	keyEchoInput    = "calculator.echo_input"
	keyHistoryLimit = "calculator.history_limit"
)

// SettingsService manages calculator settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current calculator settings. Missing or invalid values
// fall back to defaults one field at a time.
func (s *SettingsService) Get() (domain.CalculatorSettings, error) {
	defaults := domain.DefaultCalculatorSettings()
	if s.configStore == nil {
		return defaults, nil
	}

	settings := domain.CalculatorSettings{
		Precision:    s.getInt(keyPrecision, defaults.Precision),
		AngleUnit:    s.getAngleUnit(defaults.AngleUnit),
		EchoInput:    s.getBool(keyEchoInput, defaults.EchoInput),
		HistoryLimit: s.getInt(keyHistoryLimit, defaults.HistoryLimit),
	}

	if settings.Precision < domain.ShortestPrecision || settings.Precision > domain.MaxPrecision {
		settings.Precision = defaults.Precision
	}
	if settings.HistoryLimit < 0 {
		settings.HistoryLimit = defaults.HistoryLimit
	}

	return settings, nil
}

// Save validates and persists calculator settings.
func (s *SettingsService) Save(settings domain.CalculatorSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if s.configStore == nil {
		return fmt.Errorf("save settings: no config store")
	}

	if err := s.configStore.Set(keyPrecision, settings.Precision); err != nil {
		return fmt.Errorf("save precision: %w", err)
	}
	if err := s.configStore.Set(keyAngleUnit, settings.AngleUnit.String()); err != nil {
		return fmt.Errorf("save angle unit: %w", err)
	}
	if err := s.configStore.Set(keyEchoInput, settings.EchoInput); err != nil {
		return fmt.Errorf("save echo input: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.HistoryLimit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.CalculatorSettings {
	return domain.DefaultCalculatorSettings()
}

func (s *SettingsService) getAngleUnit(fallback domain.AngleUnit) domain.AngleUnit {
	unit := domain.AngleUnit(s.configStore.GetString(keyAngleUnit))
	if !unit.IsValid() {
		return fallback
	}
	return unit
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
