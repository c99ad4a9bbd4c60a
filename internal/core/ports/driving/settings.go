package driving

import "github.com/custodia-labs/shellit/internal/core/domain"

// SettingsService manages calculator settings.
type SettingsService interface {
	// Get retrieves current calculator settings.
	Get() (domain.CalculatorSettings, error)

	// Save validates and persists calculator settings.
	Save(settings domain.CalculatorSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.CalculatorSettings
}
