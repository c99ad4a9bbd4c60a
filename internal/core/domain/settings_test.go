package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAngleUnit_IsValid tests all valid and invalid angle units
func TestAngleUnit_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     AngleUnit
		expected bool
	}{
		{name: "radians is valid", unit: AngleRadians, expected: true},
		{name: "degrees is valid", unit: AngleDegrees, expected: true},
		{name: "empty string is invalid", unit: AngleUnit(""), expected: false},
		{name: "gradians is invalid", unit: AngleUnit("gradians"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.unit.IsValid())
		})
	}
}

func TestAngleUnit_Description(t *testing.T) {
	assert.Equal(t, "Radians", AngleRadians.Description())
	assert.Equal(t, "Degrees", AngleDegrees.Description())
	assert.Equal(t, "Unknown", AngleUnit("turns").Description())
	assert.Equal(t, "degrees", AngleDegrees.String())
}

func TestDefaultCalculatorSettings(t *testing.T) {
	settings := DefaultCalculatorSettings()

	assert.Equal(t, 12, settings.Precision)
	assert.Equal(t, AngleRadians, settings.AngleUnit)
	assert.True(t, settings.EchoInput)
	assert.Equal(t, 100, settings.HistoryLimit)
	require.NoError(t, settings.Validate())
}

func TestCalculatorSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CalculatorSettings)
		wantErr bool
	}{
		{name: "defaults", modify: func(*CalculatorSettings) {}, wantErr: false},
		{name: "shortest precision", modify: func(s *CalculatorSettings) { s.Precision = ShortestPrecision }, wantErr: false},
		{name: "precision too small", modify: func(s *CalculatorSettings) { s.Precision = -2 }, wantErr: true},
		{name: "precision too large", modify: func(s *CalculatorSettings) { s.Precision = 65 }, wantErr: true},
		{name: "invalid angle unit", modify: func(s *CalculatorSettings) { s.AngleUnit = "turns" }, wantErr: true},
		{name: "negative history limit", modify: func(s *CalculatorSettings) { s.HistoryLimit = -1 }, wantErr: true},
		{name: "history disabled", modify: func(s *CalculatorSettings) { s.HistoryLimit = 0 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultCalculatorSettings()
			tt.modify(&settings)
			err := settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllAngleUnits(t *testing.T) {
	units := AllAngleUnits()

	assert.Len(t, units, 2)
	for _, u := range units {
		assert.True(t, u.IsValid())
	}
}
