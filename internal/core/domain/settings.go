package domain

const unknownDescription = "Unknown"

// AngleUnit selects how trigonometric functions interpret their arguments.
type AngleUnit string

// Available angle units.
const (
	// AngleRadians treats angles as radians.
	AngleRadians AngleUnit = "radians"

	// AngleDegrees treats angles as degrees.
	AngleDegrees AngleUnit = "degrees"
)

// AllAngleUnits returns every supported angle unit.
func AllAngleUnits() []AngleUnit {
	return []AngleUnit{AngleRadians, AngleDegrees}
}

// IsValid returns true if the angle unit is recognised.
func (u AngleUnit) IsValid() bool {
	switch u {
	case AngleRadians, AngleDegrees:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u AngleUnit) String() string {
	return string(u)
}

// Description returns a human-readable description of the unit.
func (u AngleUnit) Description() string {
	switch u {
	case AngleRadians:
		return "Radians"
	case AngleDegrees:
		return "Degrees"
	default:
		return unknownDescription
	}
}

// Precision bounds.
const (
	// ShortestPrecision asks the formatter for the fewest digits that
	// represent the value exactly.
	ShortestPrecision = -1

	// MaxPrecision is the largest accepted number of significant digits.
	MaxPrecision = 64
)

// CalculatorSettings holds calculator configuration.
type CalculatorSettings struct {
	// Precision is the number of significant digits for float results.
	// ShortestPrecision (-1) selects the shortest exact representation.
	Precision int

	// AngleUnit controls trigonometric functions.
	AngleUnit AngleUnit

	// EchoInput is the default for printing the expression with the result.
	EchoInput bool

	// HistoryLimit caps the number of stored evaluations. 0 disables history.
	HistoryLimit int
}

// DefaultCalculatorSettings returns sensible defaults.
func DefaultCalculatorSettings() CalculatorSettings {
	return CalculatorSettings{
		Precision:    12,
		AngleUnit:    AngleRadians,
		EchoInput:    true,
		HistoryLimit: 100,
	}
}

// Validate checks the settings are usable.
func (s CalculatorSettings) Validate() error {
	if !s.AngleUnit.IsValid() {
		return ErrInvalidInput
	}
	if s.Precision < ShortestPrecision || s.Precision > MaxPrecision {
		return ErrInvalidInput
	}
	if s.HistoryLimit < 0 {
		return ErrInvalidInput
	}
	return nil
}
