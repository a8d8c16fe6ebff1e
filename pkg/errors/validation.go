package errors

import (
	"math"
)

// MaxDimension bounds every linear parameter. Anything larger is a typo or a
// unit mix-up (metres entered as millimetres) rather than a real sheet.
const MaxDimension = 1e5

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(field string, v float64, panels ...string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidDimension(field, panels, "must be a finite number, got %g", v)
	}
	return nil
}

// ValidatePositive validates a dimension that must be strictly positive.
//
// The validation rules are:
//   - Finite (no NaN or Inf)
//   - Greater than zero
//   - No larger than MaxDimension
//
// panels lists the panels that cannot be built from the value, so callers can
// surface them next to the field.
func ValidatePositive(field string, v float64, panels ...string) error {
	if err := ValidateFinite(field, v, panels...); err != nil {
		return err
	}
	if v <= 0 {
		return InvalidDimension(field, panels, "must be positive, got %g", v)
	}
	if v > MaxDimension {
		return InvalidDimension(field, panels, "too large (max %g), got %g", float64(MaxDimension), v)
	}
	return nil
}

// ValidateNonNegative validates a value that may be zero but not negative.
func ValidateNonNegative(field string, v float64, panels ...string) error {
	if err := ValidateFinite(field, v, panels...); err != nil {
		return err
	}
	if v < 0 {
		return InvalidDimension(field, panels, "must not be negative, got %g", v)
	}
	if v > MaxDimension {
		return InvalidDimension(field, panels, "too large (max %g), got %g", float64(MaxDimension), v)
	}
	return nil
}

// ValidateRange validates lo <= v < hi.
func ValidateRange(field string, v, lo, hi float64, panels ...string) error {
	if err := ValidateFinite(field, v, panels...); err != nil {
		return err
	}
	if v < lo || v >= hi {
		return InvalidDimension(field, panels, "must be in [%g, %g), got %g", lo, hi, v)
	}
	return nil
}
