package errors

import (
	"math"
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"valid", 100, false},
		{"valid fraction", 0.5, false},
		{"max", MaxDimension, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxDimension + 1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("width", tt.input, "BOTTOM")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidDimension) {
					t.Errorf("expected ErrCodeInvalidDimension, got %v", GetCode(err))
				}
				if FieldOf(err) != "width" {
					t.Errorf("FieldOf() = %q, want width", FieldOf(err))
				}
				if p := PanelsOf(err); len(p) != 1 || p[0] != "BOTTOM" {
					t.Errorf("PanelsOf() = %v, want [BOTTOM]", p)
				}
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 0.15, false},
		{"negative", -0.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("kerf", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"low bound", 0, false},
		{"inside", 30, false},
		{"high bound excluded", 60, true},
		{"below", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("angle", tt.input, 0, 60)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
