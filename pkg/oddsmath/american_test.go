package oddsmath_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/oddsmath"
)

func TestParseAmerican(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"Negative odds", "-110", -110, false},
		{"Positive with sign", "+150", 150, false},
		{"Positive without sign", "150", 150, false},
		{"Parenthesized", "(-105)", -105, false},
		{"Unicode minus", "−120", -120, false},
		{"Even", "EVEN", 100, false},
		{"Ev shorthand", "ev", 100, false},
		{"Empty", "", 0, true},
		{"Spread not odds", "-3.5", 0, true},
		{"Too small", "+50", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.ParseAmerican(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAmerican(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAmerican(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmerican(t *testing.T) {
	if got := oddsmath.FormatAmerican(150); got != "+150" {
		t.Errorf("FormatAmerican(150) = %s, want +150", got)
	}
	if got := oddsmath.FormatAmerican(-110); got != "-110" {
		t.Errorf("FormatAmerican(-110) = %s, want -110", got)
	}
}
