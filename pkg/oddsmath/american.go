package oddsmath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmerican parses an American odds string ("-110", "+150", "150", "EVEN")
func ParseAmerican(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()")
	s = strings.ReplaceAll(s, "−", "-")

	switch strings.ToLower(s) {
	case "even", "ev", "evens":
		return 100, nil
	case "":
		return 0, fmt.Errorf("invalid American odds: empty")
	}

	american, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, fmt.Errorf("invalid American odds %q: %w", s, err)
	}

	if american > -100 && american < 100 {
		return 0, fmt.Errorf("invalid American odds %q: magnitude must be >= 100", s)
	}

	return american, nil
}

// FormatAmerican renders American odds with an explicit sign
// 150 → "+150", -110 → "-110"
func FormatAmerican(american int) string {
	if american > 0 {
		return "+" + strconv.Itoa(american)
	}
	return strconv.Itoa(american)
}
