package standardize

import (
	"regexp"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

var (
	dollarRe       = regexp.MustCompile(`\$\s?\d`)
	slashDateRe    = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	americanOddsRe = regexp.MustCompile(`(?:^|[^\w.])[+-]\d{3,4}\b`)
	mlWordRe       = regexp.MustCompile(`(?i)\bml\b`)

	dashBeforeDigitRe = regexp.MustCompile(`[\x{2013}\x{2014}](\d)`)
)

var inputReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u2212", "-", // minus sign
	"\u00a0", " ",
	"\u2009", " ",
	"\u202f", " ",
	"\u00bd", ".5",
)

// normalizeInput folds the characters sportsbooks use in place of ASCII signs
// and spaces
func normalizeInput(s string) string {
	s = inputReplacer.Replace(s)
	return dashBeforeDigitRe.ReplaceAllString(s, "-$1")
}

// detectRule classifies input when match returns true
type detectRule struct {
	kind  models.FormatKind
	match func(s string) bool
}

// detectRules is evaluated top to bottom; the first match wins.
// Bet history comes first because pasted histories can contain stray markup.
var detectRules = []detectRule{
	{models.FormatBetHistory, func(s string) bool {
		return dollarRe.MatchString(s) &&
			(slashDateRe.MatchString(s) || monthDateRe.MatchString(s) || americanOddsRe.MatchString(s) || mlWordRe.MatchString(s))
	}},
	{models.FormatHTMLGameLines, func(s string) bool {
		return strings.Contains(s, "<") &&
			(strings.Contains(s, `data-panel="line"`) || strings.Contains(s, "data-sport-line"))
	}},
	{models.FormatLegacyHTML, func(s string) bool {
		return hasTableMarkup(s)
	}},
	{models.FormatHTMLGameLines, func(s string) bool {
		return strings.Contains(s, "class=")
	}},
	{models.FormatPipeDelimited, func(s string) bool {
		return strings.Contains(s, "|")
	}},
}

// Detect classifies a raw input blob
func Detect(input string) models.FormatKind {
	s := normalizeInput(input)
	for _, rule := range detectRules {
		if rule.match(s) {
			return rule.kind
		}
	}
	return models.FormatFreeform
}

func hasTableMarkup(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "<table") || strings.Contains(lower, "<tr")
}
