package standardize

import (
	"regexp"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// segmentRule maps a segment marker to its canonical label
type segmentRule struct {
	label string
	re    *regexp.Regexp
}

// segmentRules are tried in order. Markers are stripped from a line before team
// and number matching so "1h" is never read as a line of 1.
var segmentRules = []segmentRule{
	{models.Segment1stHalf, regexp.MustCompile(`(?i)\b(?:1st\s*half|first\s*half|1h|h1|1st\s*h)\b`)},
	{models.Segment2ndHalf, regexp.MustCompile(`(?i)\b(?:2nd\s*half|second\s*half|2h|h2|2nd\s*h)\b`)},
	{"1st Quarter", regexp.MustCompile(`(?i)\b(?:1st\s*quarter|first\s*quarter|1q|q1|1st\s*q)\b`)},
	{"2nd Quarter", regexp.MustCompile(`(?i)\b(?:2nd\s*quarter|second\s*quarter|2q|q2|2nd\s*q)\b`)},
	{"3rd Quarter", regexp.MustCompile(`(?i)\b(?:3rd\s*quarter|third\s*quarter|3q|q3|3rd\s*q)\b`)},
	{"4th Quarter", regexp.MustCompile(`(?i)\b(?:4th\s*quarter|fourth\s*quarter|4q|q4|4th\s*q)\b`)},
	{"1st Period", regexp.MustCompile(`(?i)\b(?:1st\s*period|first\s*period|1p|p1)\b`)},
	{"2nd Period", regexp.MustCompile(`(?i)\b(?:2nd\s*period|second\s*period|2p|p2)\b`)},
	{"3rd Period", regexp.MustCompile(`(?i)\b(?:3rd\s*period|third\s*period|3p|p3)\b`)},
	{"First 5 Innings", regexp.MustCompile(`(?i)\b(?:f5|first\s*(?:5|five)(?:\s*innings?)?|1st\s*5(?:\s*innings?)?)\b`)},
	{models.SegmentFullGame, regexp.MustCompile(`(?i)\b(?:full\s*game|fg)\b`)},
}

// extractSegment finds the first segment marker in s and returns its label
// with the marker removed from s. label is "" when s has no marker.
func extractSegment(s string) (label, rest string) {
	for _, rule := range segmentRules {
		loc := rule.re.FindStringIndex(s)
		if loc == nil {
			continue
		}
		return rule.label, s[:loc[0]] + " " + s[loc[1]:]
	}
	return "", s
}

// NormalizeSegment maps a segment label or marker to its canonical form.
// Empty input yields "Full Game"; unrecognized labels are returned trimmed.
func NormalizeSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.SegmentFullGame
	}

	if label, _ := extractSegment(s); label != "" {
		return label
	}
	if strings.EqualFold(s, "game") || strings.EqualFold(s, "full") {
		return models.SegmentFullGame
	}
	return s
}
