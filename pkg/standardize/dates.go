package standardize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slashDateFullRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	monthDateRe     = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	isoDateRe       = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	clockTimeRe     = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2})\s*([ap]\.?m\.?)?(?:\s*(?:et|est|edt|ct|cst|pt|pst))?\b`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// extractDate finds a date token, returns it as YYYY-MM-DD and removes it
// from s. Dates without a year take the year from now.
func extractDate(s string, now time.Time) (date, rest string) {
	if m := isoDateRe.FindStringSubmatchIndex(s); m != nil {
		return s[m[0]:m[1]], s[:m[0]] + " " + s[m[1]:]
	}

	if m := slashDateFullRe.FindStringSubmatchIndex(s); m != nil {
		month, _ := strconv.Atoi(s[m[2]:m[3]])
		day, _ := strconv.Atoi(s[m[4]:m[5]])
		year := now.Year()
		if m[6] >= 0 {
			year = expandYear(s[m[6]:m[7]])
		}
		if d, ok := isoDate(year, month, day); ok {
			return d, s[:m[0]] + " " + s[m[1]:]
		}
	}

	if m := monthDateRe.FindStringSubmatchIndex(s); m != nil {
		month := monthNumbers[strings.ToLower(s[m[2]:m[2]+3])]
		day, _ := strconv.Atoi(s[m[4]:m[5]])
		year := now.Year()
		if m[6] >= 0 {
			year, _ = strconv.Atoi(s[m[6]:m[7]])
		}
		if d, ok := isoDate(year, month, day); ok {
			return d, s[:m[0]] + " " + s[m[1]:]
		}
	}

	return "", s
}

// extractTime finds a clock time ("7:30 PM ET") and removes it from s
func extractTime(s string) (clock, rest string) {
	m := clockTimeRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}

	clock = s[m[2]:m[3]]
	if m[4] >= 0 {
		suffix := strings.ToUpper(strings.ReplaceAll(s[m[4]:m[5]], ".", ""))
		clock += " " + suffix
	}
	return clock, s[:m[0]] + " " + s[m[1]:]
}

func expandYear(s string) int {
	year, _ := strconv.Atoi(s)
	if len(s) == 2 {
		year += 2000
	}
	return year
}

func isoDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
