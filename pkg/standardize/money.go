package standardize

import (
	"regexp"
	"strings"
)

var (
	labeledRiskRe = regexp.MustCompile(`(?i)\b(?:risk(?:ing|ed)?|wager(?:ed)?|stake|bet\s+amount)\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)`)
	labeledWinRe  = regexp.MustCompile(`(?i)\b(?:to\s*win|win(?:s|ning)?)\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)`)
	bareMoneyRe   = regexp.MustCompile(`\$\s?(\d[\d,]*(?:\.\d+)?)`)
	unitsRe       = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:u|units?)\b`)
)

// stake is the money found on a line. Labeled amounts are literal currency;
// bare "$N", "Nu" and "N units" are unit shorthand scaled by the unit multiplier.
type stake struct {
	Risk  string
	Win   string
	Units bool
}

func (s stake) empty() bool {
	return s.Risk == "" && s.Win == ""
}

// extractMoney pulls risk/win amounts out of a line and returns the line
// without them
func extractMoney(line string) (stake, string) {
	var st stake

	if m := labeledRiskRe.FindStringSubmatchIndex(line); m != nil {
		st.Risk = cleanAmount(line[m[2]:m[3]])
		line = line[:m[0]] + " " + line[m[1]:]
	}

	if m := labeledWinRe.FindStringSubmatchIndex(line); m != nil {
		st.Win = cleanAmount(line[m[2]:m[3]])
		line = line[:m[0]] + " " + line[m[1]:]
	}

	if m := bareMoneyRe.FindStringSubmatchIndex(line); m != nil {
		if st.Risk == "" {
			st.Risk = cleanAmount(line[m[2]:m[3]])
			st.Units = true
		}
		line = line[:m[0]] + " " + line[m[1]:]
	}
	// any further bare amounts are payouts or balances
	line = bareMoneyRe.ReplaceAllString(line, " ")

	if st.Risk == "" {
		if m := unitsRe.FindStringSubmatchIndex(line); m != nil {
			st.Risk = line[m[2]:m[3]]
			st.Units = true
			line = line[:m[0]] + " " + line[m[1]:]
		}
	}

	return st, line
}

func cleanAmount(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
