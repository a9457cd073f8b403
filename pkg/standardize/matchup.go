package standardize

import (
	"regexp"
	"strings"
)

var matchupSepRe = regexp.MustCompile(`(?i)\s+(vs\.?|versus|v\.?|at)\s+|\s*(@)\s*`)

const maxTeamWords = 4

// extractMatchup finds "Away @ Home", "Away at Home" or "Away vs Home" in s and
// returns both sides with the matchup removed from s. Known aliases are
// preferred on each side; "at" only counts when both sides are known teams.
func (r Resolver) extractMatchup(s string) (away, home, rest string, ok bool) {
	for _, loc := range matchupSepRe.FindAllStringSubmatchIndex(s, -1) {
		sep := ""
		if loc[2] >= 0 {
			sep = strings.ToLower(s[loc[2]:loc[3]])
		}

		leftWords := strings.Fields(s[:loc[0]])
		rightWords := strings.Fields(s[loc[1]:])

		nAway, awayKnown := r.trailingTeam(leftWords)
		nHome, homeKnown := r.leadingTeam(rightWords)
		if nAway == 0 || nHome == 0 {
			continue
		}
		if sep == "at" && !(awayKnown && homeKnown) {
			continue
		}

		away = cleanTeamWord(strings.Join(leftWords[len(leftWords)-nAway:], " "))
		home = cleanTeamWord(strings.Join(rightWords[:nHome], " "))
		rest = strings.Join(leftWords[:len(leftWords)-nAway], " ") + " " + strings.Join(rightWords[nHome:], " ")
		return away, home, rest, true
	}
	return "", "", s, false
}

// trailingTeam returns how many trailing words form a team name
func (r Resolver) trailingTeam(words []string) (int, bool) {
	for n := min(maxTeamWords, len(words)); n >= 1; n-- {
		if r.known(strings.Join(words[len(words)-n:], " ")) {
			return n, true
		}
	}

	n := 0
	for i := len(words) - 1; i >= 0 && n < maxTeamWords && isNameWord(words[i]); i-- {
		n++
	}
	return n, false
}

// leadingTeam returns how many leading words form a team name
func (r Resolver) leadingTeam(words []string) (int, bool) {
	for n := min(maxTeamWords, len(words)); n >= 1; n-- {
		if r.known(strings.Join(words[:n], " ")) {
			return n, true
		}
	}

	n := 0
	for n < len(words) && n < maxTeamWords && isNameWord(words[n]) {
		n++
	}
	return n, false
}

func (r Resolver) known(name string) bool {
	if r.Aliases == nil {
		return false
	}
	_, ok := r.Aliases.Lookup(cleanTeamWord(name))
	return ok
}

// isNameWord reports whether w can be part of an unknown team name
func isNameWord(w string) bool {
	lw := strings.ToLower(strings.Trim(w, ",:()"))
	if lw == "" || betKeywords[lw] || totalShorthandRe.MatchString(lw) {
		return false
	}
	if strings.ContainsAny(lw[:1], "+-$.") {
		return false
	}
	for i := 0; i < len(lw); i++ {
		if isDigit(lw[i]) && !strings.HasSuffix(lw, "ers") {
			return false
		}
	}
	return true
}

func cleanTeamWord(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ",:()"))
}
