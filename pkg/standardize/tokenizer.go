package standardize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Token is the bet read out of one cleaned text fragment
type Token struct {
	PickType  models.PickType
	PickTeam  string
	Direction models.Direction
	Line      string
	Odds      string
	Rule      string // name of the rule that produced the token
}

// tokenRule pairs a predicate with the extractor that runs when it matches.
// team is the already identified team text ("" when there is none) and rest
// is everything after it.
type tokenRule struct {
	name    string
	match   func(team, rest string) bool
	extract func(team, rest string) *Token
}

var (
	moneylineRe = regexp.MustCompile(`(?i)\b(?:ml|moneyline|money\s+line)\b`)
	teamTotalRe = regexp.MustCompile(`(?i)^\s*(?:tt\s+|team\s+total\s+)?(tto|ttu|over|under|unde|ov|un|o|u)\s*(\d+(?:\.\d+)?|\.\d+)(.*)$`)
	gameTotalRe = regexp.MustCompile(`(?i)^\s*(?:total\s+)?(over|under|unde|ov|un|o|u)\s*(\d+(?:\.\d+)?|\.\d+)(.*)$`)
	numberRe    = regexp.MustCompile(`[+-]?(?:\d+(?:\.\d+)?|\.\d+)`)
	evenOddsRe  = regexp.MustCompile(`(?i)\b(?:even|evens|ev)\b`)
	pickEmRe    = regexp.MustCompile(`(?i)(?:^|\s)(?:pk|pick[’']?em)(?:\s|$)`)
)

// tokenRules is the precedence list. Totals are checked before the numeric
// fallback so "over 220 -110" is never read as a spread of 220.
var tokenRules = []tokenRule{
	{
		name: "moneyline",
		match: func(team, rest string) bool {
			return moneylineRe.MatchString(rest)
		},
		extract: func(team, rest string) *Token {
			return &Token{
				PickType: models.PickTypeMoneyline,
				PickTeam: team,
				Odds:     findOdds(moneylineRe.ReplaceAllString(rest, " "), 2),
			}
		},
	},
	{
		name: "team-total",
		match: func(team, rest string) bool {
			return team != "" && teamTotalRe.MatchString(rest)
		},
		extract: func(team, rest string) *Token {
			m := teamTotalRe.FindStringSubmatch(rest)
			return &Token{
				PickType:  models.PickTypeTeamTotal,
				PickTeam:  team,
				Direction: directionOf(m[1]),
				Line:      m[2],
				Odds:      findOdds(m[3], 3),
			}
		},
	},
	{
		name: "total",
		match: func(team, rest string) bool {
			return team == "" && gameTotalRe.MatchString(rest)
		},
		extract: func(team, rest string) *Token {
			m := gameTotalRe.FindStringSubmatch(rest)
			dir := directionOf(m[1])
			return &Token{
				PickType:  models.PickTypeTotal,
				PickTeam:  string(dir),
				Direction: dir,
				Line:      m[2],
				Odds:      findOdds(m[3], 3),
			}
		},
	},
	{
		// Signed numbers of magnitude 100 or more are treated as American odds.
		// This is a heuristic: an exotic spread of 100+ would be misread.
		name: "spread",
		match: func(team, rest string) bool {
			return numberRe.MatchString(rest) || evenOddsRe.MatchString(rest) || pickEmRe.MatchString(rest)
		},
		extract: func(team, rest string) *Token {
			var line, odds string
			if pickEmRe.MatchString(rest) {
				line = "0"
			}
			for _, n := range numberTokens(rest) {
				signed := n[0] == '+' || n[0] == '-'
				v, err := strconv.ParseFloat(n, 64)
				if err != nil {
					continue
				}
				switch {
				case signed && (v >= 100 || v <= -100):
					if odds == "" {
						odds = n
					}
				case v < 100 && v > -100 && line == "":
					line = n
					if !signed {
						line = "+" + n
					}
				}
			}
			if odds == "" && evenOddsRe.MatchString(rest) {
				odds = "+100"
			}

			switch {
			case line != "":
				if odds == "" {
					odds = defaultOdds
				}
				return &Token{PickType: models.PickTypeSpread, PickTeam: team, Line: line, Odds: odds}
			case odds != "":
				return &Token{PickType: models.PickTypeMoneyline, PickTeam: team, Odds: odds}
			}
			return nil
		},
	},
}

const defaultOdds = "-110"

// RuleNames returns the tokenizer rules in precedence order
func RuleNames() []string {
	names := make([]string, len(tokenRules))
	for i, r := range tokenRules {
		names[i] = r.name
	}
	return names
}

// TokenizeTeam classifies rest given an identified team. It returns nil when
// no rule yields a bet; a bare team is not a pick.
func TokenizeTeam(team, rest string) *Token {
	team = strings.TrimSpace(team)
	rest = strings.TrimSpace(rest)

	for _, rule := range tokenRules {
		if !rule.match(team, rest) {
			continue
		}
		tok := rule.extract(team, rest)
		if tok != nil {
			tok.Rule = rule.name
		}
		// the first matching rule decides, even when it extracts nothing
		return tok
	}
	return nil
}

// Tokenize splits the leading team words off text and classifies the rest
func Tokenize(text string) *Token {
	team, rest := splitLeadingTeam(text)
	return TokenizeTeam(team, rest)
}

// betKeywords end a leading team name
var betKeywords = map[string]bool{
	"ml": true, "moneyline": true, "money": true,
	"over": true, "under": true, "unde": true, "ov": true, "un": true, "o": true, "u": true,
	"tto": true, "ttu": true, "tt": true, "total": true,
	"even": true, "evens": true, "ev": true,
	"spread": true, "ats": true,
	"pk": true, "pickem": true, "pick'em": true, "pick’em": true,
}

var totalShorthandRe = regexp.MustCompile(`(?i)^(?:tto|ttu|over|under|o|u)\d`)

// splitLeadingTeam returns the words before the first bet keyword or number
func splitLeadingTeam(text string) (team, rest string) {
	words := strings.Fields(text)
	i := 0
	for ; i < len(words); i++ {
		w := words[i]
		lw := strings.ToLower(strings.Trim(w, ",:"))
		if betKeywords[lw] || totalShorthandRe.MatchString(lw) {
			break
		}
		if strings.ContainsAny(w[:1], "+-$(.0123456789") {
			break
		}
	}
	return strings.Join(words[:i], " "), strings.Join(words[i:], " ")
}

// numberTokens returns the standalone numbers in s. Digits glued to letters
// ("xyz123", "1h") or part of dates and times are skipped.
func numberTokens(s string) []string {
	var out []string
	for _, loc := range numberRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if start > 0 {
			prev := s[start-1]
			signed := s[start] == '+' || s[start] == '-'
			// "Lakers-3" keeps its sign; "xyz123" is not a number
			if (!signed && isWordByte(prev)) || isDigit(prev) || strings.IndexByte("/:#.", prev) >= 0 {
				continue
			}
		}
		if end < len(s) && (isWordByte(s[end]) || strings.IndexByte("/:#%", s[end]) >= 0) {
			continue
		}
		if end+1 < len(s) && s[end] == '.' && isDigit(s[end+1]) {
			continue
		}
		out = append(out, s[start:end])
	}
	return out
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b) || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// findOdds returns the first signed number with at least minDigits digits, or
// an unsigned number of 100 or more, or "+100" for even money
func findOdds(s string, minDigits int) string {
	var unsigned string
	for _, n := range numberTokens(s) {
		digits := strings.TrimLeft(n, "+-")
		if strings.Contains(digits, ".") || len(digits) > 4 {
			continue
		}
		if n[0] == '+' || n[0] == '-' {
			if len(digits) >= minDigits {
				return n
			}
			continue
		}
		if unsigned == "" && len(digits) >= 3 {
			unsigned = "+" + n
		}
	}
	if unsigned != "" {
		return unsigned
	}
	if evenOddsRe.MatchString(s) {
		return "+100"
	}
	return ""
}

func directionOf(keyword string) models.Direction {
	switch strings.ToLower(keyword) {
	case "tto", "over", "ov", "o":
		return models.DirectionOver
	}
	return models.DirectionUnder
}
