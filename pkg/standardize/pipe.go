package standardize

import (
	"regexp"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

var pipeMatchupRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:vs\.?|versus|v\.?|at|@)\s+(.+)$|^(.+?)\s*@\s*(.+)$`)

var pipeLeagueRe = regexp.MustCompile(`^[A-Za-z]{2,5}$`)

// ParsePipeLine parses the pipe-delimited summary form
// "Team1 vs Team2 | Segment | Pick Line (Odds) [| $risk]". Team names are
// kept as written since this is the form Pick.Summary renders.
func ParsePipeLine(line string) (RawPick, bool) {
	var (
		pick     RawPick
		pickPart string
	)

	for _, part := range strings.Split(normalizeInput(line), "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch {
		case strings.Contains(part, "$") || labeledRiskRe.MatchString(part) || labeledWinRe.MatchString(part):
			money, _ := extractMoney(part)
			if money.Risk != "" {
				pick.Risk = money.Risk
				pick.RiskUnits = money.Units
			}
			if money.Win != "" {
				pick.Win = money.Win
			}

		case pick.AwayTeam == "" && !strings.ContainsAny(part, "0123456789") && pipeMatchupRe.MatchString(part):
			m := pipeMatchupRe.FindStringSubmatch(part)
			if m[1] != "" {
				pick.AwayTeam, pick.HomeTeam = cleanTeamWord(m[1]), cleanTeamWord(m[2])
			} else {
				pick.AwayTeam, pick.HomeTeam = cleanTeamWord(m[3]), cleanTeamWord(m[4])
			}

		case pick.Segment == "" && isSegmentLabel(part):
			pick.Segment = NormalizeSegment(part)

		case pickPart == "" && Tokenize(part) != nil:
			pickPart = part

		case pick.Sport == "" && pipeLeagueRe.MatchString(part):
			pick.Sport = strings.ToUpper(part)
		}
	}

	if pickPart == "" {
		return RawPick{}, false
	}

	tok := Tokenize(pickPart)
	raw := rawFromToken(tok)
	raw.Sport = pick.Sport
	raw.Segment = pick.Segment
	raw.AwayTeam = pick.AwayTeam
	raw.HomeTeam = pick.HomeTeam
	raw.Risk = pick.Risk
	raw.Win = pick.Win
	raw.RiskUnits = pick.RiskUnits
	raw.Source = models.FormatPipeDelimited

	if raw.PickTeam == "" && tok.PickType == models.PickTypeSpread {
		raw.PickTeam = raw.AwayTeam
	}
	return raw, true
}

// isSegmentLabel reports whether the whole part names a segment
func isSegmentLabel(part string) bool {
	label, rest := extractSegment(part)
	if label == "" {
		return strings.EqualFold(part, "game") || strings.EqualFold(part, "full")
	}
	return strings.TrimSpace(rest) == ""
}
