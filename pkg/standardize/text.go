package standardize

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// TextParser turns freeform shorthand into raw picks, one line at a time,
// carrying sport and game context between lines
type TextParser struct {
	resolver Resolver
	codeRe   *regexp.Regexp
	now      func() time.Time
}

// lineContext is carried across lines of one input
type lineContext struct {
	sport string
	away  string
	home  string
	date  string
}

// NewTextParser creates a text parser. League codes recognized inside lines
// come from the resolver's league index.
func NewTextParser(resolver Resolver, now func() time.Time) *TextParser {
	if now == nil {
		now = time.Now
	}
	return &TextParser{
		resolver: resolver,
		codeRe:   leagueCodeRegexp(resolver),
		now:      now,
	}
}

func leagueCodeRegexp(resolver Resolver) *regexp.Regexp {
	codes := []string{"NBA", "NFL", "MLB", "NHL", "NCAAB", "NCAAF", "CBB", "CFB"}
	if resolver.Leagues != nil {
		codes = resolver.Leagues.Codes()
	}
	if len(codes) == 0 {
		return nil
	}

	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = regexp.QuoteMeta(c)
	}
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Parse extracts picks from text in input order. Lines that yield no bet are
// dropped.
func (p *TextParser) Parse(text string) []RawPick {
	var (
		ctx   lineContext
		picks []RawPick
	)

	for _, line := range splitLines(normalizeInput(text)) {
		if pick := p.parseLine(line, &ctx); pick != nil {
			picks = append(picks, *pick)
		}
	}
	return picks
}

// parseLine parses one line, updating ctx. Context-only lines return nil.
func (p *TextParser) parseLine(line string, ctx *lineContext) *RawPick {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.Contains(line, "|") {
		if pick, ok := p.parsePipe(line, ctx); ok {
			return &pick
		}
	}

	if p.contextOnly(line, ctx) {
		return nil
	}

	pick := p.parseFlexible(line, ctx)
	if pick != nil && pick.Source == "" {
		pick.Source = models.FormatFreeform
	}
	return pick
}

// contextOnly updates ctx from a line that names a league or a matchup but
// carries no bet (no digits, no ML)
func (p *TextParser) contextOnly(line string, ctx *lineContext) bool {
	if strings.ContainsAny(line, "0123456789") || moneylineRe.MatchString(line) {
		return false
	}

	code, rest := p.extractLeague(line)
	away, home, _, isGame := p.resolver.extractMatchup(rest)
	if code == "" && !isGame {
		return false
	}

	if code != "" {
		ctx.sport = code
	}
	if isGame {
		sport := ctx.sport
		ctx.away = p.resolver.Team(sport, away)
		ctx.home = p.resolver.Team(sport, home)
		if code == "" && ctx.sport == "" {
			ctx.sport = p.resolver.SportOfTeams(ctx.away, ctx.home)
		}
	}
	return true
}

// extractLeague finds a league code in s and returns it normalized, with the
// code removed from s
func (p *TextParser) extractLeague(s string) (string, string) {
	if p.codeRe == nil {
		return "", s
	}
	loc := p.codeRe.FindStringIndex(s)
	if loc == nil {
		return "", s
	}
	code, _ := p.resolver.Sport(s[loc[0]:loc[1]])
	return code, s[:loc[0]] + " " + s[loc[1]:]
}

// parseFlexible runs the general line algorithm: money, league, date,
// segment and matchup are stripped, then the earliest known team and the
// tokenizer decide the bet
func (p *TextParser) parseFlexible(line string, ctx *lineContext) *RawPick {
	money, s := extractMoney(line)
	code, s := p.extractLeague(s)
	date, s := extractDate(s, p.now())
	clock, s := extractTime(s)
	segment, s := extractSegment(s)

	sport := code
	if sport == "" {
		sport = ctx.sport
	}

	away, home := ctx.away, ctx.home
	inlineAway, inlineHome, remainder, hasGame := p.resolver.extractMatchup(s)
	if hasGame {
		away = p.resolver.Team(sport, inlineAway)
		home = p.resolver.Team(sport, inlineHome)
		s = remainder
	}

	var (
		tok  *Token
		team string
	)
	if m, ok := p.resolver.findTeam(s, sport); ok {
		tok = TokenizeTeam(m.Text, s[m.End:])
		team = m.Entry.Canonical
		if tok == nil && m.Start > 0 {
			// "under 220 lakers": the bet came before the team
			tok = Tokenize(s[:m.Start])
			if tok != nil && tok.PickType != models.PickTypeTotal {
				tok = nil
			}
		}
	} else {
		tok = Tokenize(s)
		if tok != nil && tok.PickType != models.PickTypeTotal {
			team = tok.PickTeam
			if len(strings.Fields(team)) > maxTeamWords {
				return nil
			}
			if team == "" && hasGame {
				// "Lakers @ Celtics -3" picks the away side
				team = away
			}
			if team == "" {
				// a line or price without a team is not a pick
				return nil
			}
			team = p.resolver.Team(sport, team)
		}
	}
	if tok == nil {
		return nil
	}

	pick := rawFromToken(tok)
	if tok.PickType != models.PickTypeTotal {
		pick.PickTeam = team
	}

	if sport == "" {
		sport = p.resolver.SportOfTeams(team, away, home)
	}
	pick.Sport = sport
	pick.Segment = segment
	pick.AwayTeam = away
	pick.HomeTeam = home
	pick.Risk = money.Risk
	pick.Win = money.Win
	pick.RiskUnits = money.Units
	pick.Date = date
	if pick.Date == "" {
		pick.Date = ctx.date
	}
	pick.Time = clock

	if hasGame {
		ctx.away, ctx.home = away, home
	}
	return &pick
}

// parsePipe handles "Team1 vs Team2 | Segment | Pick Line (Odds) [| $risk]"
func (p *TextParser) parsePipe(line string, ctx *lineContext) (RawPick, bool) {
	pick, ok := ParsePipeLine(line)
	if !ok {
		return RawPick{}, false
	}

	if pick.Sport != "" {
		code, _ := p.resolver.Sport(pick.Sport)
		pick.Sport = code
		ctx.sport = code
	} else {
		pick.Sport = ctx.sport
	}
	if pick.Sport == "" {
		pick.Sport = p.resolver.SportOfTeams(
			p.resolver.Team("", pick.PickTeam),
			p.resolver.Team("", pick.AwayTeam),
			p.resolver.Team("", pick.HomeTeam),
		)
	}
	return pick, true
}

var abbreviations = map[string]bool{"vs": true, "st": true, "mt": true, "ft": true, "jr": true, "no": true, "v": true}

var enumerationRe = regexp.MustCompile(`^\s*(?:[-*•·>]+|\d{1,2}[.)])\s+`)

// splitLines splits text on newlines, semicolons and sentence-ending periods.
// Decimal points and abbreviations like "vs." and "St." do not end a sentence.
func splitLines(text string) []string {
	var out []string
	for _, raw := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ';' }) {
		raw = enumerationRe.ReplaceAllString(raw, "")

		start := 0
		for i := 0; i < len(raw); i++ {
			if raw[i] != '.' {
				continue
			}
			if i+1 < len(raw) && raw[i+1] != ' ' && raw[i+1] != '\t' {
				continue
			}
			if abbreviations[strings.ToLower(lastWord(raw[start:i]))] {
				continue
			}
			out = appendLine(out, raw[start:i])
			start = i + 1
		}
		out = appendLine(out, raw[start:])
	}
	return out
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func appendLine(lines []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		lines = append(lines, s)
	}
	return lines
}
