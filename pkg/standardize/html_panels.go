package standardize

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Selector fallback chains, most specific first
var (
	panelSelectors   = []string{`[data-panel="line"]`, `[data-sport-line]`, `.game-panel, .panel, .game-row, .event-row`}
	teamSelectors    = []string{`[data-team-name]`, `.team-name`, `.team`, `.participant`}
	dateSelectors    = []string{`[data-date]`, `.game-date`, `.date`}
	timeSelectors    = []string{`[data-time]`, `.game-time`, `.time`, `time`}
	leagueSelectors  = []string{`[data-league]`, `.league`, `.sport`, `.conference`}
	segmentSelectors = []string{`[data-segment]`, `.segment`, `.period`}
	groupSelectors   = []string{`[data-line-group]`, `.line-group`, `.market`, `[data-type]`}
	titleSelectors   = []string{`[data-label]`, `.group-title`, `.market-title`, `.market-name`, `.title`, `h3, h4, h5`}
	optionSelectors  = []string{`[data-option]`, `.line-option`, `.option`, `.outcome`, `button`}

	lineValueSelector = `[data-line], .line, .points, .handicap, .spread-value`
	oddsValueSelector = `[data-odds], .odds, .price`
)

// HTMLParser extracts picks from sportsbook markup: game-line panels and
// legacy bet-slip tables
type HTMLParser struct {
	resolver Resolver
	text     *TextParser
	logger   *slog.Logger
}

// NewHTMLParser creates an HTML parser. Legacy bet-slip legs are read with
// the text parser.
func NewHTMLParser(resolver Resolver, text *TextParser, logger *slog.Logger) *HTMLParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTMLParser{
		resolver: resolver,
		text:     text,
		logger:   logger,
	}
}

// ParseGameLines extracts one or more picks per game panel. It returns nil
// when no panel is found; the caller falls back to the visible text.
func (p *HTMLParser) ParseGameLines(input string) []RawPick {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(normalizeInput(input)))
	if err != nil {
		p.logger.Warn("failed to parse game-line markup", "error", err)
		return nil
	}

	var picks []RawPick
	outermost(findFirst(doc.Selection, panelSelectors)).Each(func(i int, panel *goquery.Selection) {
		picks = append(picks, p.parsePanel(i, panel)...)
	})
	return picks
}

// parsePanel handles one game panel. A panic is logged and drops only this
// panel's picks.
func (p *HTMLParser) parsePanel(idx int, panel *goquery.Selection) (picks []RawPick) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("skipping game panel", "panel", idx, "panic", r)
			picks = nil
		}
	}()

	var teams []string
	findFirst(panel, teamSelectors).Each(func(_ int, sel *goquery.Selection) {
		if name := teamName(sel); name != "" && len(teams) < 2 {
			teams = append(teams, name)
		}
	})

	league := attrOr(panel, "data-league", "data-sport")
	if league == "" {
		league = firstText(panel, leagueSelectors)
	}
	sport, known := p.resolver.Sport(league)
	if !known {
		sport = ""
	}

	for i := range teams {
		teams[i] = p.resolver.Team(sport, teams[i])
	}
	var away, home string
	if len(teams) > 0 {
		away = teams[0]
	}
	if len(teams) > 1 {
		home = teams[1]
	}
	if sport == "" {
		sport = p.resolver.SportOfTeams(away, home)
	}

	date := attrOr(panel, "data-date")
	if date == "" {
		date = firstText(panel, dateSelectors)
	}
	if d, _ := extractDate(date, p.text.now()); d != "" {
		date = d
	}
	clock := attrOr(panel, "data-time")
	if clock == "" {
		clock = firstText(panel, timeSelectors)
	}

	panelSegment := attrOr(panel, "data-segment")
	if panelSegment == "" {
		panelSegment = firstText(panel, segmentSelectors)
	}

	groups := findFirst(panel, groupSelectors)
	if groups.Length() == 0 {
		groups = panel
	}

	groups.Each(func(_ int, group *goquery.Selection) {
		kind := groupType(group)

		segment := attrOr(group, "data-segment")
		if segment == "" {
			segment, _ = extractSegment(groupTitle(group))
		}
		if segment == "" {
			segment = panelSegment
		}

		options := findFirst(group, optionSelectors)
		anySelected := false
		options.Each(func(_ int, opt *goquery.Selection) {
			anySelected = anySelected || isSelected(opt)
		})

		// indexes count every option so pairing stays aligned when
		// only the selected ones are emitted
		options.Each(func(i int, opt *goquery.Selection) {
			if anySelected && !isSelected(opt) {
				return
			}
			raw, ok := optionPick(kind, i, opt, teams)
			if !ok {
				return
			}
			raw.Sport = sport
			raw.League = strings.ToUpper(strings.TrimSpace(league))
			raw.Segment = segment
			raw.AwayTeam = away
			raw.HomeTeam = home
			raw.Date = date
			raw.Time = clock
			raw.Source = models.FormatHTMLGameLines
			picks = append(picks, raw)
		})
	})

	return picks
}

// optionPick resolves one bet option. Team index comes from data-team or
// data-index, else position mod 2 (away, home). Team totals list
// Team1-Over, Team1-Under, Team2-Over, Team2-Under.
func optionPick(kind models.PickType, i int, opt *goquery.Selection, teams []string) (RawPick, bool) {
	text := collapse(opt.Text())
	tok := Tokenize(text)

	line := attrOr(opt, "data-line")
	if line == "" {
		line = firstNumber(collapse(opt.Find(lineValueSelector).First().Text()))
	}
	odds := attrOr(opt, "data-odds")
	if odds == "" {
		odds = firstNumber(collapse(opt.Find(oddsValueSelector).First().Text()))
	}
	if tok != nil {
		if line == "" {
			line = tok.Line
		}
		if odds == "" {
			odds = tok.Odds
		}
	}

	if kind == "" {
		if tok == nil {
			return RawPick{}, false
		}
		kind = tok.PickType
	}

	teamIdx, explicit := teamIndex(opt)
	if !explicit {
		teamIdx = i % 2
		if kind == models.PickTypeTeamTotal {
			teamIdx = i / 2
		}
	}

	direction := directionIn(attrOr(opt, "data-direction", "data-side") + " " + text)
	if direction == "" && (kind == models.PickTypeTotal || kind == models.PickTypeTeamTotal) {
		direction = models.DirectionOver
		if i%2 == 1 {
			direction = models.DirectionUnder
		}
	}

	raw := RawPick{
		PickType: string(kind),
		Line:     line,
		Odds:     odds,
	}

	switch kind {
	case models.PickTypeTotal:
		raw.Direction = string(direction)
		raw.PickTeam = string(direction)
	case models.PickTypeTeamTotal:
		raw.Direction = string(direction)
		raw.PickTeam = teamAt(teams, teamIdx)
	case models.PickTypeMoneyline:
		raw.Line = ""
		if raw.Odds == "" {
			raw.Odds = findOdds(text, 2)
		}
		raw.PickTeam = teamAt(teams, teamIdx)
	default:
		raw.PickTeam = teamAt(teams, teamIdx)
	}

	if raw.PickTeam == "" && tok != nil {
		raw.PickTeam = tok.PickTeam
	}
	return raw, true
}

// groupType infers a line group's bet type from data-type, then class
// names, then keywords in its text. "" leaves the decision to each option.
func groupType(group *goquery.Selection) models.PickType {
	if t := canonicalPickType(attrOr(group, "data-type")); t != "" {
		return t
	}

	class := strings.ToLower(attrOr(group, "class"))
	for _, c := range strings.Fields(class) {
		switch {
		case strings.Contains(c, "team-total") || strings.Contains(c, "team_total") || strings.Contains(c, "teamtotal"):
			return models.PickTypeTeamTotal
		case strings.Contains(c, "moneyline") || strings.Contains(c, "money-line") || c == "ml":
			return models.PickTypeMoneyline
		case strings.Contains(c, "total"):
			return models.PickTypeTotal
		case strings.Contains(c, "spread") || strings.Contains(c, "handicap") || strings.Contains(c, "runline") || strings.Contains(c, "puckline"):
			return models.PickTypeSpread
		}
	}

	text := strings.ToLower(groupTitle(group))
	if text == "" {
		text = strings.ToLower(collapse(group.Text()))
	}
	switch {
	case strings.Contains(text, "team total"):
		return models.PickTypeTeamTotal
	case strings.Contains(text, "moneyline") || strings.Contains(text, "money line"):
		return models.PickTypeMoneyline
	case strings.Contains(text, "total"):
		return models.PickTypeTotal
	case strings.Contains(text, "spread") || strings.Contains(text, "handicap") ||
		strings.Contains(text, "run line") || strings.Contains(text, "puck line"):
		return models.PickTypeSpread
	}
	return ""
}

func groupTitle(group *goquery.Selection) string {
	if label := attrOr(group, "data-label"); label != "" {
		return label
	}
	for _, sel := range titleSelectors {
		if found := group.ChildrenFiltered(sel); found.Length() > 0 {
			return collapse(found.First().Text())
		}
	}
	return ""
}

func isSelected(opt *goquery.Selection) bool {
	return opt.HasClass("selected") || opt.HasClass("active") || opt.HasClass("choosen") ||
		strings.EqualFold(attrOr(opt, "aria-pressed"), "true") ||
		strings.EqualFold(attrOr(opt, "data-selected"), "true")
}

// teamIndex reads an explicit team index: 0/1 or away/home
func teamIndex(opt *goquery.Selection) (int, bool) {
	v := strings.ToLower(attrOr(opt, "data-team", "data-index"))
	switch v {
	case "":
		return 0, false
	case "away", "visitor":
		return 0, true
	case "home":
		return 1, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func directionIn(s string) models.Direction {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		switch {
		case w == "over" || w == "o" || strings.HasPrefix(w, "over") || (len(w) > 1 && w[0] == 'o' && isDigit(w[1])):
			return models.DirectionOver
		case w == "under" || w == "u" || w == "unde" || strings.HasPrefix(w, "under") || (len(w) > 1 && w[0] == 'u' && isDigit(w[1])):
			return models.DirectionUnder
		}
	}
	return ""
}

func teamAt(teams []string, idx int) string {
	if idx >= 0 && idx < len(teams) {
		return teams[idx]
	}
	return ""
}

func teamName(sel *goquery.Selection) string {
	if name := attrOr(sel, "data-team-name"); name != "" {
		return name
	}
	return collapse(sel.Text())
}

// outermost drops matches nested inside another match, so a panel wrapped
// in another panel is read once
func outermost(sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Parents().FilterSelection(sel).Length() == 0
	})
}

// findFirst returns the matches of the first selector that matches anything
func findFirst(sel *goquery.Selection, selectors []string) *goquery.Selection {
	var found *goquery.Selection
	for _, s := range selectors {
		found = sel.Find(s)
		if found.Length() > 0 {
			return found
		}
	}
	return found
}

func firstText(sel *goquery.Selection, selectors []string) string {
	return collapse(findFirst(sel, selectors).First().Text())
}

// attrOr returns the first non-empty attribute among names
func attrOr(sel *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(sel.AttrOr(name, "")); v != "" {
			return v
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstNumber returns the first signed number in s, letters allowed around it
// ("O 220.5", "u220")
func firstNumber(s string) string {
	if evenOddsRe.MatchString(s) && !numberRe.MatchString(s) {
		return "+100"
	}
	return numberRe.FindString(s)
}
