package standardize

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/oddsmath"
)

// Assembler normalizes raw picks into canonical models.Pick records and
// drops the ones that fail the validity invariant
type Assembler struct {
	leagues      contracts.LeagueIndex
	defaultSport string
	now          func() time.Time
	logger       *slog.Logger
}

// NewAssembler creates an assembler. defaultSport applies when a pick's
// sport cannot be determined.
func NewAssembler(leagues contracts.LeagueIndex, defaultSport string, now func() time.Time, logger *slog.Logger) *Assembler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	if defaultSport == "" {
		defaultSport = "NBA"
	}
	return &Assembler{
		leagues:      leagues,
		defaultSport: strings.ToUpper(defaultSport),
		now:          now,
		logger:       logger,
	}
}

// Assemble normalizes every raw pick in order. unit scales unit-shorthand
// stakes and sizes the one-unit default stake.
func (a *Assembler) Assemble(raw []RawPick, unit decimal.Decimal) []models.Pick {
	picks := make([]models.Pick, 0, len(raw))
	for _, r := range raw {
		pick, ok := a.assembleOne(r, unit)
		if !ok {
			a.logger.Debug("dropping invalid pick", "pickType", r.PickType, "pickTeam", r.PickTeam, "line", r.Line)
			continue
		}
		picks = append(picks, pick)
	}
	return picks
}

func (a *Assembler) assembleOne(r RawPick, unit decimal.Decimal) (models.Pick, bool) {
	pick := models.Pick{
		Sport:      a.sport(r.Sport),
		League:     strings.ToUpper(strings.TrimSpace(r.League)),
		PickType:   canonicalPickType(r.PickType),
		PickTeam:   strings.TrimSpace(r.PickTeam),
		Segment:    NormalizeSegment(r.Segment),
		AwayTeam:   strings.TrimSpace(r.AwayTeam),
		HomeTeam:   strings.TrimSpace(r.HomeTeam),
		Date:       strings.TrimSpace(r.Date),
		Time:       strings.TrimSpace(r.Time),
		Status:     r.Status,
		TicketID:   r.TicketID,
		IsParlay:   r.IsParlay,
		ParlayID:   r.ParlayID,
		ParlayType: r.ParlayType,
		Source:     r.Source,
	}
	if pick.Date == "" {
		pick.Date = a.now().Format("2006-01-02")
	}

	if pick.IsTotal() {
		pick.PickDirection = NormalizeDirection(r.Direction)
		if pick.PickDirection == models.DirectionNone && pick.PickType == models.PickTypeTotal {
			pick.PickDirection = NormalizeDirection(r.PickTeam)
		}
		if pick.PickType == models.PickTypeTotal {
			pick.PickTeam = string(pick.PickDirection)
		}
	}

	pick.Line = normalizeLine(r.Line, pick.PickType)

	american := normalizeOdds(r.Odds)
	pick.Odds = oddsmath.FormatAmerican(american)

	if !pick.Valid() {
		return models.Pick{}, false
	}

	risk, win, err := a.stake(r, unit, american)
	if err != nil {
		a.logger.Debug("could not derive stake", "error", err)
	}
	pick.Risk, pick.Win = risk, win

	return pick, true
}

// stake resolves risk and win. A present risk derives win by the American
// payout rule, a present win derives risk, and neither falls back to a
// one-unit play.
func (a *Assembler) stake(r RawPick, unit decimal.Decimal, american int) (decimal.Decimal, decimal.Decimal, error) {
	risk, hasRisk := parseAmount(r.Risk)
	win, hasWin := parseAmount(r.Win)

	if hasRisk && r.RiskUnits {
		risk = risk.Mul(unit)
	}

	switch {
	case hasRisk && hasWin:
		return risk.Round(2), win.Round(2), nil
	case hasRisk:
		w, err := oddsmath.ToWin(risk, american)
		return risk.Round(2), w, err
	case hasWin:
		rk, err := oddsmath.ToRisk(win, american)
		return rk, win.Round(2), err
	}
	return oddsmath.UnitStake(unit, american)
}

func (a *Assembler) sport(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return a.defaultSport
	}
	if a.leagues != nil {
		code, _ := a.leagues.NormalizeSport(s)
		return code
	}
	return strings.ToUpper(s)
}

var pickTypeAliases = map[string]models.PickType{
	"spread":       models.PickTypeSpread,
	"spreads":      models.PickTypeSpread,
	"ats":          models.PickTypeSpread,
	"point spread": models.PickTypeSpread,
	"handicap":     models.PickTypeSpread,
	"run line":     models.PickTypeSpread,
	"runline":      models.PickTypeSpread,
	"puck line":    models.PickTypeSpread,
	"puckline":     models.PickTypeSpread,
	"moneyline":    models.PickTypeMoneyline,
	"money line":   models.PickTypeMoneyline,
	"money_line":   models.PickTypeMoneyline,
	"ml":           models.PickTypeMoneyline,
	"h2h":          models.PickTypeMoneyline,
	"total":        models.PickTypeTotal,
	"totals":       models.PickTypeTotal,
	"game total":   models.PickTypeTotal,
	"o/u":          models.PickTypeTotal,
	"ou":           models.PickTypeTotal,
	"over/under":   models.PickTypeTotal,
	"team-total":   models.PickTypeTeamTotal,
	"team_total":   models.PickTypeTeamTotal,
	"team total":   models.PickTypeTeamTotal,
	"teamtotal":    models.PickTypeTeamTotal,
	"team totals":  models.PickTypeTeamTotal,
	"tt":           models.PickTypeTeamTotal,
}

// canonicalPickType lower-cases a bet type label and maps it to a PickType.
// Unknown labels yield "".
func canonicalPickType(s string) models.PickType {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return pickTypeAliases[key]
}

// NormalizeDirection maps over/under spellings, including the truncated
// "UNDE", to Over or Under
func NormalizeDirection(s string) models.Direction {
	d := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case d == "":
		return models.DirectionNone
	case d == "O" || strings.HasPrefix(d, "OV") || d == "TTO":
		return models.DirectionOver
	case d == "U" || strings.HasPrefix(d, "UN") || d == "TTU":
		return models.DirectionUnder
	}
	return models.DirectionNone
}

// normalizeLine signs spread lines, strips the sign from totals and clears
// moneyline lines. Non-numeric lines are rejected.
func normalizeLine(line string, pickType models.PickType) string {
	if pickType == models.PickTypeMoneyline {
		return ""
	}

	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "oOuU ")
	line = strings.Trim(line, "()")
	if line == "" {
		return ""
	}
	if pickEmRe.MatchString(line) {
		line = "0"
	}

	unsigned := strings.TrimLeft(line, "+-")
	v, err := decimal.NewFromString(unsigned)
	if err != nil {
		return ""
	}
	if v.IsZero() {
		return "0"
	}

	if pickType == models.PickTypeSpread {
		if line[0] != '+' && line[0] != '-' {
			return "+" + unsigned
		}
		return line
	}
	return unsigned
}

// normalizeOdds parses American odds, defaulting to -110
func normalizeOdds(odds string) int {
	american, err := oddsmath.ParseAmerican(odds)
	if err != nil {
		return -110
	}
	return american
}

// parseAmount reads a currency amount ("$1,100.00")
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", ""))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
