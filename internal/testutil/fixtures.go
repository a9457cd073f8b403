package testutil

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/registry"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

// Today is the fixed date returned by FixedClock
const Today = "2024-10-22"

// FixedClock returns a clock pinned to Today at noon UTC
func FixedClock() time.Time {
	return time.Date(2024, 10, 22, 12, 0, 0, 0, time.UTC)
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewEngine creates an engine over the built-in leagues with a fixed clock
func NewEngine(overrides ...func(*standardize.Config)) *standardize.Engine {
	leagues := registry.Default()

	cfg := standardize.DefaultConfig()
	cfg.Clock = FixedClock
	cfg.Logger = DiscardLogger()
	for _, override := range overrides {
		override(&cfg)
	}

	return standardize.NewEngine(leagues.BuildAliasTable(), leagues, cfg)
}

// PickFixture creates a test Pick with sensible defaults
func PickFixture(overrides ...func(*models.Pick)) models.Pick {
	pick := models.Pick{
		Sport:    "NBA",
		PickType: models.PickTypeSpread,
		PickTeam: "Los Angeles Lakers",
		Line:     "-3.5",
		Odds:     "-110",
		Segment:  models.SegmentFullGame,
		AwayTeam: "Los Angeles Lakers",
		HomeTeam: "Boston Celtics",
		Risk:     decimal.NewFromInt(1100),
		Win:      decimal.NewFromInt(1000),
		Date:     Today,
		Source:   models.FormatFreeform,
	}

	for _, override := range overrides {
		override(&pick)
	}

	return pick
}

// TotalPick creates a game total pick
func TotalPick(direction models.Direction, line string) models.Pick {
	return PickFixture(func(p *models.Pick) {
		p.PickType = models.PickTypeTotal
		p.PickTeam = string(direction)
		p.PickDirection = direction
		p.Line = line
	})
}

// MoneylinePick creates a moneyline pick
func MoneylinePick(team, odds string) models.Pick {
	return PickFixture(func(p *models.Pick) {
		p.PickType = models.PickTypeMoneyline
		p.PickTeam = team
		p.Line = ""
		p.Odds = odds
	})
}

// RawPickFixture creates a test RawPick with sensible defaults
func RawPickFixture(overrides ...func(*standardize.RawPick)) standardize.RawPick {
	raw := standardize.RawPick{
		Sport:    "nba",
		PickType: "spread",
		PickTeam: "Los Angeles Lakers",
		Line:     "-3.5",
		Odds:     "-110",
	}

	for _, override := range overrides {
		override(&raw)
	}

	return raw
}

// GameLinesHTML is a sportsbook game-line panel with a selected spread option
// and an unselected four-way team-total group
const GameLinesHTML = `
<div class="board">
  <div data-panel="line" data-league="NBA">
    <div class="teams">
      <span class="team-name">Lakers</span>
      <span class="team-name">Celtics</span>
    </div>
    <span class="date">10/22/2024</span>
    <span class="time">7:30 PM</span>
    <div data-line-group data-type="spread">
      <button data-option><span class="line">-3.5</span><span class="odds">-110</span></button>
      <button data-option class="selected"><span class="line">+3.5</span><span class="odds">-110</span></button>
    </div>
    <div data-line-group data-type="team-total">
      <button data-option>O 110.5 -115</button>
      <button data-option>U 110.5 -105</button>
      <button data-option>O 108.5 -110</button>
      <button data-option>U 108.5 -110</button>
    </div>
  </div>
</div>`

// LegacyParlayHTML is an older table bet slip with a parlay row that lists
// one leg twice and a straight row whose team sits in its own cell
const LegacyParlayHTML = `
<table class="bet-slip">
  <tr class="parlay" data-ticket="T-1001">
    <td class="bet-type">Parlay</td>
    <td>
      <div class="wager-simple">Lakers -3.5 -110</div>
      <div class="wager-simple">Celtics ML +120</div>
      <div class="wager-simple">Lakers -3.5 -110</div>
    </td>
    <td class="risk">$100.00</td>
    <td class="to-win">$300.00</td>
  </tr>
  <tr>
    <td class="team">Bills</td>
    <td class="choosen">-2.5 -110</td>
    <td class="risk">$55</td>
  </tr>
</table>`

// BetHistoryPaste is a copied sportsbook history with a straight bet and a
// round robin that repeats a leg
const BetHistoryPaste = `Ticket #: 884512  10/12/2024
Straight Bet
Lakers -3.5 -110
Risk: $110.00 To Win: $100.00 Won

Ticket #: 884513  10/13/2024
Round Robin
Celtics ML +150
Knicks +4.5 -110
Celtics ML +150
Risk: $50.00 To Win: $160.00 Pending`
