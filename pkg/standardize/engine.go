// Package standardize converts heterogeneous pick input (typed shorthand,
// sportsbook bet-slip HTML, pipe-delimited summaries and bet-history pastes)
// into canonical models.Pick records.
package standardize

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/aliases"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Config holds engine defaults
type Config struct {
	UnitMultiplier decimal.Decimal // scales "$50" shorthand; also the one-unit stake
	DefaultSport   string
	Logger         *slog.Logger
	Clock          func() time.Time
}

// DefaultConfig returns the standard engine configuration
func DefaultConfig() Config {
	return Config{
		UnitMultiplier: decimal.NewFromInt(1000),
		DefaultSport:   "NBA",
		Logger:         slog.Default(),
		Clock:          time.Now,
	}
}

// Option adjusts a single Standardize call
type Option func(*callOptions)

type callOptions struct {
	unit  decimal.Decimal
	sport string
}

// WithUnitMultiplier overrides the unit multiplier for one call
func WithUnitMultiplier(m decimal.Decimal) Option {
	return func(o *callOptions) {
		if m.IsPositive() {
			o.unit = m
		}
	}
}

// WithDefaultSport sets the sport for picks whose sport cannot be determined
func WithDefaultSport(sport string) Option {
	return func(o *callOptions) {
		if s := strings.TrimSpace(sport); s != "" {
			o.sport = s
		}
	}
}

// Result is the outcome of one Standardize call
type Result struct {
	Format models.FormatKind `json:"format"`
	Step   string            `json:"step,omitempty"` // parser that produced the picks
	Picks  []models.Pick     `json:"picks"`
}

// parseStep is one link of a parser chain
type parseStep struct {
	name  string
	parse func(input string) []RawPick
}

// Engine is the entry point of the standardizer. It is safe for concurrent use.
type Engine struct {
	resolver  Resolver
	text      *TextParser
	html      *HTMLParser
	history   *HistoryParser
	assembler *Assembler
	logger    *slog.Logger

	chains map[models.FormatKind][]parseStep

	mu   sync.RWMutex
	unit decimal.Decimal
}

// NewEngine creates an engine over an alias table and a league index
func NewEngine(table *aliases.Table, leagues contracts.LeagueIndex, cfg Config) *Engine {
	defaults := DefaultConfig()
	if !cfg.UnitMultiplier.IsPositive() {
		cfg.UnitMultiplier = defaults.UnitMultiplier
	}
	if cfg.DefaultSport == "" {
		cfg.DefaultSport = defaults.DefaultSport
	}
	if cfg.Logger == nil {
		cfg.Logger = defaults.Logger
	}
	if cfg.Clock == nil {
		cfg.Clock = defaults.Clock
	}
	if table == nil {
		table = aliases.NewTable(nil)
	}

	resolver := Resolver{Aliases: table, Leagues: leagues}
	text := NewTextParser(resolver, cfg.Clock)

	e := &Engine{
		resolver:  resolver,
		text:      text,
		html:      NewHTMLParser(resolver, text, cfg.Logger),
		history:   NewHistoryParser(text),
		assembler: NewAssembler(leagues, cfg.DefaultSport, cfg.Clock, cfg.Logger),
		logger:    cfg.Logger,
		unit:      cfg.UnitMultiplier,
	}
	e.chains = e.buildChains()
	return e
}

// buildChains lists, per format, the parsers to try in order. The first
// non-empty result wins.
func (e *Engine) buildChains() map[models.FormatKind][]parseStep {
	legacy := parseStep{"legacy_table", e.html.ParseLegacyBetSlip}
	panels := parseStep{"game_lines", e.html.ParseGameLines}
	visibleText := parseStep{"visible_text", func(in string) []RawPick { return e.text.Parse(VisibleText(in)) }}
	text := parseStep{"text", e.text.Parse}

	return map[models.FormatKind][]parseStep{
		models.FormatBetHistory: {
			{"legacy_table", func(in string) []RawPick {
				if !hasTableMarkup(in) {
					return nil
				}
				return e.html.ParseLegacyBetSlip(in)
			}},
			{"history", func(in string) []RawPick { return e.history.Parse(VisibleText(in)) }},
			visibleText,
		},
		models.FormatHTMLGameLines: {panels, visibleText},
		models.FormatLegacyHTML:    {legacy, panels, visibleText},
		models.FormatPipeDelimited: {text},
		models.FormatFreeform:      {text},
	}
}

// SetUnitMultiplier changes the engine's default unit multiplier for later calls
func (e *Engine) SetUnitMultiplier(m decimal.Decimal) {
	if !m.IsPositive() {
		return
	}
	e.mu.Lock()
	e.unit = m
	e.mu.Unlock()
}

// UnitMultiplier returns the engine's current default unit multiplier
func (e *Engine) UnitMultiplier() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.unit
}

// Standardize converts input into canonical picks in input order. Input that
// yields nothing returns an empty slice, never an error.
func (e *Engine) Standardize(input string, opts ...Option) []models.Pick {
	return e.StandardizeDetailed(input, opts...).Picks
}

// StandardizeDetailed is Standardize plus the detected format and the parser
// that produced the picks
func (e *Engine) StandardizeDetailed(input string, opts ...Option) Result {
	o := callOptions{unit: e.UnitMultiplier()}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(input) == "" {
		return Result{Format: models.FormatFreeform, Picks: []models.Pick{}}
	}

	input = normalizeInput(input)
	format := Detect(input)

	var (
		raw  []RawPick
		step string
	)
	for _, s := range e.chains[format] {
		if raw = s.parse(input); len(raw) > 0 {
			step = s.name
			break
		}
	}

	if o.sport != "" {
		sport, _ := e.resolver.Sport(o.sport)
		for i := range raw {
			if raw[i].Sport == "" {
				raw[i].Sport = sport
			}
		}
	}

	picks := e.assembler.Assemble(raw, o.unit)
	e.logger.Debug("standardized input", "format", format, "step", step, "raw", len(raw), "picks", len(picks))

	return Result{Format: format, Step: step, Picks: picks}
}

// ParseText runs the freeform text parser and assembler on text
func (e *Engine) ParseText(text string) []models.Pick {
	return e.assembler.Assemble(e.text.Parse(text), e.UnitMultiplier())
}

// ParseSportsbookGameLines runs the game-line panel parser and assembler on markup
func (e *Engine) ParseSportsbookGameLines(html string) []models.Pick {
	return e.assembler.Assemble(e.html.ParseGameLines(html), e.UnitMultiplier())
}

// ParseLegacyBetSlip runs the legacy bet-slip table parser and assembler on markup
func (e *Engine) ParseLegacyBetSlip(html string) []models.Pick {
	return e.assembler.Assemble(e.html.ParseLegacyBetSlip(html), e.UnitMultiplier())
}

// ParseBetHistory runs the bet-history parser and assembler on a paste
func (e *Engine) ParseBetHistory(text string) []models.Pick {
	return e.assembler.Assemble(e.history.Parse(VisibleText(text)), e.UnitMultiplier())
}

// LeagueName returns the display name of a league code, or ""
func (e *Engine) LeagueName(code string) string {
	if e.resolver.Leagues == nil || code == "" {
		return ""
	}
	return e.resolver.Leagues.DisplayName(code)
}

// ResolveTeam canonicalizes a team token, optionally scoped to a league
func (e *Engine) ResolveTeam(league, token string) (models.AliasEntry, bool) {
	if league != "" {
		league, _ = e.resolver.Sport(league)
	}
	return e.resolver.Aliases.LookupIn(league, token)
}
