package standardize

import (
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/aliases"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// RawPick is what a parser extracts before normalization. Every field is
// free text; the Assembler turns it into a models.Pick.
type RawPick struct {
	Sport     string
	League    string
	PickType  string
	PickTeam  string
	Direction string
	Line      string
	Odds      string
	Segment   string

	AwayTeam string
	HomeTeam string

	Risk      string
	Win       string
	RiskUnits bool // Risk is unit shorthand to scale by the unit multiplier

	Date   string
	Time   string
	Status string

	TicketID   string
	IsParlay   bool
	ParlayID   string
	ParlayType string

	Source models.FormatKind
}

func rawFromToken(tok *Token) RawPick {
	return RawPick{
		PickType:  string(tok.PickType),
		PickTeam:  tok.PickTeam,
		Direction: string(tok.Direction),
		Line:      tok.Line,
		Odds:      tok.Odds,
	}
}

// Resolver bundles the lookups shared by every parser
type Resolver struct {
	Aliases *aliases.Table
	Leagues contracts.LeagueIndex
}

// Team canonicalizes a team token, preferring the given league's aliases
func (r Resolver) Team(league, name string) string {
	name = strings.TrimSpace(name)
	if name == "" || r.Aliases == nil {
		return name
	}
	return r.Aliases.ResolveIn(league, name)
}

// Sport maps a league code or sport key to a league code
func (r Resolver) Sport(s string) (string, bool) {
	if r.Leagues == nil {
		return strings.ToUpper(strings.TrimSpace(s)), false
	}
	return r.Leagues.NormalizeSport(s)
}

// SportOfTeams returns the league of the first team the alias table knows
func (r Resolver) SportOfTeams(teams ...string) string {
	if r.Aliases == nil {
		return ""
	}
	for _, team := range teams {
		if team == "" {
			continue
		}
		if league := r.Aliases.LeagueOf(team); league != "" {
			return league
		}
		if e, ok := r.Aliases.Lookup(team); ok && e.League != "" {
			return e.League
		}
	}
	return ""
}

func (r Resolver) findTeam(text, league string) (aliases.Match, bool) {
	if r.Aliases == nil {
		return aliases.Match{}, false
	}
	return r.Aliases.FindTeam(text, league)
}
