package contracts

import (
	"context"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// League defines a sport module that contributes built-in team aliases
// This enables the standardizer to support multiple leagues with their own naming quirks
type League interface {
	// GetSportKey returns the unique identifier for this league (e.g., "basketball_nba")
	GetSportKey() string

	// GetCode returns the short league code used on picks (e.g., "NBA")
	GetCode() string

	// GetDisplayName returns the human-readable name (e.g., "NBA Basketball")
	GetDisplayName() string

	// GetCodeAliases returns other spellings of the league code (e.g., "CBB" for NCAAB)
	GetCodeAliases() []string

	// GetAliases returns the league's built-in alias entries
	GetAliases() []models.AliasEntry
}

// AliasSource loads an alias table extension (file, remote registry, Redis, Postgres)
type AliasSource interface {
	// Name identifies the source in logs
	Name() string

	// Load fetches alias entries; entries already present in the table are ignored by the merge
	Load(ctx context.Context) ([]models.AliasEntry, error)
}

// LeagueIndex maps league codes, code aliases and sport keys to canonical league codes
type LeagueIndex interface {
	// NormalizeSport returns the league code for s ("cbb" -> "NCAAB"); ok is false for unknown values
	NormalizeSport(s string) (code string, ok bool)

	// Codes returns every recognized league code and code alias
	Codes() []string

	// DisplayName returns the human-readable name of a league ("NHL" -> "NHL Hockey"), or ""
	DisplayName(s string) string
}
