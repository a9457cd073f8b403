package baseball_mlb

import (
	"sort"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// League implements contracts.League for MLB Baseball
type League struct {
	config *Config
}

// Config contains MLB-specific alias configuration
type Config struct {
	SportKey    string
	Code        string
	DisplayName string
	CodeAliases []string
}

// DefaultConfig returns the standard MLB configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:    "baseball_mlb",
		Code:        "MLB",
		DisplayName: "MLB Baseball",
		CodeAliases: []string{"BASEBALL"},
	}
}

// NewLeague creates a new MLB league module
func NewLeague() *League {
	return &League{
		config: DefaultConfig(),
	}
}

// GetSportKey returns the sport identifier
func (l *League) GetSportKey() string {
	return l.config.SportKey
}

// GetCode returns the league code used on picks
func (l *League) GetCode() string {
	return l.config.Code
}

// GetDisplayName returns the human-readable name
func (l *League) GetDisplayName() string {
	return l.config.DisplayName
}

// GetCodeAliases returns alternate spellings of the league code
func (l *League) GetCodeAliases() []string {
	return l.config.CodeAliases
}

// GetAliases flattens the team alias table into entries, ordered by canonical name
func (l *League) GetAliases() []models.AliasEntry {
	names := make([]string, 0, len(mlbTeamAliases))
	for name := range mlbTeamAliases {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]models.AliasEntry, 0, len(names)*4)
	for _, name := range names {
		for _, alias := range mlbTeamAliases[name] {
			entries = append(entries, models.AliasEntry{
				Alias:     alias,
				Canonical: name,
				League:    l.config.Code,
			})
		}
	}
	return entries
}
