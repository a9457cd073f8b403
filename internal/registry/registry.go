package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/aliases"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/americanfootball_ncaaf"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/americanfootball_nfl"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/baseball_mlb"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/basketball_ncaab"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/icehockey_nhl"
)

// LeagueRegistry manages registered league modules.
// Registration order is preserved: leagues registered first own shared aliases.
type LeagueRegistry struct {
	leagues map[string]contracts.League
	order   []string
	codes   map[string]string // upper-cased code, code alias or sport key -> code
	mu      sync.RWMutex
}

// NewLeagueRegistry creates a new league registry
func NewLeagueRegistry() *LeagueRegistry {
	return &LeagueRegistry{
		leagues: make(map[string]contracts.League),
		codes:   make(map[string]string),
	}
}

// Default returns a registry with every built-in league registered in
// precedence order: NBA, NFL, MLB, NHL, NCAAB, NCAAF
func Default() *LeagueRegistry {
	r := NewLeagueRegistry()
	for _, league := range []contracts.League{
		basketball_nba.NewLeague(),
		americanfootball_nfl.NewLeague(),
		baseball_mlb.NewLeague(),
		icehockey_nhl.NewLeague(),
		basketball_ncaab.NewLeague(),
		americanfootball_ncaaf.NewLeague(),
	} {
		// built-in keys are unique
		_ = r.Register(league)
	}
	return r
}

// Register adds a league module to the registry
func (r *LeagueRegistry) Register(league contracts.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sportKey := league.GetSportKey()
	if _, exists := r.leagues[sportKey]; exists {
		return fmt.Errorf("league for sport %s is already registered", sportKey)
	}

	r.leagues[sportKey] = league
	r.order = append(r.order, sportKey)

	code := strings.ToUpper(league.GetCode())
	r.codes[code] = code
	r.codes[strings.ToUpper(sportKey)] = code
	for _, alias := range league.GetCodeAliases() {
		if _, exists := r.codes[strings.ToUpper(alias)]; !exists {
			r.codes[strings.ToUpper(alias)] = code
		}
	}
	return nil
}

// Get retrieves a league by sport key
func (r *LeagueRegistry) Get(sportKey string) (contracts.League, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	league, exists := r.leagues[sportKey]
	return league, exists
}

// GetAll returns all registered leagues in registration order
func (r *LeagueRegistry) GetAll() []contracts.League {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leagues := make([]contracts.League, 0, len(r.order))
	for _, key := range r.order {
		leagues = append(leagues, r.leagues[key])
	}
	return leagues
}

// Count returns the number of registered leagues
func (r *LeagueRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.leagues)
}

// NormalizeSport maps a league code, code alias or sport key to the league
// code ("cbb" -> "NCAAB", "basketball_nba" -> "NBA"). Unknown values are
// upper-cased and returned with ok=false.
func (r *LeagueRegistry) NormalizeSport(s string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if code, ok := r.codes[key]; ok {
		return code, true
	}
	return key, false
}

// Codes returns every recognized code and code alias, upper-cased
func (r *LeagueRegistry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.codes))
	for k := range r.codes {
		if !strings.Contains(k, "_") {
			codes = append(codes, k)
		}
	}
	return codes
}

// DisplayName returns the human-readable name for a league code, code alias
// or sport key, or "" when the league is not registered
func (r *LeagueRegistry) DisplayName(s string) string {
	code, ok := r.NormalizeSport(s)
	if !ok {
		return ""
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.order {
		if league := r.leagues[key]; league.GetCode() == code {
			return league.GetDisplayName()
		}
	}
	return ""
}

// BuildAliasTable merges every league's built-in aliases, in registration
// order, into a new alias table
func (r *LeagueRegistry) BuildAliasTable() *aliases.Table {
	table := aliases.NewTable(nil)
	for _, league := range r.GetAll() {
		table.Merge(league.GetAliases())
	}
	return table
}
