// Package aliasload loads team alias table extensions from files, a remote
// registry, Redis and Postgres. Loading fails open: a source that errors is
// logged and skipped and the built-in tables keep working.
package aliasload

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Decode parses an alias registry document. Two shapes are accepted, in YAML
// or JSON:
//
//	- {alias: zags, canonical: Gonzaga Bulldogs, league: NCAAB}
//
//	NCAAB:
//	  Gonzaga Bulldogs: [zags, gonzaga]
func Decode(data []byte) ([]models.AliasEntry, error) {
	var list []models.AliasEntry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return clean(list), nil
	}

	var grouped map[string]map[string][]string
	if err := yaml.Unmarshal(data, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode alias registry: %w", err)
	}

	leagues := make([]string, 0, len(grouped))
	for league := range grouped {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)

	for _, league := range leagues {
		teams := grouped[league]
		canonicals := make([]string, 0, len(teams))
		for canonical := range teams {
			canonicals = append(canonicals, canonical)
		}
		sort.Strings(canonicals)

		for _, canonical := range canonicals {
			for _, alias := range teams[canonical] {
				list = append(list, models.AliasEntry{Alias: alias, Canonical: canonical, League: league})
			}
		}
	}
	return clean(list), nil
}

// clean drops entries without an alias or canonical name
func clean(entries []models.AliasEntry) []models.AliasEntry {
	out := entries[:0]
	for _, e := range entries {
		e.Alias = strings.TrimSpace(e.Alias)
		e.Canonical = strings.TrimSpace(e.Canonical)
		e.League = strings.ToUpper(strings.TrimSpace(e.League))
		if e.Alias == "" || e.Canonical == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
