// Package aliases resolves free-form team tokens (nicknames, cities,
// abbreviations, conference-qualified names) to canonical team names.
package aliases

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"golang.org/x/text/unicode/norm"
)

// snapshot is an immutable view of the table. Readers never lock; writers
// build a new snapshot and swap it in.
type snapshot struct {
	global  map[string]models.AliasEntry
	scoped  map[string]map[string]models.AliasEntry // league -> key -> entry
	leagues map[string]string                       // lower canonical -> league
	keys    []string                                // global keys, longest first
}

// Table is an append-only alias table with first-writer-wins merges.
// It is safe for concurrent use.
type Table struct {
	snap atomic.Pointer[snapshot]
	mu   sync.Mutex // serializes writers
}

// Match is a team alias found inside a larger text
type Match struct {
	Start int    // byte offset in the searched text
	End   int    // byte offset one past the alias
	Text  string // the alias as it appears in the text
	Entry models.AliasEntry
}

// NewTable creates a table seeded with the given entries
func NewTable(entries []models.AliasEntry) *Table {
	t := &Table{}
	t.snap.Store(&snapshot{
		global:  map[string]models.AliasEntry{},
		scoped:  map[string]map[string]models.AliasEntry{},
		leagues: map[string]string{},
	})
	t.Merge(entries)
	return t
}

// Merge adds entries whose keys are not present yet and returns how many
// global keys were added. Existing keys are never overwritten, so entries
// merged first (the built-in tables) always take precedence.
func (t *Table) Merge(entries []models.AliasEntry) int {
	if len(entries) == 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.snap.Load()
	next := &snapshot{
		global:  make(map[string]models.AliasEntry, len(cur.global)+len(entries)),
		scoped:  make(map[string]map[string]models.AliasEntry, len(cur.scoped)),
		leagues: make(map[string]string, len(cur.leagues)),
	}
	for k, v := range cur.global {
		next.global[k] = v
	}
	for league, m := range cur.scoped {
		cp := make(map[string]models.AliasEntry, len(m))
		for k, v := range m {
			cp[k] = v
		}
		next.scoped[league] = cp
	}
	for k, v := range cur.leagues {
		next.leagues[k] = v
	}

	added := 0
	for _, e := range entries {
		canonical := strings.TrimSpace(e.Canonical)
		if canonical == "" {
			continue
		}
		league := strings.ToUpper(strings.TrimSpace(e.League))
		entry := models.AliasEntry{Canonical: canonical, League: league}

		// The canonical name always resolves to itself
		for _, alias := range []string{e.Alias, canonical} {
			key := Key(alias)
			if key == "" {
				continue
			}
			entry.Alias = alias

			if _, exists := next.global[key]; !exists {
				next.global[key] = entry
				added++
			}

			if league != "" {
				scoped, ok := next.scoped[league]
				if !ok {
					scoped = map[string]models.AliasEntry{}
					next.scoped[league] = scoped
				}
				if _, exists := scoped[key]; !exists {
					scoped[key] = entry
				}
			}
		}

		if league != "" {
			if _, exists := next.leagues[strings.ToLower(canonical)]; !exists {
				next.leagues[strings.ToLower(canonical)] = league
			}
		}
	}

	next.keys = make([]string, 0, len(next.global))
	for k := range next.global {
		next.keys = append(next.keys, k)
	}
	sort.Slice(next.keys, func(i, j int) bool {
		if len(next.keys[i]) != len(next.keys[j]) {
			return len(next.keys[i]) > len(next.keys[j])
		}
		return next.keys[i] < next.keys[j]
	})

	t.snap.Store(next)
	return added
}

// Resolve maps a token to its canonical team name. Unknown tokens are
// returned unchanged.
func (t *Table) Resolve(token string) string {
	if e, ok := t.Lookup(token); ok {
		return e.Canonical
	}
	return token
}

// ResolveIn resolves a token preferring the given league's aliases, so
// "Kings" means the Los Angeles Kings when the league is NHL
func (t *Table) ResolveIn(league, token string) string {
	if e, ok := t.LookupIn(league, token); ok {
		return e.Canonical
	}
	return token
}

// Lookup returns the global entry for a token
func (t *Table) Lookup(token string) (models.AliasEntry, bool) {
	e, ok := t.snap.Load().global[Key(token)]
	return e, ok
}

// LookupIn returns the league-scoped entry for a token, falling back to the global one
func (t *Table) LookupIn(league, token string) (models.AliasEntry, bool) {
	s := t.snap.Load()
	key := Key(token)

	if league != "" {
		if scoped, ok := s.scoped[strings.ToUpper(league)]; ok {
			if e, ok := scoped[key]; ok {
				return e, true
			}
		}
	}

	e, ok := s.global[key]
	return e, ok
}

// LeagueOf returns the league code a canonical team belongs to, or ""
func (t *Table) LeagueOf(canonical string) string {
	return t.snap.Load().leagues[strings.ToLower(strings.TrimSpace(canonical))]
}

// Len returns the number of global keys
func (t *Table) Len() int {
	return len(t.snap.Load().global)
}

// FindTeam returns the earliest alias occurring in text on word boundaries.
// When two aliases start at the same offset the longer one wins. A league
// hint re-resolves the match through that league's aliases.
func (t *Table) FindTeam(text, league string) (Match, bool) {
	s := t.snap.Load()
	lower, starts, ends := searchable(text)

	best := Match{Start: -1}
	for _, key := range s.keys {
		if len(key) > len(lower) {
			continue
		}

		from := 0
		for from <= len(lower)-len(key) {
			idx := strings.Index(lower[from:], key)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(key)

			if boundaryAt(lower, start, end) {
				// keys are sorted longest first, so an equal start keeps the longer alias
				if best.Start < 0 || start < best.Start {
					best = Match{Start: start, End: end, Entry: s.global[key]}
				}
				break
			}
			from = start + 1
		}
	}

	if best.Start < 0 {
		return Match{}, false
	}

	if starts != nil {
		best.Start, best.End = starts[best.Start], ends[best.End-1]
	}
	best.Text = text[best.Start:best.End]

	if league != "" {
		if scoped, ok := s.scoped[strings.ToUpper(league)]; ok {
			if e, ok := scoped[Key(best.Text)]; ok {
				best.Entry = e
			}
		}
	}

	return best, true
}

// searchable folds and lower-cases text for matching against alias keys.
// For non-ASCII text, starts and ends map each byte of the result to the
// start and end offsets in text of the rune it came from; both are nil when
// the offsets are unchanged.
func searchable(text string) (string, []int, []int) {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return strings.ToLower(text), nil, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	starts := make([]int, 0, len(text))
	ends := make([]int, 0, len(text))
	for i, r := range text {
		piece := strings.ToLower(Fold(string(r)))
		_, size := utf8.DecodeRuneInString(text[i:])
		end := i + size
		for j := 0; j < len(piece); j++ {
			starts = append(starts, i)
			ends = append(ends, end)
		}
		b.WriteString(piece)
	}
	return b.String(), starts, ends
}

// Key normalizes an alias for lookup: diacritics stripped, lower-cased,
// trimmed and whitespace collapsed
func Key(s string) string {
	s = Fold(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// Fold strips diacritics ("Montréal" → "Montreal")
func Fold(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func boundaryAt(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
