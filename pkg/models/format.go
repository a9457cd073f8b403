package models

// FormatKind classifies a raw input blob
type FormatKind string

const (
	FormatBetHistory    FormatKind = "bet_history"       // pasted wager history with $ amounts
	FormatHTMLGameLines FormatKind = "html_game_lines"   // sportsbook game-line panels
	FormatLegacyHTML    FormatKind = "legacy_html_table" // older <tr>-based bet slips
	FormatPipeDelimited FormatKind = "pipe_delimited"    // "Team1 vs Team2 | Segment | Pick (Odds)"
	FormatFreeform      FormatKind = "freeform"          // typed shorthand
)

// AliasEntry maps one alias to a canonical team name
type AliasEntry struct {
	Alias     string `json:"alias" yaml:"alias"`
	Canonical string `json:"canonical" yaml:"canonical"`
	League    string `json:"league,omitempty" yaml:"league,omitempty"` // NBA, NFL, NCAAB, ...
}

// ErrorResponse is the error envelope returned by the HTTP API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
