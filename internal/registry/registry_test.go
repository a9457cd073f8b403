package registry_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/registry"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/sports/basketball_nba"
)

func TestDefault_RegistersAllLeagues(t *testing.T) {
	r := registry.Default()

	if r.Count() != 6 {
		t.Fatalf("expected 6 leagues, got %d", r.Count())
	}

	wantOrder := []string{"NBA", "NFL", "MLB", "NHL", "NCAAB", "NCAAF"}
	for i, league := range r.GetAll() {
		if league.GetCode() != wantOrder[i] {
			t.Errorf("league %d: expected %s, got %s", i, wantOrder[i], league.GetCode())
		}
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r := registry.NewLeagueRegistry()

	if err := r.Register(basketball_nba.NewLeague()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := r.Register(basketball_nba.NewLeague()); err == nil {
		t.Error("expected error registering the same sport twice")
	}

	if _, ok := r.Get("basketball_nba"); !ok {
		t.Error("expected basketball_nba to be registered")
	}
}

func TestNormalizeSport(t *testing.T) {
	r := registry.Default()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"nba", "NBA", true},
		{"basketball_nba", "NBA", true},
		{"CBB", "NCAAB", true},
		{"cfb", "NCAAF", true},
		{"americanfootball_nfl", "NFL", true},
		{"icehockey_nhl", "NHL", true},
		{"wnba", "WNBA", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.NormalizeSport(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeSport(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBuildAliasTable_Precedence(t *testing.T) {
	table := registry.Default().BuildAliasTable()

	tests := []struct {
		league string
		token  string
		want   string
	}{
		{"", "Spurs", "San Antonio Spurs"},
		{"", "bills", "Buffalo Bills"},
		{"", "kings", "Sacramento Kings"},
		{"NHL", "kings", "Los Angeles Kings"},
		{"", "giants", "New York Giants"},
		{"MLB", "giants", "San Francisco Giants"},
		{"", "fau", "Florida Atlantic Owls"},
		{"", "Montreal", "Montréal Canadiens"},
		{"", "unknown team", "unknown team"},
	}

	for _, tt := range tests {
		t.Run(tt.league+"/"+tt.token, func(t *testing.T) {
			if got := table.ResolveIn(tt.league, tt.token); got != tt.want {
				t.Errorf("ResolveIn(%q, %q) = %q, want %q", tt.league, tt.token, got, tt.want)
			}
		})
	}

	if got := table.LeagueOf("Buffalo Bills"); got != "NFL" {
		t.Errorf("LeagueOf(Buffalo Bills) = %q, want NFL", got)
	}
}

func TestDisplayName(t *testing.T) {
	r := registry.Default()

	tests := []struct {
		input string
		want  string
	}{
		{"NHL", "NHL Hockey"},
		{"cbb", "NCAA Men's Basketball"},
		{"americanfootball_nfl", "NFL Football"},
		{"WNBA", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := r.DisplayName(tt.input); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
