package standardize_test

import (
	"reflect"
	"testing"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

func TestRuleNames_Precedence(t *testing.T) {
	want := []string{"moneyline", "team-total", "total", "spread"}
	if got := standardize.RuleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("RuleNames() = %v, want %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType models.PickType
		wantTeam string
		wantDir  models.Direction
		wantLine string
		wantOdds string
		wantRule string
	}{
		{"Odds only is moneyline", "+220", models.PickTypeMoneyline, "", "", "", "+220", "spread"},
		{"Small unsigned number is a line", "+7", models.PickTypeSpread, "", "", "+7", "-110", "spread"},
		{"Team total beats spread", "Lakers over 220 -110", models.PickTypeTeamTotal, "Lakers", models.DirectionOver, "220", "-110", "team-total"},
		{"Team total shorthand", "Lakers tto 110.5", models.PickTypeTeamTotal, "Lakers", models.DirectionOver, "110.5", "", "team-total"},
		{"Team total under shorthand", "Lakers u110.5 -115", models.PickTypeTeamTotal, "Lakers", models.DirectionUnder, "110.5", "-115", "team-total"},
		{"Game total", "under 220", models.PickTypeTotal, "Under", models.DirectionUnder, "220", "", "total"},
		{"Game total shorthand", "o220.5 (-105)", models.PickTypeTotal, "Over", models.DirectionOver, "220.5", "-105", "total"},
		{"Moneyline with odds", "Bills ML +120", models.PickTypeMoneyline, "Bills", "", "", "+120", "moneyline"},
		{"Moneyline spelled out", "Bills money line -150", models.PickTypeMoneyline, "Bills", "", "", "-150", "moneyline"},
		{"Moneyline even", "Bills ml even", models.PickTypeMoneyline, "Bills", "", "", "+100", "moneyline"},
		{"Spread unsigned gets plus", "Spurs 2.5 -105", models.PickTypeSpread, "Spurs", "", "+2.5", "-105", "spread"},
		{"Spread display form", "Lakers -3.5 (-110)", models.PickTypeSpread, "Lakers", "", "-3.5", "-110", "spread"},
		{"Multi-word team", "San Antonio Spurs +4", models.PickTypeSpread, "San Antonio Spurs", "", "+4", "-110", "spread"},
		{"Pick'em abbreviation", "Lakers pk -115", models.PickTypeSpread, "Lakers", "", "0", "-115", "spread"},
		{"Pick'em spelled out", "Lakers pick'em", models.PickTypeSpread, "Lakers", "", "0", "-110", "spread"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := standardize.Tokenize(tt.input)
			if tok == nil {
				t.Fatalf("Tokenize(%q) = nil", tt.input)
			}
			if tok.PickType != tt.wantType {
				t.Errorf("PickType = %s, want %s", tok.PickType, tt.wantType)
			}
			if tok.PickTeam != tt.wantTeam {
				t.Errorf("PickTeam = %q, want %q", tok.PickTeam, tt.wantTeam)
			}
			if tok.Direction != tt.wantDir {
				t.Errorf("Direction = %q, want %q", tok.Direction, tt.wantDir)
			}
			if tok.Line != tt.wantLine {
				t.Errorf("Line = %q, want %q", tok.Line, tt.wantLine)
			}
			if tok.Odds != tt.wantOdds {
				t.Errorf("Odds = %q, want %q", tok.Odds, tt.wantOdds)
			}
			if tok.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", tok.Rule, tt.wantRule)
			}
		})
	}
}

func TestTokenize_NoBet(t *testing.T) {
	for _, input := range []string{"Lakers", "", "xyz123 ###", "Go Lakers go"} {
		if tok := standardize.Tokenize(input); tok != nil {
			t.Errorf("Tokenize(%q) = %+v, want nil", input, tok)
		}
	}
}

func TestTokenizeTeam_TotalNeedsNoTeam(t *testing.T) {
	// with a team the total keyword means team total
	tok := standardize.TokenizeTeam("Lakers", "o 110")
	if tok == nil || tok.PickType != models.PickTypeTeamTotal {
		t.Fatalf("TokenizeTeam(Lakers, o 110) = %+v", tok)
	}

	tok = standardize.TokenizeTeam("", "o 220")
	if tok == nil || tok.PickType != models.PickTypeTotal || tok.PickTeam != "Over" {
		t.Fatalf("TokenizeTeam(\"\", o 220) = %+v", tok)
	}
}

func TestTokenize_RoundTripDisplay(t *testing.T) {
	picks := []models.Pick{
		{PickType: models.PickTypeSpread, PickTeam: "Lakers", Line: "-3.5", Odds: "-110"},
		{PickType: models.PickTypeSpread, PickTeam: "Spurs", Line: "+2.5", Odds: "+105"},
		{PickType: models.PickTypeMoneyline, PickTeam: "Bills", Odds: "+120"},
		{PickType: models.PickTypeTotal, PickTeam: "Under", PickDirection: models.DirectionUnder, Line: "220", Odds: "-110"},
		{PickType: models.PickTypeTeamTotal, PickTeam: "Lakers", PickDirection: models.DirectionOver, Line: "110.5", Odds: "-115"},
	}

	for _, p := range picks {
		t.Run(p.Display(), func(t *testing.T) {
			tok := standardize.Tokenize(p.Display())
			if tok == nil {
				t.Fatalf("Tokenize(%q) = nil", p.Display())
			}
			if tok.PickType != p.PickType || tok.PickTeam != p.PickTeam || tok.Line != p.Line || tok.Odds != p.Odds {
				t.Errorf("round trip of %q = %+v", p.Display(), tok)
			}
		})
	}
}
