package standardize_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

func TestParsePipeLine(t *testing.T) {
	raw, ok := standardize.ParsePipeLine("NCAAB | Duke vs UNC | 1st Half | Duke -4.5 (-110) | Risk: 50")
	if !ok {
		t.Fatal("expected a pick")
	}

	if raw.Sport != "NCAAB" || raw.AwayTeam != "Duke" || raw.HomeTeam != "UNC" {
		t.Errorf("sport/teams = %s %s %s", raw.Sport, raw.AwayTeam, raw.HomeTeam)
	}
	if raw.Segment != models.Segment1stHalf || raw.PickTeam != "Duke" || raw.Line != "-4.5" || raw.Odds != "-110" {
		t.Errorf("unexpected pick: %+v", raw)
	}
	if raw.Risk != "50" || raw.RiskUnits {
		t.Errorf("risk = %q units=%v, want literal 50", raw.Risk, raw.RiskUnits)
	}
}

func TestParsePipeLine_NoPick(t *testing.T) {
	if _, ok := standardize.ParsePipeLine("Duke vs UNC | Full Game"); ok {
		t.Error("expected no pick without a bet part")
	}
}

func TestStandardize_PipeLiteralRisk(t *testing.T) {
	engine := testutil.NewEngine()

	picks := engine.Standardize("NCAAB | Duke vs UNC | 1st Half | Duke -4.5 (-110) | Risk: 50")
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(picks))
	}
	p := picks[0]
	if p.Sport != "NCAAB" || p.PickTeam != "Duke" {
		t.Errorf("pipe names should be kept as written: %+v", p)
	}
	if !p.Risk.Equal(decimal.NewFromInt(50)) || !p.Win.Equal(decimal.RequireFromString("45.45")) {
		t.Errorf("stake = %s/%s, want 50/45.45", p.Risk, p.Win)
	}
}

func TestParsePipeLine_BareDollarIsUnits(t *testing.T) {
	raw, ok := standardize.ParsePipeLine("Memphis vs FAU | Full Game | FAU -2 | $50")
	if !ok {
		t.Fatal("expected a pick")
	}
	if raw.Risk != "50" || !raw.RiskUnits {
		t.Errorf("risk = %q units=%v, want 50 units", raw.Risk, raw.RiskUnits)
	}
}

func TestStandardize_PipeBareDollarScaled(t *testing.T) {
	engine := testutil.NewEngine()

	tests := []struct {
		name  string
		input string
	}{
		{"Pipe without odds", "Memphis vs FAU | Full Game | FAU -2 | $50"},
		{"Freeform", "FAU -2 $50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.StandardizeDetailed(tt.input, standardize.WithUnitMultiplier(decimal.NewFromInt(1000)))
			if len(res.Picks) != 1 {
				t.Fatalf("expected 1 pick, got %d", len(res.Picks))
			}
			if !res.Picks[0].Risk.Equal(decimal.NewFromInt(50000)) {
				t.Errorf("risk = %s, want 50000 (format %s)", res.Picks[0].Risk, res.Format)
			}
		})
	}
}

func TestPick_SummaryParsesBack(t *testing.T) {
	engine := testutil.NewEngine()

	original := testutil.PickFixture()
	picks := engine.Standardize(original.Summary())
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick from %q, got %d", original.Summary(), len(picks))
	}
	p := picks[0]
	if p.PickTeam != original.PickTeam || p.Line != original.Line || p.Odds != original.Odds || p.PickType != original.PickType {
		t.Errorf("round trip of %q = %+v", original.Summary(), p)
	}
}
