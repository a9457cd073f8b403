package standardize_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

func TestParseBetHistory(t *testing.T) {
	engine := testutil.NewEngine()

	picks := engine.ParseBetHistory(testutil.BetHistoryPaste)
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %d: %+v", len(picks), picks)
	}

	straight := picks[0]
	if straight.TicketID != "884512" || straight.Status != "Won" || straight.Date != "2024-10-12" {
		t.Errorf("ticket fields = %q %q %q", straight.TicketID, straight.Status, straight.Date)
	}
	if straight.IsParlay {
		t.Error("straight bet marked as parlay")
	}
	if !straight.Risk.Equal(decimal.NewFromInt(110)) || !straight.Win.Equal(decimal.NewFromInt(100)) {
		t.Errorf("stake = %s/%s, want 110/100", straight.Risk, straight.Win)
	}
	if straight.Source != models.FormatBetHistory {
		t.Errorf("Source = %s", straight.Source)
	}

	legs := picks[1:]
	if legs[0].PickTeam != "Boston Celtics" || legs[0].PickType != models.PickTypeMoneyline || legs[0].Odds != "+150" {
		t.Errorf("unexpected first leg: %+v", legs[0])
	}
	if legs[1].PickTeam != "New York Knicks" || legs[1].Line != "+4.5" {
		t.Errorf("unexpected second leg: %+v", legs[1])
	}
	for _, leg := range legs {
		if !leg.IsParlay || leg.ParlayID != "884513" || leg.ParlayType != "round-robin" {
			t.Errorf("parlay fields = %v %q %q", leg.IsParlay, leg.ParlayID, leg.ParlayType)
		}
		if leg.Status != "Pending" || leg.Date != "2024-10-13" {
			t.Errorf("status/date = %q %q", leg.Status, leg.Date)
		}
		if !leg.Risk.Equal(decimal.NewFromInt(25)) || !leg.Win.Equal(decimal.NewFromInt(80)) {
			t.Errorf("leg stake = %s/%s, want 25/80", leg.Risk, leg.Win)
		}
	}
}

func TestStandardize_HistoryDetected(t *testing.T) {
	engine := testutil.NewEngine()

	result := engine.StandardizeDetailed(testutil.BetHistoryPaste)
	if result.Format != models.FormatBetHistory || result.Step != "history" {
		t.Errorf("format/step = %s/%s, want bet_history/history", result.Format, result.Step)
	}
	if len(result.Picks) != 3 {
		t.Errorf("expected 3 picks, got %d", len(result.Picks))
	}
}

func TestParseBetHistory_ImplicitTickets(t *testing.T) {
	engine := testutil.NewEngine()

	input := "Lakers -3 -110 $25\nBills ML +120\n$10"
	picks := engine.Standardize(input, standardize.WithUnitMultiplier(decimal.NewFromInt(1)))
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d: %+v", len(picks), picks)
	}

	if !picks[0].Risk.Equal(decimal.NewFromInt(25)) || !picks[0].Win.Equal(decimal.RequireFromString("22.73")) {
		t.Errorf("first stake = %s/%s, want 25/22.73", picks[0].Risk, picks[0].Win)
	}
	if picks[1].PickTeam != "Buffalo Bills" {
		t.Errorf("second team = %s", picks[1].PickTeam)
	}
	if !picks[1].Risk.Equal(decimal.NewFromInt(10)) || !picks[1].Win.Equal(decimal.NewFromInt(12)) {
		t.Errorf("second stake = %s/%s, want 10/12 from the following line", picks[1].Risk, picks[1].Win)
	}
	for _, p := range picks {
		if p.IsParlay || p.TicketID != "" {
			t.Errorf("implicit ticket should be a straight bet without id: %+v", p)
		}
	}
}

func TestParseBetHistory_ParlayWithoutTicketID(t *testing.T) {
	engine := testutil.NewEngine()

	input := "10/12/2024 Parlay\nLakers -3.5 -110\nCeltics ML +120\nRisk: $20 To Win: $60 Lost"
	picks := engine.ParseBetHistory(input)
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d: %+v", len(picks), picks)
	}
	if picks[0].ParlayID == "" || picks[0].ParlayID != picks[1].ParlayID {
		t.Errorf("legs should share a generated parlay id: %q %q", picks[0].ParlayID, picks[1].ParlayID)
	}
	for _, p := range picks {
		if p.Status != "Lost" || !p.Risk.Equal(decimal.NewFromInt(10)) || !p.Win.Equal(decimal.NewFromInt(30)) {
			t.Errorf("unexpected leg: %s %s/%s", p.Status, p.Risk, p.Win)
		}
	}
}
