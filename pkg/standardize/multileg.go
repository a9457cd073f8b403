package standardize

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	parlayTypeRe = regexp.MustCompile(`(?i)\b(round[\s-]*robin|parlay|teaser)\b`)
	ticketRe     = regexp.MustCompile(`(?i)\b(?:ticket|bet\s*id|wager\s*id)\s*(?:#|no\.?|number|id)?\s*:?\s*#?\s*([A-Za-z0-9][\w-]*\d[\w-]*)`)
)

// parlayTypeOf returns "parlay", "round-robin" or "teaser" when s mentions one
func parlayTypeOf(s string) string {
	m := parlayTypeRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	kind := strings.ToLower(m[1])
	if strings.HasPrefix(kind, "round") {
		return "round-robin"
	}
	return kind
}

// ticket is one wager: a straight bet with one leg or a multi-leg ticket
type ticket struct {
	id         string
	parlayType string
	date       string
	time       string
	status     string
	stake      stake
	legs       []RawPick
}

func (t *ticket) multi() bool {
	return t.parlayType != ""
}

// legKey identifies a leg within a ticket
func legKey(ticketID string, leg RawPick) string {
	return strings.ToLower(strings.Join([]string{ticketID, leg.PickTeam, leg.Line, NormalizeSegment(leg.Segment)}, "|"))
}

// finish applies ticket-level fields to the legs. Multi-leg tickets drop legs
// already seen for the same ticket and divide the stake evenly across the
// distinct legs that remain.
func (t *ticket) finish(seen map[string]struct{}) []RawPick {
	if len(t.legs) == 0 {
		return nil
	}

	if !t.multi() {
		out := make([]RawPick, 0, len(t.legs))
		for _, leg := range t.legs {
			t.apply(&leg)
			if leg.Risk == "" && leg.Win == "" {
				leg.Risk, leg.Win, leg.RiskUnits = t.stake.Risk, t.stake.Win, t.stake.Units
			}
			out = append(out, leg)
		}
		return out
	}

	parlayID := t.id
	if parlayID == "" {
		parlayID = uuid.NewString()
	}

	distinct := make([]RawPick, 0, len(t.legs))
	for _, leg := range t.legs {
		key := legKey(parlayID, leg)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, leg)
	}

	n := int64(len(distinct))
	for i := range distinct {
		leg := &distinct[i]
		t.apply(leg)
		leg.IsParlay = true
		leg.ParlayID = parlayID
		leg.ParlayType = t.parlayType
		leg.Risk = splitAmount(t.stake.Risk, n)
		leg.Win = splitAmount(t.stake.Win, n)
		leg.RiskUnits = t.stake.Units
	}
	return distinct
}

func (t *ticket) apply(leg *RawPick) {
	leg.TicketID = t.id
	if leg.Date == "" {
		leg.Date = t.date
	}
	if leg.Time == "" {
		leg.Time = t.time
	}
	if leg.Status == "" {
		leg.Status = t.status
	}
}

// splitAmount divides a decimal amount n ways, rounded to cents
func splitAmount(amount string, n int64) string {
	if amount == "" || n <= 1 {
		return amount
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return ""
	}
	return d.Div(decimal.NewFromInt(n)).Round(2).String()
}
