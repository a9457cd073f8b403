package models

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PickType is the canonical bet type of a pick
type PickType string

const (
	PickTypeSpread    PickType = "spread"
	PickTypeMoneyline PickType = "moneyline"
	PickTypeTotal     PickType = "total"
	PickTypeTeamTotal PickType = "team-total"
)

// Direction is the side of a total or team total
type Direction string

const (
	DirectionOver  Direction = "Over"
	DirectionUnder Direction = "Under"
	DirectionNone  Direction = ""
)

// Segment labels
const (
	SegmentFullGame = "Full Game"
	Segment1stHalf  = "1st Half"
	Segment2ndHalf  = "2nd Half"
)

// Pick is one canonical, normalized bet record
type Pick struct {
	Sport         string    `json:"sport"`
	League        string    `json:"league,omitempty"` // conference / league label when the source shows one
	PickType      PickType  `json:"pickType"`
	PickTeam      string    `json:"pickTeam"`
	PickDirection Direction `json:"pickDirection"`
	Line          string    `json:"line"`
	Odds          string    `json:"odds"`
	Segment       string    `json:"segment"`

	AwayTeam string `json:"awayTeam"`
	HomeTeam string `json:"homeTeam"`

	Risk decimal.Decimal `json:"risk"`
	Win  decimal.Decimal `json:"win"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status,omitempty"` // Won, Lost, Push, Pending (bet history only)

	TicketID   string `json:"ticketId,omitempty"`
	IsParlay   bool   `json:"isParlay,omitempty"`
	ParlayID   string `json:"parlayId,omitempty"`
	ParlayType string `json:"parlayType,omitempty"` // parlay, round-robin, teaser

	Source FormatKind `json:"source,omitempty"`
}

// Valid reports whether the pick satisfies the canonical record invariant:
// a team (or direction for totals), a type, and a line unless it is a moneyline
func (p Pick) Valid() bool {
	if p.PickType == "" {
		return false
	}

	switch p.PickType {
	case PickTypeSpread, PickTypeMoneyline, PickTypeTotal, PickTypeTeamTotal:
	default:
		return false
	}

	if p.PickType == PickTypeTotal {
		if p.PickTeam == "" && p.PickDirection == DirectionNone {
			return false
		}
	} else if p.PickTeam == "" {
		return false
	}

	if p.PickType == PickTypeTeamTotal && p.PickDirection == DirectionNone {
		return false
	}

	if p.PickType != PickTypeMoneyline && p.Line == "" {
		return false
	}

	return true
}

// IsTotal reports whether the pick is a game total or team total
func (p Pick) IsTotal() bool {
	return p.PickType == PickTypeTotal || p.PickType == PickTypeTeamTotal
}

// IdentityKey returns a stable hash over the identity fields of a pick
// Key format: pick:{sport}:{hash}
func (p Pick) IdentityKey() string {
	parts := []string{
		strings.ToUpper(p.Sport),
		p.AwayTeam,
		p.HomeTeam,
		p.PickTeam,
		p.Line,
		p.Odds,
		p.Segment,
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("pick:%s:%x", strings.ToLower(p.Sport), hash[:12])
}

// Display renders the pick the way the dashboard shows it, e.g. "Lakers -3.5 (-110)",
// "Under 220 (-110)", "Lakers Over 110.5 (-115)" or "Bills ML (+120)"
func (p Pick) Display() string {
	var b strings.Builder

	switch p.PickType {
	case PickTypeTotal:
		b.WriteString(string(p.PickDirection))
		b.WriteString(" ")
		b.WriteString(p.Line)
	case PickTypeTeamTotal:
		b.WriteString(p.PickTeam)
		b.WriteString(" ")
		b.WriteString(string(p.PickDirection))
		b.WriteString(" ")
		b.WriteString(p.Line)
	case PickTypeMoneyline:
		b.WriteString(p.PickTeam)
		b.WriteString(" ML")
	default:
		b.WriteString(p.PickTeam)
		b.WriteString(" ")
		b.WriteString(p.Line)
	}

	if p.Odds != "" {
		b.WriteString(" (")
		b.WriteString(p.Odds)
		b.WriteString(")")
	}

	return b.String()
}

// Summary renders the pipe-delimited form "Away vs Home | Segment | Display"
func (p Pick) Summary() string {
	segment := p.Segment
	if segment == "" {
		segment = SegmentFullGame
	}

	if p.AwayTeam == "" && p.HomeTeam == "" {
		return segment + " | " + p.Display()
	}

	return fmt.Sprintf("%s vs %s | %s | %s", p.AwayTeam, p.HomeTeam, segment, p.Display())
}
