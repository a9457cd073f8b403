package standardize

import (
	"regexp"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

var statusRe = regexp.MustCompile(`(?i)\b(won|winner|lost|loss|push|pushed|pending|open|void|voided|cancel(?:l)?ed|refunded)\b`)

// statusOf maps a settlement word to Won, Lost, Push, Pending or Void
func statusOf(word string) string {
	switch strings.ToLower(word) {
	case "won", "winner":
		return "Won"
	case "lost", "loss":
		return "Lost"
	case "push", "pushed":
		return "Push"
	case "pending", "open":
		return "Pending"
	}
	return "Void"
}

// HistoryParser reads pasted sportsbook bet history: tickets with dates,
// amounts and settlement status around the pick text
type HistoryParser struct {
	text *TextParser
}

// NewHistoryParser creates a bet-history parser on top of a text parser
func NewHistoryParser(text *TextParser) *HistoryParser {
	return &HistoryParser{text: text}
}

// Parse groups lines into tickets and returns their legs in input order.
// Without explicit ticket markers each pick line is its own straight bet.
func (h *HistoryParser) Parse(text string) []RawPick {
	var (
		ctx   lineContext
		cur   *ticket
		out   []RawPick
		seen  = map[string]struct{}{}
		today = h.text.now()
	)

	flush := func() {
		if cur != nil {
			out = append(out, cur.finish(seen)...)
		}
		cur = nil
	}
	open := func(id string) {
		flush()
		cur = &ticket{id: id, date: ctx.date}
	}

	for _, line := range strings.Split(normalizeInput(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var id string
		if m := ticketRe.FindStringSubmatchIndex(line); m != nil {
			id = line[m[2]:m[3]]
			line = line[:m[0]] + " " + line[m[1]:]
		}

		date, rest := extractDate(line, today)
		clock, rest := extractTime(rest)
		parlayType := parlayTypeOf(rest)
		rest = parlayTypeRe.ReplaceAllString(rest, " ")

		// "To Win" is an amount label, not a settlement
		money, rest := extractMoney(rest)
		status := ""
		if m := statusRe.FindStringSubmatchIndex(rest); m != nil {
			status = statusOf(rest[m[2]:m[3]])
			rest = rest[:m[0]] + " " + rest[m[1]:]
		}

		if date != "" {
			ctx.date = date
		}

		var pick *RawPick
		if strings.TrimSpace(rest) != "" {
			pick = h.text.parseLine(rest, &ctx)
		}

		if id != "" {
			open(id)
		}
		if parlayType != "" {
			if cur == nil || (!cur.multi() && len(cur.legs) > 0) {
				open("")
			}
			cur.parlayType = parlayType
		}
		if pick != nil && cur != nil && !cur.multi() && len(cur.legs) > 0 {
			flush()
		}
		if cur == nil && (pick != nil || !money.empty() || status != "") {
			open("")
		}
		if cur == nil {
			continue
		}

		if date != "" && cur.date == "" {
			cur.date = date
		}
		if clock != "" && cur.time == "" {
			cur.time = clock
		}
		if status != "" {
			cur.status = status
		}
		if cur.stake.Risk == "" && money.Risk != "" {
			cur.stake.Risk, cur.stake.Units = money.Risk, money.Units
		}
		if cur.stake.Win == "" && money.Win != "" {
			cur.stake.Win = money.Win
		}
		if pick != nil {
			pick.Source = models.FormatBetHistory
			cur.legs = append(cur.legs, *pick)
		}
	}
	flush()

	return out
}
