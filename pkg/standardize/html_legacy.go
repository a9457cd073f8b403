package standardize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

var (
	legacyTicketSelector = `[data-ticket], .ticket-number, .ticket-id, .ticket`
	legacyTypeSelector   = `.bet-type, .wager-type, .type`
	legacyDateSelector   = `[data-date], .date, .placed`
	legacyLeagueSelector = `[data-sport], .league, .sport`
	legacyTeamSelector   = `[data-team-name], .team-name, .team`
	legacyRiskSelector   = `[data-risk], .risk, .wager-amount, .amount-risk`
	legacyWinSelector    = `[data-win], .to-win, .win, .amount-win`
	legacyLegSelector    = `.wager-simple`
	legacyPickSelector   = `.choosen, .line-selected`
)

// ParseLegacyBetSlip extracts picks from older <tr>-based bet slips. Rows
// marked parlay, round robin or teaser expose one .wager-simple element per
// leg; the row's stake is split evenly over the distinct legs.
func (p *HTMLParser) ParseLegacyBetSlip(input string) []RawPick {
	input = normalizeInput(input)
	lower := strings.ToLower(input)
	if strings.Contains(lower, "<tr") && !strings.Contains(lower, "<table") {
		// bare rows are dropped by the HTML parser outside a table
		input = "<table>" + input + "</table>"
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		p.logger.Warn("failed to parse bet-slip markup", "error", err)
		return nil
	}

	var (
		picks []RawPick
		seen  = map[string]struct{}{}
	)
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		picks = append(picks, p.parseLegacyRow(i, row, seen)...)
	})
	return picks
}

func (p *HTMLParser) parseLegacyRow(idx int, row *goquery.Selection, seen map[string]struct{}) (picks []RawPick) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("skipping bet-slip row", "row", idx, "panic", r)
			picks = nil
		}
	}()

	// outer rows of nested tables are read through their inner rows
	if row.Find("tr").Length() > 0 {
		return nil
	}

	legs := row.Find(legacyLegSelector)
	selected := row.Find(legacyPickSelector)
	if legs.Length() == 0 && selected.Length() == 0 {
		return nil
	}

	rowText := collapse(row.Text())

	t := &ticket{id: legacyTicketID(row, rowText)}

	t.parlayType = parlayTypeOf(attrOr(row, "data-bet-type", "class") + " " + collapse(row.Find(legacyTypeSelector).First().Text()))
	if t.parlayType == "" {
		t.parlayType = parlayTypeOf(rowText)
	}
	if t.parlayType == "" && legs.Length() > 1 {
		t.parlayType = "parlay"
	}

	now := p.text.now()
	if d, _ := extractDate(collapse(row.Find(legacyDateSelector).First().Text()), now); d != "" {
		t.date = d
	} else {
		t.date, _ = extractDate(rowText, now)
	}

	t.stake.Risk = cellAmount(row.Find(legacyRiskSelector).First())
	t.stake.Win = cellAmount(row.Find(legacyWinSelector).First())
	if t.stake.empty() {
		money, _ := extractMoney(rowText)
		// amounts printed on a slip are currency, not unit shorthand
		t.stake = stake{Risk: money.Risk, Win: money.Win}
	}

	var ctx lineContext
	if league := collapse(row.Find(legacyLeagueSelector).First().Text()); league != "" {
		if code, ok := p.resolver.Sport(league); ok {
			ctx.sport = code
		}
	}
	ctx.date = t.date
	team := collapse(row.Find(legacyTeamSelector).First().Text())

	nodes := selected
	if t.multi() && legs.Length() > 0 || selected.Length() == 0 {
		nodes = legs
	}

	nodes.Each(func(_ int, leg *goquery.Selection) {
		text := collapse(leg.Text())
		pick := p.text.parseLine(text, &ctx)
		if pick == nil && team != "" {
			// the selected cell often carries only the line and price
			pick = p.text.parseLine(team+" "+text, &ctx)
		}
		if pick == nil {
			return
		}
		pick.Source = models.FormatLegacyHTML
		t.legs = append(t.legs, *pick)
	})

	return t.finish(seen)
}

func legacyTicketID(row *goquery.Selection, rowText string) string {
	if id := attrOr(row, "data-ticket", "data-ticket-id"); id != "" {
		return id
	}

	cell := row.Find(legacyTicketSelector).First()
	if id := attrOr(cell, "data-ticket"); id != "" {
		return id
	}
	if text := collapse(cell.Text()); text != "" {
		if m := ticketRe.FindStringSubmatch(text); m != nil {
			return m[1]
		}
		if n := strings.TrimLeft(strings.TrimSpace(text), "#"); n != "" && !strings.Contains(n, " ") {
			return n
		}
	}

	if m := ticketRe.FindStringSubmatch(rowText); m != nil {
		return m[1]
	}
	return ""
}

// cellAmount reads a currency amount from a cell's data attribute or text
func cellAmount(cell *goquery.Selection) string {
	if cell.Length() == 0 {
		return ""
	}
	if v := attrOr(cell, "data-risk", "data-win", "data-amount"); v != "" {
		return cleanAmount(strings.TrimPrefix(v, "$"))
	}
	text := strings.ReplaceAll(collapse(cell.Text()), ",", "")
	return strings.TrimLeft(numberRe.FindString(text), "+")
}
