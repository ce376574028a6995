package wikipedia

import (
	"context"
	"regexp"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/net/html"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
)

var embeddedCodeRegex = regexp.MustCompile(`\(([A-Z]{3})\)`)

// nonSportSections are the boilerplate page sections that end the sport
// scope. Any table under them is navigation, not results.
var nonSportSections = map[string]bool{
	"references":     true,
	"see also":       true,
	"notes":          true,
	"external links": true,
	"contents":       true,
}

// FetchMedalWinners extracts one entry per decided event from the medal
// winners page, ordered as the page lists them.
func (c *Client) FetchMedalWinners(ctx context.Context) ([]results.WinnerEvent, error) {
	markup, err := c.page(ctx, winnersPage)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch medal winners page")
	}

	events, err := extractMedalWinners(markup, c.countries)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "medal winners extracted", "events", len(events))
	return events, nil
}

// extractMedalWinners walks the page as a flat sequence of h2, h3 and table
// nodes. Only h2 headings change the current sport; h3 sub-headings keep it,
// so "Biathlon > Men's events" tables still land under Biathlon. Every
// heading claims at most one table and a claimed table is never parsed
// twice, which keeps a sub-heading that shares its parent's table from
// duplicating events.
func extractMedalWinners(markup string, countries *country.Table) ([]results.WinnerEvent, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, crerr.Wrap(err, "parse medal winners markup")
	}

	seq := collectSequence(doc, "h2", "h3", "table")
	consumed := make(map[*html.Node]bool)
	seen := make(map[string]bool)
	var events []results.WinnerEvent

	sport := ""
	for i, node := range seq {
		switch {
		case isElement(node, "h2"):
			title := headingText(node)
			if title == "" || nonSportSections[strings.ToLower(title)] {
				sport = ""
				continue
			}
			sport = title
		case isElement(node, "h3"):
			// sport carries over from the enclosing h2
		default:
			continue
		}
		if sport == "" {
			continue
		}

		table := nextResultsTable(seq, i+1, consumed)
		if table == nil {
			continue
		}
		consumed[table] = true
		events = append(events, winnerEventsFromTable(table, sport, countries, seen)...)
	}

	if len(events) == 0 {
		return nil, ErrEmptySource
	}
	return events, nil
}

// nextResultsTable finds the first unclaimed results-style table after the
// heading, stopping at the next h2 so a sport with no table yet cannot
// steal one from the following section.
func nextResultsTable(seq []*html.Node, from int, consumed map[*html.Node]bool) *html.Node {
	for i := from; i < len(seq); i++ {
		node := seq[i]
		if isElement(node, "h2") {
			return nil
		}
		if isElement(node, "table") && !consumed[node] && isResultsTable(node) {
			return node
		}
	}
	return nil
}

// isResultsTable separates event results from infoboxes and legends, which
// never reach four columns.
func isResultsTable(table *html.Node) bool {
	for _, row := range tableRows(table) {
		if len(rowCells(row)) >= 4 {
			return true
		}
	}
	return false
}

func winnerEventsFromTable(table *html.Node, sport string, countries *country.Table, seen map[string]bool) []results.WinnerEvent {
	var events []results.WinnerEvent
	for _, row := range tableRows(table) {
		cells := rowCells(row)
		if len(cells) < 4 || allHeaderCells(cells) {
			continue
		}

		event := cleanEventName(cellText(cells[0]))
		if event == "" {
			continue
		}

		w := results.WinnerEvent{
			Sport:  sport,
			Event:  event,
			Gold:   medalistFromCell(cells[1], countries),
			Silver: medalistFromCell(cells[2], countries),
			Bronze: medalistFromCell(cells[3], countries),
		}
		if !w.HasAnyMedalist() || seen[w.Key()] {
			continue
		}
		seen[w.Key()] = true
		events = append(events, w)
	}
	return events
}

// medalistFromCell flattens one medalist cell into display text. Line
// breaks split the cell into segments; segments naming a country resolve
// the code, everything else is an athlete-name fragment. Team events where
// the cell only names the nation come out as the bare code.
func medalistFromCell(cell *html.Node, countries *country.Table) string {
	code := ""
	var athletes []string

	for _, segment := range strings.Split(cellText(cell), "\n") {
		segment = cleanInline(segment)
		if segment == "" || artifacts[segment] {
			continue
		}

		if m := embeddedCodeRegex.FindStringSubmatch(segment); m != nil {
			if code == "" {
				code = m[1]
			}
			segment = cleanInline(strings.Replace(segment, m[0], " ", 1))
			if segment == "" {
				continue
			}
		}

		if ref, ok := countries.MatchSegment(segment); ok {
			if code == "" {
				code = ref.Code
			}
			continue
		}
		athletes = append(athletes, segment)
	}

	switch {
	case len(athletes) > 0 && code != "":
		return strings.Join(athletes, ", ") + " (" + code + ")"
	case len(athletes) > 0:
		return strings.Join(athletes, ", ")
	default:
		return code
	}
}

// cleanEventName drops the "details" link suffix the winners tables append
// to each event cell.
func cleanEventName(raw string) string {
	name := cleanInline(raw)
	if lower := strings.ToLower(name); strings.HasSuffix(lower, "details") {
		name = strings.TrimSpace(name[:len(name)-len("details")])
	}
	return name
}
