package wikipedia

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/net/html"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
)

var footnoteRegex = regexp.MustCompile(`\[[^\]]*\]`)

// artifacts are cells that carry layout noise rather than data, like the
// host-nation marker or an em-dash placeholder.
var artifacts = map[string]bool{
	"*": true, "‡": true, "†": true, "—": true, "–": true, "-": true,
}

// FetchMedalTable extracts the per-nation standings from the medal table
// page. The result is re-sorted and re-ranked locally so a stale or
// mid-edit revision of the page cannot leak inconsistent ranks downstream.
func (c *Client) FetchMedalTable(ctx context.Context) ([]medals.TableEntry, error) {
	markup, err := c.page(ctx, standingsPage)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch medal table page")
	}

	entries, skipped, err := extractMedalTable(markup, c.countries)
	if err != nil {
		return nil, err
	}
	for _, row := range skipped {
		c.logger.WarnContext(ctx, "medal table row skipped", "row", row)
	}
	c.logger.InfoContext(ctx, "medal table extracted", "countries", len(entries))
	return entries, nil
}

// extractMedalTable is a pure function of the markup. Among all tables in
// the page it picks the one with the most qualifying standings rows, which
// reliably separates the medal table from navboxes and legend tables.
func extractMedalTable(markup string, countries *country.Table) ([]medals.TableEntry, []string, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, nil, crerr.Wrap(err, "parse medal table markup")
	}

	tables := collectTables(doc)
	if len(tables) == 0 {
		return nil, nil, ErrMissingTable
	}

	var best []medals.TableEntry
	var bestSkipped []string
	for _, table := range tables {
		entries, skipped := standingsFromTable(table, countries)
		if len(entries) > len(best) {
			best, bestSkipped = entries, skipped
		}
	}
	if len(best) == 0 {
		return nil, nil, ErrEmptySource
	}

	medals.SortAndRank(best)
	return best, bestSkipped, nil
}

// standingsFromTable collects the qualifying rows of one table. A row
// qualifies with at least one name token and at least four numeric cells;
// the last four numerics are gold, silver, bronze and total, which makes
// the parse independent of whether a rank column is present.
func standingsFromTable(table *html.Node, countries *country.Table) ([]medals.TableEntry, []string) {
	var entries []medals.TableEntry
	var skipped []string

	for _, row := range tableRows(table) {
		cells := rowCells(row)
		if len(cells) == 0 || allHeaderCells(cells) {
			continue
		}

		var name string
		var nums []int
		totalsRow := false
		for _, cell := range cells {
			text := cleanInline(cellText(cell))
			if text == "" || artifacts[text] {
				continue
			}
			if isNumeric(text) {
				v, convErr := strconv.Atoi(text)
				if convErr == nil {
					nums = append(nums, v)
				}
				continue
			}
			if utf8.RuneCountInString(text) <= 2 {
				continue
			}
			first := strings.ToLower(strings.Fields(text)[0])
			if first == "total" || first == "totals" {
				totalsRow = true
				break
			}
			if name == "" {
				name = text
			}
		}
		if totalsRow || name == "" {
			continue
		}
		if len(nums) < 4 {
			skipped = append(skipped, fmt.Sprintf("%s: %d numeric cells", name, len(nums)))
			continue
		}

		tail := nums[len(nums)-4:]
		clean := normalizeCountryName(name)
		entries = append(entries, medals.TableEntry{
			Country: clean,
			Code:    countries.CodeFor(clean),
			Flag:    countries.FlagFor(clean),
			Gold:    tail[0],
			Silver:  tail[1],
			Bronze:  tail[2],
			Total:   tail[3],
		})
	}
	return entries, skipped
}

func cleanInline(s string) string {
	s = footnoteRegex.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeCountryName strips the host and annotation markers the page
// appends to some nations, such as "Italy*".
func normalizeCountryName(name string) string {
	name = strings.TrimRight(name, "*‡† ")
	return strings.TrimSpace(name)
}
