package wikipedia

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
)

const standingsMarkup = `
<div class="navbox"><table>
<tr><td>2026 Winter Olympics</td><td>Medal table</td></tr>
</table></div>
<table class="wikitable">
<tr><th>Rank</th><th>Nation</th><th>Gold</th><th>Silver</th><th>Bronze</th><th>Total</th></tr>
<tr><td>1</td><td><img src="no.svg"/>&#160;Norway<sup>[a]</sup></td><td>7</td><td>5</td><td>4</td><td>16</td></tr>
<tr><td>2</td><td>Italy*</td><td>7</td><td>4</td><td>4</td><td>15</td></tr>
<tr><td>3</td><td>United&#160;States[b]</td><td>6</td><td>7</td><td>5</td><td>18</td></tr>
<tr><td>4</td><td>Germany</td><td>3</td><td>2</td></tr>
<tr><th colspan="2">Totals (3 entries)</th><th>20</th><th>16</th><th>13</th><th>49</th></tr>
</table>`

func TestExtractMedalTable_ParsesStandings(t *testing.T) {
	t.Parallel()

	entries, skipped, err := extractMedalTable(standingsMarkup, country.NewDefaultTable())
	if err != nil {
		t.Fatalf("extractMedalTable: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}

	first := entries[0]
	if first.Country != "Norway" || first.Code != "NOR" {
		t.Fatalf("unexpected leader: %+v", first)
	}
	if first.Rank != 1 || first.Gold != 7 || first.Silver != 5 || first.Bronze != 4 || first.Total != 16 {
		t.Fatalf("unexpected leader counts: %+v", first)
	}

	if entries[1].Country != "Italy" {
		t.Fatalf("host marker not stripped: %q", entries[1].Country)
	}
	if entries[2].Country != "United States" || entries[2].Code != "USA" {
		t.Fatalf("nbsp or footnote not normalized: %+v", entries[2])
	}

	if len(skipped) != 1 || !strings.Contains(skipped[0], "Germany") {
		t.Fatalf("expected the short Germany row to be reported, got %v", skipped)
	}
}

func TestExtractMedalTable_ResortsAndDenseRanks(t *testing.T) {
	t.Parallel()

	// Rows arrive in page order with a stale ranking. Austria and Canada
	// tie on every count and must share a rank, Sweden follows directly.
	markup := `
<table>
<tr><td>1</td><td>Sweden</td><td>4</td><td>9</td><td>9</td><td>22</td></tr>
<tr><td>2</td><td>Canada</td><td>5</td><td>2</td><td>1</td><td>8</td></tr>
<tr><td>3</td><td>Austria</td><td>5</td><td>2</td><td>1</td><td>8</td></tr>
</table>`

	entries, _, err := extractMedalTable(markup, country.NewDefaultTable())
	if err != nil {
		t.Fatalf("extractMedalTable: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Country != "Canada" || entries[1].Country != "Austria" || entries[2].Country != "Sweden" {
		t.Fatalf("unexpected order: %q %q %q", entries[0].Country, entries[1].Country, entries[2].Country)
	}
	if entries[0].Rank != 1 || entries[1].Rank != 1 || entries[2].Rank != 2 {
		t.Fatalf("unexpected ranks: %d %d %d", entries[0].Rank, entries[1].Rank, entries[2].Rank)
	}
}

func TestExtractMedalTable_PicksTableWithMostQualifyingRows(t *testing.T) {
	t.Parallel()

	markup := `
<table>
<tr><td>Legend</td><td>9</td><td>9</td><td>9</td><td>27</td></tr>
</table>
<table>
<tr><td>Norway</td><td>2</td><td>1</td><td>0</td><td>3</td></tr>
<tr><td>Finland</td><td>1</td><td>1</td><td>0</td><td>2</td></tr>
</table>`

	entries, _, err := extractMedalTable(markup, country.NewDefaultTable())
	if err != nil {
		t.Fatalf("extractMedalTable: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the two-row table to win, got %d entries", len(entries))
	}
}

func TestExtractMedalTable_Failures(t *testing.T) {
	t.Parallel()

	_, _, err := extractMedalTable(`<p>article stub with no tables</p>`, country.NewDefaultTable())
	if !stderrors.Is(err, ErrMissingTable) {
		t.Fatalf("expected ErrMissingTable, got %v", err)
	}

	_, _, err = extractMedalTable(`<table><tr><td>see below</td></tr></table>`, country.NewDefaultTable())
	if !stderrors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}
