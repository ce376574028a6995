package staticdata

import (
	"testing"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
)

func TestSeedMedalTableSumsAndSize(t *testing.T) {
	t.Parallel()

	table := SeedMedalTable()
	if len(table) < 10 {
		t.Fatalf("seed table has %d countries, the table quality bar needs 10", len(table))
	}
	for _, entry := range table {
		if entry.Gold+entry.Silver+entry.Bronze != entry.Total {
			t.Errorf("%s: %d+%d+%d != %d", entry.Code, entry.Gold, entry.Silver, entry.Bronze, entry.Total)
		}
	}
	for i, entry := range table {
		if i == 0 && entry.Rank != 1 {
			t.Fatalf("first rank = %d, want 1", entry.Rank)
		}
		if i > 0 && entry.Rank < table[i-1].Rank {
			t.Errorf("rank order broken at %s: %d after %d", entry.Code, entry.Rank, table[i-1].Rank)
		}
	}
}

func TestSeedBreakdownAgreesWithTable(t *testing.T) {
	t.Parallel()

	breakdown := SeedBreakdown()
	var gold, silver, bronze int
	for _, tally := range breakdown.Sports {
		gold += tally.Gold
		silver += tally.Silver
		bronze += tally.Bronze
	}
	if gold != breakdown.Gold || silver != breakdown.Silver || bronze != breakdown.Bronze {
		t.Fatalf("sport tallies sum to %d/%d/%d, header says %d/%d/%d",
			gold, silver, bronze, breakdown.Gold, breakdown.Silver, breakdown.Bronze)
	}
	if breakdown.Gold+breakdown.Silver+breakdown.Bronze != breakdown.Total {
		t.Fatalf("total %d does not match %d/%d/%d", breakdown.Total, breakdown.Gold, breakdown.Silver, breakdown.Bronze)
	}

	for _, entry := range SeedMedalTable() {
		if entry.Code != breakdown.Code {
			continue
		}
		if !breakdown.Matches(entry) {
			t.Fatalf("breakdown %d/%d/%d disagrees with table line %d/%d/%d, offline snapshots would warn",
				breakdown.Gold, breakdown.Silver, breakdown.Bronze, entry.Gold, entry.Silver, entry.Bronze)
		}
		return
	}
	t.Fatalf("table has no %s line", breakdown.Code)
}

func TestSeedCalendarCoversEveryDay(t *testing.T) {
	t.Parallel()

	calendar := SeedCalendar()
	medalSessions := 0
	for day := 1; day <= games.TotalDays; day++ {
		rows := calendar.ForDay(day)
		if len(rows) == 0 {
			t.Fatalf("day %d has no planned sessions", day)
		}
		for _, row := range rows {
			if got := games.DayIndex(row.Start); got != day {
				t.Errorf("day %d: %s %q starts %s which maps to day %d",
					day, row.Sport, row.Event, row.Start, got)
			}
			if row.Medal {
				medalSessions++
			}
		}
	}
	if medalSessions == 0 {
		t.Fatal("calendar carries no medal sessions")
	}
}

func TestSeedContentMeetsQualityBars(t *testing.T) {
	t.Parallel()

	if got := len(SeedHeadlines()); got < 3 {
		t.Errorf("headlines = %d, bar is 3", got)
	}
	ids := make(map[string]bool)
	for _, video := range SeedVideos() {
		ids[video.ID] = true
	}
	if len(ids) < 4 {
		t.Errorf("unique video ids = %d, bar is 4", len(ids))
	}
	if got := len(SeedAthletes()); got < 3 {
		t.Errorf("athlete spotlights = %d, bar is 3", got)
	}

	for _, w := range SeedWinners() {
		for _, medalist := range []string{w.Gold, w.Silver, w.Bronze} {
			if results.IsPlaceholder(medalist) {
				t.Errorf("%s %q ships placeholder medalist %q", w.Sport, w.Event, medalist)
			}
		}
	}

	days := SeedLatestResults()
	for i := 1; i < len(days); i++ {
		if days[i].Day >= days[i-1].Day {
			t.Fatalf("latest results not newest first: day %d before day %d", days[i-1].Day, days[i].Day)
		}
	}
}
