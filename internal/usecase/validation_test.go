package usecase

import (
	"testing"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
)

func consistentSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		MedalTable: []medals.TableEntry{
			{Rank: 1, Country: "Norway", Code: "NOR", Gold: 9, Silver: 6, Bronze: 4, Total: 19},
			{Rank: 2, Country: "United States", Code: "USA", Gold: 7, Silver: 11, Bronze: 6, Total: 24},
		},
		Breakdown: medals.Breakdown{
			Country: "United States", Code: "USA",
			Gold: 7, Silver: 11, Bronze: 6, Total: 24,
		},
		LatestResults: []results.DayResults{
			{Day: 9, DateLabel: "Feb 14", Events: []results.WinnerEvent{
				{Sport: "Biathlon", Event: "Women's sprint", Gold: "Tandrevold (NOR)", Silver: "Jeanmonnot (FRA)", Bronze: "Öberg (SWE)"},
			}},
		},
		TodaySchedule: schedule.Day{Day: 9, Events: []schedule.Event{
			{Sport: "Curling", Name: "Round robin", Status: schedule.StatusLive},
		}},
	}
}

func warningChecks(warnings []snapshot.Warning) map[string]int {
	checks := make(map[string]int, len(warnings))
	for _, w := range warnings {
		checks[w.Check]++
	}
	return checks
}

func TestConsistencyWarnings_CleanSnapshot(t *testing.T) {
	t.Parallel()

	if warnings := consistencyWarnings(consistentSnapshot()); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", warnings)
	}
}

func TestConsistencyWarnings_MedalArithmetic(t *testing.T) {
	t.Parallel()

	snap := consistentSnapshot()
	snap.MedalTable[0].Total = 18

	warnings := consistencyWarnings(snap)
	if warningChecks(warnings)["medal_sum"] != 1 {
		t.Fatalf("expected one medal_sum warning, got %+v", warnings)
	}
}

func TestConsistencyWarnings_BreakdownMismatch(t *testing.T) {
	t.Parallel()

	snap := consistentSnapshot()
	snap.Breakdown.Silver = 12

	warnings := consistencyWarnings(snap)
	if warningChecks(warnings)["table_mismatch"] != 1 {
		t.Fatalf("expected a table_mismatch warning, got %+v", warnings)
	}

	snap = consistentSnapshot()
	snap.Breakdown.Code = "CAN"
	warnings = consistencyWarnings(snap)
	if warningChecks(warnings)["missing_table_line"] != 1 {
		t.Fatalf("expected a missing_table_line warning, got %+v", warnings)
	}
}

func TestConsistencyWarnings_PlaceholdersAndBlanks(t *testing.T) {
	t.Parallel()

	snap := consistentSnapshot()
	snap.LatestResults[0].Events[0].Silver = "TBD"
	snap.LatestResults[0].Events[0].Bronze = "" // blank is a partial result, not a placeholder

	warnings := consistencyWarnings(snap)
	found := false
	for _, w := range warnings {
		if w.Check == "placeholder_medalists" {
			found = true
			if w.Detail != "1 medalist cells still carry placeholder text" {
				t.Fatalf("blank tier must not count as placeholder: %q", w.Detail)
			}
		}
	}
	if !found {
		t.Fatalf("expected a placeholder_medalists warning, got %+v", warnings)
	}
}

func TestConsistencyWarnings_SeparatorArtifacts(t *testing.T) {
	t.Parallel()

	snap := consistentSnapshot()
	snap.LatestResults[0].Events[0].Gold = "Tandrevold<br>Norway"
	snap.TodaySchedule.Events[0].Name = "Round\nrobin"

	checks := warningChecks(consistencyWarnings(snap))
	if checks["separator_artifacts"] != 2 {
		t.Fatalf("expected separate warnings for results and schedule texts, got %+v", checks)
	}
}

func TestConsistencyWarnings_EmptyCategories(t *testing.T) {
	t.Parallel()

	snap := consistentSnapshot()
	snap.TodaySchedule.Events = nil
	snap.LatestResults = []results.DayResults{{Day: 9, DateLabel: "Feb 14"}}

	checks := warningChecks(consistencyWarnings(snap))
	if checks["empty_day"] != 1 || checks["empty"] != 1 {
		t.Fatalf("expected empty_day and empty warnings, got %+v", checks)
	}
}
