package usecase

import (
	"fmt"
	"strings"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
)

// consistencyWarnings runs the post-resolution checks over an assembled
// snapshot. Findings ship inside the snapshot and are logged; they never
// abort a run.
func consistencyWarnings(snap *snapshot.Snapshot) []snapshot.Warning {
	var warnings []snapshot.Warning

	for _, entry := range snap.MedalTable {
		if entry.Gold+entry.Silver+entry.Bronze == entry.Total {
			continue
		}
		warnings = append(warnings, snapshot.Warning{
			Category: snapshot.CategoryMedals,
			Check:    "medal_sum",
			Detail:   fmt.Sprintf("%s: %d+%d+%d does not equal total %d", entry.Country, entry.Gold, entry.Silver, entry.Bronze, entry.Total),
		})
	}

	if entry, ok := tableEntryByCode(snap.MedalTable, snap.Breakdown.Code); ok {
		if !snap.Breakdown.Matches(entry) {
			warnings = append(warnings, snapshot.Warning{
				Category: snapshot.CategoryBreakdown,
				Check:    "table_mismatch",
				Detail: fmt.Sprintf("breakdown %d/%d/%d vs table %d/%d/%d for %s",
					snap.Breakdown.Gold, snap.Breakdown.Silver, snap.Breakdown.Bronze,
					entry.Gold, entry.Silver, entry.Bronze, entry.Code),
			})
		}
	} else if snap.Breakdown.Total > 0 {
		warnings = append(warnings, snapshot.Warning{
			Category: snapshot.CategoryBreakdown,
			Check:    "missing_table_line",
			Detail:   fmt.Sprintf("%s holds %d medals but has no medal table line", snap.Breakdown.Code, snap.Breakdown.Total),
		})
	}

	if n := placeholderMedalists(snap.LatestResults); n > 0 {
		warnings = append(warnings, snapshot.Warning{
			Category: snapshot.CategoryResults,
			Check:    "placeholder_medalists",
			Detail:   fmt.Sprintf("%d medalist cells still carry placeholder text", n),
		})
	}

	for _, group := range displayTextGroups(snap) {
		first, n := separatorArtifacts(group.texts)
		if n == 0 {
			continue
		}
		warnings = append(warnings, snapshot.Warning{
			Category: group.category,
			Check:    "separator_artifacts",
			Detail:   fmt.Sprintf("%d fields carry raw separators, first %q", n, first),
		})
	}

	if len(snap.TodaySchedule.Events) == 0 {
		warnings = append(warnings, snapshot.Warning{
			Category: snapshot.CategorySchedule,
			Check:    "empty_day",
			Detail:   fmt.Sprintf("day %d rendered without sessions", snap.TodaySchedule.Day),
		})
	}
	if winnerEventCount(snap.LatestResults) == 0 {
		warnings = append(warnings, snapshot.Warning{
			Category: snapshot.CategoryResults,
			Check:    "empty",
			Detail:   "no winner events in the results feed",
		})
	}

	return warnings
}

func tableEntryByCode(entries []medals.TableEntry, code string) (medals.TableEntry, bool) {
	for _, entry := range entries {
		if entry.Code == code {
			return entry, true
		}
	}
	return medals.TableEntry{}, false
}

// placeholderMedalists counts tiers that carry a placeholder token such as
// "TBD". Blank tiers are legitimate partial results and are not counted.
func placeholderMedalists(days []results.DayResults) int {
	n := 0
	for _, day := range days {
		for _, event := range day.Events {
			for _, text := range []string{event.Gold, event.Silver, event.Bronze} {
				if strings.TrimSpace(text) == "" {
					continue
				}
				if results.IsPlaceholder(text) {
					n++
				}
			}
		}
	}
	return n
}

func winnerEventCount(days []results.DayResults) int {
	n := 0
	for _, day := range days {
		n += len(day.Events)
	}
	return n
}

type textGroup struct {
	category string
	texts    []string
}

// displayTextGroups gathers every user-facing string per category, in a
// fixed order so repeated runs emit identical warning lists.
func displayTextGroups(snap *snapshot.Snapshot) []textGroup {
	var medalTexts []string
	for _, entry := range snap.MedalTable {
		medalTexts = append(medalTexts, entry.Country)
	}

	var resultTexts []string
	for _, day := range snap.LatestResults {
		for _, event := range day.Events {
			resultTexts = append(resultTexts, event.Event, event.Gold, event.Silver, event.Bronze)
		}
	}

	var scheduleTexts []string
	for _, event := range snap.TodaySchedule.Events {
		scheduleTexts = append(scheduleTexts, event.Sport, event.Name, event.Result)
	}
	for _, day := range snap.Upcoming {
		for _, event := range day.Events {
			scheduleTexts = append(scheduleTexts, event.Sport, event.Name, event.Result)
		}
	}

	var headlineTexts []string
	for _, h := range snap.Headlines {
		headlineTexts = append(headlineTexts, h.Title, h.Source)
	}

	var videoTexts []string
	for _, v := range snap.Videos {
		videoTexts = append(videoTexts, v.Title, v.Source)
	}

	var athleteTexts []string
	for _, a := range snap.Athletes {
		athleteTexts = append(athleteTexts, a.Name, a.Bio)
	}

	return []textGroup{
		{snapshot.CategoryMedals, medalTexts},
		{snapshot.CategoryResults, resultTexts},
		{snapshot.CategorySchedule, scheduleTexts},
		{snapshot.CategoryHeadlines, headlineTexts},
		{snapshot.CategoryVideos, videoTexts},
		{snapshot.CategoryAthletes, athleteTexts},
	}
}

// separatorArtifacts reports how many texts still carry raw markup or
// newline separators that the extractors should have normalized away.
func separatorArtifacts(texts []string) (string, int) {
	first, n := "", 0
	for _, text := range texts {
		if !strings.Contains(text, "\n") && !strings.Contains(strings.ToLower(text), "<br") {
			continue
		}
		if n == 0 {
			first = text
		}
		n++
	}
	return first, n
}
