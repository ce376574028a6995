package games

import "time"

// Milano Cortina 2026 competition window. All day arithmetic is done in the
// display zone so "today" matches what the dashboard shows.
const (
	TotalDays   = 17
	TotalEvents = 116
)

var (
	// SourceZone is the fixed offset the scraped schedules publish in;
	// DisplayZone is the fixed offset the dashboard renders in. Neither
	// tracks daylight saving.
	SourceZone  = time.FixedZone("CET", 1*60*60)
	DisplayZone = time.FixedZone("MST", -7*60*60)

	Start = time.Date(2026, 2, 6, 0, 0, 0, 0, DisplayZone)
	End   = time.Date(2026, 2, 22, 23, 59, 59, 0, DisplayZone)
)

// ToDisplay converts a source-zone instant to the display zone. Between the
// two fixed offsets this is the constant 8-hour shift: 14:00 CET is
// 06:00 MST on any date.
func ToDisplay(t time.Time) time.Time {
	return t.In(DisplayZone)
}

// DayIndex returns the 1-based competition day for now, clamped to the
// games window.
func DayIndex(now time.Time) int {
	local := now.In(DisplayZone)
	if local.Before(Start) {
		return 1
	}
	day := int(local.Sub(Start).Hours()/24) + 1
	if day > TotalDays {
		return TotalDays
	}
	return day
}

// DayDate returns the calendar date (midnight, display zone) of a 1-based
// competition day.
func DayDate(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if day > TotalDays {
		day = TotalDays
	}
	return Start.AddDate(0, 0, day-1)
}

// DaysRemaining counts the full days left after the given competition day.
func DaysRemaining(day int) int {
	remaining := TotalDays - day
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SameDisplayDay reports whether two instants fall on the same calendar day
// in the display zone.
func SameDisplayDay(a, b time.Time) bool {
	ay, am, ad := a.In(DisplayZone).Date()
	by, bm, bd := b.In(DisplayZone).Date()
	return ay == by && am == bm && ad == bd
}
