package schedule

import (
	"sort"
	"time"
)

const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusDone     = "done"
)

// ClockLabel is the display format for event start times ("6:00 AM").
const ClockLabel = "3:04 PM"

// ScrapedRow is one row lifted from a discipline schedule page, still in
// the source zone.
type ScrapedRow struct {
	Sport string
	Event string
	Start time.Time
	Medal bool
}

// Event is one slot of a built day: display-zone times, inferred status,
// and the overlaid result line when a winner matched.
type Event struct {
	TimeLabel string    `json:"time_mst"`
	Sport     string    `json:"sport"`
	Name      string    `json:"event"`
	Medal     bool      `json:"is_medal"`
	Status    string    `json:"status"`
	Result    string    `json:"result,omitempty"`
	ISO       string    `json:"iso_date,omitempty"`
	StartsAt  time.Time `json:"-"`
}

// Day is one calendar day of the competition window, today or projected.
type Day struct {
	Day        int     `json:"day_num"`
	DateLabel  string  `json:"date"`
	Weekday    string  `json:"day_of_week"`
	MedalCount int     `json:"medal_count"`
	Events     []Event `json:"events"`
}

// SortEvents orders a day's slots ascending by display start time, name as
// tiebreaker.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].StartsAt.Before(events[j].StartsAt)
		}
		return events[i].Name < events[j].Name
	})
}

// CountMedalEvents tallies the slots that award medals.
func CountMedalEvents(events []Event) int {
	n := 0
	for _, e := range events {
		if e.Medal {
			n++
		}
	}
	return n
}

// StatusRank orders lifecycle states so callers can assert that a status
// never moves backwards: upcoming < live < done.
func StatusRank(status string) int {
	switch status {
	case StatusLive:
		return 1
	case StatusDone:
		return 2
	default:
		return 0
	}
}
