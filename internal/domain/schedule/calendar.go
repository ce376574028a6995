package schedule

import (
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
)

// Calendar is the authoritative static program, keyed by competition day.
// The builder consults it only for days where the scrape came back empty.
type Calendar struct {
	days map[int][]ScrapedRow
}

func NewCalendar(days map[int][]ScrapedRow) Calendar {
	copied := make(map[int][]ScrapedRow, len(days))
	for day, rows := range days {
		copied[day] = append([]ScrapedRow(nil), rows...)
	}
	return Calendar{days: copied}
}

// ForDay returns the planned sessions of a 1-based competition day.
func (c Calendar) ForDay(day int) []ScrapedRow {
	rows, ok := c.days[day]
	if !ok {
		return nil
	}
	return append([]ScrapedRow(nil), rows...)
}

// ForDate resolves a calendar date to its competition day. Dates outside
// the games window return nothing.
func (c Calendar) ForDate(date time.Time) []ScrapedRow {
	local := date.In(games.DisplayZone)
	day := int(local.Sub(games.Start).Hours()/24) + 1
	if day < 1 || day > games.TotalDays {
		return nil
	}
	return c.ForDay(day)
}

// Days reports which competition days carry planned sessions.
func (c Calendar) Days() int {
	return len(c.days)
}
