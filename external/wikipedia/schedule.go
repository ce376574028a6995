package wikipedia

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
)

var (
	clockRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	finalRegex = regexp.MustCompile(`\bfinals?\b`)
)

var dateLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"2 January",
	"January 2",
}

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// FetchDisciplineSchedules scrapes the session tables of every discipline
// page. Fetches are spaced by the politeness limiter and a single broken
// page only costs that discipline, not the whole scrape. All session times
// are in the venue zone.
func (c *Client) FetchDisciplineSchedules(ctx context.Context) ([]schedule.ScrapedRow, error) {
	var rows []schedule.ScrapedRow
	fetched := 0

	for _, discipline := range disciplines {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "schedule scrape interrupted")
		}

		markup, err := c.page(ctx, fmt.Sprintf(schedulePage, discipline))
		if err != nil {
			c.logger.WarnContext(ctx, "discipline page unavailable", "discipline", discipline, "error", err)
			continue
		}
		extracted, err := extractScheduleRows(markup, discipline)
		if err != nil {
			c.logger.WarnContext(ctx, "discipline page unparsable", "discipline", discipline, "error", err)
			continue
		}
		fetched++
		rows = append(rows, extracted...)
	}

	if len(rows) == 0 {
		return nil, ErrEmptySource
	}
	c.logger.InfoContext(ctx, "discipline schedules scraped",
		"disciplines", fetched, "sessions", len(rows))
	return rows, nil
}

// extractScheduleRows walks every table on a discipline page. Schedule
// tables put the date in a spanning cell and only repeat the clock per
// session, so the date carries forward across rows until the next one
// appears. A row becomes a session once it has a known date, a clock cell
// and an event description.
func extractScheduleRows(markup, discipline string) ([]schedule.ScrapedRow, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse %s schedule markup", discipline)
	}

	var rows []schedule.ScrapedRow
	for _, table := range collectTables(doc) {
		var current time.Time
		for _, tr := range tableRows(table) {
			cells := rowCells(tr)
			if len(cells) == 0 {
				continue
			}

			var clock, event string
			parts := make([]string, 0, len(cells))
			for _, cell := range cells {
				text := cleanInline(cellText(cell))
				if text == "" || artifacts[text] {
					continue
				}
				parts = append(parts, text)

				if d, ok := parseScheduleDate(text); ok {
					current = d
					continue
				}
				if clock == "" && clockRegex.MatchString(text) {
					clock = text
					continue
				}
				if utf8.RuneCountInString(text) >= 3 && !isNumeric(text) &&
					utf8.RuneCountInString(text) > utf8.RuneCountInString(event) {
					event = text
				}
			}
			if current.IsZero() || clock == "" || event == "" {
				continue
			}
			start, ok := combineDateClock(current, clock)
			if !ok {
				continue
			}

			rows = append(rows, schedule.ScrapedRow{
				Sport: discipline,
				Event: event,
				Start: start,
				Medal: isMedalSession(strings.Join(parts, " ")),
			})
		}
	}
	return rows, nil
}

// parseScheduleDate recognizes the date formats the event pages use,
// with or without a leading weekday or a year.
func parseScheduleDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, ","); idx > 0 {
		if weekdayNames[strings.ToLower(strings.TrimSpace(text[:idx]))] {
			text = strings.TrimSpace(text[idx+1:])
		}
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, text, games.SourceZone)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(games.Start.Year(), t.Month(), t.Day(), 0, 0, 0, 0, games.SourceZone)
		}
		return t, true
	}
	return time.Time{}, false
}

func combineDateClock(day time.Time, clock string) (time.Time, bool) {
	sep := strings.IndexByte(clock, ':')
	hour, err1 := strconv.Atoi(clock[:sep])
	minute, err2 := strconv.Atoi(clock[sep+1:])
	if err1 != nil || err2 != nil || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, games.SourceZone), true
}

// isMedalSession flags sessions that decide medals. Elimination-round
// finals are stripped first so "semifinal" rows stay non-medal.
func isMedalSession(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "medal") {
		return true
	}
	for _, elim := range []string{"semifinal", "semi-final", "quarterfinal", "quarter-final"} {
		lower = strings.ReplaceAll(lower, elim, "")
	}
	return finalRegex.MatchString(lower)
}
