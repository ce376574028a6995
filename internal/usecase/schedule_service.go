package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

const upcomingWindowDays = 3

// scheduleStopWords are too common to signal that two event names describe
// the same competition.
var scheduleStopWords = map[string]bool{
	"men": true, "women": true, "the": true, "and": true, "of": true,
}

// ScheduleService builds display-zone day schedules from scraped sessions,
// the static calendar and the winners list. Source times are a fixed UTC+1,
// display times a fixed UTC-7; daylight saving does not change inside the
// games window, so the shift is a constant 8 hours.
type ScheduleService struct {
	calendar schedule.Calendar
	logger   *logging.Logger
}

func NewScheduleService(calendar schedule.Calendar, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default().Named("schedule")
	}
	return &ScheduleService{calendar: calendar, logger: logger}
}

// BuildDay assembles today's schedule. Scraped sessions win; the static
// calendar covers a day only when the scrape produced nothing for it.
func (s *ScheduleService) BuildDay(ctx context.Context, rows []schedule.ScrapedRow, winners []results.WinnerEvent, now time.Time) (schedule.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.BuildDay")
	defer span.End()

	day := games.DayIndex(now)
	date := games.DayDate(day)

	dayRows := rowsForDate(rows, date)
	source := "scrape"
	if len(dayRows) == 0 {
		dayRows = s.calendar.ForDay(day)
		source = "calendar"
	}
	if len(dayRows) == 0 {
		return schedule.Day{}, fmt.Errorf("%w: day %d", ErrNoSessions, day)
	}

	events := buildEvents(dayRows, winners, now, false)
	schedule.SortEvents(events)

	s.logger.DebugContext(ctx, "day schedule built",
		"day", day, "events", len(events), "source", source)
	return schedule.Day{
		Day:        day,
		DateLabel:  date.Format("Jan 2"),
		Weekday:    date.Format("Mon"),
		MedalCount: schedule.CountMedalEvents(events),
		Events:     events,
	}, nil
}

// UpcomingDays projects the next three competition days. Each event carries
// a full ISO-8601 display-zone timestamp for downstream reminder tooling.
func (s *ScheduleService) UpcomingDays(ctx context.Context, rows []schedule.ScrapedRow, winners []results.WinnerEvent, now time.Time) ([]schedule.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.UpcomingDays")
	defer span.End()

	today := games.DayIndex(now)
	var days []schedule.Day
	for offset := 1; offset <= upcomingWindowDays; offset++ {
		dayNum := today + offset
		if dayNum > games.TotalDays {
			break
		}
		date := games.DayDate(dayNum)

		dayRows := rowsForDate(rows, date)
		if len(dayRows) == 0 {
			dayRows = s.calendar.ForDay(dayNum)
		}
		if len(dayRows) == 0 {
			continue
		}

		events := buildEvents(dayRows, winners, now, true)
		schedule.SortEvents(events)
		days = append(days, schedule.Day{
			Day:        dayNum,
			DateLabel:  date.Format("Jan 2"),
			Weekday:    date.Format("Mon"),
			MedalCount: schedule.CountMedalEvents(events),
			Events:     events,
		})
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no days after day %d", ErrNoSessions, today)
	}

	s.logger.DebugContext(ctx, "upcoming days projected", "days", len(days))
	return days, nil
}

func rowsForDate(rows []schedule.ScrapedRow, date time.Time) []schedule.ScrapedRow {
	var out []schedule.ScrapedRow
	for _, row := range rows {
		if games.SameDisplayDay(row.Start, date) {
			out = append(out, row)
		}
	}
	return out
}

func buildEvents(rows []schedule.ScrapedRow, winners []results.WinnerEvent, now time.Time, withISO bool) []schedule.Event {
	events := make([]schedule.Event, 0, len(rows))
	for _, row := range rows {
		display := games.ToDisplay(row.Start)
		status, result := inferStatus(row, winners, now)

		event := schedule.Event{
			TimeLabel: display.Format(schedule.ClockLabel),
			Sport:     row.Sport,
			Name:      row.Event,
			Medal:     row.Medal,
			Status:    status,
			Result:    result,
			StartsAt:  display,
		}
		if withISO {
			event.ISO = display.Format(time.RFC3339)
		}
		events = append(events, event)
	}
	return events
}

// inferStatus classifies one session. A matched winner forces done with a
// result line regardless of the clock; otherwise the clock decides. A
// session long past its start with no winner found stays done with no
// result rather than showing placeholder text.
func inferStatus(row schedule.ScrapedRow, winners []results.WinnerEvent, now time.Time) (string, string) {
	if w, ok := matchWinner(row, winners); ok {
		return schedule.StatusDone, w.FormatLine()
	}

	elapsed := now.Sub(row.Start)
	switch {
	case elapsed > 3*time.Hour:
		return schedule.StatusDone, ""
	case elapsed > 30*time.Minute:
		if row.Medal {
			return schedule.StatusLive, ""
		}
		return schedule.StatusDone, ""
	case elapsed >= -15*time.Minute:
		return schedule.StatusLive, ""
	default:
		return schedule.StatusUpcoming, ""
	}
}

// matchWinner fuzzy-matches a session against the winners list: the sport
// families must relate and the event names must either match exactly or
// share at least two significant words.
func matchWinner(row schedule.ScrapedRow, winners []results.WinnerEvent) (results.WinnerEvent, bool) {
	for _, w := range winners {
		if !sameSportFamily(row.Sport, w.Sport) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(row.Event), strings.TrimSpace(w.Event)) {
			return w, true
		}
		if sharedSignificantWords(row.Event, w.Event) >= 2 {
			return w, true
		}
	}
	return results.WinnerEvent{}, false
}

// sameSportFamily treats "Skiing" and "Alpine skiing" as the same family by
// case-insensitive containment in either direction.
func sameSportFamily(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func sharedSignificantWords(a, b string) int {
	wordsA := significantWords(a)
	if len(wordsA) == 0 {
		return 0
	}
	wordsB := significantWords(b)

	shared := 0
	for word := range wordsB {
		if wordsA[word] {
			shared++
		}
	}
	return shared
}

func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(s)) {
		token = strings.Trim(token, ",.()-–—:;")
		token = strings.TrimSuffix(token, "'s")
		if token == "" || scheduleStopWords[token] {
			continue
		}
		words[token] = true
	}
	return words
}
