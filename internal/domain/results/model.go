package results

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// WinnerEvent is one completed competition: the event name plus the three
// medalist texts as extracted, each shaped like "Name (CODE)", a bare code,
// or empty when the source had no entry for that tier.
type WinnerEvent struct {
	Sport  string `json:"sport"`
	Event  string `json:"event"`
	Gold   string `json:"gold"`
	Silver string `json:"silver"`
	Bronze string `json:"bronze"`
}

// HasAnyMedalist reports whether at least one tier carries usable text.
func (e WinnerEvent) HasAnyMedalist() bool {
	return !IsPlaceholder(e.Gold) || !IsPlaceholder(e.Silver) || !IsPlaceholder(e.Bronze)
}

// Key identifies an event within one scrape for duplicate suppression.
func (e WinnerEvent) Key() string {
	return strings.ToLower(strings.TrimSpace(e.Sport)) + "|" + strings.ToLower(strings.TrimSpace(e.Event))
}

// DayResults groups winner events under one competition day. The grouping
// is approximate: the winners source carries no per-day timestamps, so
// callers partition the list proportionally instead.
type DayResults struct {
	Day       int           `json:"day"`
	DateLabel string        `json:"date"`
	Events    []WinnerEvent `json:"results"`
}

var placeholders = map[string]struct{}{
	"":    {},
	"tbd": {},
	"tba": {},
	"n/a": {},
	"-":   {},
	"—":   {},
	"–":   {},
}

// IsPlaceholder reports whether a medalist text carries no real result.
func IsPlaceholder(s string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// FormatLine renders the medalists of one event as a single display line,
// for example "🥇 Nilsen (NOR) • 🥈 Braathen (BRA) • 🥉 Odermatt (SUI)".
// Placeholder tiers are left out entirely rather than rendered empty.
func (e WinnerEvent) FormatLine() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendTier := func(emoji, text string) {
		if IsPlaceholder(text) {
			return
		}
		if buf.Len() > 0 {
			_, _ = buf.WriteString(" • ")
		}
		_, _ = buf.WriteString(emoji)
		_ = buf.WriteByte(' ')
		_, _ = buf.WriteString(strings.TrimSpace(text))
	}

	appendTier("🥇", e.Gold)
	appendTier("🥈", e.Silver)
	appendTier("🥉", e.Bronze)

	return buf.String()
}
