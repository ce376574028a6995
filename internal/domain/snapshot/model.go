package snapshot

import (
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
)

// Category names key the provenance map and the warning log.
const (
	CategoryMedals         = "medals"
	CategoryWinners        = "winners"
	CategorySchedule       = "schedule"
	CategoryBreakdown      = "breakdown"
	CategoryCountryDetails = "country_details"
	CategoryResults        = "results"
	CategoryHeadlines      = "headlines"
	CategoryVideos         = "videos"
	CategoryAthletes       = "athletes"
	CategoryUpcoming       = "upcoming"
)

// Warning is a non-fatal finding from the post-resolution validation pass.
// Warnings are logged and attached to the snapshot, never abort a run.
type Warning struct {
	Category string `json:"category"`
	Check    string `json:"check"`
	Detail   string `json:"detail"`
}

// Stats is the dashboard's aggregate header row.
type Stats struct {
	Day                 int `json:"day"`
	EventsComplete      int `json:"events_complete"`
	TotalEvents         int `json:"total_events"`
	MedalEventsToday    int `json:"medal_events_today"`
	CountriesWithMedals int `json:"countries_with_medals"`
	DaysRemaining       int `json:"days_remaining"`
}

// AthleteSpotlight is one target-nation medalist story.
type AthleteSpotlight struct {
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	Medal      string `json:"medal"`
	MedalEmoji string `json:"medal_emoji"`
	Bio        string `json:"bio"`
}

// Snapshot is the single aggregate handed to the renderer. The validate
// tags encode the assembly contract: every category must hold content after
// its fallback chain, so a violation here is the run's only fatal error.
// Upcoming is the one exception: after the final competition day there is
// nothing left to project.
type Snapshot struct {
	GeneratedAt    time.Time              `json:"generated_at" validate:"required"`
	Stats          Stats                  `json:"stats" validate:"required"`
	MedalTable     []medals.TableEntry    `json:"medals" validate:"required,min=1"`
	Breakdown      medals.Breakdown       `json:"breakdown" validate:"required"`
	CountryDetails []medals.CountryDetail `json:"country_details" validate:"required,min=1"`
	LatestResults  []results.DayResults   `json:"results" validate:"required,min=1"`
	TodaySchedule  schedule.Day           `json:"schedule" validate:"required"`
	Upcoming       []schedule.Day         `json:"upcoming"`
	Headlines      []media.Headline       `json:"headlines" validate:"required,min=1"`
	Videos         []media.Video          `json:"videos" validate:"required,min=1"`
	Athletes       []AthleteSpotlight     `json:"athletes" validate:"required,min=1"`
	Sources        map[string]string      `json:"sources" validate:"required"`
	Warnings       []Warning              `json:"warnings"`
}
