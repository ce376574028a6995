package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

type stubSportData struct {
	table      []medals.TableEntry
	tableErr   error
	winners    []results.WinnerEvent
	winnersErr error
	rows       []schedule.ScrapedRow
	rowsErr    error
}

func (s *stubSportData) FetchMedalTable(context.Context) ([]medals.TableEntry, error) {
	return s.table, s.tableErr
}

func (s *stubSportData) FetchMedalWinners(context.Context) ([]results.WinnerEvent, error) {
	return s.winners, s.winnersErr
}

func (s *stubSportData) FetchDisciplineSchedules(context.Context) ([]schedule.ScrapedRow, error) {
	return s.rows, s.rowsErr
}

type stubHeadlines struct {
	items []media.Headline
	err   error
}

func (s *stubHeadlines) FetchHeadlines(context.Context) ([]media.Headline, error) {
	return s.items, s.err
}

type stubVideos struct {
	items []media.Video
	err   error
}

func (s *stubVideos) FetchVideos(context.Context) ([]media.Video, error) {
	return s.items, s.err
}

// snapshotTable is a live standings fixture whose United States line agrees
// with the tallies snapshotWinners yields: 3 gold, 0 silver, 1 bronze.
func snapshotTable() []medals.TableEntry {
	return []medals.TableEntry{
		{Rank: 1, Country: "Norway", Code: "NOR", Flag: "🇳🇴", Gold: 5, Silver: 3, Bronze: 2, Total: 10},
		{Rank: 2, Country: "Germany", Code: "GER", Flag: "🇩🇪", Gold: 3, Silver: 2, Bronze: 1, Total: 6},
		{Rank: 3, Country: "United States", Code: "USA", Flag: "🇺🇸", Gold: 3, Silver: 0, Bronze: 1, Total: 4},
		{Rank: 4, Country: "Italy", Code: "ITA", Flag: "🇮🇹", Gold: 2, Silver: 4, Bronze: 3, Total: 9},
		{Rank: 5, Country: "Canada", Code: "CAN", Flag: "🇨🇦", Gold: 2, Silver: 3, Bronze: 5, Total: 10},
		{Rank: 6, Country: "Sweden", Code: "SWE", Flag: "🇸🇪", Gold: 2, Silver: 1, Bronze: 0, Total: 3},
		{Rank: 7, Country: "Austria", Code: "AUT", Flag: "🇦🇹", Gold: 1, Silver: 4, Bronze: 2, Total: 7},
		{Rank: 8, Country: "Switzerland", Code: "SUI", Flag: "🇨🇭", Gold: 1, Silver: 2, Bronze: 3, Total: 6},
		{Rank: 9, Country: "Netherlands", Code: "NED", Flag: "🇳🇱", Gold: 1, Silver: 1, Bronze: 1, Total: 3},
		{Rank: 10, Country: "France", Code: "FRA", Flag: "🇫🇷", Gold: 0, Silver: 2, Bronze: 4, Total: 6},
	}
}

func snapshotWinners() []results.WinnerEvent {
	return []results.WinnerEvent{
		{Sport: "Alpine skiing", Event: "Women's slalom",
			Gold: "Ana Carter (USA)", Silver: "Petra Vlhová (SVK)", Bronze: "Wendy Holdener (SUI)"},
		{Sport: "Speed skating", Event: "Women's 500 m",
			Gold: "Erin Jackson (USA)", Silver: "Miho Takagi (JPN)", Bronze: "Femke Kok (NED)"},
		{Sport: "Snowboarding", Event: "Men's halfpipe",
			Gold: "Ayumu Hirano (JPN)", Silver: "Scotty James (AUS)", Bronze: "Taylor Gold (USA)"},
		{Sport: "Biathlon", Event: "Men's sprint",
			Gold: "Johannes Bø (NOR)", Silver: "Sebastian Samuelsson (SWE)", Bronze: "Quentin Maillet (FRA)"},
		{Sport: "Luge", Event: "Men's singles",
			Gold: "Max Langenhan (GER)", Silver: "Jonas Müller (AUT)", Bronze: "Dominik Fischnaller (ITA)"},
		{Sport: "Figure skating", Event: "Ice dance",
			Gold: "Madison Chock, Evan Bates (USA)", Silver: "Piper Gilles, Paul Poirier (CAN)", Bronze: "Charlène Guignard, Marco Fabbri (ITA)"},
	}
}

func newLiveSportData() *stubSportData {
	return &stubSportData{
		table:   snapshotTable(),
		winners: snapshotWinners(),
		rows: []schedule.ScrapedRow{
			{Sport: "Curling", Event: "Mixed doubles final", Start: cet(14, 20, 30), Medal: true},
			{Sport: "Ice hockey", Event: "Women's semifinal", Start: cet(15, 16, 0)},
		},
	}
}

func snapshotHeadlines() []media.Headline {
	return []media.Headline{
		{Title: "Carter storms to slalom gold", URL: "https://example.org/a", Source: "AP", DateLabel: "Feb 14"},
		{Title: "Jackson repeats in the 500", URL: "https://example.org/b", Source: "Reuters", DateLabel: "Feb 14"},
		{Title: "Hirano defends halfpipe title", URL: "https://example.org/c", Source: "NBC Sports", DateLabel: "Feb 13"},
	}
}

func snapshotVideos() []media.Video {
	return []media.Video{
		{ID: "v1", Title: "Slalom highlights", URL: "https://youtube.com/watch?v=v1", Source: "Olympics", DateLabel: "Feb 14", Emoji: "🏔️"},
		{ID: "v2", Title: "500 m final", URL: "https://youtube.com/watch?v=v2", Source: "Olympics", DateLabel: "Feb 14", Emoji: "🏔️"},
		{ID: "v3", Title: "Halfpipe run of the day", URL: "https://youtube.com/watch?v=v3", Source: "NBC", DateLabel: "Feb 13", Emoji: "🏔️"},
		{ID: "v4", Title: "Biathlon sprint recap", URL: "https://youtube.com/watch?v=v4", Source: "Eurosport", DateLabel: "Feb 13", Emoji: "🏔️"},
	}
}

func snapshotFallbacks() Fallbacks {
	return Fallbacks{
		MedalTable: []medals.TableEntry{
			{Rank: 1, Country: "Norway", Code: "NOR", Flag: "🇳🇴", Gold: 4, Silver: 2, Bronze: 2, Total: 8},
			{Rank: 2, Country: "United States", Code: "USA", Flag: "🇺🇸", Gold: 3, Silver: 0, Bronze: 1, Total: 4},
			{Rank: 3, Country: "Germany", Code: "GER", Flag: "🇩🇪", Gold: 2, Silver: 2, Bronze: 0, Total: 4},
			{Rank: 4, Country: "Italy", Code: "ITA", Flag: "🇮🇹", Gold: 2, Silver: 1, Bronze: 2, Total: 5},
			{Rank: 5, Country: "Canada", Code: "CAN", Flag: "🇨🇦", Gold: 1, Silver: 3, Bronze: 2, Total: 6},
			{Rank: 6, Country: "Austria", Code: "AUT", Flag: "🇦🇹", Gold: 1, Silver: 2, Bronze: 1, Total: 4},
			{Rank: 7, Country: "Switzerland", Code: "SUI", Flag: "🇨🇭", Gold: 1, Silver: 1, Bronze: 2, Total: 4},
			{Rank: 8, Country: "Sweden", Code: "SWE", Flag: "🇸🇪", Gold: 1, Silver: 1, Bronze: 0, Total: 2},
			{Rank: 9, Country: "Japan", Code: "JPN", Flag: "🇯🇵", Gold: 0, Silver: 2, Bronze: 1, Total: 3},
			{Rank: 10, Country: "France", Code: "FRA", Flag: "🇫🇷", Gold: 0, Silver: 1, Bronze: 3, Total: 4},
		},
		Winners: []results.WinnerEvent{
			{Sport: "Alpine skiing", Event: "Men's downhill",
				Gold: "Marco Odermatt (SUI)", Silver: "Vincent Kriechmayr (AUT)", Bronze: "Ryan Cochran-Siegle (USA)"},
		},
		Breakdown: medals.Breakdown{
			Country: "United States", Code: "USA",
			Sports: []medals.SportTally{{Sport: "Alpine skiing", Gold: 3, Bronze: 1}},
			Gold:   3, Silver: 0, Bronze: 1, Total: 4,
		},
		CountryDetails: []medals.CountryDetail{
			{Code: "USA", Country: "United States", Flag: "🇺🇸", Wins: []medals.MedalWin{
				{Sport: "Alpine skiing", Event: "Men's downhill", Tier: medals.TierBronze, Medalist: "Ryan Cochran-Siegle (USA)"},
			}},
		},
		LatestResults: []results.DayResults{
			{Day: 8, DateLabel: "Feb 13", Events: []results.WinnerEvent{
				{Sport: "Alpine skiing", Event: "Men's downhill", Gold: "Marco Odermatt (SUI)"},
			}},
		},
		Headlines: []media.Headline{
			{Title: "Live headlines temporarily unavailable", URL: "https://olympics.com/en/milano-cortina-2026", Source: "Olympics"},
			{Title: "Official medal table", URL: "https://olympics.com/en/milano-cortina-2026/medals", Source: "Olympics"},
			{Title: "Event schedule and results", URL: "https://olympics.com/en/milano-cortina-2026/schedule", Source: "Olympics"},
		},
		Videos: []media.Video{
			{ID: "s1", Title: "Official highlights channel", URL: "https://youtube.com/olympics", Source: "Olympics", Emoji: "🏔️"},
			{ID: "s2", Title: "Best of the opening ceremony", URL: "https://youtube.com/watch?v=s2", Source: "Olympics", Emoji: "🏔️"},
			{ID: "s3", Title: "Milano Cortina venues tour", URL: "https://youtube.com/watch?v=s3", Source: "Olympics", Emoji: "🏔️"},
			{ID: "s4", Title: "Team USA preview", URL: "https://youtube.com/watch?v=s4", Source: "NBC", Emoji: "🏔️"},
		},
		Athletes: []snapshot.AthleteSpotlight{
			{Name: "Mikaela Shiffrin", Sport: "Alpine skiing", Medal: medals.TierGold, MedalEmoji: "🥇", Bio: "Won gold in Women's giant slalom"},
			{Name: "Erin Jackson", Sport: "Speed skating", Medal: medals.TierGold, MedalEmoji: "🥇", Bio: "Won gold in Women's 500 m"},
			{Name: "Chloe Kim", Sport: "Snowboarding", Medal: medals.TierGold, MedalEmoji: "🥇", Bio: "Won gold in Women's halfpipe"},
		},
	}
}

func newTestSnapshotService(source SportDataSource, headlines HeadlineSource, videos VideoSource, fallbacks Fallbacks) *SnapshotService {
	countries := country.NewDefaultTable()
	logger := logging.NewNop()
	return NewSnapshotService(
		SnapshotConfig{TargetNation: "United States"},
		source,
		headlines,
		videos,
		NewDerivationService(countries, logger),
		NewScheduleService(schedule.NewCalendar(nil), logger),
		fallbacks,
		countries,
		logger,
	)
}

func TestSnapshotService_BuildResolvesLiveCategories(t *testing.T) {
	t.Parallel()

	svc := newTestSnapshotService(newLiveSportData(),
		&stubHeadlines{items: snapshotHeadlines()},
		&stubVideos{items: snapshotVideos()},
		snapshotFallbacks())

	snap, err := svc.Build(context.Background(), scheduleNow)
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		snapshot.CategoryMedals:         "wikipedia",
		snapshot.CategoryWinners:        "wikipedia",
		snapshot.CategoryHeadlines:      "rss",
		snapshot.CategoryVideos:         "youtube",
		snapshot.CategoryBreakdown:      "derived",
		snapshot.CategoryCountryDetails: "derived",
		snapshot.CategoryResults:        "derived",
		snapshot.CategorySchedule:       "scrape",
		snapshot.CategoryUpcoming:       "scrape",
		snapshot.CategoryAthletes:       "derived",
	}, snap.Sources)

	require.Equal(t, 9, snap.Stats.Day)
	require.Equal(t, 6, snap.Stats.EventsComplete)
	require.Equal(t, games.TotalEvents, snap.Stats.TotalEvents)
	require.Equal(t, 1, snap.Stats.MedalEventsToday)
	require.Equal(t, 10, snap.Stats.CountriesWithMedals)
	require.Equal(t, 8, snap.Stats.DaysRemaining)

	require.Equal(t, "United States", snap.Breakdown.Country)
	require.Equal(t, 3, snap.Breakdown.Gold)
	require.Equal(t, 1, snap.Breakdown.Bronze)
	require.Len(t, snap.Breakdown.Sports, 4)

	require.True(t, snap.GeneratedAt.Equal(scheduleNow))
	require.Empty(t, snap.Warnings)
}

func TestSnapshotService_CategoriesDegradeIndependently(t *testing.T) {
	t.Parallel()

	source := newLiveSportData()
	source.tableErr = errors.New("standings page unreachable")

	svc := newTestSnapshotService(source,
		&stubHeadlines{err: errors.New("feed down")},
		&stubVideos{items: snapshotVideos()[:2]},
		snapshotFallbacks())

	snap, err := svc.Build(context.Background(), scheduleNow)
	require.NoError(t, err)

	require.Equal(t, "static", snap.Sources[snapshot.CategoryMedals])
	require.Equal(t, "static", snap.Sources[snapshot.CategoryHeadlines])
	require.Equal(t, "static", snap.Sources[snapshot.CategoryVideos])
	require.Equal(t, "wikipedia", snap.Sources[snapshot.CategoryWinners])
	require.Equal(t, "derived", snap.Sources[snapshot.CategoryBreakdown])

	require.Equal(t, "Live headlines temporarily unavailable", snap.Headlines[0].Title)
	require.Len(t, snap.Videos, 4)
}

func TestSnapshotService_BreakdownMismatchFallsToStatic(t *testing.T) {
	t.Parallel()

	source := newLiveSportData()
	for i := range source.table {
		if source.table[i].Code == "USA" {
			source.table[i].Silver = 1
			source.table[i].Total = 5
		}
	}

	svc := newTestSnapshotService(source,
		&stubHeadlines{items: snapshotHeadlines()},
		&stubVideos{items: snapshotVideos()},
		snapshotFallbacks())

	snap, err := svc.Build(context.Background(), scheduleNow)
	require.NoError(t, err)
	require.Equal(t, "static", snap.Sources[snapshot.CategoryBreakdown])

	var recorded bool
	for _, w := range snap.Warnings {
		if w.Category == snapshot.CategoryBreakdown && w.Check == "table_mismatch" {
			recorded = true
		}
	}
	require.True(t, recorded, "expected the disagreement recorded as a warning, got %+v", snap.Warnings)
}

func TestSnapshotService_BuildIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestSnapshotService(newLiveSportData(),
		&stubHeadlines{items: snapshotHeadlines()},
		&stubVideos{items: snapshotVideos()},
		snapshotFallbacks())

	first, err := svc.Build(context.Background(), scheduleNow)
	require.NoError(t, err)
	second, err := svc.Build(context.Background(), scheduleNow)
	require.NoError(t, err)

	a, err := sonic.ConfigStd.Marshal(first)
	require.NoError(t, err)
	b, err := sonic.ConfigStd.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestSnapshotService_EmptyCategoryIsAssemblyError(t *testing.T) {
	t.Parallel()

	source := newLiveSportData()
	source.winners = []results.WinnerEvent{
		{Sport: "Biathlon", Event: "Men's sprint",
			Gold: "Johannes Bø (NOR)", Silver: "Martin Uldal (NOR)", Bronze: "Éric Perrot (FRA)"},
	}
	fallbacks := snapshotFallbacks()
	fallbacks.Athletes = nil

	svc := newTestSnapshotService(source,
		&stubHeadlines{items: snapshotHeadlines()},
		&stubVideos{items: snapshotVideos()},
		fallbacks)

	snap, err := svc.Build(context.Background(), scheduleNow)
	require.ErrorIs(t, err, ErrAssembly)
	require.Nil(t, snap)
}
