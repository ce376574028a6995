package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
)

const (
	defaultProviderTimeout = 45 * time.Second
	defaultFetchWorkers    = 4
	defaultTargetNation    = "United States"

	// Quality bars. A live result below its bar is discarded and the
	// category falls through to the next provider.
	minTableCountries = 10
	minHeadlines      = 3
	minUniqueVideos   = 4
	minSpotlightCount = 3
)

// SportDataSource is the structured-document side of the pipeline:
// standings, completed events and the per-discipline schedule scrape.
type SportDataSource interface {
	FetchMedalTable(ctx context.Context) ([]medals.TableEntry, error)
	FetchMedalWinners(ctx context.Context) ([]results.WinnerEvent, error)
	FetchDisciplineSchedules(ctx context.Context) ([]schedule.ScrapedRow, error)
}

// HeadlineSource supplies syndicated news stories.
type HeadlineSource interface {
	FetchHeadlines(ctx context.Context) ([]media.Headline, error)
}

// VideoSource supplies highlight videos.
type VideoSource interface {
	FetchVideos(ctx context.Context) ([]media.Video, error)
}

// Fallbacks is the authoritative static content each category falls back to
// when its live providers are exhausted. Every field must be populated: the
// fallback is the guarantee that a category never renders blank.
type Fallbacks struct {
	MedalTable     []medals.TableEntry
	Winners        []results.WinnerEvent
	Breakdown      medals.Breakdown
	CountryDetails []medals.CountryDetail
	LatestResults  []results.DayResults
	Headlines      []media.Headline
	Videos         []media.Video
	Athletes       []snapshot.AthleteSpotlight
}

// SnapshotConfig tunes one assembly run.
type SnapshotConfig struct {
	// TargetNation selects the nation for the breakdown and spotlight
	// categories, by name or IOC code.
	TargetNation string

	// ProviderTimeout bounds each provider attempt within a chain.
	ProviderTimeout time.Duration

	// FetchWorkers sizes the pool the independent fetches run on.
	FetchWorkers int
}

// SnapshotService runs the whole pipeline: fetch every category through its
// fallback chain, derive the secondary views, validate and assemble the
// final snapshot.
type SnapshotService struct {
	cfg        SnapshotConfig
	source     SportDataSource
	headlines  HeadlineSource
	videos     VideoSource
	derivation *DerivationService
	scheduler  *ScheduleService
	fallbacks  Fallbacks
	countries  *country.Table
	validate   *validator.Validate
	logger     *logging.Logger
}

func NewSnapshotService(
	cfg SnapshotConfig,
	source SportDataSource,
	headlines HeadlineSource,
	videos VideoSource,
	derivation *DerivationService,
	scheduler *ScheduleService,
	fallbacks Fallbacks,
	countries *country.Table,
	logger *logging.Logger,
) *SnapshotService {
	if cfg.TargetNation == "" {
		cfg.TargetNation = defaultTargetNation
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = defaultFetchWorkers
	}
	if countries == nil {
		countries = country.NewDefaultTable()
	}
	if logger == nil {
		logger = logging.Default().Named("snapshot")
	}
	if derivation == nil {
		derivation = NewDerivationService(countries, logger)
	}
	if scheduler == nil {
		scheduler = NewScheduleService(schedule.Calendar{}, logger)
	}
	return &SnapshotService{
		cfg:        cfg,
		source:     source,
		headlines:  headlines,
		videos:     videos,
		derivation: derivation,
		scheduler:  scheduler,
		fallbacks:  fallbacks,
		countries:  countries,
		validate:   validator.New(),
		logger:     logger,
	}
}

// liveSet carries the phase-one resolutions: the independently fetched
// categories plus the raw schedule scrape.
type liveSet struct {
	table           []medals.TableEntry
	tableSource     string
	winners         []results.WinnerEvent
	winnersSource   string
	rows            []schedule.ScrapedRow
	headlines       []media.Headline
	headlinesSource string
	videos          []media.Video
	videosSource    string
}

// derivedSet carries the phase-two resolutions, all computed from the
// resolved winners list plus the scraped rows.
type derivedSet struct {
	breakdown       medals.Breakdown
	breakdownSource string
	details         []medals.CountryDetail
	detailsSource   string
	latest          []results.DayResults
	latestSource    string
	today           schedule.Day
	todaySource     string
	upcoming        []schedule.Day
	upcomingSource  string
	athletes        []snapshot.AthleteSpotlight
	athletesSource  string
}

// Build runs the pipeline once for the given instant and returns the
// assembled snapshot. Category failures degrade to fallback content; the
// only fatal outcome is an assembled snapshot that violates its own
// contract, reported as ErrAssembly.
func (s *SnapshotService) Build(ctx context.Context, now time.Time) (*snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Build")
	defer span.End()

	now = now.In(games.DisplayZone)
	day := games.DayIndex(now)
	nation := s.targetNation()

	live, err := s.resolveLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssembly, err)
	}
	derived := s.resolveDerived(ctx, live, nation, day, now)
	return s.assemble(ctx, live, derived, day, now)
}

// resolveLive fans the five independent categories out over the worker
// pool. Each task resolves its own chain and writes its own slot, so the
// barrier is the only synchronization needed.
func (s *SnapshotService) resolveLive(ctx context.Context) (liveSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.resolveLive")
	defer span.End()

	var set liveSet

	pool, err := ants.NewPool(s.cfg.FetchWorkers)
	if err != nil {
		return set, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	var fetches sync.WaitGroup
	submit := func(task func()) error {
		fetches.Add(1)
		if err := pool.Submit(func() {
			defer fetches.Done()
			task()
		}); err != nil {
			fetches.Done()
			return fmt.Errorf("submit fetch to worker pool: %w", err)
		}
		return nil
	}

	tasks := []func(){
		func() {
			set.table, set.tableSource = resolveCategory(ctx, chain[[]medals.TableEntry]{
				category: snapshot.CategoryMedals,
				timeout:  s.cfg.ProviderTimeout,
				logger:   s.logger,
				providers: []provider[[]medals.TableEntry]{
					{name: "wikipedia", fetch: s.source.FetchMedalTable, accept: acceptTable},
					{name: "static", fetch: staticFetch(s.fallbacks.MedalTable), accept: acceptTable},
				},
			})
		},
		func() {
			set.winners, set.winnersSource = resolveCategory(ctx, chain[[]results.WinnerEvent]{
				category: snapshot.CategoryWinners,
				timeout:  s.cfg.ProviderTimeout,
				logger:   s.logger,
				providers: []provider[[]results.WinnerEvent]{
					{name: "wikipedia", fetch: s.source.FetchMedalWinners},
					{name: "static", fetch: staticFetch(s.fallbacks.Winners)},
				},
			})
		},
		func() {
			rows, err := fetchWithTimeout(ctx, s.cfg.ProviderTimeout, s.source.FetchDisciplineSchedules)
			if err != nil {
				s.logger.WarnContext(ctx, "discipline scrape failed",
					"category", snapshot.CategorySchedule, "error", err)
				return
			}
			set.rows = rows
		},
		func() {
			set.headlines, set.headlinesSource = resolveCategory(ctx, chain[[]media.Headline]{
				category: snapshot.CategoryHeadlines,
				timeout:  s.cfg.ProviderTimeout,
				logger:   s.logger,
				providers: []provider[[]media.Headline]{
					{name: "rss", fetch: s.headlines.FetchHeadlines, accept: acceptHeadlines},
					{name: "static", fetch: staticFetch(s.fallbacks.Headlines), accept: acceptHeadlines},
				},
			})
		},
		func() {
			set.videos, set.videosSource = resolveCategory(ctx, chain[[]media.Video]{
				category: snapshot.CategoryVideos,
				timeout:  s.cfg.ProviderTimeout,
				logger:   s.logger,
				providers: []provider[[]media.Video]{
					{name: "youtube", fetch: s.videos.FetchVideos, accept: acceptVideos},
					{name: "static", fetch: staticFetch(s.fallbacks.Videos), accept: acceptVideos},
				},
			})
		},
	}
	for _, task := range tasks {
		if err := submit(task); err != nil {
			fetches.Wait()
			return set, err
		}
	}
	fetches.Wait()
	return set, nil
}

// resolveDerived builds the secondary views once the winners list and the
// scraped rows are settled.
func (s *SnapshotService) resolveDerived(ctx context.Context, live liveSet, nation country.Ref, day int, now time.Time) derivedSet {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.resolveDerived")
	defer span.End()

	var set derivedSet
	var wg conc.WaitGroup

	wg.Go(func() {
		acceptBreakdown := func(b medals.Breakdown) error {
			entry, ok := tableEntryByCode(live.table, b.Code)
			if !ok {
				return nil
			}
			if !b.Matches(entry) {
				return fmt.Errorf("breakdown %d/%d/%d disagrees with table %d/%d/%d",
					b.Gold, b.Silver, b.Bronze, entry.Gold, entry.Silver, entry.Bronze)
			}
			return nil
		}
		set.breakdown, set.breakdownSource = resolveCategory(ctx, chain[medals.Breakdown]{
			category: snapshot.CategoryBreakdown,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[medals.Breakdown]{
				{name: "derived", fetch: func(ctx context.Context) (medals.Breakdown, error) {
					return s.derivation.NationalBreakdown(ctx, live.winners, nation)
				}, accept: acceptBreakdown},
				{name: "static", fetch: staticFetch(s.fallbacks.Breakdown)},
			},
		})
	})

	wg.Go(func() {
		set.details, set.detailsSource = resolveCategory(ctx, chain[[]medals.CountryDetail]{
			category: snapshot.CategoryCountryDetails,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[[]medals.CountryDetail]{
				{name: "derived", fetch: func(ctx context.Context) ([]medals.CountryDetail, error) {
					return s.derivation.CountryDetails(ctx, live.winners)
				}},
				{name: "static", fetch: staticFetch(s.fallbacks.CountryDetails)},
			},
		})
	})

	wg.Go(func() {
		set.latest, set.latestSource = resolveCategory(ctx, chain[[]results.DayResults]{
			category: snapshot.CategoryResults,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[[]results.DayResults]{
				{name: "derived", fetch: func(ctx context.Context) ([]results.DayResults, error) {
					return s.derivation.LatestResults(ctx, live.winners, day)
				}},
				{name: "static", fetch: staticFetch(s.fallbacks.LatestResults)},
			},
		})
	})

	wg.Go(func() {
		set.today, set.todaySource = resolveCategory(ctx, chain[schedule.Day]{
			category: snapshot.CategorySchedule,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[schedule.Day]{
				{name: "scrape", fetch: func(ctx context.Context) (schedule.Day, error) {
					if len(live.rows) == 0 {
						return schedule.Day{}, fmt.Errorf("no scraped sessions")
					}
					return s.scheduler.BuildDay(ctx, live.rows, live.winners, now)
				}},
				{name: "calendar", fetch: func(ctx context.Context) (schedule.Day, error) {
					return s.scheduler.BuildDay(ctx, nil, live.winners, now)
				}},
			},
		})
	})

	wg.Go(func() {
		if day >= games.TotalDays {
			s.logger.DebugContext(ctx, "no upcoming days remain", "day", day)
			return
		}
		set.upcoming, set.upcomingSource = resolveCategory(ctx, chain[[]schedule.Day]{
			category: snapshot.CategoryUpcoming,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[[]schedule.Day]{
				{name: "scrape", fetch: func(ctx context.Context) ([]schedule.Day, error) {
					if len(live.rows) == 0 {
						return nil, fmt.Errorf("no scraped sessions")
					}
					return s.scheduler.UpcomingDays(ctx, live.rows, live.winners, now)
				}},
				{name: "calendar", fetch: func(ctx context.Context) ([]schedule.Day, error) {
					return s.scheduler.UpcomingDays(ctx, nil, live.winners, now)
				}},
			},
		})
	})

	wg.Go(func() {
		set.athletes, set.athletesSource = resolveCategory(ctx, chain[[]snapshot.AthleteSpotlight]{
			category: snapshot.CategoryAthletes,
			timeout:  s.cfg.ProviderTimeout,
			logger:   s.logger,
			providers: []provider[[]snapshot.AthleteSpotlight]{
				{name: "derived", fetch: func(ctx context.Context) ([]snapshot.AthleteSpotlight, error) {
					return s.derivation.AthleteSpotlights(ctx, live.winners, nation)
				}, accept: acceptSpotlights},
				{name: "static", fetch: staticFetch(s.fallbacks.Athletes), accept: acceptSpotlights},
			},
		})
	})

	wg.Wait()
	return set
}

// assemble computes the header stats, attaches provenance and warnings, and
// enforces the snapshot contract.
func (s *SnapshotService) assemble(ctx context.Context, live liveSet, derived derivedSet, day int, now time.Time) (*snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.assemble")
	defer span.End()

	sources := make(map[string]string, 10)
	record := func(category, name string) {
		if name != "" {
			sources[category] = name
		}
	}
	record(snapshot.CategoryMedals, live.tableSource)
	record(snapshot.CategoryWinners, live.winnersSource)
	record(snapshot.CategoryHeadlines, live.headlinesSource)
	record(snapshot.CategoryVideos, live.videosSource)
	record(snapshot.CategoryBreakdown, derived.breakdownSource)
	record(snapshot.CategoryCountryDetails, derived.detailsSource)
	record(snapshot.CategoryResults, derived.latestSource)
	record(snapshot.CategorySchedule, derived.todaySource)
	record(snapshot.CategoryUpcoming, derived.upcomingSource)
	record(snapshot.CategoryAthletes, derived.athletesSource)

	snap := &snapshot.Snapshot{
		GeneratedAt: now,
		Stats: snapshot.Stats{
			Day:                 day,
			EventsComplete:      len(live.winners),
			TotalEvents:         games.TotalEvents,
			MedalEventsToday:    derived.today.MedalCount,
			CountriesWithMedals: len(live.table),
			DaysRemaining:       games.DaysRemaining(day),
		},
		MedalTable:     live.table,
		Breakdown:      derived.breakdown,
		CountryDetails: derived.details,
		LatestResults:  derived.latest,
		TodaySchedule:  derived.today,
		Upcoming:       derived.upcoming,
		Headlines:      live.headlines,
		Videos:         live.videos,
		Athletes:       derived.athletes,
		Sources:        sources,
	}
	snap.Warnings = consistencyWarnings(snap)
	for _, w := range snap.Warnings {
		s.logger.WarnContext(ctx, "consistency warning",
			"category", w.Category, "check", w.Check, "detail", w.Detail)
	}

	if err := s.validate.StructCtx(ctx, snap); err != nil {
		return nil, fmt.Errorf("%w: validation failed: %v", ErrAssembly, err)
	}

	s.logger.InfoContext(ctx, "snapshot assembled",
		"day", day, "events_complete", snap.Stats.EventsComplete,
		"countries", snap.Stats.CountriesWithMedals, "warnings", len(snap.Warnings))
	return snap, nil
}

// targetNation resolves the configured nation against the country table. An
// unrecognized value still flows through derivation with name-only matching.
func (s *SnapshotService) targetNation() country.Ref {
	if ref, ok := s.countries.ByName(s.cfg.TargetNation); ok {
		return ref
	}
	if ref, ok := s.countries.ByCode(s.cfg.TargetNation); ok {
		return ref
	}
	return country.Ref{Name: s.cfg.TargetNation, Code: s.countries.CodeFor(s.cfg.TargetNation)}
}

// resolveCategory runs one chain and logs exhaustion, leaving the zero
// value in place so assembly can decide whether the gap is fatal.
func resolveCategory[T any](ctx context.Context, c chain[T]) (T, string) {
	value, name, err := resolveChain(ctx, c)
	if err != nil {
		c.logger.ErrorContext(ctx, "category unresolved", "category", c.category, "error", err)
	}
	return value, name
}

// staticFetch adapts a fallback value to the provider fetch signature.
func staticFetch[T any](value T) func(context.Context) (T, error) {
	return func(context.Context) (T, error) { return value, nil }
}

func acceptTable(entries []medals.TableEntry) error {
	if len(entries) < minTableCountries {
		return fmt.Errorf("%d countries, need %d", len(entries), minTableCountries)
	}
	return nil
}

func acceptHeadlines(items []media.Headline) error {
	if len(items) < minHeadlines {
		return fmt.Errorf("%d stories, need %d", len(items), minHeadlines)
	}
	return nil
}

func acceptVideos(items []media.Video) error {
	ids := make(map[string]struct{}, len(items))
	for _, v := range items {
		ids[v.ID] = struct{}{}
	}
	if len(ids) < minUniqueVideos {
		return fmt.Errorf("%d unique videos, need %d", len(ids), minUniqueVideos)
	}
	return nil
}

func acceptSpotlights(items []snapshot.AthleteSpotlight) error {
	if len(items) < minSpotlightCount {
		return fmt.Errorf("%d spotlights, need %d", len(items), minSpotlightCount)
	}
	return nil
}
