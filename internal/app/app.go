package app

import (
	"fmt"
	"net/http"

	"github.com/mcgregorb/olympics-dashboard/external/gnews"
	"github.com/mcgregorb/olympics-dashboard/external/wikipedia"
	"github.com/mcgregorb/olympics-dashboard/external/youtube"
	"github.com/mcgregorb/olympics-dashboard/internal/config"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/infrastructure/staticdata"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/resilience"
	"github.com/mcgregorb/olympics-dashboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewSnapshotService wires the extraction clients, the derivation and
// schedule services and the static fallbacks into the one service the
// updater runs. The country table is shared so every component resolves
// names the same way.
func NewSnapshotService(cfg config.Config, logger *logging.Logger) (*usecase.SnapshotService, error) {
	countries := country.NewDefaultTable()
	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	wiki, err := wikipedia.NewClient(wikipedia.ClientConfig{
		BaseURL:        cfg.WikiBaseURL,
		Timeout:        cfg.HTTPTimeout,
		CacheTTL:       cfg.PageCacheTTL,
		ScheduleDelay:  cfg.ScheduleFetchDelay,
		HTTPClient:     httpClient,
		CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
		Countries:      countries,
		Logger:         logger.Named("wikipedia"),
	})
	if err != nil {
		return nil, fmt.Errorf("build wikipedia client: %w", err)
	}

	news, err := gnews.NewClient(gnews.ClientConfig{
		FeedURL:    cfg.NewsFeedURL,
		Timeout:    cfg.HTTPTimeout,
		HTTPClient: httpClient,
		Logger:     logger.Named("gnews"),
	})
	if err != nil {
		return nil, fmt.Errorf("build news client: %w", err)
	}

	videos, err := youtube.NewClient(youtube.ClientConfig{
		APIKey:     cfg.YouTubeAPIKey,
		Timeout:    cfg.HTTPTimeout,
		HTTPClient: httpClient,
		Logger:     logger.Named("youtube"),
	})
	if err != nil {
		return nil, fmt.Errorf("build youtube client: %w", err)
	}

	fallbacks := usecase.Fallbacks{
		MedalTable:     staticdata.SeedMedalTable(),
		Winners:        staticdata.SeedWinners(),
		Breakdown:      staticdata.SeedBreakdown(),
		CountryDetails: staticdata.SeedCountryDetails(),
		LatestResults:  staticdata.SeedLatestResults(),
		Headlines:      staticdata.SeedHeadlines(),
		Videos:         staticdata.SeedVideos(),
		Athletes:       staticdata.SeedAthletes(),
	}

	return usecase.NewSnapshotService(
		usecase.SnapshotConfig{
			TargetNation:    cfg.TargetNation,
			ProviderTimeout: cfg.ProviderTimeout,
			FetchWorkers:    cfg.FetchWorkers,
		},
		wiki,
		news,
		videos,
		usecase.NewDerivationService(countries, logger.Named("derivation")),
		usecase.NewScheduleService(staticdata.SeedCalendar(), logger.Named("schedule")),
		fallbacks,
		countries,
		logger.Named("snapshot"),
	), nil
}
