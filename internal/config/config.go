package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

// Config stores runtime configuration for the updater.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	LogLevel           logging.Level
	HTTPTimeout        time.Duration
	ProviderTimeout    time.Duration
	FetchWorkers       int
	ScheduleFetchDelay time.Duration
	PageCacheTTL       time.Duration
	WikiBaseURL        string
	NewsFeedURL        string
	YouTubeAPIKey      string
	TargetNation       string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	httpTimeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
	}
	if httpTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}

	providerTimeout, err := time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "45s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_TIMEOUT: %w", err)
	}
	if providerTimeout <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_TIMEOUT must be > 0")
	}

	fetchWorkers, err := getEnvAsInt("FETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_WORKERS: %w", err)
	}
	if fetchWorkers < 1 {
		return Config{}, fmt.Errorf("FETCH_WORKERS must be >= 1")
	}

	scheduleFetchDelay, err := time.ParseDuration(getEnv("SCHEDULE_FETCH_DELAY", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULE_FETCH_DELAY: %w", err)
	}
	if scheduleFetchDelay <= 0 {
		return Config{}, fmt.Errorf("SCHEDULE_FETCH_DELAY must be > 0")
	}

	pageCacheTTL, err := time.ParseDuration(getEnv("PAGE_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAGE_CACHE_TTL: %w", err)
	}
	if pageCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PAGE_CACHE_TTL must be > 0")
	}

	targetNation := strings.TrimSpace(getEnv("TARGET_NATION", "United States"))
	if targetNation == "" {
		return Config{}, fmt.Errorf("TARGET_NATION cannot be empty")
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "olympics-dashboard"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:           logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		HTTPTimeout:        httpTimeout,
		ProviderTimeout:    providerTimeout,
		FetchWorkers:       fetchWorkers,
		ScheduleFetchDelay: scheduleFetchDelay,
		PageCacheTTL:       pageCacheTTL,
		WikiBaseURL:        strings.TrimSpace(getEnv("WIKI_BASE_URL", "https://en.wikipedia.org")),
		NewsFeedURL:        strings.TrimSpace(getEnv("NEWS_FEED_URL", "")),
		YouTubeAPIKey:      strings.TrimSpace(getEnv("YOUTUBE_API_KEY", "")),
		TargetNation:       targetNation,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
