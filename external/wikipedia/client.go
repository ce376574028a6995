package wikipedia

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/cache"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/resilience"
)

// Sentinel failures for the encyclopedia source. Callers branch on these to
// decide whether the fallback chain should move on.
var (
	// ErrMissingTable means the page rendered but carried no table markup
	// at all, usually a redesigned or vandalized revision.
	ErrMissingTable = crerr.New("wikipedia: no candidate table in page")

	// ErrEmptySource means markup was fetched and parsed but produced zero
	// usable rows or events.
	ErrEmptySource = crerr.New("wikipedia: source yielded no rows")

	// errWikipediaTransient marks timeouts and 5xx class responses so the
	// circuit breaker only counts infrastructure faults.
	errWikipediaTransient = crerr.New("wikipedia transient failure")
)

const (
	defaultBaseURL   = "https://en.wikipedia.org"
	defaultUserAgent = "olympics-dashboard/1.0 (results updater; contact: ops@olympics-dashboard.local)"
	defaultTimeout   = 20 * time.Second
	defaultCacheTTL  = 5 * time.Minute
	defaultDelay     = 500 * time.Millisecond

	maxPageBytes = 6 << 20

	standingsPage = "2026 Winter Olympics medal table"
	winnersPage   = "List of 2026 Winter Olympics medal winners"
	schedulePage  = "%s at the 2026 Winter Olympics"
)

// disciplines are the event pages polled for session schedules. Each name
// slots into the schedulePage pattern.
var disciplines = []string{
	"Alpine skiing",
	"Biathlon",
	"Bobsleigh",
	"Cross-country skiing",
	"Curling",
	"Figure skating",
	"Freestyle skiing",
	"Ice hockey",
	"Luge",
	"Nordic combined",
	"Short track speed skating",
	"Skeleton",
	"Ski jumping",
	"Ski mountaineering",
	"Snowboarding",
	"Speed skating",
}

// ClientConfig carries the dependencies of Client. Zero values are filled
// with production defaults by NewClient.
type ClientConfig struct {
	BaseURL   string
	UserAgent string

	// Timeout bounds a single page fetch. Fetches are not retried: a
	// failed page falls through to the next provider in the chain.
	Timeout time.Duration

	// CacheTTL bounds how long a rendered page is reused across extract
	// calls within one update run.
	CacheTTL time.Duration

	// ScheduleDelay spaces consecutive discipline page fetches.
	ScheduleDelay time.Duration

	HTTPClient     *http.Client
	CircuitBreaker resilience.CircuitBreakerConfig
	Countries      *country.Table
	Logger         *logging.Logger
}

// Client fetches rendered article markup and extracts medal standings,
// per-event winners and competition schedules from it.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	pages      *cache.Store[string]
	limiter    *rate.Limiter
	countries  *country.Table
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, crerr.Wrap(err, "wikipedia: invalid base url")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.ScheduleDelay <= 0 {
		cfg.ScheduleDelay = defaultDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Countries == nil {
		cfg.Countries = country.NewDefaultTable()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default().Named("wikipedia")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		pages:      cache.NewStore[string](cfg.CacheTTL),
		limiter:    rate.NewLimiter(rate.Every(cfg.ScheduleDelay), 1),
		countries:  cfg.Countries,
		logger:     cfg.Logger,
	}, nil
}

// page returns the rendered markup for a page title, deduplicating and
// caching concurrent fetches of the same title.
func (c *Client) page(ctx context.Context, title string) (string, error) {
	return c.pages.GetOrLoad(ctx, "page:"+title, func(ctx context.Context) (string, error) {
		return c.fetchRendered(ctx, title)
	})
}

func (c *Client) fetchRendered(ctx context.Context, title string) (string, error) {
	if err := c.breaker.Allow(); err != nil {
		return "", crerr.Wrapf(err, "wikipedia: fetch %q rejected", title)
	}

	values := url.Values{}
	values.Set("title", title)
	values.Set("action", "render")
	fullURL := c.baseURL + "/w/index.php?" + values.Encode()

	markup, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		if stderrors.Is(err, errWikipediaTransient) {
			c.breaker.RecordFailure()
		}
		c.logger.WarnContext(ctx, "wikipedia page fetch failed", "title", title, "error", err)
		return "", err
	}
	c.breaker.RecordSuccess()
	return markup, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", crerr.Wrap(err, "wikipedia: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send request: %v", errWikipediaTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response body: %v", errWikipediaTransient, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return string(body), nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: page status=%d", errWikipediaTransient, resp.StatusCode)
	default:
		return "", fmt.Errorf("page status=%d", resp.StatusCode)
	}
}
