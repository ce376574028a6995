package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

var (
	// ErrMissingAPIKey means the client was asked to search without a key
	// configured. The video category then falls straight to its fallback.
	ErrMissingAPIKey = crerr.New("youtube: api key is not configured")

	// ErrEmptyResults means the search answered with no usable videos.
	ErrEmptyResults = crerr.New("youtube: search returned no videos")
)

var keyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)

const (
	defaultBaseURL   = "https://www.googleapis.com/youtube/v3"
	defaultQuery     = "Milano Cortina 2026 Olympics highlights"
	defaultMaxVideos = 10
	defaultTimeout   = 15 * time.Second
	defaultEmoji     = "🏔️"

	watchURL = "https://www.youtube.com/watch?v="

	maxBodyBytes = 2 << 20
)

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Query      string
	MaxVideos  int
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client searches the YouTube Data API for recent highlight videos.
type Client struct {
	baseURL    string
	apiKey     string
	query      string
	maxVideos  int
	httpClient *http.Client
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, crerr.Wrap(err, "youtube: invalid base url")
	}
	if cfg.Query == "" {
		cfg.Query = defaultQuery
	}
	if cfg.MaxVideos <= 0 {
		cfg.MaxVideos = defaultMaxVideos
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default().Named("youtube")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		query:      cfg.Query,
		maxVideos:  cfg.MaxVideos,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string    `json:"title"`
		ChannelTitle string    `json:"channelTitle"`
		PublishedAt  time.Time `json:"publishedAt"`
	} `json:"snippet"`
}

// FetchVideos searches for highlight videos, deduplicated by video id with
// the first occurrence kept, capped at the configured size.
func (c *Client) FetchVideos(ctx context.Context) ([]media.Video, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("part", "snippet")
	values.Set("q", c.query)
	values.Set("type", "video")
	values.Set("order", "date")
	values.Set("maxResults", strconv.Itoa(c.maxVideos))
	values.Set("key", c.apiKey)
	fullURL := c.baseURL + "/search?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "youtube: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "youtube search failed", "url", redactKey(fullURL), "error", err)
		return nil, crerr.Wrap(err, "youtube: search request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Wrap(err, "youtube: read response")
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "youtube search rejected",
			"url", redactKey(fullURL), "status", resp.StatusCode)
		return nil, fmt.Errorf("youtube: search status=%d", resp.StatusCode)
	}

	var search searchResponse
	if err := sonic.Unmarshal(body, &search); err != nil {
		return nil, crerr.Wrap(err, "youtube: decode response")
	}

	seen := make(map[string]bool, len(search.Items))
	videos := make([]media.Video, 0, len(search.Items))
	for _, item := range search.Items {
		id := strings.TrimSpace(item.ID.VideoID)
		title := strings.TrimSpace(item.Snippet.Title)
		if id == "" || title == "" || seen[id] {
			continue
		}
		seen[id] = true

		videos = append(videos, media.Video{
			ID:        id,
			Title:     title,
			URL:       watchURL + id,
			Source:    item.Snippet.ChannelTitle,
			DateLabel: dateLabel(item.Snippet.PublishedAt),
			Emoji:     defaultEmoji,
		})
	}
	if len(videos) == 0 {
		return nil, ErrEmptyResults
	}
	if len(videos) > c.maxVideos {
		videos = videos[:c.maxVideos]
	}

	c.logger.InfoContext(ctx, "videos fetched", "videos", len(videos))
	return videos, nil
}

func redactKey(fullURL string) string {
	return keyParamRegex.ReplaceAllString(fullURL, "key=***")
}

func dateLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2")
}
