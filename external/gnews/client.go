package gnews

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

// ErrEmptyFeed means the feed answered but carried no usable stories.
var ErrEmptyFeed = crerr.New("gnews: feed returned no stories")

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

const (
	defaultFeedURL    = "https://news.google.com/rss/search"
	defaultQuery      = "Milano Cortina 2026 Winter Olympics"
	defaultMaxStories = 10
	defaultTimeout    = 15 * time.Second
	defaultUserAgent  = "olympics-dashboard/1.0 (results updater)"

	maxFeedBytes = 2 << 20
)

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
}

type ClientConfig struct {
	FeedURL    string
	Query      string
	MaxStories int
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client reads a Google News RSS search feed and normalizes its items into
// dashboard headlines.
type Client struct {
	feedURL    string
	query      string
	maxStories int
	httpClient *http.Client
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaultFeedURL
	}
	if _, err := url.Parse(cfg.FeedURL); err != nil {
		return nil, crerr.Wrap(err, "gnews: invalid feed url")
	}
	if cfg.Query == "" {
		cfg.Query = defaultQuery
	}
	if cfg.MaxStories <= 0 {
		cfg.MaxStories = defaultMaxStories
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default().Named("gnews")
	}

	return &Client{
		feedURL:    cfg.FeedURL,
		query:      cfg.Query,
		maxStories: cfg.MaxStories,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

type rssResponse struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// FetchHeadlines returns the feed's stories newest first, deduplicated by
// link and capped at the configured size.
func (c *Client) FetchHeadlines(ctx context.Context) ([]media.Headline, error) {
	feedURL := c.feedURL + "?q=" + url.QueryEscape(c.query) + "&hl=en-US&gl=US&ceid=US:en"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "gnews: build request")
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrap(err, "gnews: fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews: feed status=%d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, crerr.Wrap(err, "gnews: read feed")
	}

	var feed rssResponse
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, crerr.Wrap(err, "gnews: parse feed")
	}

	seen := make(map[string]bool, len(feed.Items))
	headlines := make([]media.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(html.UnescapeString(htmlTagRegex.ReplaceAllString(item.Title, "")))
		source := strings.TrimSpace(item.Source)

		// Google News titles embed the outlet as "Title - Source".
		if idx := strings.LastIndex(title, " - "); idx != -1 {
			if source == "" {
				source = strings.TrimSpace(title[idx+3:])
			}
			title = strings.TrimSpace(title[:idx])
		}
		if source == "" {
			source = "Google News"
		}

		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" || seen[link] {
			continue
		}
		seen[link] = true

		publishedAt := parsePubDate(item.PubDate)
		headlines = append(headlines, media.Headline{
			Title:       title,
			URL:         link,
			Source:      source,
			DateLabel:   dateLabel(publishedAt),
			PublishedAt: publishedAt,
		})
	}
	if len(headlines) == 0 {
		return nil, ErrEmptyFeed
	}

	sort.SliceStable(headlines, func(i, j int) bool {
		return headlines[i].PublishedAt.After(headlines[j].PublishedAt)
	})
	if len(headlines) > c.maxStories {
		headlines = headlines[:c.maxStories]
	}

	c.logger.InfoContext(ctx, "headlines fetched", "stories", len(headlines))
	return headlines, nil
}

func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func dateLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2")
}
