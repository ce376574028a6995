package gnews

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"2026 Winter Olympics" - Google News</title>
<item>
<title>Shiffrin takes slalom gold - ESPN</title>
<link>https://example.com/shiffrin</link>
<pubDate>Sat, 14 Feb 2026 18:30:00 GMT</pubDate>
<source url="https://espn.com">ESPN</source>
</item>
<item>
<title>Older story about the opening ceremony - Reuters</title>
<link>https://example.com/opening</link>
<pubDate>Fri, 06 Feb 2026 21:00:00 GMT</pubDate>
</item>
<item>
<title>Shiffrin takes slalom gold - ESPN</title>
<link>https://example.com/shiffrin</link>
<pubDate>Sat, 14 Feb 2026 18:30:00 GMT</pubDate>
</item>
<item>
<title>&lt;b&gt;Hockey&lt;/b&gt; semifinal preview - NBC Sports</title>
<link>https://example.com/hockey</link>
<pubDate>Sun, 15 Feb 2026 02:10:00 GMT</pubDate>
</item>
</channel>
</rss>`

func newFeedClient(t *testing.T, handler http.Handler, maxStories int) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{
		FeedURL:    srv.URL,
		MaxStories: maxStories,
		HTTPClient: srv.Client(),
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestFetchHeadlines_NormalizesFeed(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q == "" {
			t.Error("expected a search query parameter")
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedFixture))
	})

	c := newFeedClient(t, handler, 10)
	headlines, err := c.FetchHeadlines(context.Background())
	if err != nil {
		t.Fatalf("FetchHeadlines: %v", err)
	}

	// Duplicate link collapsed, remaining three sorted newest first.
	if len(headlines) != 3 {
		t.Fatalf("expected 3 headlines, got %d: %+v", len(headlines), headlines)
	}
	if headlines[0].Title != "Hockey semifinal preview" {
		t.Fatalf("expected newest story with tags stripped first, got %q", headlines[0].Title)
	}
	if headlines[0].Source != "NBC Sports" {
		t.Fatalf("outlet not split from title: %q", headlines[0].Source)
	}

	second := headlines[1]
	if second.Title != "Shiffrin takes slalom gold" || second.Source != "ESPN" {
		t.Fatalf("unexpected second story: %+v", second)
	}
	if second.DateLabel != "Feb 14" {
		t.Fatalf("unexpected date label: %q", second.DateLabel)
	}
	if headlines[2].URL != "https://example.com/opening" {
		t.Fatalf("expected oldest story last, got %q", headlines[2].URL)
	}
}

func TestFetchHeadlines_CapsStoryCount(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedFixture))
	})

	c := newFeedClient(t, handler, 2)
	headlines, err := c.FetchHeadlines(context.Background())
	if err != nil {
		t.Fatalf("FetchHeadlines: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("expected the cap to hold, got %d", len(headlines))
	}
}

func TestFetchHeadlines_EmptyFeed(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel></channel></rss>`))
	})

	c := newFeedClient(t, handler, 10)
	_, err := c.FetchHeadlines(context.Background())
	if !stderrors.Is(err, ErrEmptyFeed) {
		t.Fatalf("expected ErrEmptyFeed, got %v", err)
	}
}

func TestFetchHeadlines_UpstreamFailure(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newFeedClient(t, handler, 10)
	if _, err := c.FetchHeadlines(context.Background()); err == nil {
		t.Fatal("expected an error for a failing feed")
	}
}
