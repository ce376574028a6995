package youtube

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

const searchFixture = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "Figure skating free dance highlights",
        "channelTitle": "Olympics",
        "publishedAt": "2026-02-14T08:00:00Z"
      }
    },
    {
      "id": {"videoId": "abc123"},
      "snippet": {"title": "Repost of the free dance", "channelTitle": "Mirror"}
    },
    {
      "id": {"videoId": ""},
      "snippet": {"title": "Channel trailer without a video id", "channelTitle": "Noise"}
    },
    {
      "id": {"videoId": "def456"},
      "snippet": {
        "title": "Super-G full run",
        "channelTitle": "NBC Sports",
        "publishedAt": "2026-02-13T19:30:00Z"
      }
    }
  ]
}`

func newSearchClient(t *testing.T, handler http.Handler, apiKey string) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		APIKey:     apiKey,
		HTTPClient: srv.Client(),
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestFetchVideos_NormalizesSearchResults(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected api key on request, got %q", got)
		}
		if got := r.URL.Query().Get("type"); got != "video" {
			t.Errorf("expected type=video, got %q", got)
		}
		_, _ = w.Write([]byte(searchFixture))
	})

	c := newSearchClient(t, handler, "secret")
	videos, err := c.FetchVideos(context.Background())
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}

	// Duplicate id keeps its first occurrence, the id-less item is dropped.
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d: %+v", len(videos), videos)
	}
	first := videos[0]
	if first.ID != "abc123" || first.Title != "Figure skating free dance highlights" {
		t.Fatalf("unexpected first video: %+v", first)
	}
	if first.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("unexpected watch url: %q", first.URL)
	}
	if first.DateLabel != "Feb 14" || first.Emoji == "" {
		t.Fatalf("unexpected presentation fields: %+v", first)
	}
	if videos[1].Source != "NBC Sports" {
		t.Fatalf("unexpected second video: %+v", videos[1])
	}
}

func TestFetchVideos_MissingKey(t *testing.T) {
	t.Parallel()

	c, err := NewClient(ClientConfig{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.FetchVideos(context.Background()); !stderrors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestFetchVideos_EmptyResults(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	c := newSearchClient(t, handler, "secret")
	if _, err := c.FetchVideos(context.Background()); !stderrors.Is(err, ErrEmptyResults) {
		t.Fatalf("expected ErrEmptyResults, got %v", err)
	}
}

func TestRedactKey(t *testing.T) {
	t.Parallel()

	in := "https://api.example.com/search?key=verysecret&q=olympics"
	out := redactKey(in)
	if out != "https://api.example.com/search?key=***&q=olympics" {
		t.Fatalf("key not redacted: %q", out)
	}
}
