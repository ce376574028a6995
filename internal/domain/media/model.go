package media

import "time"

// Headline is one syndicated news item.
type Headline struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	DateLabel   string    `json:"date"`
	PublishedAt time.Time `json:"-"`
}

// Video is one search-API highlight.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	DateLabel string `json:"date"`
	Emoji     string `json:"emoji"`
}
