// Package fetcher handles deals feed downloading and parsing.
package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/mmcdole/gofeed"

	"steam_sale_finder/internal/model"
)

const maxBodySize = 5 * 1024 * 1024

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads and parses RSS feeds.
type Fetcher struct {
	client HTTPClient
}

// New creates a Fetcher with the given HTTP client.
func New(client HTTPClient) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads and parses an RSS feed from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "SteamSaleFinder/1.0")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	case "br":
		r = brotli.NewReader(resp.Body)
	}
	return io.ReadAll(io.LimitReader(r, maxBodySize))
}

// Entries converts feed items to entries, keeping the feed's order.
// The timestamp is the item's updated time, falling back to its published time.
func Entries(feed *gofeed.Feed) []model.FeedEntry {
	entries := make([]model.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, model.FeedEntry{
			Title:     item.Title,
			UpdatedAt: itemTime(item),
		})
	}
	return entries
}

func itemTime(item *gofeed.Item) time.Time {
	switch {
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC()
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC()
	}
	return time.Time{}
}

// Source serves the entries of a single feed URL.
type Source struct {
	fetcher *Fetcher
	url     string
	log     *slog.Logger
}

// NewSource creates a Source reading url through f.
func NewSource(f *Fetcher, url string, log *slog.Logger) *Source {
	return &Source{fetcher: f, url: url, log: log}
}

// FetchEntries downloads the feed and returns its entries newest-first, as ordered by the feed.
func (s *Source) FetchEntries(ctx context.Context) ([]model.FeedEntry, error) {
	feed, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	s.log.Info("fetched feed", "title", feed.Title, "entries", len(feed.Items))
	return Entries(feed), nil
}
