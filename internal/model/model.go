// Package model defines the domain types used across the application.
package model

import (
	"strings"
	"time"
)

// FeedEntry is one item of the deals feed.
// UpdatedAt is the timestamp reported by the feed, not the time it was fetched.
type FeedEntry struct {
	Title     string
	UpdatedAt time.Time
}

// ParsedSale holds the fields extracted from a feed entry title.
// PercentOff and Price are kept as text since the feed format is inconsistent.
type ParsedSale struct {
	GameTitle  string
	PercentOff string
	Price      string
}

// Amount returns the price with a single leading currency symbol removed.
func (s ParsedSale) Amount() string {
	for _, sym := range []string{"£", "$", "€"} {
		if rest, ok := strings.CutPrefix(s.Price, sym); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s.Price
}

// MatchEvent pairs a parsed sale with the watchlist entry it matched.
type MatchEvent struct {
	Sale     ParsedSale
	Entry    string
	RawTitle string
}

// RunResult summarises one pass over the feed.
type RunResult struct {
	EntriesScanned int
	MatchesFound   int
}
