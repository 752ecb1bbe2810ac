// Package filter implements the watchlist matching engine.
package filter

import (
	"strings"
)

// Match returns every watchlist entry found in gameTitle, ignoring case.
// Entries are returned in watchlist order; duplicates in the watchlist match repeatedly.
func Match(gameTitle string, watchlist []string) []string {
	var matched []string
	for _, entry := range watchlist {
		if Contains(gameTitle, entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Contains reports whether entry occurs in text, ignoring case.
func Contains(text, entry string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(entry))
}
