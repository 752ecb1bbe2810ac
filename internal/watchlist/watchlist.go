// Package watchlist reads the list of wanted games from a plaintext file.
package watchlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmpty is returned when the watchlist file has no non-blank lines.
var ErrEmpty = errors.New("watchlist is empty")

// File is a watchlist stored one entry per line.
type File struct {
	path string
}

// NewFile returns a watchlist backed by the file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// ReadWatchlist reads the file fresh on every call.
func (f *File) ReadWatchlist() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	entries := Parse(string(data))
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", f.path, ErrEmpty)
	}
	return entries, nil
}

// Parse splits text into trimmed, non-blank lines, keeping their order.
func Parse(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
