// Package matcher runs one pass over the deals feed and posts watchlist matches.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"steam_sale_finder/internal/filter"
	"steam_sale_finder/internal/model"
	"steam_sale_finder/internal/title"
)

// ErrWatchlistUnavailable is returned when the watchlist is missing or empty.
// The watermark is left untouched so the next run rescans the same window.
var ErrWatchlistUnavailable = errors.New("watchlist unavailable")

// FeedSource returns the current feed entries, newest first.
type FeedSource interface {
	FetchEntries(ctx context.Context) ([]model.FeedEntry, error)
}

// WatchlistSource returns the wanted games.
type WatchlistSource interface {
	ReadWatchlist() ([]string, error)
}

// Notifier publishes one status update.
type Notifier interface {
	Post(ctx context.Context, message string) error
}

// WatermarkStore persists the time of the last completed run.
type WatermarkStore interface {
	Read() (time.Time, error)
	Write(now time.Time) error
}

// Matcher checks new feed entries against the watchlist.
//
// Delivery is at-least-once: a run that fails after posting but before the
// watermark write posts the same sales again on the next run.
type Matcher struct {
	feed      FeedSource
	watchlist WatchlistSource
	notifier  Notifier
	watermark WatermarkStore
	log       *slog.Logger
	now       func() time.Time
	fullScan  bool
}

// New creates a Matcher.
func New(feed FeedSource, watchlist WatchlistSource, notifier Notifier, watermark WatermarkStore, log *slog.Logger) *Matcher {
	return &Matcher{
		feed:      feed,
		watchlist: watchlist,
		notifier:  notifier,
		watermark: watermark,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetFullScan makes Run skip old entries instead of stopping at the first one.
// Needed when the feed is not sorted newest-first.
func (m *Matcher) SetFullScan(on bool) {
	m.fullScan = on
}

// SetClock overrides the time source used for the watermark write.
func (m *Matcher) SetClock(now func() time.Time) {
	m.now = now
}

// Run performs one pass. Feed and notifier errors are returned without
// advancing the watermark; malformed titles are logged and skipped.
func (m *Matcher) Run(ctx context.Context) (model.RunResult, error) {
	last, err := m.watermark.Read()
	if err != nil {
		return model.RunResult{}, fmt.Errorf("read watermark: %w", err)
	}
	if last.IsZero() {
		m.log.Info("no previous run recorded, all entries are new")
	} else {
		m.log.Info("last checked", "at", last.Format(time.ANSIC))
	}

	entries, err := m.feed.FetchEntries(ctx)
	if err != nil {
		return model.RunResult{}, fmt.Errorf("fetch entries: %w", err)
	}

	wanted, err := m.watchlist.ReadWatchlist()
	if err != nil {
		return model.RunResult{}, fmt.Errorf("%w: %w", ErrWatchlistUnavailable, err)
	}
	if len(wanted) == 0 {
		return model.RunResult{}, ErrWatchlistUnavailable
	}

	var res model.RunResult
	for _, entry := range entries {
		if entry.UpdatedAt.Before(last) {
			if m.fullScan {
				continue
			}
			break
		}
		res.EntriesScanned++

		sale, err := title.Parse(entry.Title)
		if err != nil {
			m.log.Warn("skipping entry", "error", err)
			continue
		}

		for _, ev := range matches(entry, sale, wanted) {
			if err := m.notifier.Post(ctx, ev.RawTitle); err != nil {
				return res, fmt.Errorf("post %q: %w", ev.RawTitle, err)
			}
			res.MatchesFound++
			m.log.Info("posted match",
				"game", ev.Sale.GameTitle,
				"watchlist_entry", ev.Entry,
				"percent_off", ev.Sale.PercentOff,
				"price", ev.Sale.Price,
			)
		}
	}

	m.log.Info("entries since last check", "scanned", res.EntriesScanned, "matches", res.MatchesFound)

	if err := m.watermark.Write(m.now()); err != nil {
		return res, fmt.Errorf("write watermark: %w", err)
	}
	return res, nil
}

func matches(entry model.FeedEntry, sale model.ParsedSale, wanted []string) []model.MatchEvent {
	var events []model.MatchEvent
	for _, w := range filter.Match(sale.GameTitle, wanted) {
		events = append(events, model.MatchEvent{Sale: sale, Entry: w, RawTitle: entry.Title})
	}
	return events
}
