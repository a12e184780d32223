// Package events loads school schedule and promotional events for a date
// range, preferring the remote calendar and falling back to a local CSV
// file when the remote source is unavailable.
package events

import (
	"errors"
	"sort"
	"time"
)

const (
	// CategorySchedule marks regular school-calendar entries.
	CategorySchedule = "schedule"
	// CategoryPromo marks admissions/promotional events (説明会 etc.).
	CategoryPromo = "promo"
)

var (
	// ErrSourceUnavailable means the remote calendar could not serve the
	// request (missing credentials, network or decode failure). It is
	// expected and triggers the file fallback.
	ErrSourceUnavailable = errors.New("event source unavailable")

	// ErrMalformedSource means the local fallback file is corrupt. There
	// is no further fallback, so this surfaces to the operator.
	ErrMalformedSource = errors.New("malformed event source")
)

// Event is one calendar entry. Events from the remote calendar and the
// fallback file are structurally interchangeable; Origin records which
// source produced the record, for diagnostics only.
type Event struct {
	Date        time.Time
	Title       string
	Category    string
	Description string
	StartTime   string // optional display time "15:04"; empty for all-day events
	Origin      string
}

// Provider loads events inside an inclusive date range.
type Provider interface {
	Load(from, to time.Time) ([]Event, error)
	Name() string
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// InRange reports whether d falls on a calendar day between from and to
// inclusive. Days are compared by date, not by instant: a provider date
// parsed at UTC midnight still matches a JST-midnight target on the same
// calendar day.
func InRange(d, from, to time.Time) bool {
	key := dateKey(d)
	return key >= dateKey(from) && key <= dateKey(to)
}

var categoryRank = map[string]int{
	CategorySchedule: 0,
	CategoryPromo:    1,
}

// Sort orders events date-ascending, schedule before promotional on the
// same date, for stable display.
func Sort(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ki, kj := dateKey(events[i].Date), dateKey(events[j].Date)
		if ki != kj {
			return ki < kj
		}
		return categoryRank[events[i].Category] < categoryRank[events[j].Category]
	})
}

// FilterCategory returns the events of one category, preserving order.
func FilterCategory(events []Event, category string) []Event {
	var out []Event
	for _, e := range events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
