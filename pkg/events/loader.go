package events

import (
	"errors"
	"time"
)

// Loader tries the remote provider first and transparently substitutes
// the fallback provider's result on any ErrSourceUnavailable. Callers
// can only tell the origins apart via the Origin tag on each event.
type Loader struct {
	Remote   Provider // optional; nil means fallback only
	Fallback Provider
}

// Load returns the events for the inclusive range, sorted date-ascending
// with schedule entries before promotional ones.
func (l *Loader) Load(from, to time.Time) ([]Event, error) {
	if l.Remote != nil {
		events, err := l.Remote.Load(from, to)
		if err == nil {
			Sort(events)
			return events, nil
		}
		if !errors.Is(err, ErrSourceUnavailable) {
			return nil, err
		}
	}

	events, err := l.Fallback.Load(from, to)
	if err != nil {
		return nil, err
	}
	Sort(events)
	return events, nil
}
