// Package weather produces one merged forecast record per target date by
// combining a JMA-compatible forecast API with Open-Meteo supplementary
// data. The two providers have independent availability and independent
// date semantics, so they are fetched and matched separately and merged
// by value.
package weather

import (
	"errors"
	"time"
)

var (
	// ErrSourceUnavailable means a provider could not be reached or
	// returned a malformed response.
	ErrSourceUnavailable = errors.New("weather source unavailable")

	// ErrDateNotInWindow means the provider answered but its forecast
	// window does not contain the requested date.
	ErrDateNotInWindow = errors.New("date not in forecast window")
)

// NoDataNarrative is the narrative placed on a sentinel record when the
// primary provider produced nothing.
const NoDataNarrative = "データなし"

// Cache is an optional TTL cache for raw provider responses. A nil cache
// is valid; lookups and stores then never happen. Cache failures must be
// indistinguishable from misses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// RainChance holds the precipitation probability per quarter-day bucket.
// A nil bucket means the provider reported no value, never zero.
type RainChance struct {
	T00to06 *int
	T06to12 *int
	T12to18 *int
	T18to24 *int
}

// Record is the merged weather view handed to the newsletter. Every
// numeric field is either a provider value or nil; values are never
// interpolated.
type Record struct {
	Date time.Time

	Telop         string // narrative summary; NoDataNarrative on a sentinel record
	DetailWeather string
	Wind          string // display text; carries an Open-Meteo note when supplemented

	TempMin       *int
	TempMax       *int
	TempMinSource string // "気象庁" or "Open-Meteo"; empty when absent
	TempMaxSource string

	Rain RainChance

	HumidityMin *float64
	HumidityMax *float64

	Pressure string // pressure situation extracted from the JMA description

	PublishingOffice string
	Title            string
	PublicTime       string
	Description      string

	Source string // attribution of the primary narrative
}

// HumidityAvg returns the midpoint of the humidity range, or false when
// either bound is absent.
func (r Record) HumidityAvg() (float64, bool) {
	if r.HumidityMin == nil || r.HumidityMax == nil {
		return 0, false
	}
	return (*r.HumidityMin + *r.HumidityMax) / 2, true
}

// HasData reports whether the record carries a real primary forecast
// rather than the no-data sentinel.
func (r Record) HasData() bool {
	return r.Telop != "" && r.Telop != NoDataNarrative
}

// Comfort grades the day from the announced maximum temperature. Empty
// when no temperature is known; comfort is never guessed from narrative
// text alone.
func (r Record) Comfort() string {
	if r.TempMax == nil {
		return ""
	}
	switch t := *r.TempMax; {
	case t >= 35:
		return "厳しい暑さ"
	case t >= 30:
		return "とても暑い"
	case t >= 25:
		return "暑い"
	case t >= 20:
		return "過ごしやすい"
	case t >= 15:
		return "涼しい"
	default:
		return "肌寒い"
	}
}
