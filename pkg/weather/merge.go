package weather

import (
	"fmt"
	"math"
	"time"
)

// Merge combines the primary forecast with the supplementary Open-Meteo
// values into one record. Primary fields are copied verbatim; a
// supplementary value is attached only where the primary has none, and
// always with its own attribution. Nothing is ever interpolated.
//
// A nil primary (total primary failure) yields a sentinel record
// carrying only the date and the no-data narrative, so rendering always
// receives a value. Merge itself cannot fail.
func Merge(date time.Time, primary *Forecast, humidity *Humidity, wind *Wind, temp *Temperature) Record {
	if primary == nil {
		return Record{
			Date:  date,
			Telop: NoDataNarrative,
		}
	}

	rec := Record{
		Date:             date,
		Telop:            primary.Telop,
		DetailWeather:    primary.DetailWeather,
		Wind:             primary.DetailWind,
		Rain:             primary.Rain,
		Pressure:         PressureSituation(primary.Description),
		PublishingOffice: primary.PublishingOffice,
		Title:            primary.Title,
		PublicTime:       primary.PublicTime,
		Description:      primary.Description,
		Source:           "気象庁",
	}

	rec.TempMin, rec.TempMinSource = pickTemp(primary.TempMin, temp, func(t *Temperature) *float64 { return t.Min })
	rec.TempMax, rec.TempMaxSource = pickTemp(primary.TempMax, temp, func(t *Temperature) *float64 { return t.Max })

	if humidity != nil {
		rec.HumidityMin = humidity.Min
		rec.HumidityMax = humidity.Max
	}

	// The JMA detail text usually carries the wind; Open-Meteo only
	// substitutes when that text is missing.
	if rec.Wind == "" && wind != nil && wind.SpeedMax != nil {
		direction := wind.Direction
		if direction == "" {
			direction = "不明"
		}
		rec.Wind = fmt.Sprintf("%sの風%.1fm/s (Open-Meteo)", direction, *wind.SpeedMax)
	}

	return rec
}

// pickTemp keeps the announced JMA bound when present and otherwise
// fills from Open-Meteo, rounded to whole degrees. Each bound is decided
// independently.
func pickTemp(jma *int, temp *Temperature, bound func(*Temperature) *float64) (*int, string) {
	if jma != nil {
		return jma, "気象庁"
	}
	if temp == nil {
		return nil, ""
	}
	v := bound(temp)
	if v == nil {
		return nil, ""
	}
	rounded := int(math.Round(*v))
	return &rounded, "Open-Meteo"
}
