package weather

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func floatPtr(v float64) *float64 { return &v }

func sampleForecast() *Forecast {
	return &Forecast{
		Date:             "2025-06-09",
		DateLabel:        "明日",
		Telop:            "晴れ",
		DetailWeather:    "晴れ時々くもり",
		DetailWind:       "南の風",
		TempMin:          intPtr(18),
		TempMax:          intPtr(26),
		Rain:             RainChance{T06to12: intPtr(10)},
		PublishingOffice: "気象庁",
		Description:      "本州付近は高気圧に覆われています。",
	}
}

func TestMergeAttachesHumidity(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	humidity := &Humidity{Min: floatPtr(40), Max: floatPtr(70)}

	rec := Merge(date, sampleForecast(), humidity, nil, nil)

	assert.Equal(t, "晴れ", rec.Telop)
	assert.Equal(t, 18, *rec.TempMin)
	assert.Equal(t, 26, *rec.TempMax)
	assert.Equal(t, "気象庁", rec.TempMinSource)
	assert.Equal(t, 40.0, *rec.HumidityMin)
	assert.Equal(t, 70.0, *rec.HumidityMax)
	assert.Equal(t, "高気圧に覆われる", rec.Pressure)

	avg, ok := rec.HumidityAvg()
	assert.Equal(t, true, ok)
	assert.Equal(t, 55.0, avg)
}

func TestMergeAbsentHumidityStaysAbsent(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	rec := Merge(date, sampleForecast(), nil, nil, nil)

	assert.Equal(t, "晴れ", rec.Telop)
	if rec.HumidityMin != nil || rec.HumidityMax != nil {
		t.Fatal("expected absent humidity when the secondary source has no value")
	}
	_, ok := rec.HumidityAvg()
	assert.Equal(t, false, ok)
}

func TestMergeFillsMissingTemperatureBoundIndependently(t *testing.T) {
	forecast := sampleForecast()
	forecast.TempMin = nil

	rec := Merge(forecast.dateValue(), forecast, nil, nil, &Temperature{Min: floatPtr(17.6), Max: floatPtr(30.2)})

	// Announced max wins; only the missing min is filled, rounded.
	assert.Equal(t, 26, *rec.TempMax)
	assert.Equal(t, "気象庁", rec.TempMaxSource)
	assert.Equal(t, 18, *rec.TempMin)
	assert.Equal(t, "Open-Meteo", rec.TempMinSource)
}

func TestMergeNeverFabricatesTemperature(t *testing.T) {
	forecast := sampleForecast()
	forecast.TempMin = nil
	forecast.TempMax = nil

	rec := Merge(forecast.dateValue(), forecast, nil, nil, nil)

	if rec.TempMin != nil || rec.TempMax != nil {
		t.Fatal("expected absent temperatures when no source has a value")
	}
	assert.Equal(t, "", rec.TempMinSource)
}

func TestMergeWindSubstitutedOnlyWhenPrimaryEmpty(t *testing.T) {
	wind := &Wind{SpeedMax: floatPtr(4.2), Direction: "南"}

	withJMAWind := Merge(time.Now(), sampleForecast(), nil, wind, nil)
	assert.Equal(t, "南の風", withJMAWind.Wind)

	forecast := sampleForecast()
	forecast.DetailWind = ""
	withoutJMAWind := Merge(time.Now(), forecast, nil, wind, nil)
	assert.Equal(t, "南の風4.2m/s (Open-Meteo)", withoutJMAWind.Wind)
}

func TestMergePrimaryAbsentYieldsSentinel(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	rec := Merge(date, nil, &Humidity{Min: floatPtr(40), Max: floatPtr(70)}, nil, nil)

	assert.Equal(t, date, rec.Date)
	assert.Equal(t, NoDataNarrative, rec.Telop)
	assert.Equal(t, false, rec.HasData())
	if rec.TempMin != nil || rec.TempMax != nil {
		t.Fatal("sentinel record must not carry temperatures")
	}
}

func TestMergeIsDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	humidity := &Humidity{Min: floatPtr(40), Max: floatPtr(70)}

	a := Merge(date, sampleForecast(), humidity, nil, nil)
	b := Merge(date, sampleForecast(), humidity, nil, nil)

	assert.Equal(t, a.Telop, b.Telop)
	assert.Equal(t, *a.TempMin, *b.TempMin)
	assert.Equal(t, *a.HumidityMax, *b.HumidityMax)
	assert.Equal(t, a.Pressure, b.Pressure)
}

func TestComfort(t *testing.T) {
	tests := []struct {
		max  *int
		want string
	}{
		{nil, ""},
		{intPtr(36), "厳しい暑さ"},
		{intPtr(31), "とても暑い"},
		{intPtr(26), "暑い"},
		{intPtr(22), "過ごしやすい"},
		{intPtr(17), "涼しい"},
		{intPtr(10), "肌寒い"},
	}

	for _, tt := range tests {
		rec := Record{TempMax: tt.max}
		assert.Equal(t, tt.want, rec.Comfort())
	}
}

// dateValue parses the forecast's own date key for test convenience.
func (f *Forecast) dateValue() time.Time {
	d, _ := time.Parse("2006-01-02", f.Date)
	return d
}
