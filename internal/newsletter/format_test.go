package newsletter

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"ichinichi/pkg/events"
	"ichinichi/pkg/media"
	"ichinichi/pkg/weather"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecord() weather.Record {
	return weather.Record{
		Date:          day(2025, 6, 9),
		Telop:         "晴れ",
		Wind:          "南の風",
		TempMin:       intPtr(18),
		TempMinSource: "気象庁",
		TempMax:       intPtr(26),
		TempMaxSource: "気象庁",
		Rain: weather.RainChance{
			T00to06: intPtr(0),
			T06to12: intPtr(10),
			T12to18: intPtr(30),
			T18to24: intPtr(20),
		},
		HumidityMin: floatPtr(40),
		HumidityMax: floatPtr(70),
		Pressure:    "高気圧圏内",
		Source:      "気象庁",
	}
}

func TestFormatTemperature(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, FormatTemperature(rec), "最高26℃、最低18℃")

	rec.TempMax = intPtr(27)
	rec.TempMaxSource = "Open-Meteo"
	assert.Equal(t, FormatTemperature(rec), "最高27℃（Open-Meteo）、最低18℃")

	rec.TempMin = nil
	assert.Equal(t, FormatTemperature(rec), "最高27℃（Open-Meteo）、最低データなし")

	rec.TempMax = nil
	assert.Equal(t, FormatTemperature(rec), "データなし")
}

func TestFormatHumidity(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, FormatHumidity(rec), "最小40% - 最大70%（平均55%）")

	rec.HumidityMax = nil
	assert.Equal(t, FormatHumidity(rec), "データなし")
}

func TestFormatRain(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, FormatRain(rec.Rain), "午前・日中30%、夜間20%")

	// only a night bucket present
	assert.Equal(t, FormatRain(weather.RainChance{T00to06: intPtr(40)}), "午前・日中--、夜間40%")

	assert.Equal(t, FormatRain(weather.RainChance{}), "データなし")
}

func TestFormatWeatherSectionSentinel(t *testing.T) {
	rec := weather.Record{Date: day(2025, 6, 9), Telop: weather.NoDataNarrative}

	got := FormatWeatherSection(rec, "")
	if !strings.Contains(got, "取得できませんでした") {
		t.Fatalf("sentinel prose missing, got %q", got)
	}
	if strings.Contains(got, "気温は") {
		t.Fatalf("sentinel section must not mention temperatures: %q", got)
	}
}

func TestFormatWeatherSectionWithMessage(t *testing.T) {
	got := FormatWeatherSection(sampleRecord(), "水分補給を忘れずに。")

	if !strings.Contains(got, "6月9日（月）の天気は晴れです。") {
		t.Fatalf("missing narrative line: %q", got)
	}
	if !strings.Contains(got, "全体的に暑い一日になりそうです。") {
		t.Fatalf("missing comfort phrase: %q", got)
	}
	if !strings.HasSuffix(got, "水分補給を忘れずに。") {
		t.Fatalf("message must close the section: %q", got)
	}
}

func TestFormatScheduleSection(t *testing.T) {
	assert.Equal(t, FormatScheduleSection(nil), "今日はおやすみです。")

	got := FormatScheduleSection([]events.Event{
		{Title: "全校朝礼", StartTime: "08:30"},
		{Title: "中間試験"},
	})
	assert.Equal(t, got, "・08:30 全校朝礼\n・中間試験")
}

func TestFormatPromoSection(t *testing.T) {
	if !strings.Contains(FormatPromoSection(nil), "予定されている学校説明会等のイベントはございません") {
		t.Fatal("empty promo list must keep the notice")
	}

	got := FormatPromoSection([]events.Event{
		{Date: day(2025, 7, 12), Title: "学校説明会"},
	})
	assert.Equal(t, got, "・7月12日（土）: 学校説明会")
}

func TestFormatMediaSection(t *testing.T) {
	assert.Equal(t, FormatMediaSection(nil), "")

	got := FormatMediaSection(&media.Summary{
		Title:   "校舎ツアー",
		Summary: "新校舎を紹介しています。",
		Tagline: "新しい学び舎へ。",
		URL:     "https://www.youtube.com/watch?v=abc",
	})
	if !strings.Contains(got, "本日の動画「校舎ツアー」") || !strings.Contains(got, "一言：新しい学び舎へ。") {
		t.Fatalf("unexpected media section: %q", got)
	}
}
