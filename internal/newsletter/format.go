package newsletter

import (
	"fmt"
	"strings"

	"ichinichi/internal/dateutil"
	"ichinichi/pkg/events"
	"ichinichi/pkg/llm"
	"ichinichi/pkg/media"
	"ichinichi/pkg/weather"
)

const (
	noDataText      = "データなし"
	noWindText      = "情報なし"
	noScheduleText  = "今日はおやすみです。"
	noPromoText     = "現在、2ヶ月以内に予定されている学校説明会等のイベントはございません。最新情報は学校ホームページをご確認ください。"
	noWeatherIntro  = "本日の天気情報は取得できませんでした。最新の予報は気象庁の発表をご確認ください。"
	openMeteoSource = "Open-Meteo"
)

// FormatTemperature renders the temperature range with per-bound source
// attribution when a bound was filled from Open-Meteo.
func FormatTemperature(rec weather.Record) string {
	if rec.TempMax == nil && rec.TempMin == nil {
		return noDataText
	}

	bound := func(label string, v *int, source string) string {
		if v == nil {
			return label + "データなし"
		}
		if source == openMeteoSource {
			return fmt.Sprintf("%s%d℃（%s）", label, *v, source)
		}
		return fmt.Sprintf("%s%d℃", label, *v)
	}

	return bound("最高", rec.TempMax, rec.TempMaxSource) + "、" + bound("最低", rec.TempMin, rec.TempMinSource)
}

// FormatHumidity renders the humidity range, or the no-data marker when
// either bound is absent.
func FormatHumidity(rec weather.Record) string {
	if rec.HumidityMin == nil || rec.HumidityMax == nil {
		return noDataText
	}
	avg, _ := rec.HumidityAvg()
	return fmt.Sprintf("最小%.0f%% - 最大%.0f%%（平均%.0f%%）", *rec.HumidityMin, *rec.HumidityMax, avg)
}

// FormatRain folds the quarter-day buckets into the newsletter's
// 午前・日中 (06-18) and 夜間 (18-06) figures, taking the maximum of the
// present buckets in each half. Halves with no data render as "--".
func FormatRain(rain weather.RainChance) string {
	daytime := maxBucket(rain.T06to12, rain.T12to18)
	night := maxBucket(rain.T18to24, rain.T00to06)

	display := func(v *int) string {
		if v == nil {
			return "--"
		}
		return fmt.Sprintf("%d%%", *v)
	}

	if daytime == nil && night == nil {
		return noDataText
	}
	return fmt.Sprintf("午前・日中%s、夜間%s", display(daytime), display(night))
}

func maxBucket(values ...*int) *int {
	var max *int
	for _, v := range values {
		if v == nil {
			continue
		}
		if max == nil || *v > *max {
			max = v
		}
	}
	return max
}

// FormatWind returns the wind display text or its placeholder.
func FormatWind(rec weather.Record) string {
	if rec.Wind == "" {
		return noWindText
	}
	return rec.Wind
}

// BuildWeatherFacts prepares the factual prompt input for the health
// message. Absent fields carry their placeholder text.
func BuildWeatherFacts(rec weather.Record, moonLabel string) llm.WeatherFacts {
	return llm.WeatherFacts{
		DateLabel:   dateutil.DisplayDate(rec.Date),
		Narrative:   rec.Telop,
		Temperature: FormatTemperature(rec),
		Humidity:    FormatHumidity(rec),
		Wind:        FormatWind(rec),
		RainChance:  FormatRain(rec.Rain),
		Comfort:     rec.Comfort(),
		MoonLabel:   moonLabel,
		Pressure:    rec.Pressure,
	}
}

// FormatWeatherSection builds the weather prose for the newsletter body,
// closing with the health message when one exists.
func FormatWeatherSection(rec weather.Record, healthMessage string) string {
	var b strings.Builder

	if !rec.HasData() {
		b.WriteString(noWeatherIntro)
	} else {
		dateLabel := dateutil.DisplayDate(rec.Date)
		b.WriteString(fmt.Sprintf("%sの天気は%sです。気温は%sとなる予想です。\n", dateLabel, rec.Telop, FormatTemperature(rec)))
		b.WriteString(fmt.Sprintf("湿度は%sで、風は%sとなっています。\n", FormatHumidity(rec), FormatWind(rec)))
		b.WriteString(fmt.Sprintf("降水確率は%sとなっており", FormatRain(rec.Rain)))
		if comfort := rec.Comfort(); comfort != "" {
			b.WriteString(fmt.Sprintf("、全体的に%s一日になりそうです。", comfort))
		} else {
			b.WriteString("ます。")
		}
	}

	if healthMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(healthMessage)
	}
	return b.String()
}

// FormatScheduleSection lists the day's school events as bullets.
func FormatScheduleSection(schedule []events.Event) string {
	if len(schedule) == 0 {
		return noScheduleText
	}

	var lines []string
	for _, e := range schedule {
		if e.StartTime != "" {
			lines = append(lines, fmt.Sprintf("・%s %s", e.StartTime, e.Title))
			continue
		}
		lines = append(lines, "・"+e.Title)
	}
	return strings.Join(lines, "\n")
}

// FormatPromoSection lists upcoming admissions events with their dates.
func FormatPromoSection(promos []events.Event) string {
	if len(promos) == 0 {
		return noPromoText
	}

	var lines []string
	for _, e := range promos {
		lines = append(lines, fmt.Sprintf("・%s: %s", dateutil.DisplayDate(e.Date), e.Title))
	}
	return strings.Join(lines, "\n")
}

// FormatMediaSection introduces the day's video. Empty when the media
// summary is absent, which omits the section entirely.
func FormatMediaSection(summary *media.Summary) string {
	if summary == nil {
		return ""
	}
	return fmt.Sprintf("本日の動画「%s」\n%s\n一言：%s\n%s",
		summary.Title, summary.Summary, summary.Tagline, summary.URL)
}
