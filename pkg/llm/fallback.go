package llm

import (
	"fmt"
	"strings"
)

// FallbackMessage composes a deterministic health message from the
// weather narrative, moon label and pressure situation. It is used when
// no collaborator is configured or the call fails, so the weather
// section always closes with something sensible.
func FallbackMessage(facts WeatherFacts) string {
	var weatherPart string
	switch {
	case strings.Contains(facts.Narrative, "雨"):
		weatherPart = "雨の日ですが"
	case strings.Contains(facts.Narrative, "晴"):
		weatherPart = "美しい晴天に恵まれ"
	case strings.Contains(facts.Narrative, "曇"):
		weatherPart = "落ち着いた曇り空の下"
	case strings.Contains(facts.Narrative, "雪"):
		weatherPart = "雪景色の美しい日"
	default:
		weatherPart = "穏やかな一日"
	}

	var moonPart string
	moon := facts.MoonLabel
	switch {
	case strings.Contains(moon, "今日が満月"):
		moonPart = "今夜は満月の美しい光に包まれ"
	case strings.Contains(moon, "明日が満月"):
		moonPart = "明日の満月を楽しみに"
	case strings.Contains(moon, "満月まであと"):
		moonPart = fmt.Sprintf("%sの美しい夜空を見上げながら", moon)
	case strings.Contains(moon, "今日が新月"):
		moonPart = "新月の静寂な夜空に心を落ち着かせ"
	case strings.Contains(moon, "明日が新月"):
		moonPart = "明日の新月に向けて心を整え"
	case strings.Contains(moon, "新月まであと"):
		moonPart = fmt.Sprintf("%sの夜空に思いを馳せ", moon)
	default:
		moonPart = "美しい夜空を見上げながら"
	}

	var pressurePart string
	pressure := facts.Pressure
	switch {
	case strings.Contains(pressure, "低気圧") || strings.Contains(pressure, "気圧の谷"):
		pressurePart = "気圧の変化で体調を崩しやすい時期ですが、お体をお大事にお過ごしください。"
	case strings.Contains(pressure, "高気圧") && !strings.Contains(pressure, "谷"):
		pressurePart = "安定した気圧で心身ともに快適にお過ごしいただけることと存じます。"
	default:
		pressurePart = "気圧の変化にお気をつけて、ゆっくりとお過ごしください。"
	}

	return fmt.Sprintf("%s、%s、%s", weatherPart, moonPart, pressurePart)
}
