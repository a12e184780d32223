package weather

import "strings"

// PressureSituation derives a short pressure description from the JMA
// overview text. The keyword order matters: a dominant high-pressure
// system takes precedence, then lows, troughs, general pattern changes
// and fronts.
func PressureSituation(text string) string {
	if text == "" {
		return "不明"
	}

	switch {
	case strings.Contains(text, "高気圧に覆われ"):
		if strings.Contains(text, "気圧の谷") {
			return "高気圧圏内だが気圧の谷の影響"
		}
		return "高気圧に覆われる"
	case strings.Contains(text, "低気圧"):
		return "低気圧の影響"
	case strings.Contains(text, "気圧の谷"):
		return "気圧の谷の影響"
	case strings.Contains(text, "気圧配置"):
		return "気圧配置の変化"
	case strings.Contains(text, "前線"):
		if strings.Contains(text, "高気圧") {
			return "前線と高気圧の影響"
		}
		return "前線の影響"
	default:
		return "安定した気圧"
	}
}
