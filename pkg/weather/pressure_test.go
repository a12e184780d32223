package weather

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestPressureSituation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty text", "", "不明"},
		{"high pressure", "本州付近は高気圧に覆われています。", "高気圧に覆われる"},
		{"high pressure with trough", "高気圧に覆われますが、気圧の谷の影響を受ける見込みです。", "高気圧圏内だが気圧の谷の影響"},
		{"low pressure", "低気圧が日本海を東へ進んでいます。", "低気圧の影響"},
		{"trough alone", "気圧の谷が通過する見込みです。", "気圧の谷の影響"},
		{"pressure pattern", "冬型の気圧配置が強まるでしょう。", "気圧配置の変化"},
		{"front with high", "前線が停滞し、高気圧の張り出しが続きます。", "前線と高気圧の影響"},
		{"front alone", "梅雨前線が本州付近に停滞しています。", "前線の影響"},
		{"no keywords", "晴れの天気が続くでしょう。", "安定した気圧"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PressureSituation(tt.text))
		})
	}
}
