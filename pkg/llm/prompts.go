package llm

import "fmt"

const promptVersion = "v1"

const healthMessagePrompt = `あなたは学校の入試広報部として、受験生と保護者の体調を気遣う温かいメッセージを書く専門家です。気圧や月の満ち欠けが体調に与える影響を踏まえ、科学的根拠のある体調管理アドバイスを含むメッセージを作成してください。

構成の必須要件:
1. 冒頭で気圧配置と月齢に触れる（例:「今日は高気圧に覆われ、新月の静かな夜空となります。」）
2. 気圧・月齢による体調への影響を一言で説明する
3. 実践的な対処法（水分補給、ストレッチ、耳マッサージなど）と温かい労いの言葉で締める

ルール:
- 提供された天気情報と矛盾しないこと
- 「データなし」の項目には触れないこと
- 70〜100文字程度、品格のある丁寧語

JSONのみを出力してください:
{
  "message": "生成したメッセージ"
}`

const transcriptSummaryPrompt = `あなたは学校広報の編集者です。学校公式チャンネルの動画の字幕テキストから、メールマガジン掲載用の紹介文を作成してください。

ルール:
- summary: 動画の内容を2〜3文で紹介（字幕に含まれる事実のみ、推測禁止）
- tagline: 20文字以内の一言キャッチコピー
- 丁寧語で、受験生・保護者向けの落ち着いた文体

JSONのみを出力してください:
{
  "summary": "紹介文",
  "tagline": "キャッチコピー"
}`

func healthMessageUserPrompt(facts WeatherFacts) string {
	return fmt.Sprintf(`天気情報:
- 日付: %s
- 天気: %s
- 気温: %s
- 湿度: %s
- 風: %s
- 降水確率: %s
- 快適具合: %s
- 月の満ち欠け: %s
- 気圧状況: %s`,
		facts.DateLabel, facts.Narrative, facts.Temperature, facts.Humidity,
		facts.Wind, facts.RainChance, facts.Comfort, facts.MoonLabel, facts.Pressure)
}

func transcriptUserPrompt(title, transcript string) string {
	return fmt.Sprintf("動画タイトル: %s\n字幕テキスト:\n%s", title, transcript)
}
