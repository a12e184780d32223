package newsletter

import (
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"ichinichi/internal/dateutil"
)

const issueTemplate = `『一日一知』日大一を毎日少しずつ知る学校案内 {{.DateFull}}, No.{{.IssueNumber}}

日本大学第一中学・高等学校にご関心をお寄せいただき、誠にありがとうございます。「メルマガ『一日一知』日大一を毎日少しずつ知る学校案内」にお申込みいただいた皆様に、今日の日大一の様子をお伝えします。

1. 本日の墨田区横網の天気
-----
{{.Weather}}
-----

2. 今日の日大一
-----
{{.Schedule}}
-----

3. 今後の学校説明会について
-----
以下の日程で実施予定となっております。メルマガを通して「来校型イベント」に興味を持っていただけましたら、以下のURLからお申し込みいただければ幸いです。
中学受験：https://mirai-compass.net/usr/ndai1j/event/evtIndex.jsf
高校受験：https://mirai-compass.net/usr/ndai1h/event/evtIndex.jsf
{{.Promos}}
-----
{{if .Media}}
{{.MediaSectionNo}}. 今日の動画
-----
{{.Media}}
-----
{{end}}
{{.GuideSectionNo}}. 今日の学校案内（{{.Weekday}}曜日のテーマ：{{.WeekdayTheme}}）
-----

-----

今回のメルマガは以上となります。

ご不明な点やご質問がございましたら、お気軽にお問い合わせください（03-3625-0026）。

{{if .Saturday}}来週も日大一の"ひと知り"をお届けします。{{else}}明日も日大一の"ひと知り"をお届けします。{{end}}

日本大学第一中学・高等学校　入試広報部
※「メルマガ『一日一知』日大一を毎日少しずつ知る学校案内」の受信を停止したい場合は、以下の手順を実行してください：
・日大一のホームページから、ミライコンパスの「マイページ」にログインする
・「ログイン情報変更」（スマートフォンの場合は三本線のメニュー）を選択する
・「メール受信設定変更」を選択する
・「ログイン情報変更」のチェックボックスを解除する`

var issueTmpl = template.Must(template.New("issue").Parse(issueTemplate))

type renderData struct {
	DateFull       string
	IssueNumber    int
	Weather        string
	Schedule       string
	Promos         string
	Media          string
	MediaSectionNo int
	GuideSectionNo int
	Weekday        string
	WeekdayTheme   string
	Saturday       bool
}

// Render produces the full newsletter body for an assembled context.
func Render(ctx Context) (string, error) {
	data := renderData{
		DateFull:       dateutil.DisplayDateFull(ctx.Date),
		IssueNumber:    ctx.IssueNumber,
		Weather:        FormatWeatherSection(ctx.Weather, ctx.HealthMessage),
		Schedule:       FormatScheduleSection(ctx.Schedule),
		Promos:         FormatPromoSection(ctx.Promos),
		Media:          FormatMediaSection(ctx.Media),
		MediaSectionNo: 4,
		GuideSectionNo: 4,
		Weekday:        ctx.Weekday,
		WeekdayTheme:   ctx.WeekdayTheme,
		Saturday:       ctx.Weekday == "土",
	}
	if data.Media != "" {
		data.GuideSectionNo = 5
	}

	var b strings.Builder
	if err := issueTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render newsletter: %w", err)
	}
	return b.String(), nil
}

// CharacterCount reports the rune length of a rendered issue, the figure
// stored alongside the archived copy.
func CharacterCount(body string) int {
	return utf8.RuneCountInString(body)
}
