package dateutil

import (
	"fmt"
	"time"
)

var jst = time.FixedZone("JST", 9*60*60)

// TodayJST returns today's calendar date in Japan Standard Time,
// truncated to midnight JST.
func TodayJST() time.Time {
	now := time.Now().In(jst)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, jst)
}

var weekdayLabels = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayLabel returns the Japanese weekday for a date, e.g. "月".
func WeekdayLabel(d time.Time) string {
	return weekdayLabels[int(d.Weekday())]
}

// WeekdayParen returns the Japanese weekday wrapped in full-width
// parentheses, e.g. "（月）", as used after dates in the newsletter body.
func WeekdayParen(d time.Time) string {
	return "（" + WeekdayLabel(d) + "）"
}

// issueBase is the date of issue No.1. Issues are published every day
// except Sunday.
var issueBase = time.Date(2025, 4, 3, 0, 0, 0, 0, jst)

// IssueNumber computes the running issue number for a date. Dates before
// the base date count as issue 1. A Sunday carries the previous
// Saturday's number since no issue goes out on Sundays.
func IssueNumber(d time.Time) int {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, jst)
	if d.Before(issueBase) {
		return 1
	}

	if d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}

	n := 1
	for cur := issueBase; cur.Before(d); {
		cur = cur.AddDate(0, 0, 1)
		if cur.Weekday() != time.Sunday {
			n++
		}
	}
	return n
}

var weekdayThemes = map[time.Weekday]string{
	time.Monday:    "日大一の地理情報",
	time.Tuesday:   "日大一の6年間",
	time.Wednesday: "日大一の進路",
	time.Thursday:  "日大一の学校行事",
	time.Friday:    "日大一の入試",
	time.Saturday:  "日大一ストーリー",
}

// WeekdayTheme returns the fixed guide-section theme for the weekday.
// Sunday has no theme because no issue is published.
func WeekdayTheme(d time.Time) string {
	return weekdayThemes[d.Weekday()]
}

// DisplayFormats returns the date spellings used to match a date inside
// a video title. Ordered from most to least specific.
func DisplayFormats(d time.Time) []string {
	y, m, day := d.Year(), int(d.Month()), d.Day()
	return []string{
		fmt.Sprintf("%d年%02d月%02d日", y, m, day),
		fmt.Sprintf("%d/%02d/%02d", y, m, day),
		fmt.Sprintf("%d-%02d-%02d", y, m, day),
		fmt.Sprintf("%d\\%02d/%02d", y, m, day),
		fmt.Sprintf("%d年%d月%d日", y, m, day),
		fmt.Sprintf("%d\\%d/%d", y, m, day),
		fmt.Sprintf("%02d月%02d日", m, day),
		fmt.Sprintf("%d月%d日", m, day),
		fmt.Sprintf("%02d/%02d", m, day),
		fmt.Sprintf("%d/%d", m, day),
	}
}

// DisplayDate formats a date as "M月D日（曜）" for newsletter prose.
func DisplayDate(d time.Time) string {
	return fmt.Sprintf("%d月%d日%s", int(d.Month()), d.Day(), WeekdayParen(d))
}

// DisplayDateFull formats a date as "YYYY年M月D日（曜）" for the header.
func DisplayDateFull(d time.Time) string {
	return fmt.Sprintf("%d年%d月%d日%s", d.Year(), int(d.Month()), d.Day(), WeekdayParen(d))
}

// Key returns the normalized date key used to match provider responses.
func Key(d time.Time) string {
	return d.Format("2006-01-02")
}
