package dateutil

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, jst)
}

func TestWeekdayLabel(t *testing.T) {
	// 2025-04-03 is a Thursday.
	assert.Equal(t, "木", WeekdayLabel(date(2025, 4, 3)))
	assert.Equal(t, "（木）", WeekdayParen(date(2025, 4, 3)))
	assert.Equal(t, "日", WeekdayLabel(date(2025, 4, 6)))
}

func TestIssueNumber(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want int
	}{
		{"base date is issue 1", date(2025, 4, 3), 1},
		{"before base date clamps to 1", date(2025, 3, 1), 1},
		{"next day", date(2025, 4, 4), 2},
		{"saturday of first week", date(2025, 4, 5), 3},
		{"sunday repeats saturday", date(2025, 4, 6), 3},
		{"monday after first sunday", date(2025, 4, 7), 4},
		{"two full weeks later", date(2025, 4, 17), 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IssueNumber(tt.d))
		})
	}
}

func TestWeekdayTheme(t *testing.T) {
	assert.Equal(t, "日大一の学校行事", WeekdayTheme(date(2025, 4, 3)))
	assert.Equal(t, "日大一ストーリー", WeekdayTheme(date(2025, 4, 5)))
	assert.Equal(t, "", WeekdayTheme(date(2025, 4, 6)))
}

func TestDisplayFormats(t *testing.T) {
	formats := DisplayFormats(date(2025, 5, 25))

	assert.Equal(t, "2025年05月25日", formats[0])
	assert.Equal(t, "2025/05/25", formats[1])
	assert.Equal(t, "2025-05-25", formats[2])
	assert.Equal(t, "2025年5月25日", formats[4])
	assert.Equal(t, "5/25", formats[len(formats)-1])
}

func TestKey(t *testing.T) {
	assert.Equal(t, "2025-06-09", Key(date(2025, 6, 9)))
}
