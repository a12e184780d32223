// Package moon computes lunar phase information for the newsletter's
// health-message prompt. Pure computation, no network calls.
package moon

import (
	"fmt"
	"math"
	"time"
)

const (
	// Synodic month length in days.
	lunarCycle  = 29.530588853
	fullMoonAge = lunarCycle / 2

	// Countdown labels start this many days before a principal phase.
	countdownDays = 3
	// A date within this many days of a principal phase counts as the
	// phase day itself.
	phaseThreshold = 1.0
)

// Reference new moon: 2000-01-06 18:14 UTC.
var epoch = time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

// Info describes the moon for one calendar date.
type Info struct {
	Age          float64
	PhaseName    string
	Countdown    string // e.g. "今日が満月", "新月まであと3日"; empty outside the countdown window
	IsSpecialDay bool   // new or full moon day
}

// Age returns the moon age in days for a date, evaluated at local noon.
func Age(d time.Time) float64 {
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
	days := noon.Sub(epoch).Hours() / 24
	age := math.Mod(days, lunarCycle)
	if age < 0 {
		age += lunarCycle
	}
	return age
}

// PhaseInfo returns the full phase description for a date.
func PhaseInfo(d time.Time) Info {
	age := Age(d)
	countdown, special := countdown(age)
	return Info{
		Age:          age,
		PhaseName:    phaseName(age),
		Countdown:    countdown,
		IsSpecialDay: special,
	}
}

// Label returns the display string for a date: the countdown when one is
// active, else the plain phase name.
func Label(d time.Time) string {
	info := PhaseInfo(d)
	if info.Countdown != "" {
		return info.Countdown
	}
	return info.PhaseName
}

func phaseName(age float64) string {
	switch {
	case age < 1.84566:
		return "新月"
	case age < 5.53699:
		return "三日月"
	case age < 9.22831:
		return "上弦の月"
	case age < 12.91963:
		return "十三夜月"
	case age < 16.61096:
		return "満月"
	case age < 20.30228:
		return "十六夜月"
	case age < 23.99361:
		return "下弦の月"
	case age < 27.68493:
		return "二十六夜月"
	default:
		return "晦日月"
	}
}

func countdown(age float64) (label string, special bool) {
	newDist := math.Min(age, lunarCycle-age)
	fullDist := math.Abs(age - fullMoonAge)

	if newDist <= phaseThreshold {
		return "今日が新月", true
	}
	if fullDist <= phaseThreshold {
		return "今日が満月", true
	}

	daysToNew := lunarCycle - age
	var daysToFull float64
	if age < fullMoonAge {
		daysToFull = fullMoonAge - age
	} else {
		daysToFull = fullMoonAge + (lunarCycle - age)
	}

	if daysToNew <= daysToFull {
		days := int(math.Round(daysToNew))
		switch {
		case days <= 1:
			return "明日が新月", false
		case days <= countdownDays:
			return fmt.Sprintf("新月まであと%d日", days), false
		}
		return "", false
	}

	days := int(math.Round(daysToFull))
	switch {
	case days <= 1:
		return "明日が満月", false
	case days <= countdownDays:
		return fmt.Sprintf("満月まであと%d日", days), false
	}
	return "", false
}
