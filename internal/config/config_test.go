package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ICHINICHI_CITY_ID", "")
	t.Setenv("ICHINICHI_LATITUDE", "")
	t.Setenv("ICHINICHI_LONGITUDE", "")
	t.Setenv("ICHINICHI_CALENDAR_SETTINGS", "")

	cfg, err := FromEnv()
	assert.Equal(t, err, nil)
	assert.Equal(t, cfg.CityID, "130010")
	assert.Equal(t, cfg.Latitude, 35.70)
	assert.Equal(t, cfg.Longitude, 139.798)
	assert.Equal(t, len(cfg.Calendars.PromoKeywords), 10)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ICHINICHI_CITY_ID", "270000")
	t.Setenv("ICHINICHI_LATITUDE", "34.69")
	t.Setenv("ICHINICHI_LONGITUDE", "135.50")

	cfg, err := FromEnv()
	assert.Equal(t, err, nil)
	assert.Equal(t, cfg.CityID, "270000")
	assert.Equal(t, cfg.Latitude, 34.69)
	assert.Equal(t, cfg.Longitude, 135.50)
}

func TestFromEnvBadLatitude(t *testing.T) {
	t.Setenv("ICHINICHI_LATITUDE", "north")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCalendarSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendars.yaml")
	data := "schedule_calendar_ids:\n  - school@example.com\nevent_keywords:\n  - 説明会\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ICHINICHI_CALENDAR_SETTINGS", path)

	cfg, err := FromEnv()
	assert.Equal(t, err, nil)
	assert.Equal(t, cfg.Calendars.ScheduleCalendarIDs, []string{"school@example.com"})
	assert.Equal(t, cfg.Calendars.PromoKeywords, []string{"説明会"})
	// ids not named in the file keep their defaults
	assert.Equal(t, len(cfg.Calendars.PromoCalendarIDs), 1)
}
