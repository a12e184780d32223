package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the newsletter generator.
type Config struct {
	CityID    string
	Latitude  float64
	Longitude float64

	Calendars CalendarSettings

	EventsCSVPath string

	YouTubeChannelID string

	OpenAIAPIKey         string
	AnthropicAPIKey      string
	GoogleCalendarAPIKey string
	YouTubeAPIKey        string

	DatabaseURL string
	RedisURL    string
}

// CalendarSettings names the Google calendars each newsletter section
// reads from, plus the title keywords that mark an admissions event.
type CalendarSettings struct {
	ScheduleCalendarIDs []string `yaml:"schedule_calendar_ids"`
	PromoCalendarIDs    []string `yaml:"event_calendar_ids"`
	PromoKeywords       []string `yaml:"event_keywords"`
}

// FromEnv creates a configuration instance sourced from environment
// variables, with calendar settings optionally overridden by the YAML
// file named in ICHINICHI_CALENDAR_SETTINGS.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		CityID:               getEnv("ICHINICHI_CITY_ID", "130010"),
		Latitude:             35.70,
		Longitude:            139.798,
		Calendars:            defaultCalendarSettings(),
		EventsCSVPath:        getEnv("ICHINICHI_EVENTS_CSV", "data/events.csv"),
		YouTubeChannelID:     getEnv("ICHINICHI_YOUTUBE_CHANNEL_ID", ""),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey:      getEnv("ANTHROPIC_API_KEY", ""),
		GoogleCalendarAPIKey: getEnv("GOOGLE_CALENDAR_API_KEY", ""),
		YouTubeAPIKey:        getEnv("YOUTUBE_API_KEY", ""),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
	}

	if lat := os.Getenv("ICHINICHI_LATITUDE"); lat != "" {
		if _, err := fmt.Sscanf(lat, "%f", &cfg.Latitude); err != nil {
			return Config{}, fmt.Errorf("parse ICHINICHI_LATITUDE: %w", err)
		}
	}

	if lon := os.Getenv("ICHINICHI_LONGITUDE"); lon != "" {
		if _, err := fmt.Sscanf(lon, "%f", &cfg.Longitude); err != nil {
			return Config{}, fmt.Errorf("parse ICHINICHI_LONGITUDE: %w", err)
		}
	}

	if path := os.Getenv("ICHINICHI_CALENDAR_SETTINGS"); path != "" {
		settings, err := loadCalendarSettings(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Calendars = settings
	}

	return cfg, nil
}

func defaultCalendarSettings() CalendarSettings {
	return CalendarSettings{
		ScheduleCalendarIDs: []string{"nichidai1.haishin@gmail.com"},
		PromoCalendarIDs:    []string{"c38f50b10481248d05113108d0ba210e7edd5d60abe152ce319c595f011cb814@group.calendar.google.com"},
		PromoKeywords: []string{
			"説明会", "学校説明", "見学会", "オープンキャンパス", "体験会",
			"相談会", "入試", "文化祭", "学園祭", "オープンスクール",
		},
	}
}

func loadCalendarSettings(path string) (CalendarSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CalendarSettings{}, fmt.Errorf("read calendar settings: %w", err)
	}

	settings := defaultCalendarSettings()
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return CalendarSettings{}, fmt.Errorf("parse calendar settings: %w", err)
	}
	return settings, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
