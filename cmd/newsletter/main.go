package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"ichinichi/db"
	"ichinichi/internal/config"
	"ichinichi/internal/dateutil"
	"ichinichi/internal/model"
	"ichinichi/internal/newsletter"
	"ichinichi/internal/repository"
	"ichinichi/pkg/events"
	"ichinichi/pkg/llm"
	"ichinichi/pkg/media"
	"ichinichi/pkg/moon"
	"ichinichi/pkg/weather"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	dateFlag := flag.String("date", "", "target date as YYYY-MM-DD (default: today in JST)")
	showFlag := flag.Bool("show", false, "print the archived issue for the target date and exit")
	flag.Parse()

	target := dateutil.TodayJST()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("invalid -date value %q: %v", *dateFlag, err)
		}
		target = parsed
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	if *showFlag {
		showArchivedIssue(cfg, target)
		return
	}

	runID := uuid.NewString()
	slog.Info("newsletter run starting", "run_id", runID, "target_date", dateutil.Key(target))

	var cache weather.Cache
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, running without response cache", "error", err)
		} else {
			defer db.CloseRedis()
			cache = db.NewResponseCache()
		}
	}

	rec := fetchWeather(cfg, cache, target)
	moonLabel := moon.Label(target)

	writer, summarizer, modelUsed := buildLLMClients(cfg)

	healthMessage := buildHealthMessage(writer, rec, moonLabel)

	schedule, promos := fetchEvents(cfg, target)

	summary := fetchMedia(cfg, summarizer, target)

	ctx := newsletter.Assemble(target, rec, healthMessage, moonLabel, schedule, promos, summary)
	body, err := newsletter.Render(ctx)
	if err != nil {
		log.Fatalf("error rendering newsletter: %v", err)
	}

	fmt.Println(body)

	archiveIssue(cfg, runID, ctx, body, rec, modelUsed)

	slog.Info("newsletter run finished",
		"run_id", runID,
		"issue_number", ctx.IssueNumber,
		"character_count", newsletter.CharacterCount(body))
}

// fetchWeather reconciles the JMA forecast with Open-Meteo supplements.
// Provider failures degrade to absent fields, never abort the run.
func fetchWeather(cfg config.Config, cache weather.Cache, target time.Time) weather.Record {
	jma := weather.NewJMAClient(cfg.CityID, cache)
	openMeteo := weather.NewOpenMeteoClient(cfg.Latitude, cfg.Longitude, cache)

	primary, err := jma.Fetch(target)
	if err != nil {
		slog.Warn("jma forecast unavailable", "error", err)
		primary = nil
	}

	humidity, err := openMeteo.FetchHumidity(target)
	if err != nil {
		slog.Warn("open-meteo humidity unavailable", "error", err)
	}
	temp, err := openMeteo.FetchTemperature(target)
	if err != nil {
		slog.Warn("open-meteo temperature unavailable", "error", err)
	}
	wind, err := openMeteo.FetchWind(target)
	if err != nil {
		slog.Warn("open-meteo wind unavailable", "error", err)
	}

	rec := weather.Merge(target, primary, humidity, wind, temp)
	if !rec.HasData() {
		slog.Warn("no weather data for target date, issuing placeholder section")
	}
	return rec
}

func buildLLMClients(cfg config.Config) (llm.MessageWriter, media.Summarizer, string) {
	switch {
	case cfg.AnthropicAPIKey != "":
		client := llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		return client, client, "claude-4.5-haiku"
	case cfg.OpenAIAPIKey != "":
		client := llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		return client, client, "gpt-4o-mini"
	default:
		slog.Info("no LLM credentials, using deterministic fallback message")
		return nil, nil, "fallback"
	}
}

func buildHealthMessage(writer llm.MessageWriter, rec weather.Record, moonLabel string) string {
	facts := newsletter.BuildWeatherFacts(rec, moonLabel)

	if writer != nil && rec.HasData() {
		msg, err := writer.HealthMessage(facts)
		if err == nil {
			return msg
		}
		slog.Warn("health message generation failed, falling back", "error", err)
	}
	return llm.FallbackMessage(facts)
}

// fetchEvents loads the day's schedule and the upcoming admissions
// events, falling back to the CSV file when the calendar is unreachable.
// A malformed fallback file is fatal.
func fetchEvents(cfg config.Config, target time.Time) (schedule, promos []events.Event) {
	fallback := events.NewFileProvider(cfg.EventsCSVPath)

	var scheduleRemote, promoRemote events.Provider
	if cfg.GoogleCalendarAPIKey != "" {
		scheduleRemote = events.NewCalendarClient(cfg.GoogleCalendarAPIKey, cfg.Calendars.ScheduleCalendarIDs, events.CategorySchedule, nil)
		promoRemote = events.NewCalendarClient(cfg.GoogleCalendarAPIKey, cfg.Calendars.PromoCalendarIDs, events.CategoryPromo, cfg.Calendars.PromoKeywords)
	}

	scheduleLoader := &events.Loader{Remote: scheduleRemote, Fallback: fallback}
	loaded, err := scheduleLoader.Load(target, target)
	if err != nil {
		if errors.Is(err, events.ErrMalformedSource) {
			log.Fatalf("event source malformed: %v", err)
		}
		slog.Warn("schedule events unavailable", "error", err)
	}
	schedule = events.FilterCategory(loaded, events.CategorySchedule)

	promoLoader := &events.Loader{Remote: promoRemote, Fallback: fallback}
	loaded, err = promoLoader.Load(target, target.AddDate(0, 2, 0))
	if err != nil {
		if errors.Is(err, events.ErrMalformedSource) {
			log.Fatalf("event source malformed: %v", err)
		}
		slog.Warn("promo events unavailable", "error", err)
	}
	promos = events.FilterCategory(loaded, events.CategoryPromo)

	return schedule, promos
}

func fetchMedia(cfg config.Config, summarizer media.Summarizer, target time.Time) *media.Summary {
	if cfg.YouTubeAPIKey == "" || cfg.YouTubeChannelID == "" || summarizer == nil {
		return nil
	}

	source := &media.Source{
		Videos:      media.NewYouTubeClient(cfg.YouTubeAPIKey, cfg.YouTubeChannelID),
		Transcripts: media.NewTranscriptClient(),
		Summarizer:  summarizer,
	}

	summary, err := source.SummaryForDate(target)
	if err != nil {
		slog.Warn("media summary unavailable", "error", err)
		return nil
	}
	return summary
}

// showArchivedIssue prints a previously archived issue so an operator
// can re-read what was actually sent for a date.
func showArchivedIssue(cfg config.Config, target time.Time) {
	if cfg.DatabaseURL == "" {
		log.Fatal("no DATABASE_URL configured, nothing to show")
	}

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("error connecting to archive database: %v", err)
	}
	defer db.Close()

	repo := repository.NewIssueRepository(db.DB)
	issue, err := repo.GetIssueByDate(target)
	if err != nil {
		log.Fatalf("error reading archive: %v", err)
	}
	if issue == nil {
		log.Fatalf("no archived issue for %s", dateutil.Key(target))
	}

	fmt.Println(issue.Content)
}

// archiveIssue stores the rendered issue when a database is configured.
// Archive failures are logged, not fatal: the issue already printed.
func archiveIssue(cfg config.Config, runID string, ctx newsletter.Context, body string, rec weather.Record, modelUsed string) {
	if cfg.DatabaseURL == "" {
		return
	}

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		slog.Warn("archive database unavailable", "error", err)
		return
	}
	defer db.Close()

	issue := &model.Issue{
		RunID:          runID,
		IssueNumber:    ctx.IssueNumber,
		TargetDate:     ctx.Date,
		Content:        body,
		CharacterCount: newsletter.CharacterCount(body),
		WeatherSource:  rec.Source,
		ModelUsed:      modelUsed,
	}

	repo := repository.NewIssueRepository(db.DB)
	if err := repo.SaveIssue(issue); err != nil {
		slog.Warn("failed to archive issue", "error", err)
		return
	}
	slog.Info("issue archived", "issue_id", issue.ID)
}
