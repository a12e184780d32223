package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CalendarClient reads events from the Google Calendar API (v3) with an
// API key. One client serves one role: the calendars it reads all yield
// the same category, and promo calendars additionally filter by title
// keywords.
type CalendarClient struct {
	apiKey      string
	calendarIDs []string
	category    string
	keywords    []string // empty means no keyword filtering
	baseURL     string
	httpClient  *http.Client
}

func NewCalendarClient(apiKey string, calendarIDs []string, category string, keywords []string) *CalendarClient {
	return &CalendarClient{
		apiKey:      apiKey,
		calendarIDs: calendarIDs,
		category:    category,
		keywords:    keywords,
		baseURL:     "https://www.googleapis.com/calendar/v3",
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *CalendarClient) Name() string {
	return "google-calendar"
}

func (c *CalendarClient) Load(from, to time.Time) ([]Event, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("calendar: no API key configured: %w", ErrSourceUnavailable)
	}
	if len(c.calendarIDs) == 0 {
		return nil, fmt.Errorf("calendar: no calendar ids configured: %w", ErrSourceUnavailable)
	}

	var events []Event
	for _, id := range c.calendarIDs {
		items, err := c.listEvents(id, from, to)
		if err != nil {
			return nil, err
		}
		events = append(events, items...)
	}

	Sort(events)
	return events, nil
}

func (c *CalendarClient) listEvents(calendarID string, from, to time.Time) ([]Event, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("timeMin", from.Format(time.RFC3339))
	// timeMax is exclusive in the API; extend by a day to keep the range
	// inclusive like the file provider.
	q.Set("timeMax", to.AddDate(0, 0, 1).Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	u := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(calendarID), q.Encode())

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch: %w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar fetch: status %d: %w", resp.StatusCode, ErrSourceUnavailable)
	}

	var raw gcalEventList
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("calendar decode: %w: %v", ErrSourceUnavailable, err)
	}

	var events []Event
	for _, item := range raw.Items {
		if len(c.keywords) > 0 && !matchesKeyword(item.Summary, c.keywords) {
			continue
		}

		date, startTime, ok := parseStart(item.Start)
		if !ok {
			continue
		}

		events = append(events, Event{
			Date:        date,
			Title:       item.Summary,
			Category:    c.category,
			Description: item.Description,
			StartTime:   startTime,
			Origin:      c.Name(),
		})
	}
	return events, nil
}

func matchesKeyword(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// parseStart handles both all-day events (start.date) and timed events
// (start.dateTime).
func parseStart(start gcalEventTime) (time.Time, string, bool) {
	if start.Date != "" {
		d, err := time.Parse("2006-01-02", start.Date)
		if err != nil {
			return time.Time{}, "", false
		}
		return d, "", true
	}
	if start.DateTime != "" {
		t, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return time.Time{}, "", false
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day, t.Format("15:04"), true
	}
	return time.Time{}, "", false
}

type gcalEventList struct {
	Items []gcalEvent `json:"items"`
}

type gcalEvent struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Start       gcalEventTime `json:"start"`
}

type gcalEventTime struct {
	Date     string `json:"date"`
	DateTime string `json:"dateTime"`
}
