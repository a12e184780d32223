package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ichinichi/internal/dateutil"
)

const jmaCacheTTL = 30 * time.Minute

// JMAClient queries the JMA-compatible forecast API
// (weather.tsukumijima.net). The API returns a short forecast window
// (today, tomorrow, the day after) for one city.
type JMAClient struct {
	cityID     string
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

func NewJMAClient(cityID string, cache Cache) *JMAClient {
	return &JMAClient{
		cityID:     cityID,
		baseURL:    "https://weather.tsukumijima.net/api/forecast",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

func (c *JMAClient) Name() string {
	return "気象庁"
}

// Forecast is the primary provider's view of one day, plus the
// response-level header fields.
type Forecast struct {
	Date          string
	DateLabel     string
	Telop         string
	DetailWeather string
	DetailWind    string
	TempMin       *int // celsius; nil when not yet announced
	TempMax       *int
	Rain          RainChance

	PublishingOffice string
	Title            string
	PublicTime       string
	Description      string
}

// Fetch returns the forecast entry whose date equals the target date.
// The match is by exact string equality on the normalized date key; the
// forecast window shifts with publication time, so index-based selection
// would silently return the wrong day.
func (c *JMAClient) Fetch(target time.Time) (*Forecast, error) {
	url := fmt.Sprintf("%s?city=%s", c.baseURL, c.cityID)

	body, err := c.get(url)
	if err != nil {
		return nil, fmt.Errorf("jma fetch: %w: %v", ErrSourceUnavailable, err)
	}

	var raw jmaResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("jma decode: %w: %v", ErrSourceUnavailable, err)
	}

	key := dateutil.Key(target)
	for _, f := range raw.Forecasts {
		if f.Date != key {
			continue
		}
		return &Forecast{
			Date:             f.Date,
			DateLabel:        f.DateLabel,
			Telop:            f.Telop,
			DetailWeather:    f.Detail.Weather,
			DetailWind:       f.Detail.Wind,
			TempMin:          parseCelsius(f.Temperature.Min.Celsius),
			TempMax:          parseCelsius(f.Temperature.Max.Celsius),
			Rain:             parseRain(f.ChanceOfRain),
			PublishingOffice: raw.PublishingOffice,
			Title:            raw.Title,
			PublicTime:       raw.PublicTimeFormatted,
			Description:      raw.Description.Text,
		}, nil
	}

	return nil, fmt.Errorf("jma: no forecast for %s: %w", key, ErrDateNotInWindow)
}

func (c *JMAClient) get(url string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(url); ok {
			return body, nil
		}
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(url, body, jmaCacheTTL)
	}
	return body, nil
}

// parseCelsius turns the API's string temperature into a value. The API
// reports null (and occasionally empty) for bounds not yet announced.
func parseCelsius(s *string) *int {
	if s == nil || *s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &v
}

func parseRain(raw jmaChanceOfRain) RainChance {
	return RainChance{
		T00to06: parsePercent(raw.T00_06),
		T06to12: parsePercent(raw.T06_12),
		T12to18: parsePercent(raw.T12_18),
		T18to24: parsePercent(raw.T18_24),
	}
}

// parsePercent parses values like "20%"; the API uses "--%" for buckets
// it does not forecast.
func parsePercent(s string) *int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" || s == "--" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

type jmaResponse struct {
	PublishingOffice    string `json:"publishingOffice"`
	Title               string `json:"title"`
	PublicTimeFormatted string `json:"publicTimeFormatted"`
	Description         struct {
		Text string `json:"text"`
	} `json:"description"`
	Forecasts []jmaForecast `json:"forecasts"`
}

type jmaForecast struct {
	Date      string `json:"date"`
	DateLabel string `json:"dateLabel"`
	Telop     string `json:"telop"`
	Detail    struct {
		Weather string `json:"weather"`
		Wind    string `json:"wind"`
	} `json:"detail"`
	Temperature struct {
		Min jmaTemperature `json:"min"`
		Max jmaTemperature `json:"max"`
	} `json:"temperature"`
	ChanceOfRain jmaChanceOfRain `json:"chanceOfRain"`
}

type jmaTemperature struct {
	Celsius *string `json:"celsius"`
}

type jmaChanceOfRain struct {
	T00_06 string `json:"T00_06"`
	T06_12 string `json:"T06_12"`
	T12_18 string `json:"T12_18"`
	T18_24 string `json:"T18_24"`
}
