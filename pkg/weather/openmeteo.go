package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ichinichi/internal/dateutil"
)

const openMeteoCacheTTL = 30 * time.Minute

// OpenMeteoClient queries the Open-Meteo daily forecast API for
// supplementary variables the primary provider does not expose. The
// forecast_days window is always anchored at call time, not at the
// target date, so results are located by exact date match inside the
// returned time[] list.
type OpenMeteoClient struct {
	lat, lon   float64
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

func NewOpenMeteoClient(lat, lon float64, cache Cache) *OpenMeteoClient {
	return &OpenMeteoClient{
		lat:        lat,
		lon:        lon,
		baseURL:    "https://api.open-meteo.com/v1/forecast",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

func (c *OpenMeteoClient) Name() string {
	return "Open-Meteo"
}

// Humidity is the daily relative humidity range. Bounds are independent;
// either may be absent.
type Humidity struct {
	Min *float64
	Max *float64
}

// Temperature is the daily 2m temperature range, used only to fill
// bounds the primary provider has not announced.
type Temperature struct {
	Min *float64
	Max *float64
}

// Wind is the daily wind summary.
type Wind struct {
	SpeedMax  *float64 // m/s
	Direction string   // 16-point Japanese compass name; empty when absent
}

// FetchHumidity returns the humidity range for the target date, or
// (nil, nil) when the date is outside the provider's window. Humidity is
// supplementary, so a missing date is an absent value, not an error.
func (c *OpenMeteoClient) FetchHumidity(target time.Time) (*Humidity, error) {
	daily, err := c.fetchDaily("relative_humidity_2m_max,relative_humidity_2m_min")
	if err != nil {
		return nil, err
	}

	i, ok := daily.indexOf(dateutil.Key(target))
	if !ok {
		return nil, nil
	}
	return &Humidity{
		Min: daily.at("relative_humidity_2m_min", i),
		Max: daily.at("relative_humidity_2m_max", i),
	}, nil
}

// FetchTemperature returns the temperature range for the target date, or
// (nil, nil) when the date is outside the window.
func (c *OpenMeteoClient) FetchTemperature(target time.Time) (*Temperature, error) {
	daily, err := c.fetchDaily("temperature_2m_min,temperature_2m_max")
	if err != nil {
		return nil, err
	}

	i, ok := daily.indexOf(dateutil.Key(target))
	if !ok {
		return nil, nil
	}
	return &Temperature{
		Min: daily.at("temperature_2m_min", i),
		Max: daily.at("temperature_2m_max", i),
	}, nil
}

// FetchWind returns the wind summary for the target date, or (nil, nil)
// when the date is outside the window.
func (c *OpenMeteoClient) FetchWind(target time.Time) (*Wind, error) {
	daily, err := c.fetchDaily("wind_speed_10m_max,wind_direction_10m_dominant")
	if err != nil {
		return nil, err
	}

	i, ok := daily.indexOf(dateutil.Key(target))
	if !ok {
		return nil, nil
	}

	wind := &Wind{SpeedMax: daily.at("wind_speed_10m_max", i)}
	if deg := daily.at("wind_direction_10m_dominant", i); deg != nil {
		wind.Direction = CompassName(*deg)
	}
	return wind, nil
}

var compassNames = [16]string{
	"北", "北北東", "北東", "東北東",
	"東", "東南東", "南東", "南南東",
	"南", "南南西", "南西", "西南西",
	"西", "西北西", "北西", "北北西",
}

// CompassName converts a wind direction in degrees to one of the 16
// Japanese compass points.
func CompassName(degrees float64) string {
	index := int((degrees+11.25)/22.5) % 16
	return compassNames[index]
}

type openMeteoDaily struct {
	Time   []string
	Values map[string][]*float64
}

func (d *openMeteoDaily) indexOf(key string) (int, bool) {
	for i, t := range d.Time {
		if t == key {
			return i, true
		}
	}
	return 0, false
}

func (d *openMeteoDaily) at(variable string, i int) *float64 {
	values := d.Values[variable]
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func (c *OpenMeteoClient) fetchDaily(variables string) (*openMeteoDaily, error) {
	u := fmt.Sprintf("%s?latitude=%.3f&longitude=%.3f&daily=%s&timezone=%s&forecast_days=3",
		c.baseURL, c.lat, c.lon, variables, url.QueryEscape("Asia/Tokyo"))

	body, err := c.get(u)
	if err != nil {
		return nil, fmt.Errorf("open-meteo fetch: %w: %v", ErrSourceUnavailable, err)
	}

	var raw openMeteoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("open-meteo decode: %w: %v", ErrSourceUnavailable, err)
	}

	daily := &openMeteoDaily{
		Time:   raw.Daily.Time,
		Values: map[string][]*float64{},
	}
	for name, values := range raw.Daily.Variables {
		daily.Values[name] = values
	}
	return daily, nil
}

func (c *OpenMeteoClient) get(u string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(u); ok {
			return body, nil
		}
	}

	resp, err := c.httpClient.Get(u)
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
		c.cache.Set(u, body, openMeteoCacheTTL)
	}
	return body, nil
}

// openMeteoResponse parses the daily block. The time[] list is parallel
// to every requested variable array, so the variable arrays are kept by
// name instead of being given fixed fields.
type openMeteoResponse struct {
	Daily openMeteoDailyRaw `json:"daily"`
}

type openMeteoDailyRaw struct {
	Time      []string
	Variables map[string][]*float64
}

func (d *openMeteoDailyRaw) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	d.Variables = map[string][]*float64{}
	for name, raw := range fields {
		if name == "time" {
			if err := json.Unmarshal(raw, &d.Time); err != nil {
				return err
			}
			continue
		}
		var values []*float64
		if err := json.Unmarshal(raw, &values); err != nil {
			// Non-numeric members (units objects) are not daily data.
			continue
		}
		d.Variables[name] = values
	}
	return nil
}
