package weather

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const jmaPayload = `{
	"publishingOffice": "気象庁",
	"title": "東京都 東京 の天気",
	"publicTimeFormatted": "2025/06/08 05:00:00",
	"description": {"text": "本州付近は高気圧に覆われています。"},
	"forecasts": [
		{
			"date": "2025-06-08",
			"dateLabel": "今日",
			"telop": "曇り",
			"detail": {"weather": "くもり", "wind": "北の風"},
			"temperature": {"min": {"celsius": null}, "max": {"celsius": "24"}},
			"chanceOfRain": {"T00_06": "--%", "T06_12": "10%", "T12_18": "20%", "T18_24": "20%"}
		},
		{
			"date": "2025-06-09",
			"dateLabel": "明日",
			"telop": "晴れ",
			"detail": {"weather": "晴れ時々くもり", "wind": "南の風"},
			"temperature": {"min": {"celsius": "18"}, "max": {"celsius": "26"}},
			"chanceOfRain": {"T00_06": "0%", "T06_12": "0%", "T12_18": "10%", "T18_24": "10%"}
		}
	]
}`

func newJMAServer(t *testing.T, payload string) (*httptest.Server, *JMAClient) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	client := &JMAClient{
		cityID:     "130010",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
	return srv, client
}

func TestJMAFetchSelectsByExactDate(t *testing.T) {
	_, client := newJMAServer(t, jmaPayload)

	target := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	forecast, err := client.Fetch(target)

	assert.Equal(t, nil, err)
	assert.Equal(t, "2025-06-09", forecast.Date)
	assert.Equal(t, "晴れ", forecast.Telop)
	assert.Equal(t, "晴れ時々くもり", forecast.DetailWeather)
	assert.Equal(t, "南の風", forecast.DetailWind)
	assert.Equal(t, 18, *forecast.TempMin)
	assert.Equal(t, 26, *forecast.TempMax)
	assert.Equal(t, 0, *forecast.Rain.T00to06)
	assert.Equal(t, 10, *forecast.Rain.T12to18)
	assert.Equal(t, "気象庁", forecast.PublishingOffice)
}

func TestJMAFetchNullTemperature(t *testing.T) {
	_, client := newJMAServer(t, jmaPayload)

	forecast, err := client.Fetch(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, nil, err)
	if forecast.TempMin != nil {
		t.Fatalf("expected absent min temperature, got %d", *forecast.TempMin)
	}
	assert.Equal(t, 24, *forecast.TempMax)
	if forecast.Rain.T00to06 != nil {
		t.Fatalf("expected absent rain bucket for --%%, got %d", *forecast.Rain.T00to06)
	}
}

func TestJMAFetchDateNotInWindow(t *testing.T) {
	_, client := newJMAServer(t, jmaPayload)

	_, err := client.Fetch(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))

	if !errors.Is(err, ErrDateNotInWindow) {
		t.Fatalf("expected ErrDateNotInWindow, got %v", err)
	}
}

func TestJMAFetchMalformedResponse(t *testing.T) {
	_, client := newJMAServer(t, "not json")

	_, err := client.Fetch(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestJMAFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &JMAClient{cityID: "130010", baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.Fetch(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"20%", intPtr(20)},
		{"0%", intPtr(0)},
		{"--%", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := parsePercent(tt.input)
		if tt.want == nil {
			if got != nil {
				t.Errorf("parsePercent(%q) = %d, want nil", tt.input, *got)
			}
			continue
		}
		assert.Equal(t, *tt.want, *got)
	}
}

func intPtr(v int) *int { return &v }
