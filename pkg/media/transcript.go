package media

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TranscriptClient fetches a video's caption track from the timedtext
// endpoint. Captions are frequently missing or disabled; an empty track
// is a normal outcome, not an error.
type TranscriptClient struct {
	baseURL    string
	languages  []string
	httpClient *http.Client
}

func NewTranscriptClient() *TranscriptClient {
	return &TranscriptClient{
		baseURL:    "https://video.google.com/timedtext",
		languages:  []string{"ja", "en"},
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch returns the transcript text for a video, or ("", nil) when no
// caption track exists in any of the configured languages.
func (c *TranscriptClient) Fetch(videoID string) (string, error) {
	for _, lang := range c.languages {
		text, err := c.fetchTrack(videoID, lang)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}
	return "", nil
}

func (c *TranscriptClient) fetchTrack(videoID, lang string) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)

	resp, err := c.httpClient.Get(fmt.Sprintf("%s?%s", c.baseURL, q.Encode()))
	if err != nil {
		return "", fmt.Errorf("transcript fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Missing track, not a transport failure.
		return "", nil
	}

	var track timedTextTrack
	if err := xml.NewDecoder(resp.Body).Decode(&track); err != nil {
		// An empty body means the track does not exist.
		return "", nil
	}

	var lines []string
	for _, t := range track.Texts {
		line := strings.TrimSpace(t.Content)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " "), nil
}

type timedTextTrack struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Content string `xml:",chardata"`
}
