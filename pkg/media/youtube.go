// Package media finds the school's recent YouTube video and derives a
// short summary and tagline from its transcript. Every failure along the
// chain collapses to an absent value; a summary is never fabricated.
package media

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ichinichi/internal/dateutil"
)

// Video is one search result from the channel.
type Video struct {
	ID           string
	Title        string
	URL          string
	PublishedAt  string
	Thumbnail    string
	ChannelTitle string
}

// YouTubeClient queries the YouTube Data API v3 search endpoint, scoped
// to one channel, newest first.
type YouTubeClient struct {
	apiKey     string
	channelID  string
	baseURL    string
	httpClient *http.Client
}

func NewYouTubeClient(apiKey, channelID string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:     apiKey,
		channelID:  channelID,
		baseURL:    "https://www.googleapis.com/youtube/v3",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *YouTubeClient) Name() string {
	return "YouTube"
}

// FindLatestVideo returns the channel's most recent video, or (nil, nil)
// when the channel has none.
func (c *YouTubeClient) FindLatestVideo() (*Video, error) {
	videos, err := c.search(1)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}

// FindVideoForDate returns the newest video whose title spells out the
// target date in one of the known display formats, or (nil, nil) when no
// recent title matches.
func (c *YouTubeClient) FindVideoForDate(target time.Time) (*Video, error) {
	videos, err := c.search(10)
	if err != nil {
		return nil, err
	}

	formats := dateutil.DisplayFormats(target)
	for _, v := range videos {
		for _, f := range formats {
			if strings.Contains(v.Title, f) {
				return &v, nil
			}
		}
	}
	return nil, nil
}

func (c *YouTubeClient) search(maxResults int) ([]Video, error) {
	if c.apiKey == "" || c.channelID == "" {
		return nil, fmt.Errorf("youtube: api key or channel id not configured")
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("channelId", c.channelID)
	q.Set("part", "id,snippet")
	q.Set("type", "video")
	q.Set("order", "date")
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))

	u := fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode())

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search: status %d", resp.StatusCode)
	}

	var raw ytSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("youtube decode: %w", err)
	}

	videos := make([]Video, 0, len(raw.Items))
	for _, item := range raw.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			PublishedAt:  item.Snippet.PublishedAt,
			Thumbnail:    item.Snippet.Thumbnails.Default.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	return videos, nil
}

type ytSearchResponse struct {
	Items []ytSearchItem `json:"items"`
}

type ytSearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		PublishedAt  string `json:"publishedAt"`
		ChannelTitle string `json:"channelTitle"`
		Thumbnails   struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}
