package media

import (
	"fmt"
	"time"
)

// Summary is the derived media record for the newsletter. It only exists
// when a video, its transcript and the collaborator's summary were all
// obtained.
type Summary struct {
	VideoID string
	Title   string
	URL     string
	Summary string
	Tagline string
}

// Summarizer is the text-generation collaborator contract: it receives a
// transcript and returns a short summary and a tagline as plain text.
type Summarizer interface {
	SummarizeTranscript(title, transcript string) (summary, tagline string, err error)
}

// VideoFinder locates candidate videos on the channel.
type VideoFinder interface {
	FindLatestVideo() (*Video, error)
	FindVideoForDate(target time.Time) (*Video, error)
}

// TranscriptFetcher retrieves a caption track; "" means none exists.
type TranscriptFetcher interface {
	Fetch(videoID string) (string, error)
}

// Source ties the video platform, transcript retrieval and the
// summarizer together.
type Source struct {
	Videos      VideoFinder
	Transcripts TranscriptFetcher
	Summarizer  Summarizer
}

// SummaryForDate builds the media summary for the target date. It
// prefers a video titled with the date and falls back to the channel's
// latest upload. (nil, nil) means absent: no video, no transcript, or no
// summarizer configured. Only transport-level failures are reported.
func (s *Source) SummaryForDate(target time.Time) (*Summary, error) {
	if s.Summarizer == nil {
		return nil, nil
	}

	video, err := s.Videos.FindVideoForDate(target)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	if video == nil {
		video, err = s.Videos.FindLatestVideo()
		if err != nil {
			return nil, fmt.Errorf("media: %w", err)
		}
	}
	if video == nil {
		return nil, nil
	}

	transcript, err := s.Transcripts.Fetch(video.ID)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	if transcript == "" {
		return nil, nil
	}

	summary, tagline, err := s.Summarizer.SummarizeTranscript(video.Title, transcript)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}

	return &Summary{
		VideoID: video.ID,
		Title:   video.Title,
		URL:     video.URL,
		Summary: summary,
		Tagline: tagline,
	}, nil
}
