// Package llm holds the text-generation collaborator clients. The
// collaborator writes the newsletter's health message and summarizes
// video transcripts; its internals are a black box behind two small
// interfaces.
package llm

import "strings"

// WeatherFacts is the factual input for the health message. Display
// strings are prepared by the caller; absent facts arrive as their
// placeholder text, never as guesses.
type WeatherFacts struct {
	DateLabel   string // e.g. "6月9日（月）"
	Narrative   string
	Temperature string
	Humidity    string
	Wind        string
	RainChance  string
	Comfort     string
	MoonLabel   string
	Pressure    string
}

// MessageWriter produces the short health-minded closing message for the
// weather section.
type MessageWriter interface {
	HealthMessage(facts WeatherFacts) (string, error)
}

// Summarizer turns a video transcript into a short summary and tagline.
type Summarizer interface {
	SummarizeTranscript(title, transcript string) (summary, tagline string, err error)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
