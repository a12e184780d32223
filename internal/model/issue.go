package model

import "time"

// Issue is one archived newsletter run.
type Issue struct {
	ID             int64
	RunID          string
	IssueNumber    int
	TargetDate     time.Time
	Content        string
	CharacterCount int
	WeatherSource  string
	ModelUsed      string
	CreatedAt      time.Time
}
