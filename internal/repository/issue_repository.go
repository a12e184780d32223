package repository

import (
	"database/sql"
	"time"

	"ichinichi/internal/model"
)

type IssueRepository struct {
	db *sql.DB
}

func NewIssueRepository(db *sql.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) SaveIssue(issue *model.Issue) error {
	return r.db.QueryRow(`
		INSERT INTO newsletter_issue(run_id, issue_number, target_date, content, character_count, weather_source, model_used)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, issue.RunID, issue.IssueNumber, issue.TargetDate, issue.Content, issue.CharacterCount, issue.WeatherSource, issue.ModelUsed).Scan(&issue.ID)
}

func (r *IssueRepository) GetIssueByDate(target time.Time) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.QueryRow(`
		SELECT id, run_id, issue_number, target_date, content, character_count, weather_source, model_used, created_at
		FROM newsletter_issue
		WHERE target_date::date = $1::date
		ORDER BY created_at DESC
		LIMIT 1
	`, target).Scan(&issue.ID, &issue.RunID, &issue.IssueNumber, &issue.TargetDate, &issue.Content,
		&issue.CharacterCount, &issue.WeatherSource, &issue.ModelUsed, &issue.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}
