package events

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// FileProvider reads events from a local CSV file with the columns
// date,title,category[,description]. It is the fallback origin when the
// remote calendar cannot serve, so it only fails on a genuinely corrupt
// file.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Name() string {
	return "csv-fallback"
}

func (p *FileProvider) Load(from, to time.Time) ([]Event, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w: %v", p.path, ErrSourceUnavailable, err)
		}
		return nil, fmt.Errorf("open %s: %w: %v", p.path, ErrMalformedSource, err)
	}
	defer f.Close()

	events, err := parseCSV(f, p.Name())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.path, err)
	}

	var filtered []Event
	for _, e := range events {
		if !InRange(e.Date, from, to) {
			continue
		}
		filtered = append(filtered, e)
	}

	Sort(filtered)
	return filtered, nil
}

func parseCSV(r io.Reader, origin string) ([]Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	var events []Event
	for i, row := range records {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at least 3", ErrMalformedSource, i+1, len(row))
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad date %q", ErrMalformedSource, i+1, row[0])
		}

		category := strings.TrimSpace(row[2])
		if category != CategorySchedule && category != CategoryPromo {
			return nil, fmt.Errorf("%w: row %d: unknown category %q", ErrMalformedSource, i+1, category)
		}

		event := Event{
			Date:     date,
			Title:    strings.TrimSpace(row[1]),
			Category: category,
			Origin:   origin,
		}
		if len(row) > 3 {
			event.Description = strings.TrimSpace(row[3])
		}
		events = append(events, event)
	}
	return events, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date")
}
