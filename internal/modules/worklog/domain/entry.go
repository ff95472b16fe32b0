package domain

import "time"

const SchemaVersion = 1

// Entry is one finished session, append-only once written. JSON tags match
// the deep-work-data.json wire shape.
type Entry struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startTime"`
	EndedAt   time.Time `json:"endTime"`
	Minutes   int       `json:"duration"`
	Completed bool      `json:"completed"`
}

// Log is the whole session log file.
type Log struct {
	Sessions      []Entry   `json:"sessions"`
	TotalSessions int       `json:"totalSessions"`
	Extracted     time.Time `json:"extracted"`
}
