package dto

import "time"

type AppendInput struct {
	StartedAt time.Time
	EndedAt   time.Time
	Minutes   int
	Completed bool
}

type EntryOutput struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Minutes   int
	Completed bool
}

// DayTotal is one calendar date's summed minutes, Date in 2006-01-02 form.
type DayTotal struct {
	Date    string
	Minutes int
}
