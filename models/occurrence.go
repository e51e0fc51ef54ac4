package models

import "time"

// Occurrence is one concrete instance of a recurring event.
type Occurrence struct {
	EventID      int64     `json:"event_id"`
	RecurrenceID int64     `json:"recurrence_id"`
	Name         string    `json:"event_name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	AllDay       bool      `json:"all_day"`
}

// OccurrenceRequest bounds the expansion of a recurring event.
type OccurrenceRequest struct {
	EventID int64
	From    time.Time
	To      time.Time
}
