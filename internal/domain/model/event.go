package model

import (
	"time"
)

// Event.Date is kept as the free-form date string submitted by the organizer
// (e.g. "2025-05-15"); IsCompleted is set explicitly by an admin and is never
// derived from the date.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Date         string    `json:"date"`
	IsCompleted  bool      `json:"isCompleted"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e Event) RecordID() string { return e.ID }
