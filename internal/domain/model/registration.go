package model

import (
	"time"
)

// Registration links a user to an event by id only. Deleting either side
// leaves the registration in place; joined views filter the orphans out.
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserID       string    `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (r Registration) RecordID() string { return r.ID }

// RegistrationWithEvent is the member-facing join row; Event is nil only
// transiently, rows with a deleted event are dropped before responding.
type RegistrationWithEvent struct {
	Registration
	Event *Event `json:"event"`
}

// RegistrationWithUser is the admin-facing join row for an event's roster.
type RegistrationWithUser struct {
	Registration
	User *UserSummary `json:"user"`
}
