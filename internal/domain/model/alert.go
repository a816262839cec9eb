package model

import (
	"time"
)

type AlertSeverity string

const (
	SeverityMinor        AlertSeverity = "minor"
	SeverityModerate     AlertSeverity = "moderate"
	SeverityMajor        AlertSeverity = "major"
	SeverityCatastrophic AlertSeverity = "catastrophic"
)

func (s AlertSeverity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor, SeverityCatastrophic:
		return true
	}
	return false
}

type Alert struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Severity      AlertSeverity `json:"severity"`
	Date          time.Time     `json:"date"`
	AffectedAreas []string      `json:"affectedAreas"`
	Details       string        `json:"details"`
	Region        string        `json:"region"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (a Alert) RecordID() string { return a.ID }
