package domain

import "time"

type EventStatus string

const (
	EventPlanned   EventStatus = "PLANNED"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     *time.Time  `json:"endTime,omitempty"`
	Venue       string      `json:"venue"`
	Status      EventStatus `json:"status"`
	ProgramID   *int64      `json:"programID,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Version     int32       `json:"-"`
}
