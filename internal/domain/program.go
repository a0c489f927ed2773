package domain

import (
	"time"
)

type ProgramStatus string

const (
	ProgramActive    ProgramStatus = "ACTIVE"
	ProgramCompleted ProgramStatus = "COMPLETED"
	ProgramCancelled ProgramStatus = "CANCELLED"
)

// ProgramSchedule is the stored, user-authored schedule definition exactly as
// it was submitted. It is raw input: the calendar package validates it once
// and turns it into an immutable calendar.Schedule before any expansion.
type ProgramSchedule struct {
	Type              string   `json:"scheduleType"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	Frequency         string   `json:"frequency,omitempty"`
	FrequencyInterval int32    `json:"frequencyInterval,omitempty"`
	DaysOfWeek        []string `json:"daysOfWeek,omitempty"`
	Exceptions        []string `json:"exceptions,omitempty"`
	CustomDescription string   `json:"customDescription,omitempty"`
}

type Program struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         ProgramStatus   `json:"status"`
	TargetAudience string          `json:"targetAudience"`
	// StartDate and EndDate are denormalized from the schedule at write time
	// so the timeline never has to re-parse the definition.
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Schedule  ProgramSchedule `json:"schedule"`
	CreatedAt time.Time       `json:"createdAt"`
	Version   int32           `json:"-"`
}
