package domain

import "time"

type FormStatus string

const (
	FormDraft     FormStatus = "DRAFT"
	FormPublished FormStatus = "PUBLISHED"
	FormClosed    FormStatus = "CLOSED"
)

type Form struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	SubmissionDeadline *time.Time `json:"submissionDeadline,omitempty"`
	Status             FormStatus `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	Version            int32      `json:"-"`
}
