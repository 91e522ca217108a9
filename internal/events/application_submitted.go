package events

import "time"

const ApplicationSubmittedTopic = "jobs.application.lifecycle.v1"

type ApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	ApplicantID   string    `json:"applicant_id"`
	EmployerID    string    `json:"employer_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
