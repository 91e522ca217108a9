package events

import "time"

const ApplicationStatusChangedTopic = "jobs.application.status.v1"

type ApplicationStatusChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	ApplicantID   string    `json:"applicant_id"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
