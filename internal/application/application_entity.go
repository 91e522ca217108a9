package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

// allowedTransitions is the definitive status machine. Rejected is terminal
// and re-asserting the current status is not a transition.
var allowedTransitions = map[string][]string{
	StatusApplied:     {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusRejected, StatusApplied},
	StatusRejected:    {},
}

func ValidStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID       uuid.UUID `gorm:"column:job_id;type:uuid;not null;uniqueIndex:idx_applications_job_applicant"`
	ApplicantID uuid.UUID `gorm:"column:applicant_id;type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index"`
	CoverLetter string    `gorm:"column:cover_letter;type:text"`
	ResumeURL   string    `gorm:"column:resume_url;type:text;not null"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'applied'"`
	AppliedAt   time.Time `gorm:"column:applied_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationWithJob carries the joined job summary for an applicant's own
// listing and for ownership checks on status updates.
type ApplicationWithJob struct {
	Application
	JobTitle      string    `gorm:"column:job_title"`
	JobLocation   string    `gorm:"column:job_location"`
	JobType       string    `gorm:"column:job_type"`
	JobSalaryMin  *float64  `gorm:"column:job_salary_min"`
	JobSalaryMax  *float64  `gorm:"column:job_salary_max"`
	JobCurrency   string    `gorm:"column:job_salary_currency"`
	JobStatus     string    `gorm:"column:job_status"`
	JobEmployerID uuid.UUID `gorm:"column:job_employer_id"`
}

// ApplicationWithApplicant carries the joined applicant contact fields for
// the employer's view. The credential never leaves the users table.
type ApplicationWithApplicant struct {
	Application
	ApplicantName  string `gorm:"column:applicant_name"`
	ApplicantEmail string `gorm:"column:applicant_email"`
	ApplicantPhone string `gorm:"column:applicant_phone"`
}
