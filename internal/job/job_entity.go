package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

type Salary struct {
	Min      *float64 `gorm:"column:salary_min" json:"min,omitempty"`
	Max      *float64 `gorm:"column:salary_max" json:"max,omitempty"`
	Currency string   `gorm:"column:salary_currency;type:varchar(10);default:'INR'" json:"currency,omitempty"`
}

type Experience struct {
	Min *int `gorm:"column:experience_min" json:"min,omitempty"`
	Max *int `gorm:"column:experience_max" json:"max,omitempty"`
}

type Job struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"column:title;type:varchar(100);not null"`
	Description string     `gorm:"column:description;type:text;not null"`
	CompanyID   uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	EmployerID  uuid.UUID  `gorm:"column:employer_id;type:uuid;not null;index"`
	Location    string     `gorm:"column:location;type:varchar(255);not null;index"`
	JobType     string     `gorm:"column:job_type;type:varchar(30);not null"`
	Salary      Salary     `gorm:"embedded"`
	Skills      []string   `gorm:"column:skills;serializer:json;type:jsonb"`
	Experience  Experience `gorm:"embedded"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

// JobWithApplicants carries the applicant count joined in for an employer's
// own listing.
type JobWithApplicants struct {
	Job
	ApplicantCount int64 `gorm:"column:applicant_count"`
}
