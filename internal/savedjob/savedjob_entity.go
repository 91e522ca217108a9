package savedjob

import (
	"time"

	"github.com/google/uuid"
)

type SavedJob struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job"`
	JobID     uuid.UUID `gorm:"column:job_id;type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}

// SavedJobWithJob carries the joined job summary for the listing.
type SavedJobWithJob struct {
	SavedJob
	JobTitle     string   `gorm:"column:job_title"`
	JobLocation  string   `gorm:"column:job_location"`
	JobType      string   `gorm:"column:job_type"`
	JobSalaryMin *float64 `gorm:"column:job_salary_min"`
	JobSalaryMax *float64 `gorm:"column:job_salary_max"`
	JobCurrency  string   `gorm:"column:job_salary_currency"`
	JobStatus    string   `gorm:"column:job_status"`
}
