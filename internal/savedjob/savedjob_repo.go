package savedjob

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=savedjob_repo.go -destination=mock/savedjob_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *SavedJob) error
	FindAllByUser(ctx context.Context, userID string) ([]SavedJobWithJob, error)
	DeleteByUserAndJob(ctx context.Context, userID, jobID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *SavedJob) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]SavedJobWithJob, error) {
	var saves []SavedJobWithJob
	err := r.db.WithContext(ctx).
		Model(&SavedJob{}).
		Select(`saved_jobs.*,
			jobs.title AS job_title,
			jobs.location AS job_location,
			jobs.job_type AS job_type,
			jobs.salary_min AS job_salary_min,
			jobs.salary_max AS job_salary_max,
			jobs.salary_currency AS job_salary_currency,
			jobs.status AS job_status`).
		Joins("JOIN jobs ON jobs.id = saved_jobs.job_id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.created_at DESC").
		Find(&saves).Error
	return saves, err
}

// DeleteByUserAndJob is keyed by (user, job) rather than the save id, so a
// foreign save is indistinguishable from one that never existed.
func (r *repository) DeleteByUserAndJob(ctx context.Context, userID, jobID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&SavedJob{})
	return result.RowsAffected, result.Error
}
