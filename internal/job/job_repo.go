package job

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	FindAllActive(ctx context.Context, filter ListFilter) ([]Job, int64, error)
	FindAllByEmployer(ctx context.Context, employerID string) ([]JobWithApplicants, error)
	UpdateActive(ctx context.Context, j *Job) (int64, error)
	CountByEmployer(ctx context.Context, employerID string, status string) (int64, error)
	CountApplicationsByEmployer(ctx context.Context, employerID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) FindAllActive(ctx context.Context, filter ListFilter) ([]Job, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Job{}).
		Where("status = ?", StatusActive)

	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		q = q.Where("job_type = ?", filter.JobType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []Job
	err := q.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *repository) FindAllByEmployer(ctx context.Context, employerID string) ([]JobWithApplicants, error) {
	var jobs []JobWithApplicants
	err := r.db.WithContext(ctx).
		Model(&Job{}).
		Select("jobs.*, COUNT(applications.id) AS applicant_count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.employer_id = ?", employerID).
		Group("jobs.id").
		Order("jobs.created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// UpdateActive writes the job back only while it is still active. Zero rows
// means the job left the active state between the caller's read and this
// write, so a concurrent close can never be overwritten and a double close
// never commits twice.
func (r *repository) UpdateActive(ctx context.Context, j *Job) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ? AND status = ?", j.ID, StatusActive).
		Select("title", "description", "location", "job_type",
			"salary_min", "salary_max", "salary_currency",
			"skills", "experience_min", "experience_max", "status").
		Updates(j)
	return res.RowsAffected, res.Error
}

func (r *repository) CountByEmployer(ctx context.Context, employerID string, status string) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Job{}).
		Where("employer_id = ?", employerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) CountApplicationsByEmployer(ctx context.Context, employerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Count(&count).Error
	return count, err
}
