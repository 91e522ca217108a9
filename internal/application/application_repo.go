package application

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*Application, error)
	FindByIDWithJob(ctx context.Context, id string) (*ApplicationWithJob, error)
	FindAllByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error)
	FindAllByJob(ctx context.Context, jobID string) ([]ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create inserts through the raw transaction when one is attached so the
// application row and its outbox event commit together.
func (r *repository) Create(ctx context.Context, a *Application) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(a).Error
	}

	query := `
        INSERT INTO applications (
            id, job_id, applicant_id, cover_letter, resume_url, status, applied_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    `
	_, err := r.tx.ExecContext(
		ctx, query,
		a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.ResumeURL, a.Status, a.AppliedAt,
	)
	return err
}

func (r *repository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		First(&a, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByIDWithJob(ctx context.Context, id string) (*ApplicationWithJob, error) {
	var a ApplicationWithJob
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Select(applicationJobColumns).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		First(&a, "applications.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error) {
	var apps []ApplicationWithJob
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Select(applicationJobColumns).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) FindAllByJob(ctx context.Context, jobID string) ([]ApplicationWithApplicant, error) {
	var apps []ApplicationWithApplicant
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Select(`applications.*,
			users.name AS applicant_name,
			users.email AS applicant_email,
			users.phone AS applicant_phone`).
		Joins("JOIN users ON users.id = applications.applicant_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	return apps, err
}

// UpdateStatus also routes through the raw transaction when present, for the
// same commit-together guarantee as Create.
func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).
			Model(&Application{}).
			Where("id = ?", id).
			Update("status", status).Error
	}

	_, err := r.tx.ExecContext(
		ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	return err
}

const applicationJobColumns = `applications.*,
	jobs.title AS job_title,
	jobs.location AS job_location,
	jobs.job_type AS job_type,
	jobs.salary_min AS job_salary_min,
	jobs.salary_max AS job_salary_max,
	jobs.salary_currency AS job_salary_currency,
	jobs.status AS job_status,
	jobs.employer_id AS job_employer_id`
