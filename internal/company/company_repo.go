package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, comp *Company) error
	FindByEmployer(ctx context.Context, employerID string) (*Company, error)
	Update(ctx context.Context, comp *Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) FindByEmployer(ctx context.Context, employerID string) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "employer_id = ?", employerID).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}
