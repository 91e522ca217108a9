package resume

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=resume_repo.go -destination=mock/resume_repo_mock.go -package=mock
type Repository interface {
	CreateActive(ctx context.Context, r *Resume) error
	Activate(ctx context.Context, userID, id string) (*Resume, error)
	FindAllByUser(ctx context.Context, userID string) ([]Resume, error)
	FindActiveByUser(ctx context.Context, userID string) (*Resume, error)
	DeleteByIDAndUser(ctx context.Context, userID, id string) (*Resume, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateActive inserts the resume as the user's only active one. The
// deactivate and insert share a transaction so no interleaving can leave
// two active rows.
func (r *repository) CreateActive(ctx context.Context, res *Resume) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Resume{}).
			Where("user_id = ?", res.UserID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		res.IsActive = true
		return tx.Create(res).Error
	})
}

// Activate flips the target resume active and every other one inactive in a
// single transaction. The update is scoped by user, so a foreign id touches
// zero rows and reports not found.
func (r *repository) Activate(ctx context.Context, userID, id string) (*Resume, error) {
	var res Resume
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Resume{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		result := tx.Model(&Resume{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&res, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Resume, error) {
	var resumes []Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *repository) FindActiveByUser(ctx context.Context, userID string) (*Resume, error) {
	var res Resume
	err := r.db.WithContext(ctx).
		First(&res, "user_id = ? AND is_active = ?", userID, true).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repository) DeleteByIDAndUser(ctx context.Context, userID, id string) (*Resume, error) {
	var res Resume
	err := r.db.WithContext(ctx).
		First(&res, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}
