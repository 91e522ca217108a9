package savedjob

import (
	"errors"
	"strings"

	savedjoberrors "github.com/VaibhavBaliyan/hirenest/internal/savedjob/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return savedjoberrors.ErrSavedJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_saved_jobs_user_job" {
			return savedjoberrors.ErrAlreadySaved
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_saved_jobs_user_job") {
		return savedjoberrors.ErrAlreadySaved
	}

	return err
}
