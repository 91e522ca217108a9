package application

import (
	"errors"
	"strings"

	applicationerrors "github.com/VaibhavBaliyan/hirenest/internal/application/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return applicationerrors.ErrApplicationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_applications_job_applicant" {
			return applicationerrors.ErrAlreadyApplied
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_applications_job_applicant") {
		return applicationerrors.ErrAlreadyApplied
	}

	return err
}
