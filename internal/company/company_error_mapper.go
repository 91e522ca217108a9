package company

import (
	"errors"
	"strings"

	companyerrors "github.com/VaibhavBaliyan/hirenest/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into domain errors. The
// unique index on employer_id settles concurrent create-company calls from
// the same employer; the second insert fails here.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_companies_employer" {
			return companyerrors.ErrCompanyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_companies_employer") {
		return companyerrors.ErrCompanyExists
	}

	return err
}
