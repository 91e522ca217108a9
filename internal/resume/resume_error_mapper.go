package resume

import (
	"errors"
	"strings"

	resumeerrors "github.com/VaibhavBaliyan/hirenest/internal/resume/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into domain errors. The
// partial unique index on (user_id) WHERE is_active is the authoritative
// guard when two transactions both try to leave a row active.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resumeerrors.ErrResumeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_resumes_user_active" {
			return resumeerrors.ErrResumeConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_resumes_user_active") {
		return resumeerrors.ErrResumeConflict
	}

	return err
}
