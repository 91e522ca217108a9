package auth

import (
	"errors"
	"strings"

	autherrors "github.com/VaibhavBaliyan/hirenest/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into domain errors. The
// unique index on email is the authoritative guard against concurrent
// registrations with the same address.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_email" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_email") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
