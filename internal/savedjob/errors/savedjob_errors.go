package savedjoberrors

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

var (
	ErrAlreadySaved = apperror.New(
		apperror.CodeConflict,
		"You have already saved this job",
		http.StatusBadRequest,
	)
	ErrSavedJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Saved job not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
