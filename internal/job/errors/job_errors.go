package joberrors

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrNoCompanyProfile = apperror.New(
		apperror.CodeInvalidInput,
		"Please create a company profile first",
		http.StatusBadRequest,
	)
	ErrNotJobOwner = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to modify this job",
		http.StatusForbidden,
	)
	ErrJobClosed = apperror.New(
		apperror.CodeInvalidState,
		"You cannot update a closed job",
		http.StatusBadRequest,
	)
	ErrJobAlreadyClosed = apperror.New(
		apperror.CodeConflict,
		"Job is already closed",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeInvalidInput,
		"Maximum salary must be greater than or equal to minimum salary",
		http.StatusBadRequest,
	)
	ErrInvalidExperienceRange = apperror.New(
		apperror.CodeInvalidInput,
		"Maximum experience must be greater than or equal to minimum experience",
		http.StatusBadRequest,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid job id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employer id",
		http.StatusBadRequest,
	)
)
