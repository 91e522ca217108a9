package applicationerrors

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrJobClosed = apperror.New(
		apperror.CodeInvalidState,
		"You cannot apply to a closed job",
		http.StatusBadRequest,
	)
	ErrOwnJob = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot apply to your own job",
		http.StatusBadRequest,
	)
	ErrResumeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please upload a resume before applying",
		http.StatusBadRequest,
	)
	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"You have already applied to this job",
		http.StatusBadRequest,
	)
	ErrNotAuthorizedToView = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to view this job applicants",
		http.StatusForbidden,
	)
	ErrNotAuthorizedToUpdate = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to update this application",
		http.StatusForbidden,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Invalid application status transition",
		http.StatusBadRequest,
	)
	ErrInvalidApplicantID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid applicant id",
		http.StatusBadRequest,
	)
)
