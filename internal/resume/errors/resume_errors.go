package resumeerrors

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

var (
	ErrResumeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resume not found",
		http.StatusNotFound,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file is required",
		http.StatusBadRequest,
	)
	ErrUnsupportedFileType = apperror.New(
		apperror.CodeInvalidInput,
		"Only PDF, DOC and DOCX files are allowed",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file must be smaller than 5 MB",
		http.StatusBadRequest,
	)
	ErrResumeConflict = apperror.New(
		apperror.CodeConflict,
		"Another resume change is in progress, please try again",
		http.StatusConflict,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to store resume file",
		http.StatusInternalServerError,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
