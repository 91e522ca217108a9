package companyerrors

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

var (
	ErrCompanyExists = apperror.New(
		apperror.CodeConflict,
		"Employer already has a registered company",
		http.StatusBadRequest,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"No company profile found",
		http.StatusNotFound,
	)
	ErrInvalidEmployerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employer id",
		http.StatusBadRequest,
	)
)
