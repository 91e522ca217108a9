package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a validator.ValidationErrors into an *AppError
// carrying field-level detail for the first failing field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s is required", field),
				http.StatusBadRequest,
			)
		default:
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s is invalid", field),
				http.StatusBadRequest,
			)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
