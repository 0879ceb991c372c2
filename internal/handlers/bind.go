package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/jobboard/internal/apperrors"
)

var errInvalidBody = apperrors.Validation("Invalid request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON decodes the request body into dst and validates it.
// An empty body decodes to the zero value.
func bindJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errInvalidBody
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.Validation("Missing required fields")
	case "email":
		return apperrors.Validation("Invalid email address")
	case "min":
		return apperrors.Validation(fmt.Sprintf("%s must be at least %s characters", humanize(fe.Field()), fe.Param()))
	case "max":
		return apperrors.Validation(fmt.Sprintf("%s must be at most %s characters", humanize(fe.Field()), fe.Param()))
	default:
		return apperrors.Validation(fmt.Sprintf("Invalid %s", fe.Field()))
	}
}

// humanize turns a JSON field name into the start of a message: job_type -> Job type.
func humanize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
