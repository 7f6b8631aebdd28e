package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a request the server answered but did not accept: a non-2xx
// status, or a 2xx body with success=false.
type Error struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ValidationError lists the fields of a request that failed validation,
// keyed by their JSON name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a request struct against its validate tags
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fieldLabel(fe.Field()), fe)
	}
	return &ValidationError{Fields: fields}
}

// ValidateVerify checks a verify request and that the code has exactly
// length digits
func ValidateVerify(req VerifyOTPRequest, length int) error {
	if err := Validate(req); err != nil {
		return err
	}
	if length <= 0 {
		return nil
	}
	err := validate.Var(req.OTP, fmt.Sprintf("len=%d", length))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Fields: map[string]string{"otp": fieldMessage(fieldLabel("otp"), verrs[0])}}
	}
	return err
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be no more than %s characters long", label, fe.Param())
	case "numeric":
		return label + " must be a number"
	case "len":
		return fmt.Sprintf("%s must be %s digits", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func fieldLabel(field string) string {
	switch field {
	case "firstName":
		return "Firstname"
	case "lastName":
		return "Lastname"
	case "otp":
		return "OTP"
	}
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
