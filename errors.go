package typedid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable generator error code.
type ErrorCode string

const (
	CodeInvalidConfig    ErrorCode = "invalid_config"
	CodeLoadFailed       ErrorCode = "load_failed"
	CodeInvalidDirective ErrorCode = "invalid_directive"
	CodeRenderInternal   ErrorCode = "render_internal"
	CodeWriteFailed      ErrorCode = "write_failed"
)

// Error is the generator's error envelope: a stable code, a
// human-readable message, and optional structured details.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new generator error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new generator error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// fromValidationErrors maps validator failures on a Config to a single
// invalid_config error with one detail entry per failed field.
func fromValidationErrors(err error) *Error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return Errorf(CodeInvalidConfig, "invalid config: %v", err)
	}

	details := make(map[string]any)
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return &Error{
		Code:    CodeInvalidConfig,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// formatValidationError converts a validator.FieldError to a
// human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "endswith":
		return fmt.Sprintf("must end with %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
