package cargo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// The service raises typed failures; controllers translate them to HTTP
// statuses without leaking store internals.
var (
	// ErrNotFound means the referenced cargo or segment does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a tracking-number collision survived every
	// generation retry. Callers may treat it as retryable.
	ErrConflict = errors.New("tracking number conflict")
)

// ValidationError reports a missing or malformed input field by name so the
// admin UI can show field-level feedback.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// fieldError translates a request-validation failure into a ValidationError
// naming the first offending field by its json name.
func fieldError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reasonForTag(fe)}
	}
	return &ValidationError{Reason: err.Error()}
}

func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// isDuplicateKey detects a unique-constraint violation across the postgres
// driver and the sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
