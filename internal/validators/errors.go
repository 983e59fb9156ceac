package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [ValidationErrors] value.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQueryParams wraps failures of list query parameters, which
	// are reported without per-field details.
	ErrInvalidQueryParams = errors.New("invalid query parameters")
)

// ValidationErrors lists every rejected request field in the order the fields
// were checked.
type ValidationErrors []models.FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is [ErrValidation].
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (e ValidationErrors) add(field, message string) ValidationErrors {
	return append(e, models.FieldError{Field: field, Message: message})
}

// orNil converts an empty list into a nil error.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
