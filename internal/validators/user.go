package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names of account requests.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Password length bounds. The upper bound is the bcrypt input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// UserValidator validates register and login requests.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				errs = errs.add(FieldName, "Name is required")
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				errs = errs.add(FieldEmail, "Please provide a valid email")
			}
		case FieldPassword:
			if len(request.Password) < MinPasswordLength {
				errs = errs.add(FieldPassword, "Password must be at least 6 characters long")
			} else if len(request.Password) > MaxPasswordLength {
				errs = errs.add(FieldPassword, "Password must be at most 72 bytes long")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				errs = errs.add(FieldEmail, "Please provide a valid email")
			}
		case FieldPassword:
			if request.Password == "" {
				errs = errs.add(FieldPassword, "Password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// isValidEmail accepts a bare addr-spec such as "ann@example.com"; display
// names and angle brackets are rejected.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email
}
