package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Response messages shared by several endpoints.
const (
	msgValidationFailed   = "Validation failed"
	msgInvalidQuery       = "Invalid query parameters"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgEmailRegistered    = "Email is already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgTaskNotFound       = "Task not found"
	msgRouteNotFound      = "Route not found"
	msgTokenMissing       = "Authentication token missing"
	msgTokenInvalid       = "Invalid or expired authentication token"
	msgUserUnknown        = "Invalid authentication token"
	msgInternal           = "An unexpected error occurred. Please try again later."
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:         http.StatusBadRequest,
	validators.ErrInvalidQueryParams: http.StatusBadRequest,
	ErrInvalidJSON:                   http.StatusBadRequest,
	utils.ErrEmptyBody:               http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrMissingSessionCookie:            http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrTaskNotFound:       http.StatusNotFound,

	crypto.ErrCipher: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err. Anything not
// listed gets the generic message so internal details never leak.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidQueryParams):
		return msgInvalidQuery
	case errors.Is(err, validators.ErrValidation):
		return msgValidationFailed
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, utils.ErrEmptyBody):
		return msgInvalidJSON
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return msgEmailRegistered
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, store.ErrTaskNotFound):
		return msgTaskNotFound
	case errors.Is(err, ErrMissingSessionCookie):
		return msgTokenMissing
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return msgTokenInvalid
	case errors.Is(err, service.ErrInvalidDataProvided):
		return msgValidationFailed
	}
	return msgInternal
}

// writeError answers r with the status and body that correspond to err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	response := models.Response{
		Success: false,
		Message: messageFromError(err),
	}

	// query failures carry no per-field detail
	var fieldErrors validators.ValidationErrors
	if !errors.Is(err, validators.ErrInvalidQueryParams) && errors.As(err, &fieldErrors) {
		response.Errors = fieldErrors
	}

	utils.WriteJSON(w, response, status)
}
