package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.Normalize()

	if err := h.userValidator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request.User())
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.setSessionCookie(w, token.SignedString)

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	user := registeredUser.Public()
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "User registered successfully",
		User:    &user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.Normalize()

	if err := h.userValidator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.User{Email: request.Email, Password: request.Password})
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.setSessionCookie(w, token.SignedString)

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	user := foundUser.Public()
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Logged in successfully",
		User:    &user,
	}, http.StatusOK)
}

// logout clears the session cookie. The token itself stays valid until it
// expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Logged out successfully",
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetAuthenticatedUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.Response{Success: false, Message: "Not authenticated"}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, User: &user}, http.StatusOK)
}

// decodeBody reads a JSON body into dst. A missing body leaves dst at its
// zero value so that validation reports the absent fields.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	switch {
	case err == nil, errors.Is(err, utils.ErrEmptyBody):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
