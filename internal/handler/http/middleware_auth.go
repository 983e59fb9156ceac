package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// auth is an HTTP middleware that admits only requests carrying a valid
// session cookie whose subject is an existing user.
//
// Rejections are 401 with one of three messages: the cookie is missing, the
// token does not verify, or the user it names no longer exists. A failing
// user lookup is a 500. On success the [models.AuthenticatedUser] is stored in
// the request context via [utils.WithAuthenticatedUser].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrMissingSessionCookie)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Info().Err(err).Msg("session token rejected")
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Info().Int64("user_id", token.UserID).Msg("session token names unknown user")
			utils.WriteJSON(w, models.Response{Success: false, Message: msgUserUnknown}, http.StatusUnauthorized)
			return
		case err != nil:
			writeError(w, r, err)
			return
		}

		ctx = utils.WithAuthenticatedUser(ctx, user.Public())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
