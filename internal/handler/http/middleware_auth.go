package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/utils"
)

const sessionCookieName = "session"

// unauthorizedFunc answers a request that has no valid session.
type unauthorizedFunc func(w http.ResponseWriter, r *http.Request)

// redirectToLogin is used by page routes.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	utils.SeeOther(w, r, "/login")
}

// respondUnauthorized is used by JSON routes.
func respondUnauthorized(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, unauthorizedResponse, http.StatusUnauthorized)
}

// auth is an HTTP middleware that enforces cookie sessions.
//
// It reads the "session" cookie, validates it via
// [service.AuthService.ParseToken] and, on success, stores the owner id in
// the request context under [utils.OwnerIDCtxKey] and adds it to the
// request-scoped logger. Requests without a valid session are answered by
// onFail and never reach next.
func (h *Handler) auth(onFail unauthorizedFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			cookie, err := r.Cookie(sessionCookieName)
			if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
				log.Debug().Err(ErrNoSession).Send()
				onFail(w, r)
				return
			}
			if err != nil {
				log.Err(err).Msg("error reading session cookie")
				onFail(w, r)
				return
			}

			ctx := r.Context()
			token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing session token")
				h.clearSessionCookie(w)
				onFail(w, r)
				return
			}

			ctx = utils.WithOwnerID(ctx, token.OwnerID)
			ctx = logger.WithOwnerID(ctx, token.OwnerID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ownerID returns the id stored by auth. Handlers behind auth can rely on it.
func ownerID(r *http.Request) int64 {
	id, _ := utils.GetOwnerIDFromContext(r.Context())
	return id
}

