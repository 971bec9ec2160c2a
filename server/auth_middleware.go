package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyAdminID stores the admin id bound to the session
	ContextKeyAdminID ContextKey = "admin_id"
	// ContextKeyClaims stores the verified access-token claims
	ContextKeyClaims ContextKey = "claims"
)

// RequireAccessToken is the token gate: it requires a signature-verified,
// unexpired access token in the Authorization header. The claims it
// carries are stored in the request context but the authenticated
// identity for handlers comes from the session gate, not from here.
func (s *Server) RequireAccessToken() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := s.auth.VerifyAccessToken(parts[1])
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireSession is the session gate: the session cookie must resolve to
// a server-side session with a bound admin id. The gate does not
// re-validate the admin against the store; handlers that need fresh data
// fetch it themselves.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			session, err := s.repos.Sessions.Get(cookie.Value)
			if err != nil || !session.Bound() {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminID, session.AdminID)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireSuperAdmin is the elevated-role gate. It re-fetches the bound
// admin from the store rather than trusting token claims, so a demoted or
// deleted admin is denied immediately. Must be chained after
// RequireSession.
func (s *Server) RequireSuperAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			adminID, ok := r.Context().Value(ContextKeyAdminID).(string)
			if !ok || adminID == "" {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			admin, err := s.repos.Admins.GetByID(adminID)
			if err != nil {
				log.Warn().Str("admin_id", adminID).Msg("superadmin gate: admin lookup failed")
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !admin.SuperAdmin {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next(w, r)
		}
	}
}
