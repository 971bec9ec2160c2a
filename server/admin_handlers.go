package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bloglane/admin-auth-server/admins"
	"github.com/bloglane/admin-auth-server/auth"
	"github.com/google/uuid"
)

type createAdminRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Username string        `json:"username,omitempty"`
	Status   admins.Status `json:"status,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type toggleStatusRequest struct {
	Status admins.Status `json:"status,omitempty"`
}

// HealthHandler reports process liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// CreateFirstAdminHandler bootstraps the one superAdmin. Open route: it
// self-disables once any admin exists.
func (s *Server) CreateFirstAdminHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		admin, err := s.auth.CreateFirstAdmin(auth.CreateAdminCommand{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Username,
			Status:   req.Status,
		})
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, admin)
	}
}

// SignUpHandler provisions a non-super admin. Gated by token, session and
// the superAdmin lookup.
func (s *Server) SignUpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		admin, err := s.auth.SignUp(auth.CreateAdminCommand{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Username,
			Status:   req.Status,
		})
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, admin)
	}
}

// LoginHandler verifies credentials, binds the session and hands out the
// token pair: access token in the body, refresh token only as a cookie.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sessionID := s.sessionID(r)
		newSession := sessionID == ""
		if newSession {
			sessionID = uuid.New().String()
		}

		result, err := s.auth.Login(sessionID, req.Email, req.Password)
		if err != nil {
			respondAuthError(w, err)
			return
		}

		if newSession {
			s.setSessionCookie(w, sessionID)
		}
		s.setRefreshCookie(w, result.RefreshToken)
		respondJSON(w, http.StatusOK, loginResponse{AccessToken: result.AccessToken})
	}
}

// MeHandler returns the admin bound to the session, hash stripped.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := r.Context().Value(ContextKeyAdminID).(string)
		admin, err := s.auth.Me(adminID)
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, admin)
	}
}

// RefreshHandler mints a new access token from the refresh cookie. The
// refresh token itself is not rotated.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var refreshToken string
		if cookie, err := r.Cookie(RefreshCookieName); err == nil {
			refreshToken = cookie.Value
		}

		accessToken, err := s.auth.Refresh(refreshToken)
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, loginResponse{AccessToken: accessToken})
	}
}

// LogoutHandler clears the session binding and the refresh cookie.
// Idempotent: succeeds with or without a live session.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.auth.Logout(s.sessionID(r)); err != nil {
			respondAuthError(w, err)
			return
		}
		s.clearRefreshCookie(w)
		respondJSON(w, http.StatusOK, map[string]string{"message": "Disconnected"})
	}
}

// ListAdminsHandler returns all non-super admins. SuperAdmin gated.
func (s *Server) ListAdminsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.auth.ListAdmins()
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

// ToggleStatusHandler flips or sets the target admin's status.
func (s *Server) ToggleStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleStatusRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req) // body is optional
		}

		admin, err := s.auth.ToggleStatus(r.PathValue("adminID"), req.Status)
		if err != nil {
			respondAuthError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, admin)
	}
}

func (s *Server) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.config.GetMaxSessionAge() / time.Second),
	})
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.config.GetRefreshTokenExpiry() / time.Second),
	})
}

func (s *Server) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
