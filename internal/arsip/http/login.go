package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

type LoginHandler struct {
	AuthService  *service.AuthService
	CookieSecure bool
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles username/password login and issues the session cookie.
//
//	@Summary		Log in
//	@Description	Verifies the credentials and sets an HttpOnly session cookie valid for 24 hours.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	IdentityResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	httpx.ErrorResponse	"Wrong username or password"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	token, identity, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Warn("login rejected", "username", req.Username, "err", err)
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, sessionCookie(token, int(jwtx.DefaultSessionTTL/time.Second), h.CookieSecure))
	log.Info("session opened", "user_id", identity.UserID, "role", identity.Role)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toIdentityResponse(identity))
}

type LogoutHandler struct {
	CookieSecure bool
}

// ServeHTTP clears the session cookie.
//
//	@Summary		Log out
//	@Description	Expires the session cookie. Always succeeds, even without an active session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", -1, h.CookieSecure))
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}

type MeHandler struct{}

// ServeHTTP returns the identity bound to the current session.
//
//	@Summary		Current session
//	@Description	Returns the identity carried by the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	IdentityResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"No session cookie"
//	@Failure		403	{object}	httpx.ErrorResponse	"Invalid or expired session"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toIdentityResponse(identity))
}

func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
