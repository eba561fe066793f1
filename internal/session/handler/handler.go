package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paynet/internal/session/models"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/middleware/auth"
	"paynet/pkg/requestcontext"
)

// Service defines the session operations the console exposes.
type Service interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
	Logout(ctx context.Context, key string) error
}

type Handler struct {
	sessions     Service
	logger       *slog.Logger
	cookieSecure bool
}

func New(sessions Service, logger *slog.Logger, cookieSecure bool) *Handler {
	return &Handler{sessions: sessions, logger: logger, cookieSecure: cookieSecure}
}

// RegisterPublic mounts routes reachable without a session.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/console/login", h.HandleLogin)
	r.Post("/console/logout", h.HandleLogout)
}

// Register mounts routes that sit behind RequireSession.
func (h *Handler) Register(r chi.Router) {
	r.Get("/console/me", h.HandleWhoAmI)
}

type loginResponse struct {
	models.IdentityResponse
	Message string `json:"message"`
}

// HandleLogin implements POST /console/login.
//
// Input: { "email": "...", "password": "..." }
// Output: identity view; the session key is set as an HttpOnly cookie.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.sessions.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    res.SessionKey,
		Path:     "/",
		Expires:  res.Admin.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		IdentityResponse: models.NewIdentityResponse(res.Admin),
		Message:          "login successful",
	})
}

// HandleLogout implements POST /console/logout. It always clears the cookie.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var key string
	if c, err := r.Cookie(auth.CookieName); err == nil {
		key = c.Value
	}
	if err := h.sessions.Logout(ctx, key); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// HandleWhoAmI implements GET /console/me.
func (h *Handler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	admin := requestcontext.Admin(r.Context())
	if admin == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, httputil.MessageAuth))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewIdentityResponse(admin))
}
