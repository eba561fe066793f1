package auth

import (
	"context"
	"log/slog"
	"net/http"

	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/requestcontext"
)

// CookieName holds the opaque console session key. The admin token itself
// never leaves the server-side session store.
const CookieName = "console_session"

// SessionResolver loads the stored session for key and decodes its admin
// identity. Implementations return a CodeUnauthorized error for a missing,
// malformed or expired session.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) (*domain.Admin, string, error)
}

// RequireSession resolves the console session once per request and stores
// the admin and token in the request context for handlers and the upstream
// client.
func RequireSession(resolver SessionResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				logger.WarnContext(ctx, "unauthorized access - missing session cookie",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, httputil.MessageAuth))
				return
			}

			admin, token, err := resolver.Resolve(ctx, cookie.Value)
			if err != nil {
				if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
					logger.WarnContext(ctx, "unauthorized access - invalid session",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, httputil.MessageAuth))
					return
				}
				logger.ErrorContext(ctx, "failed to resolve session",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}

			ctx = requestcontext.WithSession(ctx, admin, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
