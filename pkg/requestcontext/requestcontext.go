// Package requestcontext carries per-request values through context.Context
// with one typed accessor per value.
package requestcontext

import (
	"context"
	"time"

	"paynet/pkg/domain"
)

type (
	requestIDKey struct{}
	clientIPKey  struct{}
	userAgentKey struct{}
	browserKey   struct{}
	timeKey      struct{}
	adminKey     struct{}
	tokenKey     struct{}
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID or "" when unset.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithClientMetadata stores the caller IP and User-Agent.
func WithClientMetadata(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, ip)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(clientIPKey{}).(string)
	return v
}

func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey{}).(string)
	return v
}

func WithBrowser(ctx context.Context, browser string) context.Context {
	return context.WithValue(ctx, browserKey{}, browser)
}

// Browser returns the parsed browser family, e.g. "Chrome/120.0".
func Browser(ctx context.Context) string {
	v, _ := ctx.Value(browserKey{}).(string)
	return v
}

// WithTime pins the request clock, used by tests and by handlers that need
// one consistent "now" across several checks.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, timeKey{}, t)
}

// Now returns the pinned request time, or time.Now() when none is set.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(timeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithSession stores the decoded admin and the raw bearer token for upstream calls.
func WithSession(ctx context.Context, admin *domain.Admin, token string) context.Context {
	ctx = context.WithValue(ctx, adminKey{}, admin)
	return context.WithValue(ctx, tokenKey{}, token)
}

// Admin returns the signed-in admin or nil outside an authenticated request.
func Admin(ctx context.Context) *domain.Admin {
	v, _ := ctx.Value(adminKey{}).(*domain.Admin)
	return v
}

// Token returns the bearer token to forward upstream.
func Token(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey{}).(string)
	return v
}
