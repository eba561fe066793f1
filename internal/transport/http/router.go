// Package httptransport assembles the console router: the shared middleware
// stack, public probes and login, and the session-protected console API.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paynet/pkg/platform/middleware/auth"
	"paynet/pkg/platform/middleware/client"
	"paynet/pkg/platform/middleware/request"
)

const (
	// RequestTimeout bounds a whole console request, upstream calls included.
	RequestTimeout = 30 * time.Second
	// MaxBodyBytes caps console request bodies. Every form is small JSON.
	MaxBodyBytes = 64 << 10
)

// Registrar mounts a bounded context's routes.
type Registrar interface {
	Register(r chi.Router)
}

// PublicRegistrar mounts routes that must be reachable without a session.
type PublicRegistrar interface {
	RegisterPublic(r chi.Router)
}

// SessionRoutes splits login from the routes that need a live session.
type SessionRoutes interface {
	Registrar
	PublicRegistrar
}

// Routes groups everything the router mounts.
type Routes struct {
	Health   Registrar
	Sessions SessionRoutes
	Resolver auth.SessionResolver
	// Console holds the protected handlers: hierarchy, ledger, funds,
	// tickets and dashboard.
	Console []Registrar
}

type Options struct {
	Metrics  *request.Metrics
	Client   *client.Metadata
	Gatherer prometheus.Gatherer
	Timeout  time.Duration
}

// NewRouter wires all console endpoints with middleware.
func NewRouter(routes Routes, opts Options, logger *slog.Logger) http.Handler {
	if opts.Client == nil {
		opts.Client = client.NewMetadata(nil)
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Timeout <= 0 {
		opts.Timeout = RequestTimeout
	}

	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(opts.Client.Handler)
	r.Use(request.Logger(logger))
	r.Use(request.Timeout(opts.Timeout))
	r.Use(request.BodyLimit(MaxBodyBytes))
	r.Use(request.ContentTypeJSON)
	r.Use(request.LatencyMiddleware(opts.Metrics))

	if routes.Health != nil {
		routes.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	if routes.Sessions != nil {
		routes.Sessions.RegisterPublic(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(routes.Resolver, logger))
		if routes.Sessions != nil {
			routes.Sessions.Register(r)
		}
		for _, h := range routes.Console {
			h.Register(r)
		}
	})

	return r
}
