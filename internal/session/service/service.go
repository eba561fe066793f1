package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"paynet/internal/platform/metrics"
	"paynet/internal/session/models"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/sentinel"
	"paynet/pkg/requestcontext"
)

// Store persists the session record.
// Error Contract: Get returns sentinel.ErrNotFound when no record exists and
// sentinel.ErrMalformed when the stored record cannot be decoded.
type Store interface {
	Get(ctx context.Context, key string) (*models.Record, error)
	Save(ctx context.Context, key string, rec models.Record, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Authenticator exchanges admin credentials for an upstream session token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token, role string, err error)
}

type Service struct {
	store   Store
	auth    Authenticator
	logger  *slog.Logger
	metrics *metrics.Metrics
	newKey  func() string
	parser  *jwt.Parser
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithKeyFunc overrides how session keys are minted. The CLI uses a fixed
// key because it keeps a single session file.
func WithKeyFunc(fn func() string) Option {
	return func(s *Service) {
		s.newKey = fn
	}
}

func New(store Store, auth Authenticator, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		auth:   auth,
		newKey: uuid.NewString,
		parser: jwt.NewParser(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

var errAuthRequired = dErrors.New(dErrors.CodeUnauthorized, httputil.MessageAuth)

// DecodeAdmin reads the admin identity from token without verifying its
// signature; the upstream API re-validates the token on every call.
func (s *Service) DecodeAdmin(token string, now time.Time) (*domain.Admin, error) {
	if token == "" {
		return nil, errAuthRequired
	}

	var claims models.AdminClaims
	if _, _, err := s.parser.ParseUnverified(token, &claims); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "malformed session token")
	}
	if claims.ID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session token has no admin id")
	}
	if claims.ExpiresAt == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session token has no expiry")
	}

	admin := claims.Admin()
	if admin.Expired(now) {
		return nil, dErrors.Wrap(sentinel.ErrExpired, dErrors.CodeUnauthorized, "session expired")
	}
	return admin, nil
}

// AdminIdentity loads the stored session for key and decodes it. Any
// failure is an unauthorized error; an expired or unreadable token also
// clears the stored record so the next request starts from login.
func (s *Service) AdminIdentity(ctx context.Context, key string) (*domain.Admin, error) {
	admin, _, err := s.Resolve(ctx, key)
	return admin, err
}

// Resolve is AdminIdentity plus the raw token for upstream calls.
func (s *Service) Resolve(ctx context.Context, key string) (*domain.Admin, string, error) {
	rec, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementAuthFailures()
			return nil, "", errAuthRequired
		}
		if errors.Is(err, sentinel.ErrMalformed) {
			s.metrics.IncrementAuthFailures()
			s.invalidate(ctx, key, &dErrors.Error{Code: dErrors.CodeUnauthorized, Message: "unreadable session record", Err: err})
			return nil, "", errAuthRequired
		}
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}

	admin, err := s.DecodeAdmin(rec.Token, requestcontext.Now(ctx))
	if err != nil {
		s.metrics.IncrementAuthFailures()
		s.invalidate(ctx, key, err)
		return nil, "", err
	}
	if admin.Role == "" {
		admin.Role = rec.Role
	}
	return admin, rec.Token, nil
}

func (s *Service) invalidate(ctx context.Context, key string, cause error) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear invalid session",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return
	}
	s.metrics.DecrementActiveSessions()
	s.logger.InfoContext(ctx, "session cleared",
		"reason", dErrors.MessageOf(cause, "invalid"),
		"request_id", requestcontext.RequestID(ctx),
	)
}

// Login authenticates against the upstream API and stores the returned
// token. The record lives as long as the token's exp claim allows.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	token, role, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.metrics.IncrementLogins(metrics.OutcomeFailure)
		return nil, err
	}

	now := requestcontext.Now(ctx)
	admin, err := s.DecodeAdmin(token, now)
	if err != nil {
		s.metrics.IncrementLogins(metrics.OutcomeFailure)
		s.logger.ErrorContext(ctx, "login returned unusable token",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, &dErrors.Error{Code: dErrors.CodeBadData, Message: "login returned an unusable session token", Err: err}
	}
	if admin.Role == "" {
		admin.Role = role
	}

	key := s.newKey()
	if err := s.store.Save(ctx, key, models.Record{Token: token, Role: role}, admin.ExpiresAt.Sub(now)); err != nil {
		s.metrics.IncrementLogins(metrics.OutcomeFailure)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store session")
	}

	s.metrics.IncrementLogins(metrics.OutcomeSuccess)
	s.metrics.IncrementActiveSessions()
	s.logger.InfoContext(ctx, "admin logged in",
		"admin_id", admin.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return &models.LoginResult{SessionKey: key, Admin: admin, Role: role}, nil
}

// Logout deletes the stored record. Logging out without a session is fine.
func (s *Service) Logout(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear session")
	}
	s.metrics.DecrementActiveSessions()
	return nil
}
