package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Authenticator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paynet/internal/platform/metrics"
	"paynet/internal/session/models"
	"paynet/internal/session/service/mocks"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/sentinel"
	"paynet/pkg/requestcontext"
	fixtures "paynet/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockStore
	mockAuth  *mocks.MockAuthenticator
	metrics   *metrics.Metrics
	service   *Service
	now       time.Time
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(s.ctrl)
	s.mockAuth = mocks.NewMockAuthenticator(s.ctrl)
	s.metrics = metrics.NewWith(prometheus.NewRegistry())
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.service = New(s.mockStore, s.mockAuth,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithKeyFunc(func() string { return "sess-1" }),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestDecodeAdmin() {
	s.Run("valid token yields identity", func() {
		token := fixtures.NewTokenBuilder(s.now).Build()

		admin, err := s.service.DecodeAdmin(token, s.now)

		s.Require().NoError(err)
		s.Equal(fixtures.TestAdmin.ID, admin.ID)
		s.Equal(fixtures.TestAdmin.Name, admin.Name)
		s.Equal(fixtures.TestAdmin.UniqueID, admin.UniqueID)
		s.Equal(fixtures.TestAdmin.Email, admin.Email)
		s.Equal(s.now.Add(time.Hour).Unix(), admin.ExpiresAt.Unix())
	})

	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"malformed token", "not-a-jwt"},
		{"expiry equal to now", fixtures.NewTokenBuilder(s.now).ExpiresAt(s.now).Build()},
		{"expiry in the past", fixtures.NewTokenBuilder(s.now).ExpiresAt(s.now.Add(-time.Second)).Build()},
		{"no expiry claim", fixtures.NewTokenBuilder(s.now).WithoutExpiry().Build()},
		{"no id claim", fixtures.NewTokenBuilder(s.now).Without("id").Build()},
		{"id claim of the wrong type", fixtures.NewTokenBuilder(s.now).WithClaim("id", 42).Build()},
		{"exp claim of the wrong type", fixtures.NewTokenBuilder(s.now).WithClaim("exp", "tomorrow").Build()},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.DecodeAdmin(tc.token, s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized), "got %v", err)
		})
	}
}

func (s *ServiceSuite) TestResolve() {
	s.Run("returns identity and token for a live session", func() {
		token := fixtures.NewTokenBuilder(s.now).Build()
		s.mockStore.EXPECT().Get(gomock.Any(), "sess-1").Return(&models.Record{Token: token, Role: "admin"}, nil)

		admin, got, err := s.service.Resolve(s.ctx, "sess-1")

		s.Require().NoError(err)
		s.Equal(token, got)
		s.Equal("admin", admin.Role)
	})

	s.Run("missing record is unauthorized", func() {
		s.mockStore.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, sentinel.ErrNotFound)

		_, err := s.service.AdminIdentity(s.ctx, "sess-1")

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("expired token clears the stored record", func() {
		token := fixtures.NewTokenBuilder(s.now).ExpiresAt(s.now.Add(-time.Minute)).Build()
		gomock.InOrder(
			s.mockStore.EXPECT().Get(gomock.Any(), "sess-1").Return(&models.Record{Token: token}, nil),
			s.mockStore.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil),
		)

		_, err := s.service.AdminIdentity(s.ctx, "sess-1")

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Contains(err.Error(), "session expired")
	})

	s.Run("unreadable record is unauthorized and cleared", func() {
		corrupt := fmt.Errorf("parse session file: %w: %w", sentinel.ErrMalformed, errors.New("yaml: line 1: did not find expected ']'"))
		gomock.InOrder(
			s.mockStore.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, corrupt),
			s.mockStore.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil),
		)

		_, _, err := s.service.Resolve(s.ctx, "sess-1")

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized), "got %v", err)
		s.Equal(httputil.MessageAuth, err.Error())
	})

	s.Run("store failure is internal, not unauthorized", func() {
		s.mockStore.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, errors.New("connection reset"))

		_, err := s.service.AdminIdentity(s.ctx, "sess-1")

		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestLogin() {
	req := &models.LoginRequest{Email: "asha@paynet.in", Password: "secret"}

	s.Run("stores token with ttl derived from exp", func() {
		token := fixtures.NewTokenBuilder(s.now).ExpiresAt(s.now.Add(2 * time.Hour)).Build()
		s.mockAuth.EXPECT().Login(gomock.Any(), "asha@paynet.in", "secret").Return(token, "admin", nil)
		s.mockStore.EXPECT().Save(gomock.Any(), "sess-1", models.Record{Token: token, Role: "admin"}, 2*time.Hour).Return(nil)

		res, err := s.service.Login(s.ctx, req)

		s.Require().NoError(err)
		s.Equal("sess-1", res.SessionKey)
		s.Equal(fixtures.TestAdmin.ID, res.Admin.ID)
		s.Equal("admin", res.Admin.Role)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Logins.WithLabelValues(metrics.OutcomeSuccess)), 0)
	})

	s.Run("upstream rejection is returned as is", func() {
		rejection := dErrors.New(dErrors.CodeServerRejection, "Invalid credentials")
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", rejection)

		_, err := s.service.Login(s.ctx, req)

		s.Equal(rejection, err)
	})

	s.Run("unusable token is bad upstream data", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("garbage", "admin", nil)

		_, err := s.service.Login(s.ctx, req)

		s.True(dErrors.HasCode(err, dErrors.CodeBadData))
	})
}

func (s *ServiceSuite) TestLogout() {
	s.mockStore.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
	s.NoError(s.service.Logout(s.ctx, "sess-1"))

	s.NoError(s.service.Logout(s.ctx, ""))
}
