package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/requestcontext"
)

type stubResolver struct {
	admin *domain.Admin
	token string
	err   error
	keys  []string
}

func (s *stubResolver) Resolve(_ context.Context, key string) (*domain.Admin, string, error) {
	s.keys = append(s.keys, key)
	return s.admin, s.token, s.err
}

type RequireSessionSuite struct {
	suite.Suite
	resolver *stubResolver
	reached  bool
	gotAdmin *domain.Admin
	gotToken string
	handler  http.Handler
}

func TestRequireSessionSuite(t *testing.T) {
	suite.Run(t, new(RequireSessionSuite))
}

func (s *RequireSessionSuite) SetupTest() {
	s.resolver = &stubResolver{}
	s.reached = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = RequireSession(s.resolver, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.reached = true
		s.gotAdmin = requestcontext.Admin(r.Context())
		s.gotToken = requestcontext.Token(r.Context())
	}))
}

func (s *RequireSessionSuite) serve(cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/console/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RequireSessionSuite) TestMissingCookie() {
	rec := s.serve("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"unauthorized","error_description":"authentication required"}`, rec.Body.String())
	s.False(s.reached)
	s.Empty(s.resolver.keys)
}

func (s *RequireSessionSuite) TestExpiredSession() {
	s.resolver.err = dErrors.New(dErrors.CodeUnauthorized, "session expired")

	rec := s.serve("sess-1")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "authentication required")
	s.False(s.reached)
}

func (s *RequireSessionSuite) TestStoreFailure() {
	s.resolver.err = dErrors.Wrap(errors.New("connection refused"), dErrors.CodeInternal, "failed to load session")

	rec := s.serve("sess-1")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.False(s.reached)
}

func (s *RequireSessionSuite) TestValidSession() {
	s.resolver.admin = &domain.Admin{ID: "adm_1", Name: "Asha"}
	s.resolver.token = "tok"

	rec := s.serve("sess-1")

	s.Equal(http.StatusOK, rec.Code)
	s.True(s.reached)
	s.Equal([]string{"sess-1"}, s.resolver.keys)
	if assert.NotNil(s.T(), s.gotAdmin) {
		s.Equal("adm_1", s.gotAdmin.ID)
	}
	s.Equal("tok", s.gotToken)
}
