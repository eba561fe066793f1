package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paynet/internal/platform/metrics"
	"paynet/internal/tickets/handler/mocks"
	"paynet/internal/tickets/models"
	"paynet/internal/tickets/service"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/pagination"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewWith(prometheus.NewRegistry()))
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *HandlerSuite) TestListPassesPageAndFilter() {
	s.service.EXPECT().Board(gomock.Any(), 3, true).Return(&service.Board{
		Page:      pagination.Paginate([]models.Ticket{{ID: "t_1", Status: models.StatusOpen}}, 1, 10),
		OpenCount: 1,
	}, nil)

	rec := s.get("/console/tickets?page=3&open=true")

	s.Equal(http.StatusOK, rec.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1.0, resp["open_count"])
	s.Len(resp["items"], 1)
}

func (s *HandlerSuite) TestListDegrades() {
	s.service.EXPECT().Board(gomock.Any(), 1, false).Return(&service.Board{
		Page: pagination.Paginate([]models.Ticket{}, 1, 10),
	}, dErrors.New(dErrors.CodeServerRejection, ""))

	rec := s.get("/console/tickets")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "unable to load tickets")
}

func (s *HandlerSuite) TestListAuthFailure() {
	s.service.EXPECT().Board(gomock.Any(), 1, false).Return(nil, dErrors.New(dErrors.CodeUnauthorized, "token expired"))

	rec := s.get("/console/tickets")

	s.Equal(http.StatusUnauthorized, rec.Code)
}
