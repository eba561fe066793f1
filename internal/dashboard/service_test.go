package dashboard

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Hierarchy,Funds,Tickets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paynet/internal/dashboard/mocks"
	fundmodels "paynet/internal/funds/models"
	hiermodels "paynet/internal/hierarchy/models"
	"paynet/internal/platform/metrics"
	ticketmodels "paynet/internal/tickets/models"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/requestcontext"
)

type DashboardSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	hierarchy *mocks.MockHierarchy
	funds     *mocks.MockFunds
	tickets   *mocks.MockTickets
	service   *Service
	ctx       context.Context
}

func TestDashboardSuite(t *testing.T) {
	suite.Run(t, new(DashboardSuite))
}

func (s *DashboardSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hierarchy = mocks.NewMockHierarchy(s.ctrl)
	s.funds = mocks.NewMockFunds(s.ctrl)
	s.tickets = mocks.NewMockTickets(s.ctrl)
	s.service = New(s.hierarchy, s.funds, s.tickets, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = requestcontext.WithSession(context.Background(), &domain.Admin{ID: "adm_1"}, "tok")
}

func (s *DashboardSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardSuite) TestAllPanelsLoad() {
	s.hierarchy.EXPECT().MasterDistributors(gomock.Any(), "adm_1").Return(make([]hiermodels.MasterDistributor, 3), nil)
	s.funds.EXPECT().List(gomock.Any()).Return([]fundmodels.FundRequest{
		{Status: fundmodels.StatusPending},
		{Status: fundmodels.StatusApproved},
		{Status: fundmodels.StatusPending},
	}, nil)
	s.tickets.EXPECT().List(gomock.Any(), true).Return(make([]ticketmodels.Ticket, 4), nil)

	sum := s.service.Summary(s.ctx)

	s.Equal(3, sum.MasterDistributors.Count)
	s.Equal(2, sum.PendingFundRequests.Count)
	s.Equal(4, sum.OpenTickets.Count)
	s.NoError(sum.Unauthorized())
}

func (s *DashboardSuite) TestOnePanelFailingLeavesOthers() {
	s.hierarchy.EXPECT().MasterDistributors(gomock.Any(), "adm_1").Return(nil, dErrors.New(dErrors.CodeNetwork, "dial"))
	s.funds.EXPECT().List(gomock.Any()).Return([]fundmodels.FundRequest{{Status: fundmodels.StatusPending}}, nil)
	s.tickets.EXPECT().List(gomock.Any(), true).Return(make([]ticketmodels.Ticket, 2), nil)

	sum := s.service.Summary(s.ctx)

	s.Require().NotNil(sum.MasterDistributors.Notice)
	s.Equal(httputil.MessageNetwork, sum.MasterDistributors.Notice.Message)
	s.Equal(1, sum.PendingFundRequests.Count)
	s.Equal(2, sum.OpenTickets.Count)
	s.NoError(sum.Unauthorized())
}

func (s *DashboardSuite) TestHandler() {
	m := metrics.NewWith(prometheus.NewRegistry())
	r := chi.NewRouter()
	NewHandler(s.service, m).Register(r)

	s.Run("degraded panel still answers 200", func() {
		s.hierarchy.EXPECT().MasterDistributors(gomock.Any(), "adm_1").Return(nil, nil)
		s.funds.EXPECT().List(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeBadData, "decode"))
		s.tickets.EXPECT().List(gomock.Any(), true).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/console/dashboard", nil).WithContext(s.ctx)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		var resp map[string]map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(0.0, resp["master_distributors"]["count"])
		s.NotNil(resp["pending_fund_requests"]["notice"])
		s.Equal(1.0, testutil.ToFloat64(m.ListsDegraded.WithLabelValues("dashboard_pending_fund_requests")))
	})

	s.Run("rejected session is 401", func() {
		s.hierarchy.EXPECT().MasterDistributors(gomock.Any(), "adm_1").Return(nil, dErrors.New(dErrors.CodeUnauthorized, "token expired"))
		s.funds.EXPECT().List(gomock.Any()).Return(nil, nil)
		s.tickets.EXPECT().List(gomock.Any(), true).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/console/dashboard", nil).WithContext(s.ctx)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
