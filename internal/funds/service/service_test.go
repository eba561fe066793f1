package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paynet/internal/funds/models"
	"paynet/internal/funds/service/mocks"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *mocks.MockClient
	service    *Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.service = New(s.mockClient, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.ctx = requestcontext.WithSession(context.Background(), &domain.Admin{ID: "adm_1"}, "tok")
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func requests(statuses ...models.Status) []models.FundRequest {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	out := make([]models.FundRequest, len(statuses))
	for i, st := range statuses {
		out[i] = models.FundRequest{
			ID:        fmt.Sprintf("fr_%d", i+1),
			Status:    st,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func (s *ServiceSuite) TestPage() {
	s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").
		Return(requests(models.StatusApproved, models.StatusPending, models.StatusRejected), nil)

	page, err := s.service.Page(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(page.Items, 3)
	s.Equal("fr_3", page.Items[0].ID)
	s.False(page.Items[0].Actionable)
	s.True(page.Items[1].Actionable)
	s.Equal(1, page.TotalPages)
}

func (s *ServiceSuite) TestAccept() {
	s.Run("pending request is accepted", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(models.StatusPending), nil)
		s.mockClient.EXPECT().AcceptFundRequest(gomock.Any(), "fr_1").Return("Fund request approved", nil)

		msg, err := s.service.Accept(s.ctx, "fr_1")

		s.Require().NoError(err)
		s.Equal("Fund request approved", msg)
	})

	s.Run("terminal request conflicts without calling upstream", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(models.StatusApproved), nil)

		_, err := s.service.Accept(s.ctx, "fr_1")

		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
		s.Equal("fund request is already APPROVED", err.Error())
	})

	s.Run("unknown request is not found", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(), nil)

		_, err := s.service.Accept(s.ctx, "fr_9")
		s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
	})
}

func (s *ServiceSuite) TestReject() {
	s.Run("pending request is rejected", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(models.StatusPending), nil)
		s.mockClient.EXPECT().RejectFundRequest(gomock.Any(), "fr_1").Return("Fund request rejected", nil)

		_, err := s.service.Reject(s.ctx, "fr_1")
		s.Require().NoError(err)
	})

	s.Run("server rejection passes through verbatim", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(models.StatusPending), nil)
		s.mockClient.EXPECT().RejectFundRequest(gomock.Any(), "fr_1").
			Return("", dErrors.New(dErrors.CodeServerRejection, "Request locked by another admin"))

		_, err := s.service.Reject(s.ctx, "fr_1")
		s.Equal("Request locked by another admin", err.Error())
	})

	s.Run("rejected request cannot be rejected again", func() {
		s.mockClient.EXPECT().FundRequests(gomock.Any(), "adm_1").Return(requests(models.StatusRejected), nil)

		_, err := s.service.Reject(s.ctx, "fr_1")
		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
	})
}
