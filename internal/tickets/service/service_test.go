package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Client

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paynet/internal/tickets/models"
	"paynet/internal/tickets/service/mocks"
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
	s.service = New(s.mockClient)
	s.ctx = requestcontext.WithSession(context.Background(), &domain.Admin{ID: "adm_1"}, "tok")
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func tickets(n int, status func(i int) models.Status) []models.Ticket {
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	out := make([]models.Ticket, n)
	for i := range out {
		out[i] = models.Ticket{ID: fmt.Sprintf("t_%02d", i), Status: status(i), CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	return out
}

func (s *ServiceSuite) TestBoard() {
	s.Run("paginates ten per page newest first", func() {
		s.mockClient.EXPECT().Tickets(gomock.Any(), "adm_1").
			Return(tickets(12, func(i int) models.Status { return models.StatusOpen }), nil)

		board, err := s.service.Board(s.ctx, 2, false)

		s.Require().NoError(err)
		s.Equal(2, board.TotalPages)
		s.Len(board.Items, 2)
		s.Equal("t_01", board.Items[0].ID)
		s.Equal(12, board.OpenCount)
	})

	s.Run("open filter keeps the full open count", func() {
		s.mockClient.EXPECT().Tickets(gomock.Any(), "adm_1").Return(tickets(4, func(i int) models.Status {
			if i%2 == 0 {
				return models.StatusClosed
			}
			return models.StatusInProgress
		}), nil)

		board, err := s.service.Board(s.ctx, 1, true)

		s.Require().NoError(err)
		s.Len(board.Items, 2)
		s.Equal(2, board.OpenCount)
	})

	s.Run("failure yields an empty board", func() {
		s.mockClient.EXPECT().Tickets(gomock.Any(), "adm_1").Return(nil, dErrors.New(dErrors.CodeNetwork, "dial"))

		board, err := s.service.Board(s.ctx, 1, false)

		s.Require().Error(err)
		s.NotNil(board.Items)
		s.Empty(board.Items)
	})
}

func (s *ServiceSuite) TestListRequiresSession() {
	_, err := s.service.List(context.Background(), false)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
