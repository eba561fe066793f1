package service

import (
	"context"

	"paynet/internal/tickets/models"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/requestcontext"
)

const PageSize = 10

type Client interface {
	Tickets(ctx context.Context, adminID string) ([]models.Ticket, error)
}

// Board is one page of tickets plus the count that still need attention.
type Board struct {
	pagination.Page[models.Ticket]
	OpenCount int `json:"open_count"`
}

type Service struct {
	client Client
}

func New(client Client) *Service {
	return &Service{client: client}
}

// List returns the admin's tickets, newest first. When openOnly is set,
// resolved and closed tickets are dropped.
func (s *Service) List(ctx context.Context, openOnly bool) ([]models.Ticket, error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	ts, err := s.client.Tickets(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	models.SortNewestFirst(ts)
	if openOnly {
		return onlyOpen(ts), nil
	}
	return ts, nil
}

func onlyOpen(ts []models.Ticket) []models.Ticket {
	open := make([]models.Ticket, 0, len(ts))
	for _, t := range ts {
		if t.Status.Open() {
			open = append(open, t)
		}
	}
	return open
}

// Board returns one page of tickets. OpenCount always counts the full list.
func (s *Service) Board(ctx context.Context, page int, openOnly bool) (*Board, error) {
	all, err := s.List(ctx, false)
	if err != nil {
		return &Board{Page: pagination.Paginate([]models.Ticket{}, 1, PageSize)}, err
	}
	shown := all
	if openOnly {
		shown = onlyOpen(all)
	}
	return &Board{
		Page:      pagination.Paginate(shown, page, PageSize),
		OpenCount: models.CountOpen(all),
	}, nil
}
