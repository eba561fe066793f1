package service

import (
	"context"
	"log/slog"

	"paynet/internal/funds/models"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/requestcontext"
)

const PageSize = 10

// Client is the slice of the upstream API fund requests need.
type Client interface {
	FundRequests(ctx context.Context, adminID string) ([]models.FundRequest, error)
	AcceptFundRequest(ctx context.Context, requestID string) (string, error)
	RejectFundRequest(ctx context.Context, requestID string) (string, error)
}

type Service struct {
	client Client
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(client Client, opts ...Option) *Service {
	svc := &Service{client: client}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// List returns every fund request addressed to the signed-in admin, newest
// first.
func (s *Service) List(ctx context.Context) ([]models.FundRequest, error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	reqs, err := s.client.FundRequests(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	models.SortNewestFirst(reqs)
	return reqs, nil
}

// Page returns one page of fund requests as table rows.
func (s *Service) Page(ctx context.Context, page int) (pagination.Page[models.Row], error) {
	reqs, err := s.List(ctx)
	if err != nil {
		return pagination.Paginate([]models.Row{}, 1, PageSize), err
	}
	rows := make([]models.Row, len(reqs))
	for i, r := range reqs {
		rows[i] = models.Row{FundRequest: r, Actionable: r.Status.Actionable()}
	}
	return pagination.Paginate(rows, page, PageSize), nil
}

func (s *Service) Accept(ctx context.Context, requestID string) (string, error) {
	if err := s.requirePending(ctx, requestID); err != nil {
		return "", err
	}
	msg, err := s.client.AcceptFundRequest(ctx, requestID)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "fund request accepted", "fund_request_id", requestID, "request_id", requestcontext.RequestID(ctx))
	return msg, nil
}

func (s *Service) Reject(ctx context.Context, requestID string) (string, error) {
	if err := s.requirePending(ctx, requestID); err != nil {
		return "", err
	}
	msg, err := s.client.RejectFundRequest(ctx, requestID)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "fund request rejected", "fund_request_id", requestID, "request_id", requestcontext.RequestID(ctx))
	return msg, nil
}

// requirePending re-reads the list because the server owns status; only a
// PENDING request may be accepted or rejected.
func (s *Service) requirePending(ctx context.Context, requestID string) error {
	reqs, err := s.List(ctx)
	if err != nil {
		return err
	}
	req, ok := models.Find(reqs, requestID)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "fund request not found")
	}
	if !req.Status.Actionable() {
		return dErrors.New(dErrors.CodeConflict, "fund request is already "+string(req.Status))
	}
	return nil
}
