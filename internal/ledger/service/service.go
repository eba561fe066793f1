package service

import (
	"context"
	"log/slog"

	"paynet/internal/ledger/models"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/platform/privacy"
	"paynet/pkg/requestcontext"
)

// Page sizes of the ledger tables.
const (
	WalletPageSize = 10
	PayoutPageSize = 6
)

// Client is the slice of the upstream API the ledger views need.
type Client interface {
	WalletTransactions(ctx context.Context, adminID string) ([]models.Transaction, error)
	PayoutTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	Refund(ctx context.Context, payoutTxID string) (string, error)
	Topup(ctx context.Context, in models.TopupRequest) (string, error)
	LookupByPhone(ctx context.Context, userType domain.UserType, phone string) (*models.Account, error)
	Revert(ctx context.Context, in models.RevertRequest) (string, error)
	RevertHistory(ctx context.Context, phone string) ([]models.Revert, error)
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

// WalletPage returns one page of the admin's wallet ledger, newest first.
// Wallet rows are never refundable; refunds apply to payouts only.
func (s *Service) WalletPage(ctx context.Context, page int) (pagination.Page[models.Row], error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return emptyPage(WalletPageSize), errNoSession
	}
	txs, err := s.client.WalletTransactions(ctx, admin.ID)
	if err != nil {
		return emptyPage(WalletPageSize), err
	}
	return paginate(txs, page, WalletPageSize, false), nil
}

// PayoutPage returns one page of a retailer's payouts, newest first.
func (s *Service) PayoutPage(ctx context.Context, userID string, page int) (pagination.Page[models.Row], error) {
	txs, err := s.client.PayoutTransactions(ctx, userID)
	if err != nil {
		return emptyPage(PayoutPageSize), err
	}
	return paginate(txs, page, PayoutPageSize, true), nil
}

func paginate(txs []models.Transaction, page, size int, payout bool) pagination.Page[models.Row] {
	models.SortNewestFirst(txs)
	rows := make([]models.Row, len(txs))
	for i, tx := range txs {
		rows[i] = models.Row{
			Transaction: tx,
			Split:       models.SplitCommission(tx.Commission),
			Refundable:  payout && tx.Status.Refundable(),
		}
	}
	return pagination.Paginate(rows, page, size)
}

func emptyPage(size int) pagination.Page[models.Row] {
	return pagination.Paginate([]models.Row{}, 1, size)
}

// Refund requests a refund of a retailer's payout. The row's current status
// is read from a fresh fetch; only refundable rows are sent upstream.
func (s *Service) Refund(ctx context.Context, userID, txID string) (string, error) {
	txs, err := s.client.PayoutTransactions(ctx, userID)
	if err != nil {
		return "", err
	}
	var found *models.Transaction
	for i := range txs {
		if txs[i].ID == txID {
			found = &txs[i]
			break
		}
	}
	if found == nil {
		return "", dErrors.New(dErrors.CodeNotFound, "transaction not found")
	}
	if !found.Status.Refundable() {
		return "", dErrors.New(dErrors.CodeConflict, "transaction is not refundable in status "+string(found.Status))
	}

	msg, err := s.client.Refund(ctx, txID)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "refund requested",
		"transaction_id", txID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return msg, nil
}

// Topup credits the signed-in admin's wallet.
func (s *Service) Topup(ctx context.Context, in models.TopupRequest) (string, error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return "", errNoSession
	}
	in.AdminID = admin.ID
	return s.client.Topup(ctx, in)
}

// Lookup finds a hierarchy member by phone. A miss is reported with the
// member tier's own message.
func (s *Service) Lookup(ctx context.Context, userType domain.UserType, phone string) (*models.Account, error) {
	acct, err := s.client.LookupByPhone(ctx, userType, phone)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, &dErrors.Error{Code: dErrors.CodeNotFound, Message: userType.NotFoundMessage(), Err: err}
		}
		return nil, err
	}
	return acct, nil
}

// Revert resolves the member by phone and then submits the revert.
func (s *Service) Revert(ctx context.Context, in models.RevertRequest) (string, error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return "", errNoSession
	}
	acct, err := s.Lookup(ctx, in.UserType, in.Phone)
	if err != nil {
		return "", err
	}
	in.AdminID = admin.ID
	in.UserID = acct.ID

	msg, err := s.client.Revert(ctx, in)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "amount reverted",
		"user_type", in.UserType,
		"phone", privacy.MaskPhone(in.Phone),
		"amount", in.Amount.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return msg, nil
}

// RevertHistory lists past reverts for a phone, newest first.
func (s *Service) RevertHistory(ctx context.Context, phone string) ([]models.Revert, error) {
	items, err := s.client.RevertHistory(ctx, phone)
	if err != nil {
		return nil, err
	}
	models.SortRevertsNewestFirst(items)
	return items, nil
}
