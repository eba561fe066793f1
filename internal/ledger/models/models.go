package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"paynet/pkg/domain"
)

// Status is server-driven. The console only requests transitions and
// re-fetches to observe the outcome.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusRefund  Status = "REFUND"
)

// Refundable reports whether a refund may be requested for a row in this
// status. Refunded and failed rows have nothing left to return.
func (s Status) Refundable() bool {
	return s == StatusSuccess || s == StatusPending
}

// Transaction is a wallet or payout ledger row.
type Transaction struct {
	ID         string          `json:"id"`
	FromName   string          `json:"from_name"`
	FromType   string          `json:"from_type"`
	ToName     string          `json:"to_name"`
	ToType     string          `json:"to_type"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SortNewestFirst orders rows by CreatedAt descending. Equal timestamps
// keep their server order.
func SortNewestFirst(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Row is a transaction as the ledger tables render it.
type Row struct {
	Transaction
	Split      Split `json:"commission_split"`
	Refundable bool  `json:"refundable"`
	Processing bool  `json:"processing"`
}

// Account is a hierarchy member found by phone for revert and top-up.
type Account struct {
	ID            string          `json:"id"`
	UniqueID      string          `json:"unique_id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	UserType      domain.UserType `json:"user_type"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
}

// RevertRequest pulls amount back from a member's wallet.
type RevertRequest struct {
	AdminID  string          `json:"admin_id"`
	Phone    string          `json:"phone"`
	UserID   string          `json:"user_id"`
	UserType domain.UserType `json:"user_type"`
	Amount   decimal.Decimal `json:"amount"`
	Remarks  string          `json:"remarks,omitempty"`
}

// Revert is one entry of a member's revert history.
type Revert struct {
	ID        string          `json:"id"`
	Phone     string          `json:"phone"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Remarks   string          `json:"remarks,omitempty"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// TopupRequest credits the admin wallet.
type TopupRequest struct {
	AdminID string          `json:"admin_id"`
	Amount  decimal.Decimal `json:"amount"`
	UTR     string          `json:"utr,omitempty"`
	Remarks string          `json:"remarks,omitempty"`
}

func SortRevertsNewestFirst(items []Revert) {
	slices.SortStableFunc(items, func(a, b Revert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
