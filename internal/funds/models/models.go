package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Status of a fund request. APPROVED and REJECTED are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Actionable reports whether accept/reject may be offered.
func (s Status) Actionable() bool {
	return s == StatusPending
}

// FundRequest is a member's request to have their wallet credited against
// a bank transfer.
type FundRequest struct {
	ID            string          `json:"id"`
	RequesterID   string          `json:"requester_id"`
	RequesterName string          `json:"requester_name"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	IFSC          string          `json:"ifsc"`
	UTR           string          `json:"utr"`
	Remarks       string          `json:"remarks,omitempty"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Row is a fund request as the table renders it.
type Row struct {
	FundRequest
	Actionable bool `json:"actionable"`
	Processing bool `json:"processing"`
}

// SortNewestFirst orders requests by CreatedAt descending, stably.
func SortNewestFirst(reqs []FundRequest) {
	slices.SortStableFunc(reqs, func(a, b FundRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Find returns the request with id, if present.
func Find(reqs []FundRequest, id string) (FundRequest, bool) {
	i := slices.IndexFunc(reqs, func(r FundRequest) bool { return r.ID == id })
	if i < 0 {
		return FundRequest{}, false
	}
	return reqs[i], true
}
