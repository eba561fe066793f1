package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"paynet/internal/ledger/models"
	"paynet/pkg/domain"
	"paynet/pkg/platform/validation"
)

const (
	msgConfirm        = "confirmation required"
	msgAmountPositive = "amount must be greater than zero"
	msgAmountScale    = "amount must have at most two decimal places"
)

func checkAmount(errs validation.FieldErrors, amount decimal.Decimal) {
	switch {
	case !amount.IsPositive():
		errs["amount"] = msgAmountPositive
	case !amount.Equal(amount.Round(2)):
		errs["amount"] = msgAmountScale
	}
}

// RefundRequest confirms a payout refund. The owning retailer is needed to
// re-read the row's status before the refund is sent.
type RefundRequest struct {
	UserID  string `json:"user_id" validate:"notblank"`
	Confirm bool   `json:"confirm"`
}

func (r *RefundRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
}

func (r *RefundRequest) Validate() error {
	errs := validation.FieldErrors{}
	if !r.Confirm {
		errs["confirm"] = msgConfirm
	}
	errs.Merge(validation.Struct(r))
	return errs.Err()
}

type TopupRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	UTR     string          `json:"utr" validate:"max=40"`
	Remarks string          `json:"remarks" validate:"max=200"`
}

func (r *TopupRequest) Normalize() {
	r.UTR = strings.ToUpper(strings.TrimSpace(r.UTR))
	r.Remarks = strings.TrimSpace(r.Remarks)
}

func (r *TopupRequest) Validate() error {
	errs := validation.FieldErrors{}
	checkAmount(errs, r.Amount)
	errs.Merge(validation.Struct(r))
	return errs.Err()
}

func (r *TopupRequest) Model() models.TopupRequest {
	return models.TopupRequest{Amount: r.Amount, UTR: r.UTR, Remarks: r.Remarks}
}

// RevertRequest pulls an amount back from the member owning Phone.
type RevertRequest struct {
	Phone    string          `json:"phone" validate:"required,phone10"`
	UserType string          `json:"user_type" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Remarks  string          `json:"remarks" validate:"max=200"`
	Confirm  bool            `json:"confirm"`

	userType domain.UserType
}

func (r *RevertRequest) Normalize() {
	r.Phone = strings.TrimSpace(r.Phone)
	r.UserType = strings.ToLower(strings.TrimSpace(r.UserType))
	r.Remarks = strings.TrimSpace(r.Remarks)
}

func (r *RevertRequest) Validate() error {
	errs := validation.FieldErrors{}
	if !r.Confirm {
		errs["confirm"] = msgConfirm
	}
	checkAmount(errs, r.Amount)
	if r.UserType != "" {
		t, err := domain.ParseUserType(r.UserType)
		if err != nil {
			errs["user_type"] = err.Error()
		}
		r.userType = t
	}
	errs.Merge(validation.Struct(r))
	return errs.Err()
}

func (r *RevertRequest) Model() models.RevertRequest {
	return models.RevertRequest{
		Phone:    r.Phone,
		UserType: r.userType,
		Amount:   r.Amount,
		Remarks:  r.Remarks,
	}
}
