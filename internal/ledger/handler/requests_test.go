package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paynet/pkg/domain"
	"paynet/pkg/platform/validation"
)

func TestTopupRequestAmount(t *testing.T) {
	tests := []struct {
		amount string
		msg    string
	}{
		{"0", msgAmountPositive},
		{"-10", msgAmountPositive},
		{"10.005", msgAmountScale},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := &TopupRequest{Amount: decimal.RequireFromString(tt.amount)}
			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.msg, validation.Fields(err)["amount"])
		})
	}

	assert.NoError(t, (&TopupRequest{Amount: decimal.RequireFromString("99.99")}).Validate())
}

func TestRevertRequestResolvesUserType(t *testing.T) {
	req := &RevertRequest{Phone: "9123456780", UserType: " User ", Amount: decimal.NewFromInt(1), Confirm: true}
	req.Normalize()

	require.NoError(t, req.Validate())
	assert.Equal(t, domain.UserTypeRetailer, req.Model().UserType)
}
