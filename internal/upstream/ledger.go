package upstream

import (
	"context"
	"net/http"
	"net/url"

	hiermodels "paynet/internal/hierarchy/models"
	ledgermodels "paynet/internal/ledger/models"
	"paynet/internal/upstream/tracer"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
)

func (c *Client) WalletTransactions(ctx context.Context, adminID string) ([]ledgermodels.Transaction, error) {
	return list(ctx, c, request{
		endpoint: "list_wallet_transactions",
		path:     "/admin/get/wallet/transactions/" + url.PathEscape(adminID),
		fallback: "unable to load wallet transactions",
	}, "transactions", toWalletTransaction)
}

func (c *Client) PayoutTransactions(ctx context.Context, userID string) ([]ledgermodels.Transaction, error) {
	return list(ctx, c, request{
		endpoint: "list_payout_transactions",
		path:     "/user/payout/get/transactions/" + url.PathEscape(userID),
		fallback: "unable to load payout transactions",
	}, "transactions", toPayoutTransaction)
}

func (c *Client) Refund(ctx context.Context, payoutTxID string) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: "refund_payout",
		method:   http.MethodGet,
		path:     "/user/payout/refund/" + url.PathEscape(payoutTxID),
		fallback: "unable to refund transaction",
	})
	if err != nil {
		return "", err
	}
	return message(env, "refund requested"), nil
}

func (c *Client) Topup(ctx context.Context, in ledgermodels.TopupRequest) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: "wallet_topup",
		method:   http.MethodPost,
		path:     "/admin/wallet/topup",
		body:     in,
		fallback: "unable to top up wallet",
	})
	if err != nil {
		return "", err
	}
	return message(env, "wallet topped up"), nil
}

// LookupByPhone finds a member of the given tier. A miss is CodeNotFound
// whether the server answers 404 or an empty payload.
func (c *Client) LookupByPhone(ctx context.Context, userType domain.UserType, phone string) (*ledgermodels.Account, error) {
	env, err := c.do(ctx, request{
		endpoint: "lookup_" + string(userType),
		method:   http.MethodGet,
		path:     "/admin/get/" + userType.PathSegment() + "/phone/" + url.PathEscape(phone),
		fallback: "unable to find " + userType.Label(),
		attrs:    []tracer.Attribute{tracer.String(tracer.AttrPhoneHash, tracer.HashPhone(phone))},
	})
	if err != nil {
		return nil, err
	}
	if isNull(env.Data) {
		return nil, dErrors.New(dErrors.CodeNotFound, userType.NotFoundMessage())
	}

	var member hiermodels.Member
	switch userType {
	case domain.UserTypeMasterDistributor:
		w, err := DecodeObject[masterDistributorWire](env.Data)
		if err != nil {
			return nil, err
		}
		member = w.member()
	case domain.UserTypeDistributor:
		w, err := DecodeObject[distributorWire](env.Data)
		if err != nil {
			return nil, err
		}
		member = w.member()
	default:
		w, err := DecodeObject[userWire](env.Data)
		if err != nil {
			return nil, err
		}
		member = w.member()
	}
	if member.ID == "" {
		return nil, dErrors.New(dErrors.CodeNotFound, userType.NotFoundMessage())
	}
	account := toAccount(member, userType)
	return &account, nil
}

func (c *Client) Revert(ctx context.Context, in ledgermodels.RevertRequest) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: "revert_amount",
		method:   http.MethodPost,
		path:     "/admin/revert/amount",
		body:     in,
		fallback: "unable to revert amount",
		attrs:    []tracer.Attribute{tracer.String(tracer.AttrPhoneHash, tracer.HashPhone(in.Phone))},
	})
	if err != nil {
		return "", err
	}
	return message(env, "amount reverted"), nil
}

func (c *Client) RevertHistory(ctx context.Context, phone string) ([]ledgermodels.Revert, error) {
	return list(ctx, c, request{
		endpoint: "revert_history",
		path:     "/admin/revert/get/history/" + url.PathEscape(phone),
		fallback: "unable to load revert history",
		attrs:    []tracer.Attribute{tracer.String(tracer.AttrPhoneHash, tracer.HashPhone(phone))},
	}, "history", toRevert)
}
