package upstream

import (
	"context"
	"net/http"
	"net/url"

	fundmodels "paynet/internal/funds/models"
)

func (c *Client) FundRequests(ctx context.Context, adminID string) ([]fundmodels.FundRequest, error) {
	return list(ctx, c, request{
		endpoint: "list_fund_requests",
		path:     "/admin/get/fund/requests/" + url.PathEscape(adminID),
		fallback: "unable to load fund requests",
	}, "fund_requests", toFundRequest)
}

func (c *Client) AcceptFundRequest(ctx context.Context, requestID string) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: "accept_fund_request",
		method:   http.MethodPost,
		path:     "/admin/accept/fund/request",
		body:     map[string]string{"fund_request_id": requestID},
		fallback: "unable to accept fund request",
	})
	if err != nil {
		return "", err
	}
	return message(env, "fund request accepted"), nil
}

// RejectFundRequest is a GET upstream even though it changes state.
func (c *Client) RejectFundRequest(ctx context.Context, requestID string) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: "reject_fund_request",
		method:   http.MethodGet,
		path:     "/admin/reject/fund/request/" + url.PathEscape(requestID),
		fallback: "unable to reject fund request",
	})
	if err != nil {
		return "", err
	}
	return message(env, "fund request rejected"), nil
}
