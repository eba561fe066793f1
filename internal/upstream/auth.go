package upstream

import (
	"context"
	"net/http"

	dErrors "paynet/pkg/domain-errors"
)

// Login exchanges credentials for a signed admin token. A 401 here means
// bad credentials, so it is surfaced as a server rejection rather than an
// expired session.
func (c *Client) Login(ctx context.Context, email, password string) (string, string, error) {
	env, err := c.do(ctx, request{
		endpoint: "admin_login",
		method:   http.MethodPost,
		path:     "/admin/login",
		body:     map[string]string{"email": email, "password": password},
		fallback: "login failed",
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return "", "", dErrors.New(dErrors.CodeServerRejection, dErrors.MessageOf(err, "invalid email or password"))
		}
		return "", "", err
	}

	out, err := DecodeObject[loginWire](env.Data)
	if err != nil {
		return "", "", err
	}
	if out.Token == "" {
		return "", "", badData(errMissingToken)
	}
	return out.Token, out.Role, nil
}
