package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	hiermodels "paynet/internal/hierarchy/models"
)

var errMissingToken = errors.New("login response carried no token")

func (c *Client) MasterDistributors(ctx context.Context, adminID string) ([]hiermodels.MasterDistributor, error) {
	return list(ctx, c, request{
		endpoint: "list_master_distributors",
		path:     "/admin/get/md/" + url.PathEscape(adminID),
		fallback: "unable to load master distributors",
	}, "master_distributors", toMasterDistributor)
}

func (c *Client) Distributors(ctx context.Context, mdID string) ([]hiermodels.Distributor, error) {
	return list(ctx, c, request{
		endpoint: "list_distributors",
		path:     "/admin/get/distributors/" + url.PathEscape(mdID),
		fallback: "unable to load distributors",
	}, "distributors", toDistributor)
}

func (c *Client) Retailers(ctx context.Context, distributorID string) ([]hiermodels.Retailer, error) {
	return list(ctx, c, request{
		endpoint: "list_retailers",
		path:     "/admin/get/users/" + url.PathEscape(distributorID),
		fallback: "unable to load retailers",
	}, "users", toRetailer)
}

func (c *Client) CreateMasterDistributor(ctx context.Context, in hiermodels.NewMasterDistributor) (string, error) {
	return c.create(ctx, "create_master_distributor", "/admin/create/md", in, "master distributor")
}

func (c *Client) CreateDistributor(ctx context.Context, in hiermodels.NewDistributor) (string, error) {
	return c.create(ctx, "create_distributor", "/admin/create/distributor", in, "distributor")
}

func (c *Client) CreateRetailer(ctx context.Context, in hiermodels.NewRetailer) (string, error) {
	return c.create(ctx, "create_retailer", "/admin/create/user", in, "retailer")
}

// create returns the server's success message, or a default naming label.
func (c *Client) create(ctx context.Context, endpoint, path string, body any, label string) (string, error) {
	env, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPost,
		path:     path,
		body:     body,
		fallback: "unable to create " + label,
	})
	if err != nil {
		return "", err
	}
	return message(env, label+" created successfully"), nil
}
