package upstream

import (
	"context"
	"net/url"

	ticketmodels "paynet/internal/tickets/models"
)

func (c *Client) Tickets(ctx context.Context, adminID string) ([]ticketmodels.Ticket, error) {
	return list(ctx, c, request{
		endpoint: "list_tickets",
		path:     "/admin/get/tickets/" + url.PathEscape(adminID),
		fallback: "unable to load tickets",
	}, "tickets", toTicket)
}
