// Package dashboard assembles the console landing page from several
// independent upstream lists.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	fundmodels "paynet/internal/funds/models"
	hiermodels "paynet/internal/hierarchy/models"
	ticketmodels "paynet/internal/tickets/models"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/requestcontext"
)

// panelTimeout bounds each panel's fetch so a slow list cannot hold the
// whole page.
const panelTimeout = 10 * time.Second

type Hierarchy interface {
	MasterDistributors(ctx context.Context, adminID string) ([]hiermodels.MasterDistributor, error)
}

type Funds interface {
	List(ctx context.Context) ([]fundmodels.FundRequest, error)
}

type Tickets interface {
	List(ctx context.Context, openOnly bool) ([]ticketmodels.Ticket, error)
}

// Panel is one dashboard figure. A failed fetch leaves Count at zero and
// carries a notice instead.
type Panel struct {
	Count  int              `json:"count"`
	Notice *httputil.Notice `json:"notice,omitempty"`

	err error
}

type Summary struct {
	MasterDistributors  Panel `json:"master_distributors"`
	PendingFundRequests Panel `json:"pending_fund_requests"`
	OpenTickets         Panel `json:"open_tickets"`
}

// Unauthorized reports whether any panel failed because the session is no
// longer accepted upstream.
func (s *Summary) Unauthorized() error {
	for _, p := range []Panel{s.MasterDistributors, s.PendingFundRequests, s.OpenTickets} {
		if dErrors.HasCode(p.err, dErrors.CodeUnauthorized) {
			return p.err
		}
	}
	return nil
}

type Service struct {
	hierarchy Hierarchy
	funds     Funds
	tickets   Tickets
	logger    *slog.Logger
}

func New(hierarchy Hierarchy, funds Funds, tickets Tickets, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{hierarchy: hierarchy, funds: funds, tickets: tickets, logger: logger}
}

// Summary fetches every panel concurrently. Panels fail independently:
// goroutines never return an error to the group, so one failure cannot
// cancel the others.
func (s *Service) Summary(ctx context.Context) *Summary {
	admin := requestcontext.Admin(ctx)
	var sum Summary
	var g errgroup.Group

	g.Go(func() error {
		sum.MasterDistributors = s.panel(ctx, "master_distributors", "unable to load master distributors", func(ctx context.Context) (int, error) {
			if admin == nil {
				return 0, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
			}
			mds, err := s.hierarchy.MasterDistributors(ctx, admin.ID)
			return len(mds), err
		})
		return nil
	})
	g.Go(func() error {
		sum.PendingFundRequests = s.panel(ctx, "pending_fund_requests", "unable to load fund requests", func(ctx context.Context) (int, error) {
			reqs, err := s.funds.List(ctx)
			n := 0
			for _, r := range reqs {
				if r.Status.Actionable() {
					n++
				}
			}
			return n, err
		})
		return nil
	})
	g.Go(func() error {
		sum.OpenTickets = s.panel(ctx, "open_tickets", "unable to load tickets", func(ctx context.Context) (int, error) {
			ts, err := s.tickets.List(ctx, true)
			return len(ts), err
		})
		return nil
	})

	_ = g.Wait()
	return &sum
}

func (s *Service) panel(ctx context.Context, name, fallback string, fetch func(context.Context) (int, error)) Panel {
	ctx, cancel := context.WithTimeout(ctx, panelTimeout)
	defer cancel()

	n, err := fetch(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard panel degraded",
			"panel", name,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return Panel{Notice: httputil.NoticeFor(err, fallback), err: err}
	}
	return Panel{Count: n}
}
