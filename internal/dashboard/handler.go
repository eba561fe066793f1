package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paynet/internal/platform/metrics"
	"paynet/pkg/platform/httputil"
)

type Summarizer interface {
	Summary(ctx context.Context) *Summary
}

type Handler struct {
	service Summarizer
	metrics *metrics.Metrics
}

func NewHandler(service Summarizer, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/console/dashboard", h.HandleSummary)
}

// HandleSummary implements GET /console/dashboard. Degraded panels still
// answer 200; only a rejected session turns into 401.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum := h.service.Summary(r.Context())
	if err := sum.Unauthorized(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	for view, p := range map[string]Panel{
		"dashboard_master_distributors":   sum.MasterDistributors,
		"dashboard_pending_fund_requests": sum.PendingFundRequests,
		"dashboard_open_tickets":          sum.OpenTickets,
	} {
		if p.Notice != nil {
			h.metrics.IncrementListDegraded(view)
		}
	}
	httputil.WriteJSON(w, http.StatusOK, sum)
}
