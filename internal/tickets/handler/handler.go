package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"paynet/internal/platform/metrics"
	"paynet/internal/tickets/service"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/requestcontext"
)

type Service interface {
	Board(ctx context.Context, page int, openOnly bool) (*service.Board, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{service: service, logger: logger, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/console/tickets", h.HandleList)
}

type boardResponse struct {
	*service.Board
	Notice *httputil.Notice `json:"notice,omitempty"`
}

// HandleList implements GET /console/tickets?page=N&open=true.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}
	openOnly, _ := strconv.ParseBool(q.Get("open"))

	board, err := h.service.Board(ctx, page, openOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "tickets load failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		h.metrics.IncrementListDegraded("tickets")
		httputil.WriteListFailure(w, err, boardResponse{Board: board, Notice: httputil.NoticeFor(err, "unable to load tickets")})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, boardResponse{Board: board})
}
