package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"paynet/internal/funds/models"
	"paynet/internal/platform/metrics"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/inflight"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/requestcontext"
)

// Service defines the fund request operations behind the console routes.
type Service interface {
	Page(ctx context.Context, page int) (pagination.Page[models.Row], error)
	Accept(ctx context.Context, requestID string) (string, error)
	Reject(ctx context.Context, requestID string) (string, error)
}

const (
	actionAccept = "accept"
	actionReject = "reject"
)

// rowKey is shared by accept and reject so one row can never have both in
// flight.
func rowKey(id string) string {
	return inflight.Key("fund_request", id)
}

type Handler struct {
	service  Service
	inflight *inflight.Tracker
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func New(service Service, tracker *inflight.Tracker, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{service: service, inflight: tracker, logger: logger, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/console/fund-requests", h.HandleList)
	r.Post("/console/fund-requests/{id}/accept", h.HandleAccept)
	r.Post("/console/fund-requests/{id}/reject", h.HandleReject)
}

type pageResponse struct {
	pagination.Page[models.Row]
	Notice *httputil.Notice `json:"notice,omitempty"`
}

type actionResponse struct {
	Message string `json:"message"`
	pageResponse
}

func pageParam(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return p
}

// mark flags rows with an accept or reject still in flight.
func (h *Handler) mark(page pagination.Page[models.Row]) pagination.Page[models.Row] {
	for i := range page.Items {
		page.Items[i].Processing = h.inflight.Processing(rowKey(page.Items[i].ID))
	}
	return page
}

// HandleList implements GET /console/fund-requests?page=N.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.service.Page(ctx, pageParam(r))
	if err != nil {
		h.logger.WarnContext(ctx, "fund requests load failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		h.metrics.IncrementListDegraded("fund_requests")
		httputil.WriteListFailure(w, err, pageResponse{Page: page, Notice: httputil.NoticeFor(err, "unable to load fund requests")})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pageResponse{Page: h.mark(page)})
}

// HandleAccept implements POST /console/fund-requests/{id}/accept.
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, actionAccept, h.service.Accept)
}

// HandleReject implements POST /console/fund-requests/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, actionReject, h.service.Reject)
}

// act runs a row action under the in-flight guard, then answers with the
// re-fetched list so the UI shows the server's view of the new status.
func (h *Handler) act(w http.ResponseWriter, r *http.Request, action string, fn func(context.Context, string) (string, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	var msg string
	err := h.inflight.Run(rowKey(id), func() error {
		var err error
		msg, err = fn(ctx, id)
		return err
	})
	h.metrics.IncrementRowAction(action, outcome(err))
	if err != nil {
		h.logger.WarnContext(ctx, "fund request action failed",
			"action", action,
			"fund_request_id", id,
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := actionResponse{Message: msg}
	page, err := h.service.Page(ctx, pageParam(r))
	resp.Page = h.mark(page)
	if err != nil {
		resp.Notice = httputil.NoticeFor(err, "unable to reload fund requests")
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case inflight.IsBusy(err):
		return metrics.OutcomeBusy
	case dErrors.HasCode(err, dErrors.CodeServerRejection), dErrors.HasCode(err, dErrors.CodeConflict):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailure
	}
}
