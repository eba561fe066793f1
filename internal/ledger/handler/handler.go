package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"paynet/internal/ledger/models"
	"paynet/internal/platform/metrics"
	"paynet/pkg/domain"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/inflight"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/platform/validation"
	"paynet/pkg/requestcontext"
)

// Service defines the ledger operations behind the console routes.
type Service interface {
	WalletPage(ctx context.Context, page int) (pagination.Page[models.Row], error)
	PayoutPage(ctx context.Context, userID string, page int) (pagination.Page[models.Row], error)
	Refund(ctx context.Context, userID, txID string) (string, error)
	Topup(ctx context.Context, in models.TopupRequest) (string, error)
	Lookup(ctx context.Context, userType domain.UserType, phone string) (*models.Account, error)
	Revert(ctx context.Context, in models.RevertRequest) (string, error)
	RevertHistory(ctx context.Context, phone string) ([]models.Revert, error)
}

const (
	actionRefund = "refund"
	actionRevert = "revert"
	actionTopup  = "topup"
)

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
	r.Get("/console/transactions/wallet", h.HandleWallet)
	r.Get("/console/transactions/payout/{userID}", h.HandlePayout)
	r.Post("/console/transactions/{id}/refund", h.HandleRefund)
	r.Post("/console/wallet/topup", h.HandleTopup)
	r.Get("/console/lookup", h.HandleLookup)
	r.Post("/console/revert", h.HandleRevert)
	r.Get("/console/revert/history/{phone}", h.HandleRevertHistory)
}

type pageResponse struct {
	pagination.Page[models.Row]
	Notice *httputil.Notice `json:"notice,omitempty"`
}

type actionResponse struct {
	Message string `json:"message"`
	pageResponse
}

type historyResponse struct {
	Items  []models.Revert  `json:"items"`
	Notice *httputil.Notice `json:"notice,omitempty"`
}

func pageParam(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return p
}

// mark flags rows whose refund is still in flight.
func (h *Handler) mark(page pagination.Page[models.Row]) pagination.Page[models.Row] {
	for i := range page.Items {
		page.Items[i].Processing = h.inflight.Processing(inflight.Key(actionRefund, page.Items[i].ID))
	}
	return page
}

// HandleWallet implements GET /console/transactions/wallet?page=N.
func (h *Handler) HandleWallet(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.WalletPage(r.Context(), pageParam(r))
	h.writePage(w, r, "wallet_transactions", page, err, "unable to load wallet transactions")
}

// HandlePayout implements GET /console/transactions/payout/{userID}?page=N.
func (h *Handler) HandlePayout(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.PayoutPage(r.Context(), chi.URLParam(r, "userID"), pageParam(r))
	h.writePage(w, r, "payout_transactions", page, err, "unable to load payout transactions")
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, view string, page pagination.Page[models.Row], err error, fallback string) {
	ctx := r.Context()
	if err != nil {
		h.logger.WarnContext(ctx, "ledger load failed", "view", view, "error", err, "request_id", requestcontext.RequestID(ctx))
		h.metrics.IncrementListDegraded(view)
		httputil.WriteListFailure(w, err, pageResponse{Page: page, Notice: httputil.NoticeFor(err, fallback)})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pageResponse{Page: h.mark(page)})
}

// guard runs fn while the row key is Processing. A concurrent second action
// on the same key is refused with a conflict; the key is released either way.
func (h *Handler) guard(ctx context.Context, action, rowID string, fn func() (string, error)) (string, error) {
	var msg string
	err := h.inflight.Run(inflight.Key(action, rowID), func() error {
		var err error
		msg, err = fn()
		return err
	})
	h.metrics.IncrementRowAction(action, actionOutcome(err))
	if err != nil {
		h.logger.WarnContext(ctx, "row action failed",
			"action", action,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return msg, err
}

func actionOutcome(err error) string {
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

// HandleRefund implements POST /console/transactions/{id}/refund.
//
// Input: { "user_id": "...", "confirm": true }
// Output: the server message plus the re-fetched payout page.
func (h *Handler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	txID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[RefundRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	msg, err := h.guard(ctx, actionRefund, txID, func() (string, error) {
		return h.service.Refund(ctx, req.UserID, txID)
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := actionResponse{Message: msg}
	page, err := h.service.PayoutPage(ctx, req.UserID, pageParam(r))
	resp.Page = h.mark(page)
	if err != nil {
		resp.Notice = httputil.NoticeFor(err, "unable to reload payout transactions")
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleTopup implements POST /console/wallet/topup and answers with the
// refreshed wallet ledger.
func (h *Handler) HandleTopup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[TopupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	admin := requestcontext.Admin(ctx)
	msg, err := h.guard(ctx, actionTopup, admin.ID, func() (string, error) {
		return h.service.Topup(ctx, req.Model())
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := actionResponse{Message: msg}
	page, err := h.service.WalletPage(ctx, 1)
	resp.Page = h.mark(page)
	if err != nil {
		resp.Notice = httputil.NoticeFor(err, "unable to reload wallet transactions")
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleLookup implements GET /console/lookup?user_type=&phone=.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userType, err := domain.ParseUserType(q.Get("user_type"))
	if err != nil {
		httputil.WriteError(w, validation.Field("user_type", err.Error()))
		return
	}
	phone := q.Get("phone")
	if !validation.IsPhone(phone) {
		httputil.WriteError(w, validation.Field("phone", "phone must be a 10-digit number"))
		return
	}

	acct, err := h.service.Lookup(ctx, userType, phone)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, acct)
}

// HandleRevert implements POST /console/revert.
//
// Input: { "phone", "user_type", "amount", "remarks", "confirm": true }
// Output: the server message plus the member's revert history.
func (h *Handler) HandleRevert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RevertRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	msg, err := h.guard(ctx, actionRevert, req.Phone, func() (string, error) {
		return h.service.Revert(ctx, req.Model())
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	history, err := h.service.RevertHistory(ctx, req.Phone)
	resp := struct {
		Message string `json:"message"`
		historyResponse
	}{Message: msg, historyResponse: historyResponse{Items: nonNil(history)}}
	if err != nil {
		resp.Notice = httputil.NoticeFor(err, "unable to reload revert history")
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleRevertHistory implements GET /console/revert/history/{phone}.
func (h *Handler) HandleRevertHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.service.RevertHistory(ctx, chi.URLParam(r, "phone"))
	if err != nil {
		h.logger.WarnContext(ctx, "revert history load failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		h.metrics.IncrementListDegraded("revert_history")
		httputil.WriteListFailure(w, err, historyResponse{Items: []models.Revert{}, Notice: httputil.NoticeFor(err, "unable to load revert history")})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, historyResponse{Items: nonNil(items)})
}

func nonNil(items []models.Revert) []models.Revert {
	if items == nil {
		return []models.Revert{}
	}
	return items
}
