package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paynet/internal/hierarchy/models"
	"paynet/internal/platform/metrics"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/requestcontext"
)

// Service defines the hierarchy operations behind the console routes.
type Service interface {
	Cascade(ctx context.Context, adminID string, sel models.Selection) (*models.CascadeView, error)
	MasterDistributors(ctx context.Context, adminID string) ([]models.MasterDistributor, error)
	Distributors(ctx context.Context, mdID string) ([]models.Distributor, error)
	Retailers(ctx context.Context, distributorID string) ([]models.Retailer, error)
	CreateMasterDistributor(ctx context.Context, p models.Profile) (string, error)
	CreateDistributor(ctx context.Context, sel models.Selection, p models.Profile) (string, error)
	CreateRetailer(ctx context.Context, sel models.Selection, p models.Profile) (string, error)
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
	r.Get("/console/hierarchy", h.HandleCascade)
	r.Get("/console/master-distributors", h.HandleListMasterDistributors)
	r.Get("/console/master-distributors/{id}/distributors", h.HandleListDistributors)
	r.Get("/console/distributors/{id}/retailers", h.HandleListRetailers)
	r.Post("/console/master-distributors", h.HandleCreateMasterDistributor)
	r.Post("/console/distributors", h.HandleCreateDistributor)
	r.Post("/console/retailers", h.HandleCreateRetailer)
}

type listResponse[T any] struct {
	Items  []T              `json:"items"`
	Notice *httputil.Notice `json:"notice,omitempty"`
}

type cascadeResponse struct {
	*models.CascadeView
	Notice *httputil.Notice `json:"notice,omitempty"`
}

type createResponse struct {
	Message   string           `json:"message"`
	Selection models.Selection `json:"selection"`
}

// HandleCascade implements GET /console/hierarchy?md=&distributor=.
// The selection lives in the query string; the response echoes the
// selection after it was reconciled with the loaded lists.
func (h *Handler) HandleCascade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	admin := requestcontext.Admin(ctx)

	q := r.URL.Query()
	sel := models.NewSelection(q.Get("md"), q.Get("distributor"))

	view, err := h.service.Cascade(ctx, admin.ID, sel)
	if err != nil {
		h.logger.WarnContext(ctx, "hierarchy load degraded", "error", err, "request_id", requestID)
		h.metrics.IncrementListDegraded("hierarchy")
		httputil.WriteListFailure(w, err, cascadeResponse{CascadeView: view, Notice: httputil.NoticeFor(err, "unable to load hierarchy")})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cascadeResponse{CascadeView: view})
}

func (h *Handler) HandleListMasterDistributors(w http.ResponseWriter, r *http.Request) {
	admin := requestcontext.Admin(r.Context())
	items, err := h.service.MasterDistributors(r.Context(), admin.ID)
	writeList(h, w, r, "master_distributors", items, err, "unable to load master distributors")
}

func (h *Handler) HandleListDistributors(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Distributors(r.Context(), chi.URLParam(r, "id"))
	writeList(h, w, r, "distributors", items, err, "unable to load distributors")
}

func (h *Handler) HandleListRetailers(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Retailers(r.Context(), chi.URLParam(r, "id"))
	writeList(h, w, r, "retailers", items, err, "unable to load retailers")
}

func writeList[T any](h *Handler, w http.ResponseWriter, r *http.Request, view string, items []T, err error, fallback string) {
	ctx := r.Context()
	if err != nil {
		h.logger.WarnContext(ctx, "list load failed",
			"view", view,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		h.metrics.IncrementListDegraded(view)
		httputil.WriteListFailure(w, err, listResponse[T]{Items: []T{}, Notice: httputil.NoticeFor(err, fallback)})
		return
	}
	if items == nil {
		items = []T{}
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse[T]{Items: items})
}

// HandleCreateMasterDistributor implements POST /console/master-distributors.
func (h *Handler) HandleCreateMasterDistributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateMasterDistributorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	msg, err := h.service.CreateMasterDistributor(ctx, req.Profile())
	h.writeCreated(w, r, msg, err, models.Selection{})
}

// HandleCreateDistributor implements POST /console/distributors. A missing
// master distributor is rejected before anything is sent upstream.
func (h *Handler) HandleCreateDistributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateDistributorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sel := req.Selection()
	msg, err := h.service.CreateDistributor(ctx, sel, req.Profile())
	h.writeCreated(w, r, msg, err, sel)
}

// HandleCreateRetailer implements POST /console/retailers.
func (h *Handler) HandleCreateRetailer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRetailerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sel := req.Selection()
	msg, err := h.service.CreateRetailer(ctx, sel, req.Profile())
	h.writeCreated(w, r, msg, err, sel)
}

// writeCreated answers a create. The parent selection is echoed back so the
// form keeps it while its fields are cleared.
func (h *Handler) writeCreated(w http.ResponseWriter, r *http.Request, msg string, err error, sel models.Selection) {
	if err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "create failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, createResponse{Message: msg, Selection: sel})
}
