package service

import (
	"context"
	"log/slog"

	"paynet/internal/hierarchy/models"
	"paynet/internal/platform/metrics"
	"paynet/pkg/domain"
	"paynet/pkg/platform/privacy"
	"paynet/pkg/platform/validation"
	"paynet/pkg/requestcontext"
)

// Client is the slice of the upstream API the hierarchy needs.
type Client interface {
	MasterDistributors(ctx context.Context, adminID string) ([]models.MasterDistributor, error)
	Distributors(ctx context.Context, mdID string) ([]models.Distributor, error)
	Retailers(ctx context.Context, distributorID string) ([]models.Retailer, error)
	CreateMasterDistributor(ctx context.Context, in models.NewMasterDistributor) (string, error)
	CreateDistributor(ctx context.Context, in models.NewDistributor) (string, error)
	CreateRetailer(ctx context.Context, in models.NewRetailer) (string, error)
}

type Service struct {
	client  Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(client Client, opts ...Option) *Service {
	svc := &Service{client: client}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

func (s *Service) MasterDistributors(ctx context.Context, adminID string) ([]models.MasterDistributor, error) {
	return s.client.MasterDistributors(ctx, adminID)
}

func (s *Service) Distributors(ctx context.Context, mdID string) ([]models.Distributor, error) {
	return s.client.Distributors(ctx, mdID)
}

func (s *Service) Retailers(ctx context.Context, distributorID string) ([]models.Retailer, error) {
	return s.client.Retailers(ctx, distributorID)
}

// Cascade loads the three-level selector for sel. Each level is fetched only
// when its parent is selected, and the selection is reconciled against what
// the server returned. On a failed fetch the levels loaded so far are
// returned alongside the error so the caller can still render them.
func (s *Service) Cascade(ctx context.Context, adminID string, sel models.Selection) (*models.CascadeView, error) {
	view := &models.CascadeView{
		MasterDistributors: []models.MasterDistributor{},
		Distributors:       []models.Distributor{},
		Retailers:          []models.Retailer{},
	}
	finish := func(err error) (*models.CascadeView, error) {
		view.Selection = sel
		view.State = sel.State()
		return view, err
	}

	mds, err := s.client.MasterDistributors(ctx, adminID)
	if err != nil {
		sel = models.Selection{}
		return finish(err)
	}
	view.MasterDistributors = mds
	sel.SyncParents(models.MasterDistributorIDs(mds))
	if sel.MasterDistributorID == "" {
		return finish(nil)
	}

	distributors, err := s.client.Distributors(ctx, sel.MasterDistributorID)
	if err != nil {
		sel.DistributorID = ""
		return finish(err)
	}
	view.Distributors = distributors
	sel.SyncChildren(models.DistributorIDs(distributors))
	if sel.DistributorID == "" {
		return finish(nil)
	}

	retailers, err := s.client.Retailers(ctx, sel.DistributorID)
	if err != nil {
		return finish(err)
	}
	view.Retailers = retailers
	return finish(nil)
}

// CreateMasterDistributor submits a new master distributor under the
// signed-in admin.
func (s *Service) CreateMasterDistributor(ctx context.Context, p models.Profile) (string, error) {
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return "", errNoSession
	}
	msg, err := s.client.CreateMasterDistributor(ctx, models.NewMasterDistributor{Profile: p, AdminID: admin.ID})
	return s.created(ctx, domain.UserTypeMasterDistributor, p, msg, err)
}

// CreateDistributor requires a selected master distributor.
func (s *Service) CreateDistributor(ctx context.Context, sel models.Selection, p models.Profile) (string, error) {
	if err := sel.RequireParent().Err(); err != nil {
		return "", err
	}
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return "", errNoSession
	}
	msg, err := s.client.CreateDistributor(ctx, models.NewDistributor{
		Profile:             p,
		AdminID:             admin.ID,
		MasterDistributorID: sel.MasterDistributorID,
	})
	return s.created(ctx, domain.UserTypeDistributor, p, msg, err)
}

// CreateRetailer requires both a master distributor and a distributor, and
// the distributor must currently be listed under that master distributor.
func (s *Service) CreateRetailer(ctx context.Context, sel models.Selection, p models.Profile) (string, error) {
	if err := sel.RequireChild().Err(); err != nil {
		return "", err
	}
	admin := requestcontext.Admin(ctx)
	if admin == nil {
		return "", errNoSession
	}
	distributors, err := s.client.Distributors(ctx, sel.MasterDistributorID)
	if err != nil {
		return "", err
	}
	sel.SyncChildren(models.DistributorIDs(distributors))
	if sel.DistributorID == "" {
		return "", validation.Field(models.FieldDistributorID, "distributor is not under the selected master distributor")
	}
	msg, err := s.client.CreateRetailer(ctx, models.NewRetailer{
		Profile:             p,
		AdminID:             admin.ID,
		MasterDistributorID: sel.MasterDistributorID,
		DistributorID:       sel.DistributorID,
	})
	return s.created(ctx, domain.UserTypeRetailer, p, msg, err)
}

func (s *Service) created(ctx context.Context, t domain.UserType, p models.Profile, msg string, err error) (string, error) {
	if err != nil {
		s.logger.WarnContext(ctx, "create rejected",
			"user_type", t,
			"phone", privacy.MaskPhone(p.Phone),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return "", err
	}
	s.metrics.IncrementEntitiesCreated(string(t))
	s.logger.InfoContext(ctx, "entity created",
		"user_type", t,
		"phone", privacy.MaskPhone(p.Phone),
		"request_id", requestcontext.RequestID(ctx),
	)
	return msg, nil
}
