package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"paynet/internal/hierarchy/handler"
	"paynet/internal/hierarchy/models"
	"paynet/pkg/platform/validation"
	"paynet/pkg/requestcontext"
)

func bindProfile(fs *pflag.FlagSet, p *handler.ProfileRequest) {
	fs.StringVar(&p.Name, "name", "", "full name")
	fs.StringVar(&p.Email, "email", "", "email address")
	fs.StringVar(&p.Phone, "phone", "", "10-digit phone number")
	fs.StringVar(&p.Password, "password", "", "initial password")
	fs.StringVar(&p.AadharNumber, "aadhaar", "", "12-digit Aadhaar number")
	fs.StringVar(&p.PanNumber, "pan", "", "PAN, e.g. ABCDE1234F")
	fs.StringVar(&p.DateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&p.BusinessName, "business", "", "business name")
	fs.StringVar(&p.Address, "address", "", "postal address")
	fs.StringVar(&p.Pincode, "pincode", "", "6-digit pincode")
}

func renderMembers(w *tabwriter.Writer, members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}
	row(w, "ID", "UNIQUE ID", "NAME", "PHONE", "EMAIL", "BALANCE")
	for _, m := range members {
		row(w, m.ID, m.UniqueID, m.Name, m.Phone, m.Email, money(m.WalletBalance))
	}
}

// cascade loads the selector for sel and returns the reconciled view. The
// selection may gain a parent when the admin has exactly one.
func (a *app) cascade(ctx context.Context, sel models.Selection) (*models.CascadeView, error) {
	admin := requestcontext.Admin(ctx)
	return a.hierarchy.Cascade(ctx, admin.ID, sel)
}

// onlyParentsMissing reports whether err carries parent-gating field errors
// and nothing else, i.e. the form would pass once the selector is resolved.
func onlyParentsMissing(err error) bool {
	fields := validation.Fields(err)
	if len(fields) == 0 {
		return false
	}
	for name := range fields {
		if name != models.FieldMasterDistributorID && name != models.FieldDistributorID {
			return false
		}
	}
	return true
}

// submitCreate validates a create form and runs submit. An omitted --md is
// resolved through Cascade, which selects the admin's only master
// distributor; other field errors fail before any request is made.
func (a *app) submitCreate(cmd *cobra.Command, mdID *string, canResolve bool, validate func() error, submit func(ctx context.Context) (string, error)) error {
	verr := validate()
	resolve := verr != nil && *mdID == "" && canResolve && onlyParentsMissing(verr)
	if verr != nil && !resolve {
		return verr
	}
	ctx, err := a.authed(cmd.Context())
	if err != nil {
		return err
	}
	if resolve {
		view, err := a.cascade(ctx, models.Selection{})
		if err != nil {
			return err
		}
		*mdID = view.Selection.MasterDistributorID
		if err := validate(); err != nil {
			return err
		}
	}
	msg, err := submit(ctx)
	if err != nil {
		return err
	}
	return a.message(msg)
}

func (a *app) masterDistributorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "md",
		Aliases: []string{"master-distributors"},
		Short:   "List or create master distributors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List master distributors under the signed-in admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			items, err := a.hierarchy.MasterDistributors(ctx, requestcontext.Admin(ctx).ID)
			if err != nil {
				return err
			}
			members := make([]models.Member, len(items))
			for i, md := range items {
				members[i] = md.Member
			}
			return a.emit(items, func(w *tabwriter.Writer) { renderMembers(w, members) })
		},
	})

	var req handler.CreateMasterDistributorRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a master distributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}
			msg, err := a.hierarchy.CreateMasterDistributor(ctx, req.Profile())
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
	bindProfile(create.Flags(), &req.ProfileRequest)
	cmd.AddCommand(create)
	return cmd
}

func (a *app) distributorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distributors",
		Short: "List or create distributors under a master distributor",
	}

	var mdID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List distributors; --md may be omitted when there is one master distributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			view, err := a.cascade(ctx, models.NewSelection(mdID, ""))
			if err != nil {
				return err
			}
			if err := view.Selection.RequireParent().Err(); err != nil {
				return err
			}
			members := make([]models.Member, len(view.Distributors))
			for i, d := range view.Distributors {
				members[i] = d.Member
			}
			return a.emit(view.Distributors, func(w *tabwriter.Writer) { renderMembers(w, members) })
		},
	}
	list.Flags().StringVar(&mdID, "md", "", "master distributor ID")

	var req handler.CreateDistributorRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a distributor under --md; --md may be omitted when there is one master distributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Normalize()
			return a.submitCreate(cmd, &req.MasterDistributorID, true, req.Validate, func(ctx context.Context) (string, error) {
				return a.hierarchy.CreateDistributor(ctx, req.Selection(), req.Profile())
			})
		},
	}
	bindProfile(create.Flags(), &req.ProfileRequest)
	create.Flags().StringVar(&req.MasterDistributorID, "md", "", "master distributor ID")

	cmd.AddCommand(list, create)
	return cmd
}

func (a *app) retailerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retailers",
		Short: "List or create retailers under a distributor",
	}

	var mdID, distributorID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List retailers under --distributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			view, err := a.cascade(ctx, models.NewSelection(mdID, distributorID))
			if err != nil {
				return err
			}
			if err := view.Selection.RequireChild().Err(); err != nil {
				return err
			}
			members := make([]models.Member, len(view.Retailers))
			for i, r := range view.Retailers {
				members[i] = r.Member
			}
			return a.emit(view.Retailers, func(w *tabwriter.Writer) { renderMembers(w, members) })
		},
	}
	list.Flags().StringVar(&mdID, "md", "", "master distributor ID")
	list.Flags().StringVar(&distributorID, "distributor", "", "distributor ID")

	var req handler.CreateRetailerRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a retailer under --md and --distributor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Normalize()
			// Without --distributor the form cannot pass, so nothing is fetched.
			return a.submitCreate(cmd, &req.MasterDistributorID, req.DistributorID != "", req.Validate, func(ctx context.Context) (string, error) {
				return a.hierarchy.CreateRetailer(ctx, req.Selection(), req.Profile())
			})
		},
	}
	bindProfile(create.Flags(), &req.ProfileRequest)
	create.Flags().StringVar(&req.MasterDistributorID, "md", "", "master distributor ID")
	create.Flags().StringVar(&req.DistributorID, "distributor", "", "distributor ID")

	cmd.AddCommand(list, create)
	return cmd
}
