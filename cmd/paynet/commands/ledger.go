package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paynet/internal/ledger/handler"
	"paynet/internal/ledger/models"
	"paynet/pkg/domain"
	"paynet/pkg/platform/pagination"
	"paynet/pkg/platform/validation"
)

func (a *app) transactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "List wallet and payout transactions, refund payouts",
	}

	var walletPage int
	wallet := &cobra.Command{
		Use:   "wallet",
		Short: "List the admin wallet ledger with its commission split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.ledger.WalletPage(ctx, walletPage)
			if err != nil {
				return err
			}
			return a.emit(p, func(w *tabwriter.Writer) { renderWallet(w, p) })
		},
	}
	wallet.Flags().IntVar(&walletPage, "page", 1, "page number")

	var payoutPage int
	payout := &cobra.Command{
		Use:   "payout USER_ID",
		Short: "List a retailer's payout transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.ledger.PayoutPage(ctx, args[0], payoutPage)
			if err != nil {
				return err
			}
			return a.emit(p, func(w *tabwriter.Writer) { renderPayouts(w, p) })
		},
	}
	payout.Flags().IntVar(&payoutPage, "page", 1, "page number")

	var refund handler.RefundRequest
	var yes bool
	refundCmd := &cobra.Command{
		Use:   "refund TX_ID",
		Short: "Refund a SUCCESS or PENDING payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			refund.Normalize()
			refund.Confirm = a.confirm(yes, "Refund payout "+args[0]+"?")
			if err := refund.Validate(); err != nil {
				return err
			}
			msg, err := a.ledger.Refund(ctx, refund.UserID, args[0])
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
	refundCmd.Flags().StringVar(&refund.UserID, "user", "", "retailer ID owning the payout")
	refundCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(wallet, payout, refundCmd)
	return cmd
}

func renderWallet(w *tabwriter.Writer, p pagination.Page[models.Row]) {
	if len(p.Items) > 0 {
		row(w, "ID", "FROM", "TO", "AMOUNT", "COMMISSION", "PLATFORM", "MID-TIER", "DISTRIBUTOR", "RETAILER", "STATUS", "CREATED")
	}
	for _, r := range p.Items {
		row(w, r.ID,
			party(r.FromName, r.FromType), party(r.ToName, r.ToType),
			money(r.Amount), money(r.Commission),
			money(r.Split.Platform), money(r.Split.MidTier), money(r.Split.Distributor), money(r.Split.Retailer),
			string(r.Status), date(r.CreatedAt),
		)
	}
	pageFooter(w, p)
}

func renderPayouts(w *tabwriter.Writer, p pagination.Page[models.Row]) {
	if len(p.Items) > 0 {
		row(w, "ID", "FROM", "TO", "AMOUNT", "COMMISSION", "STATUS", "REFUNDABLE", "CREATED")
	}
	for _, r := range p.Items {
		refundable := "no"
		if r.Refundable {
			refundable = "yes"
		}
		row(w, r.ID,
			party(r.FromName, r.FromType), party(r.ToName, r.ToType),
			money(r.Amount), money(r.Commission),
			string(r.Status), refundable, date(r.CreatedAt),
		)
	}
	pageFooter(w, p)
}

func party(name, kind string) string {
	if kind == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.ToLower(kind))
}

func (a *app) topupCommand() *cobra.Command {
	var req handler.TopupRequest
	var amount string
	cmd := &cobra.Command{
		Use:   "topup",
		Short: "Credit the admin wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			if req.Amount, err = parseAmount(amount); err != nil {
				return err
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}
			msg, err := a.ledger.Topup(ctx, req.Model())
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount in rupees, up to two decimals")
	cmd.Flags().StringVar(&req.UTR, "utr", "", "bank UTR reference")
	cmd.Flags().StringVar(&req.Remarks, "remarks", "", "remarks")
	return cmd
}

func (a *app) lookupCommand() *cobra.Command {
	var userType, phone string
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find a master distributor, distributor or retailer by phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errs := validation.FieldErrors{}
			t, err := domain.ParseUserType(strings.ToLower(strings.TrimSpace(userType)))
			if err != nil {
				errs["user_type"] = err.Error()
			}
			phone = strings.TrimSpace(phone)
			if !validation.IsPhone(phone) {
				errs["phone"] = "phone must be a 10-digit number"
			}
			if err := errs.Err(); err != nil {
				return err
			}

			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			acct, err := a.ledger.Lookup(ctx, t, phone)
			if err != nil {
				return err
			}
			return a.emit(acct, func(w *tabwriter.Writer) {
				row(w, "ID", acct.ID)
				row(w, "UNIQUE ID", acct.UniqueID)
				row(w, "NAME", acct.Name)
				row(w, "PHONE", acct.Phone)
				row(w, "TYPE", acct.UserType.Label())
				row(w, "BALANCE", money(acct.WalletBalance))
			})
		},
	}
	cmd.Flags().StringVar(&userType, "type", "", "md, distributor or retailer")
	cmd.Flags().StringVar(&phone, "phone", "", "10-digit phone number")
	return cmd
}

func (a *app) revertCommand() *cobra.Command {
	var req handler.RevertRequest
	var amount string
	var yes bool
	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Pull an amount back from a member's wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			if req.Amount, err = parseAmount(amount); err != nil {
				return err
			}
			req.Normalize()
			req.Confirm = a.confirm(yes, fmt.Sprintf("Revert %s from %s?", amount, req.Phone))
			if err := req.Validate(); err != nil {
				return err
			}
			msg, err := a.ledger.Revert(ctx, req.Model())
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
	cmd.Flags().StringVar(&req.UserType, "type", "", "md, distributor or retailer")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "10-digit phone number")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in rupees, up to two decimals")
	cmd.Flags().StringVar(&req.Remarks, "remarks", "", "remarks")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(&cobra.Command{
		Use:   "history PHONE",
		Short: "List past reverts for a phone number, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			items, err := a.ledger.RevertHistory(ctx, args[0])
			if err != nil {
				return err
			}
			return a.emit(items, func(w *tabwriter.Writer) {
				if len(items) == 0 {
					fmt.Fprintln(w, "no entries")
					return
				}
				row(w, "ID", "NAME", "PHONE", "AMOUNT", "STATUS", "REMARKS", "CREATED")
				for _, r := range items {
					row(w, r.ID, r.Name, r.Phone, money(r.Amount), string(r.Status), r.Remarks, date(r.CreatedAt))
				}
			})
		},
	})
	return cmd
}
