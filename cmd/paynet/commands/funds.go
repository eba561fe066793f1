package commands

import (
	"context"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) fundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Review fund requests",
	}

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List fund requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.funds.Page(ctx, page)
			if err != nil {
				return err
			}
			return a.emit(p, func(w *tabwriter.Writer) {
				if len(p.Items) > 0 {
					row(w, "ID", "REQUESTER", "AMOUNT", "BANK", "UTR", "STATUS", "CREATED")
				}
				for _, r := range p.Items {
					row(w, r.ID, r.RequesterName, money(r.Amount), r.BankName, r.UTR, string(r.Status), date(r.CreatedAt))
				}
				pageFooter(w, p)
			})
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")

	cmd.AddCommand(
		list,
		a.fundDecision("accept", "Approve a pending fund request", func(ctx context.Context, id string) (string, error) {
			return a.funds.Accept(ctx, id)
		}),
		a.fundDecision("reject", "Reject a pending fund request", func(ctx context.Context, id string) (string, error) {
			return a.funds.Reject(ctx, id)
		}),
	)
	return cmd
}

func (a *app) fundDecision(use, short string, decide func(ctx context.Context, id string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " REQUEST_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			msg, err := decide(ctx, args[0])
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
}
