package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paynet/internal/dashboard"
)

func (a *app) ticketsCommand() *cobra.Command {
	var page int
	var openOnly bool
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List support tickets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			board, err := a.tickets.Board(ctx, page, openOnly)
			if err != nil {
				return err
			}
			return a.emit(board, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "%d open\n\n", board.OpenCount)
				if len(board.Items) > 0 {
					row(w, "ID", "FROM", "SUBJECT", "STATUS", "CREATED")
				}
				for _, t := range board.Items {
					row(w, t.ID, t.UserName, t.Subject, string(t.Status), date(t.CreatedAt))
				}
				pageFooter(w, board.Page)
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&openOnly, "open", false, "only tickets that still need attention")
	return cmd
}

func (a *app) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show master distributor, pending fund request and open ticket counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.authed(cmd.Context())
			if err != nil {
				return err
			}
			sum := dashboard.New(a.hierarchy, a.funds, a.tickets, a.logger).Summary(ctx)
			if err := sum.Unauthorized(); err != nil {
				return err
			}
			return a.emit(sum, func(w *tabwriter.Writer) {
				panel(w, "MASTER DISTRIBUTORS", sum.MasterDistributors)
				panel(w, "PENDING FUND REQUESTS", sum.PendingFundRequests)
				panel(w, "OPEN TICKETS", sum.OpenTickets)
			})
		},
	}
}

func panel(w *tabwriter.Writer, label string, p dashboard.Panel) {
	if p.Notice != nil {
		row(w, label, "unavailable: "+p.Notice.Message)
		return
	}
	row(w, label, fmt.Sprint(p.Count))
}
