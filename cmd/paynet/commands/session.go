package commands

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paynet/internal/session/models"
	"paynet/internal/session/store"
)

func (a *app) loginCommand() *cobra.Command {
	var req models.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin and store the session locally",
		Long:  "Log in as an admin. Without --password the password is read from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				fmt.Fprint(a.errOut, "Password: ")
				line, _ := bufio.NewReader(a.in).ReadString('\n')
				req.Password = strings.TrimRight(line, "\r\n")
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			res, err := a.sessions.Login(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return a.emit(models.NewIdentityResponse(res.Admin), func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "logged in as %s (%s)\n", res.Admin.Name, res.Admin.UniqueID)
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sessions.Logout(cmd.Context(), store.FileKey); err != nil {
				return err
			}
			return a.message("logged out")
		},
	}
}

func (a *app) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the admin identity decoded from the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := a.sessions.AdminIdentity(cmd.Context(), store.FileKey)
			if err != nil {
				return err
			}
			return a.emit(models.NewIdentityResponse(admin), func(w *tabwriter.Writer) {
				row(w, "ID", admin.ID)
				row(w, "NAME", admin.Name)
				row(w, "UNIQUE ID", admin.UniqueID)
				row(w, "EMAIL", admin.Email)
				if admin.Role != "" {
					row(w, "ROLE", admin.Role)
				}
				row(w, "EXPIRES", date(admin.ExpiresAt))
			})
		},
	}
}
