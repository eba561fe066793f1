// Package commands implements the paynet operator CLI. Every command talks to
// the distribution API through the same services the console backend uses.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	fundservice "paynet/internal/funds/service"
	hierservice "paynet/internal/hierarchy/service"
	ledgerservice "paynet/internal/ledger/service"
	"paynet/internal/platform/config"
	"paynet/internal/platform/logger"
	sessionservice "paynet/internal/session/service"
	"paynet/internal/session/store"
	ticketservice "paynet/internal/tickets/service"
	"paynet/internal/upstream"
	"paynet/internal/upstream/tracer"
	"paynet/pkg/requestcontext"
)

// app carries the configuration and services shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	apiURL   string
	logLevel string
	jsonOut  bool

	cfg       config.Server
	logger    *slog.Logger
	client    *upstream.Client
	sessions  *sessionservice.Service
	hierarchy *hierservice.Service
	ledger    *ledgerservice.Service
	funds     *fundservice.Service
	tickets   *ticketservice.Service
}

// Execute runs the CLI against the process streams and returns the exit code.
func Execute() int {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+describe(err))
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree. Streams are injected so tests can
// drive the CLI without a terminal.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "paynet",
		Short: "Admin console for the paynet distribution platform",
		Long: `paynet manages the master distributor, distributor and retailer hierarchy,
reviews fund requests and payouts, and runs the console backend.

Log in once with "paynet login"; the session is kept in ~/.paynet/session.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "distribution API base URL (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of tables")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.masterDistributorCommand(),
		a.distributorCommand(),
		a.retailerCommand(),
		a.fundsCommand(),
		a.transactionsCommand(),
		a.topupCommand(),
		a.lookupCommand(),
		a.revertCommand(),
		a.ticketsCommand(),
		a.dashboardCommand(),
		a.serveCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIBaseURL = a.apiURL
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg
	a.logger = logger.NewWithWriter(a.errOut, cfg.LogLevel)

	a.client = upstream.New(cfg.APIBaseURL,
		upstream.WithTimeout(cfg.APITimeout),
		upstream.WithTracer(tracer.NewOTel()),
		upstream.WithLogger(a.logger),
	)
	a.sessions = sessionservice.New(store.NewFile(cfg.SessionDir), a.client,
		sessionservice.WithLogger(a.logger),
		sessionservice.WithKeyFunc(func() string { return store.FileKey }),
	)
	a.hierarchy = hierservice.New(a.client, hierservice.WithLogger(a.logger))
	a.ledger = ledgerservice.New(a.client, ledgerservice.WithLogger(a.logger))
	a.funds = fundservice.New(a.client, fundservice.WithLogger(a.logger))
	a.tickets = ticketservice.New(a.client)
	return nil
}

// authed resolves the stored CLI session into ctx. A missing or expired
// session is an unauthorized error, which Execute turns into a login hint.
func (a *app) authed(ctx context.Context) (context.Context, error) {
	admin, token, err := a.sessions.Resolve(ctx, store.FileKey)
	if err != nil {
		return nil, err
	}
	return requestcontext.WithSession(ctx, admin, token), nil
}
