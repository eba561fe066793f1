package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"paynet/internal/dashboard"
	fundhandler "paynet/internal/funds/handler"
	fundservice "paynet/internal/funds/service"
	hierhandler "paynet/internal/hierarchy/handler"
	hierservice "paynet/internal/hierarchy/service"
	ledgerhandler "paynet/internal/ledger/handler"
	ledgerservice "paynet/internal/ledger/service"
	"paynet/internal/platform/config"
	"paynet/internal/platform/health"
	"paynet/internal/platform/metrics"
	platformredis "paynet/internal/platform/redis"
	sessionhandler "paynet/internal/session/handler"
	sessionservice "paynet/internal/session/service"
	"paynet/internal/session/store"
	tickethandler "paynet/internal/tickets/handler"
	ticketservice "paynet/internal/tickets/service"
	httptransport "paynet/internal/transport/http"
	"paynet/internal/upstream"
	upstreammetrics "paynet/internal/upstream/metrics"
	"paynet/internal/upstream/tracer"
	"paynet/pkg/platform/inflight"
	"paynet/pkg/platform/middleware/request"
)

const (
	shutdownTimeout   = 10 * time.Second
	poolStatsInterval = 15 * time.Second
)

func (a *app) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console backend",
		Long: `Run the console backend. Browser sessions are kept in Redis when REDIS_URL
is set, otherwise in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if addr != "" {
				a.cfg.Addr = addr
			}
			return serve(ctx, a.cfg, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// server is the assembled console backend.
type server struct {
	handler http.Handler
	redis   *platformredis.Client
}

// newServer wires the upstream client, session store, services and router.
// Metrics are registered on reg, which also backs /metrics.
func newServer(ctx context.Context, cfg config.Server, logger *slog.Logger, reg *prometheus.Registry) (*server, error) {
	consoleMetrics := metrics.NewWith(reg)

	client := upstream.New(cfg.APIBaseURL,
		upstream.WithTimeout(cfg.APITimeout),
		upstream.WithTracer(tracer.NewOTel()),
		upstream.WithMetrics(upstreammetrics.NewWith(reg)),
		upstream.WithLogger(logger),
	)

	probes := health.New(cfg.Environment)
	probes.RegisterCheck("upstream", client.Health)

	rc, err := platformredis.New(ctx, cfg.Redis, platformredis.NewPoolMetrics(reg))
	if err != nil {
		return nil, err
	}
	var sessionStore sessionservice.Store = store.NewInMemory()
	if rc != nil {
		sessionStore = store.NewRedis(rc.Client)
		probes.RegisterCheck("redis", rc.Health)
		logger.InfoContext(ctx, "console sessions stored in redis")
	}

	sessions := sessionservice.New(sessionStore, client,
		sessionservice.WithLogger(logger),
		sessionservice.WithMetrics(consoleMetrics),
	)
	hierarchy := hierservice.New(client,
		hierservice.WithLogger(logger),
		hierservice.WithMetrics(consoleMetrics),
	)
	ledger := ledgerservice.New(client, ledgerservice.WithLogger(logger))
	funds := fundservice.New(client, fundservice.WithLogger(logger))
	tickets := ticketservice.New(client)

	// One tracker for every row action so a row is never in flight twice.
	tracker := inflight.New()

	router := httptransport.NewRouter(httptransport.Routes{
		Health:   probes,
		Sessions: sessionhandler.New(sessions, logger, cfg.CookieSecure),
		Resolver: sessions,
		Console: []httptransport.Registrar{
			hierhandler.New(hierarchy, logger, consoleMetrics),
			ledgerhandler.New(ledger, tracker, logger, consoleMetrics),
			fundhandler.New(funds, tracker, logger, consoleMetrics),
			tickethandler.New(tickets, logger, consoleMetrics),
			dashboard.NewHandler(dashboard.New(hierarchy, funds, tickets, logger), consoleMetrics),
		},
	}, httptransport.Options{
		Metrics:  request.NewMetricsWith(reg),
		Gatherer: reg,
	}, logger)

	return &server{handler: router, redis: rc}, nil
}

func serve(ctx context.Context, cfg config.Server, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := newServer(ctx, cfg, logger, reg)
	if err != nil {
		return err
	}
	if srv.redis != nil {
		defer srv.redis.Close() //nolint:errcheck // shutdown path
		go srv.redis.RunPoolStats(ctx, poolStatsInterval)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting console backend",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"api_base_url", cfg.APIBaseURL,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down console backend gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("console backend stopped")
	return nil
}
