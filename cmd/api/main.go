// Command api runs the Verse.Report HTTP server: the public browse surface
// (transmissions, timeline, taxonomy, sources) and the role-gated editorial
// endpoints.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"verse-report/internal/common/pagination"
	"verse-report/internal/config"
	pgRepo "verse-report/internal/infra/adapter/persistence/postgres"
	"verse-report/internal/infra/db"
	"verse-report/internal/observability/logging"
	"verse-report/internal/observability/tracing"

	srcUC "verse-report/internal/usecase/source"
	taxUC "verse-report/internal/usecase/taxonomy"
	tlUC "verse-report/internal/usecase/timeline"
	txUC "verse-report/internal/usecase/transmission"

	hhttp "verse-report/internal/handler/http"
	hauth "verse-report/internal/handler/http/auth"
	"verse-report/internal/handler/http/requestid"
	hsrc "verse-report/internal/handler/http/source"
	htax "verse-report/internal/handler/http/taxonomy"
	htl "verse-report/internal/handler/http/timeline"
	htx "verse-report/internal/handler/http/transmission"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadAppConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	secret, err := cfg.JWTSecret()
	if err != nil {
		logger.Error("jwt secret", slog.Any("error", err))
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("jwt secret must be at least 32 characters")
		os.Exit(1)
	}

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing, err := tracing.Init(context.Background())
	if err != nil {
		logger.Error("init tracing", slog.Any("error", err))
		os.Exit(1)
	}

	handler := buildHandler(cfg, database, []byte(secret), logger)
	runServer(cfg, handler, logger, shutdownTracing)
}

func buildHandler(cfg *config.AppConfig, database *sql.DB, secret []byte, logger *slog.Logger) http.Handler {
	txRepo := pgRepo.NewTransmissionRepo(database)
	taxRepo := pgRepo.NewTaxonomyRepo(database)
	srcRepo := pgRepo.NewSourceRepo(database)
	userRepo := pgRepo.NewUserRepo(database)

	loc := cfg.Location()
	txSvc := &txUC.Service{Repo: txRepo, Sources: srcRepo, Loc: loc}
	taxSvc := &taxUC.Service{Repo: taxRepo, SlugScope: cfg.Taxonomy.SlugUniqueness}
	srcSvc := &srcUC.Service{Repo: srcRepo}
	tlSvc := &tlUC.Service{Repo: txRepo, Loc: loc}

	authn := &hauth.Authenticator{Secret: secret, Users: userRepo}
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	htx.Register(mux, txSvc, authn, paginationCfg, logger)
	htax.Register(mux, taxSvc, authn)
	hsrc.Register(mux, srcSvc, authn)
	htl.Register(mux, tlSvc)

	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	mux.Handle("GET    /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /readyz", &hhttp.ReadinessHandler{DB: database})
	mux.Handle("GET    /livez", hhttp.LivenessHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	limiter := hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		limiter.Limit,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(1<<20),
		hhttp.Metrics,
	)
}

func runServer(cfg *config.AppConfig, handler http.Handler, logger *slog.Logger, shutdownTracing func(context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
