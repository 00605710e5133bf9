package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-console/internal/db"
	"github.com/BruksfildServices01/salon-console/internal/otelx"
	"github.com/BruksfildServices01/salon-console/internal/routes"
	"github.com/BruksfildServices01/salon-console/internal/session"
)

const serviceName = "salon-console"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("service", serviceName)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("console stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdownTracing, err := otelx.Setup(ctx, serviceName, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// ======================================================
	// SESSÕES
	// ======================================================
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err := session.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		logger.Info("session store: redis")
	} else {
		logger.Info("session store: memory")
	}

	deps := routes.Deps{
		Config: cfg,
		API:    apiclient.New(cfg.APIBaseURL),
		Store:  store,
		Logger: logger,
	}

	// ======================================================
	// AUDITORIA (opcional)
	// ======================================================
	if cfg.AuditEnabled() {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		deps.DB = db
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	auditDispatcher := routes.RegisterRoutes(r, deps)
	defer auditDispatcher.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
