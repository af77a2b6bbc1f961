package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/routes"
	"github.com/dvillegas/postres-backend/internal/auth"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/internal/checkout"
	"github.com/dvillegas/postres-backend/internal/sales"
	"github.com/dvillegas/postres-backend/pkg/config"
	"github.com/dvillegas/postres-backend/pkg/db"
	"github.com/dvillegas/postres-backend/pkg/env"
	"github.com/dvillegas/postres-backend/pkg/logger"
	"github.com/dvillegas/postres-backend/pkg/metrics"
	"github.com/dvillegas/postres-backend/pkg/migrate"
	"github.com/dvillegas/postres-backend/pkg/redis"
	"github.com/dvillegas/postres-backend/pkg/session"
	"github.com/dvillegas/postres-backend/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	tmpl, err := web.Templates()
	if err != nil {
		logg.Error(context.Background(), "failed to parse templates", err)
		os.Exit(1)
	}

	productos := catalog.NewProductoRepository(dbClient.DB())
	proveedores := catalog.NewProveedorRepository(dbClient.DB())

	checkoutService, err := checkout.NewService(dbClient, checkout.NewRepository(dbClient.DB()), productos, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(routes.Deps{
		Cfg:         cfg,
		Logg:        logg,
		Renderer:    responses.NewRenderer(tmpl, logg),
		Sessions:    sessionManager,
		HTTPMetrics: metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),

		DBPinger:    dbClient,
		RedisPinger: redisClient,

		AuthService:     auth.NewService(auth.NewUsuarioRepository(dbClient.DB())),
		CheckoutService: checkoutService,
		Productos:       productos,
		Proveedores:     proveedores,
		Ventas:          sales.NewRepository(dbClient.DB()),
	})

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case <-stop.Done():
		logg.Info(ctx, "shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}
