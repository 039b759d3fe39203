package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/config"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/db"
	api "github.com/rogerio-castellano/rocketshoes-cart/internal/http"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/http/handlers"
	rl "github.com/rogerio-castellano/rocketshoes-cart/internal/http/rate_limiter"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/inventory"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/logger"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/notify"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/redissvc"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/store"
)

// @title RocketShoes Cart API
// @version 1.0
// @description Shopping cart engine with stock validation, plus the stock service it talks to.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logger.New("rocketshoes-cart", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := repo.CatalogRepository(repo.NewInMemoryCatalogRepository())
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("could not connect to database")
		}
		defer database.Close()
		catalog = repo.NewPostgresCatalogRepository(database)
	}
	handlers.SetCatalogRepo(catalog)

	var cartStore cart.Store = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rs := redissvc.NewRedisService(cfg.RedisAddr, log)
		if err := rs.WaitReady(ctx); err != nil {
			log.WithError(err).Fatal("could not connect to redis")
		}
		defer rs.Close()
		cartStore = store.NewRedisStore(rs.Rdb(), cfg.CartStorageKey)
	}

	var inv cart.Inventory = inventory.NewLocalClient(catalog)
	if cfg.InventoryBaseURL != "" {
		client, err := inventory.NewHTTPClient(cfg.InventoryBaseURL, cfg.InventoryTimeout)
		if err != nil {
			log.WithError(err).Fatal("invalid inventory client")
		}
		inv = client
	}

	recorder := notify.NewRecorder(100)
	engine, err := cart.NewEngine(ctx, inv, cartStore, notify.Multi{recorder, notify.NewLogger(log)}, log)
	if err != nil {
		log.WithError(err).Fatal("could not start cart engine")
	}

	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetCartReader(engine)

	handlers.SetLogger(log)
	handlers.SetCartEngine(engine)
	handlers.SetNotificationRecorder(recorder)
	handlers.SetMetricsRepo(metrics)

	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}()

	log.WithField("addr", cfg.HTTPAddr).Info("server running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
}
