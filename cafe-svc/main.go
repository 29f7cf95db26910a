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

	"brew-haven/config"
	httpapi "brew-haven/cafe-svc/internal/api/http"
	"brew-haven/cafe-svc/internal/service"
	"brew-haven/cafe-svc/internal/storage"
	"brew-haven/logging"
)

// app owns the shared clients so they can be closed on shutdown.
type app struct {
	handler http.Handler
	closers []func(context.Context) error
}

func newApp(cfg config.Config, logger *slog.Logger) *app {
	a := &app{}

	mongoClient, db, err := config.InitMongo(cfg)
	if err != nil {
		logger.Error("database not initialized", "error", err)
	} else {
		a.closers = append(a.closers, mongoClient.Disconnect)
	}
	repository := storage.NewMongoRepository(db)

	var (
		menuCache   service.MenuCache
		cacheProber service.CacheProber
	)
	if redisClient := config.InitRedis(cfg); redisClient != nil {
		cache := storage.NewRedisCache(redisClient, cfg.MenuCacheTTL)
		menuCache, cacheProber = cache, cache
		a.closers = append(a.closers, func(context.Context) error { return redisClient.Close() })
	}

	var publisher service.ReservationPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
		a.closers = append(a.closers, func(context.Context) error { return writer.Close() })
	}

	handler := httpapi.NewHandler(
		service.NewReservationService(repository, publisher),
		service.NewMenuService(repository, menuCache),
		service.NewCheckoutService(service.DefaultQRGenerator{}),
		service.NewDiagnosticsService(repository, cacheProber, cfg.DatabaseURLSet()),
	)
	a.handler = httpapi.NewRouter(handler, logger)
	return a
}

// close releases clients in reverse order of creation.
func (a *app) close(ctx context.Context, logger *slog.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Warn("close failed", "error", err)
		}
	}
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	a := newApp(cfg, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: a.handler,
	}

	go func() {
		logger.Info("Cafe Service starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	a.close(ctx, logger)
}
