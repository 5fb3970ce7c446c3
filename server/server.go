// Package server wires configuration, storage, and routes into the reservation store
// HTTP service.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"labreserve/config"
	"labreserve/database"
	reservationRepo "labreserve/database/repository/reservation"
	"labreserve/handlers"
	"labreserve/middleware"
	"labreserve/routes"
	"labreserve/services/reservation"
	"labreserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine around svc. Only peers in trustedProxies may set the
// client address through forwarding headers.
func NewRouter(svc reservation.ReservationService, logger *zap.Logger, maxPerMin int, trustedProxies []string) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	proxies := cleanProxies(trustedProxies)
	if err := router.SetTrustedProxies(proxies); err != nil {
		logger.Warn("server: invalid trusted proxies, trusting none", zap.Strings("proxies", proxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	reservationHandler := handlers.NewReservationHandler(svc, logger)
	hb := &handlers.HandlerBundle{
		ListReservationsHandler:  reservationHandler.ListReservationsHandler,
		CreateReservationHandler: reservationHandler.CreateReservationHandler,
		HealthHandler:            handlers.HealthHandler,
	}
	routes.RegisterRoutes(router, hb, maxPerMin)
	return router
}

func cleanProxies(in []string) []string {
	var out []string
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Run connects to MongoDB and Redis, serves until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	logger := utils.GetLogger()
	cfg := config.AppConfig

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Disconnect(shutdownCtx); err != nil {
			logger.Warn("server: mongo disconnect failed", zap.Error(err))
		}
		if err := cacheClient.Close(); err != nil {
			logger.Warn("server: redis close failed", zap.Error(err))
		}
	}()

	repo := reservationRepo.NewMongoReservationRepo()
	if ie, ok := repo.(reservationRepo.IndexEnsurer); ok {
		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := ie.EnsureIndexes(indexCtx)
		cancel()
		if err != nil {
			return err
		}
	}

	svc := &reservation.DefaultReservationService{
		Repo:   repo,
		Cache:  reservationRepo.NewRedisListCache(cacheClient, cfg.ReservationCacheTTL),
		Logger: logger,
	}

	utils.StartHealthMonitor(ctx, time.Minute,
		utils.PingerFunc(database.Ping),
		utils.PingerFunc(func(ctx context.Context) error { return cacheClient.Ping(ctx).Err() }),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: NewRouter(svc, logger, cfg.MaxRequestsPerMin, cfg.TrustedProxies),
	}

	errc := make(chan error, 1)
	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server: stopped gracefully")
	return nil
}
