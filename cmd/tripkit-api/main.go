// README: Entry point; loads config, wires services, starts the HTTP server.
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

	"tripkit/internal/config"
	httptransport "tripkit/internal/http"
	"tripkit/internal/infra"
	"tripkit/internal/logger"
	"tripkit/internal/maps"
	"tripkit/internal/modules/planner"
	"tripkit/internal/modules/record"
	"tripkit/internal/modules/trip"
)

func main() {
	_ = godotenv.Load()

	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("config load failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalw("database connect failed", "error", err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Warnw("maps client init failed, wishlist enrichment disabled", "error", err)
			places = nil
		}
	}

	generator := planner.NewGenerator(cfg.AI, places)
	statusSvc := planner.NewStatusService(cfg.AI, redisClient)

	tripStore := trip.NewStore(dbPool)
	tripSvc := trip.NewService(tripStore, generator)

	recordStore := record.NewStore(dbPool)
	recordSvc := record.NewService(recordStore, cfg.Upload.Dir)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:     tripSvc,
		Records:   recordSvc,
		AIStatus:  statusSvc,
		UploadDir: cfg.Upload.Dir,
		MaxUpload: cfg.Upload.MaxBytes,
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	go func() {
		log.Infow("server listening", "addr", cfg.HTTP.Addr, "ai_service", generator.Vendor())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown error", "error", err)
	}
}
