package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"flota/internal/cmr"
	_ "flota/internal/cmr/ocrhttp"
	"flota/internal/config"
	"flota/internal/handler"
	"flota/internal/logging"
	"flota/internal/port"
	"flota/internal/repository/postgres"
	"flota/internal/router"
	"flota/internal/service"
	s3storage "flota/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Initialize repositories
	fleetRepo := postgres.NewFleetRepo(db)
	vehicleRepo := postgres.NewVehicleRepo(db)
	transporterRepo := postgres.NewTransporterRepo(db)
	transportRepo := postgres.NewTransportRepo(db)
	cmrRepo := postgres.NewCMRDocumentRepo(db)

	// Archive is optional: without it documents are still processed and stored.
	var storage port.ObjectStorage
	if s3Client, s3Err := s3storage.NewS3Client(context.Background(), &cfg.S3); s3Err != nil {
		logrus.WithError(s3Err).Warn("S3 archive disabled")
	} else {
		storage = s3Client
	}

	extractor, err := cmr.NewExtractor(&cfg.CMR)
	if err != nil {
		return fmt.Errorf("failed to initialize cmr extractor: %w", err)
	}

	// Initialize services
	fleetSvc := service.NewFleetService(fleetRepo, vehicleRepo, transporterRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, fleetRepo, transporterRepo)
	transporterSvc := service.NewTransporterService(transporterRepo, fleetRepo)
	transportSvc := service.NewTransportService(transportRepo)
	cmrSvc := service.NewCMRService(cmr.NewNormalizer(extractor), cmrRepo, storage, &cfg.CMR, &cfg.S3)

	r := router.Setup(logrus.StandardLogger(), cfg.CORS.AllowedOrigins, router.Handlers{
		Health:      handler.NewHealthHandler(db),
		Fleet:       handler.NewFleetHandler(fleetSvc),
		Vehicle:     handler.NewVehicleHandler(vehicleSvc),
		Transporter: handler.NewTransporterHandler(transporterSvc),
		Transport:   handler.NewTransportHandler(transportSvc),
		Route:       handler.NewRouteHandler(),
		CMR:         handler.NewCMRHandler(cmrSvc, cfg.CMR.MaxDocumentBytes()),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":      cfg.Server.Port,
			"extractor": cfg.CMR.Extractor,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logrus.Info("server stopped")
	return nil
}
