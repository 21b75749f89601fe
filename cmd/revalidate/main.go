// Command revalidate re-runs the validation gate over every stored CMR record
// and updates is_valid where the verdict changed.
// Usage: go run ./cmd/revalidate
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"flota/internal/config"
	"flota/internal/logging"
	"flota/internal/repository/postgres"
	"flota/internal/service"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("revalidate failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Revalidation reads stored documents only; no extractor or archive is needed.
	cmrSvc := service.NewCMRService(nil, postgres.NewCMRDocumentRepo(db), nil, &cfg.CMR, &cfg.S3)

	stats, err := cmrSvc.Revalidate(ctx, batchSize)
	if stats != nil {
		logrus.WithFields(logrus.Fields{
			"scanned": stats.Scanned,
			"changed": stats.Changed,
			"failed":  stats.Failed,
		}).Info("revalidation complete")
	}
	return err
}
