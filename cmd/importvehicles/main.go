// Command importvehicles registers the vehicles listed in an XLSX roster.
// The first row is a header; columns are plate, brand, model, type,
// capacity (kg) and registered (date).
// Usage: go run ./cmd/importvehicles roster.xlsx [--sheet Flota] [--fleet-id UUID] [--dry-run]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"flota/internal/config"
	"flota/internal/domain"
	"flota/internal/logging"
	"flota/internal/repository/postgres"
	"flota/internal/service"
)

var (
	sheetName string
	fleetIDs  string
	dryRun    bool
)

var rootCmd = &cobra.Command{
	Use:          "importvehicles [roster.xlsx]",
	Short:        "Import a vehicle roster from a spreadsheet",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read (defaults to the first sheet)")
	rootCmd.Flags().StringVar(&fleetIDs, "fleet-id", "", "Fleet to place every imported vehicle in")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.Log)

	var fleetID *uuid.UUID
	if fleetIDs != "" {
		id, perr := uuid.Parse(fleetIDs)
		if perr != nil {
			return fmt.Errorf("invalid --fleet-id: %w", perr)
		}
		fleetID = &id
	}

	f, err := excelize.OpenFile(args[0])
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, rowErrs, err := parseRoster(f, sheetName)
	if err != nil {
		return fmt.Errorf("parse roster: %w", err)
	}
	for _, re := range rowErrs {
		logrus.WithField("row", re.Row).WithError(re.Err).Warn("skipping row")
	}
	logrus.WithFields(logrus.Fields{"parsed": len(rows), "skipped": len(rowErrs)}).Info("roster read")

	if dryRun {
		return nil
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	vehicleSvc := service.NewVehicleService(
		postgres.NewVehicleRepo(db),
		postgres.NewFleetRepo(db),
		postgres.NewTransporterRepo(db),
	)

	created, failed := importRows(cmd.Context(), vehicleSvc, rows, fleetID)
	logrus.WithFields(logrus.Fields{"created": created, "failed": failed}).Info("import complete")
	if failed > 0 {
		return fmt.Errorf("%d vehicles could not be imported", failed)
	}
	return nil
}

// importRows creates each row through the vehicle service. Duplicate plates
// are counted as failures and do not stop the import.
func importRows(ctx context.Context, svc service.VehicleService, rows []rosterRow, fleetID *uuid.UUID) (created, failed int) {
	for _, r := range rows {
		input := r.Input
		if fleetID != nil {
			input.FleetID = fleetID
		}
		v, err := svc.Create(ctx, input)
		if err != nil {
			entry := logrus.WithFields(logrus.Fields{"row": r.Row, "plate": input.Plate}).WithError(err)
			if errors.Is(err, domain.ErrDuplicatePlate) {
				entry.Warn("vehicle already registered")
			} else {
				entry.Error("failed to create vehicle")
			}
			failed++
			continue
		}
		logrus.WithFields(logrus.Fields{"row": r.Row, "id": v.ID, "plate": v.Plate}).Debug("vehicle created")
		created++
	}
	return created, failed
}
