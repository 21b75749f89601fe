package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flota/internal/domain"
	"flota/internal/port"
)

type vehicleRepo struct {
	db *sqlx.DB
}

// NewVehicleRepo creates a new PostgreSQL-backed VehicleRepository.
func NewVehicleRepo(db *sqlx.DB) port.VehicleRepository {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	v.ID = uuid.New()
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `INSERT INTO vehicles (id, plate, brand, model, vehicle_type, load_capacity_kg, status,
		registered_at, last_maintenance_at, mileage_km, fleet_id, transporter_id, created_at, updated_at)
		VALUES (:id, :plate, :brand, :model, :vehicle_type, :load_capacity_kg, :status,
		:registered_at, :last_maintenance_at, :mileage_km, :fleet_id, :transporter_id, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, v); err != nil {
		if isUniqueViolation(err, "plate") {
			return domain.ErrDuplicatePlate
		}
		return fmt.Errorf("vehicleRepo.Create: %w", err)
	}
	return nil
}

func (r *vehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.GetContext(ctx, &v, "SELECT * FROM vehicles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("vehicleRepo.GetByID: %w", err)
	}
	return &v, nil
}

func (r *vehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.GetContext(ctx, &v, "SELECT * FROM vehicles WHERE plate = $1", plate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("vehicleRepo.GetByPlate: %w", err)
	}
	return &v, nil
}

func (r *vehicleRepo) List(ctx context.Context, filter port.VehicleFilter, offset, limit int) ([]domain.Vehicle, int, error) {
	var conds []string
	var args []interface{}
	if filter.FleetID != nil {
		args = append(args, *filter.FleetID)
		conds = append(conds, fmt.Sprintf("fleet_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.InFleet {
		conds = append(conds, "fleet_id IS NOT NULL")
	}
	if filter.MaintainedAfter != nil {
		args = append(args, *filter.MaintainedAfter)
		conds = append(conds, fmt.Sprintf("last_maintenance_at >= $%d", len(args)))
	}
	if filter.MaxMileageKm > 0 {
		args = append(args, filter.MaxMileageKm)
		conds = append(conds, fmt.Sprintf("mileage_km <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM vehicles"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("vehicleRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM vehicles%s ORDER BY plate LIMIT $%d OFFSET $%d", where, len(args)+1, len(args)+2)
	var vehicles []domain.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("vehicleRepo.List: %w", err)
	}
	return vehicles, total, nil
}

func (r *vehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	v.UpdatedAt = time.Now().UTC()
	query := `UPDATE vehicles SET plate = :plate, brand = :brand, model = :model, vehicle_type = :vehicle_type,
		load_capacity_kg = :load_capacity_kg, status = :status, last_maintenance_at = :last_maintenance_at,
		mileage_km = :mileage_km, fleet_id = :fleet_id, transporter_id = :transporter_id, updated_at = :updated_at
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, v)
	if err != nil {
		if isUniqueViolation(err, "plate") {
			return domain.ErrDuplicatePlate
		}
		return fmt.Errorf("vehicleRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepo) CountByFleet(ctx context.Context, fleetID uuid.UUID) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM vehicles WHERE fleet_id = $1", fleetID); err != nil {
		return 0, fmt.Errorf("vehicleRepo.CountByFleet: %w", err)
	}
	return n, nil
}

func (r *vehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("vehicleRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
