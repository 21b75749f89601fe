package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flota/internal/domain"
	"flota/internal/port"
)

type fleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepo creates a new PostgreSQL-backed FleetRepository.
func NewFleetRepo(db *sqlx.DB) port.FleetRepository {
	return &fleetRepo{db: db}
}

func (r *fleetRepo) Create(ctx context.Context, fleet *domain.Fleet) error {
	fleet.ID = uuid.New()
	now := time.Now().UTC()
	fleet.CreatedAt = now
	fleet.UpdatedAt = now

	query := `INSERT INTO fleets (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		fleet.ID, fleet.Name, fleet.Description, fleet.IsActive, fleet.CreatedAt, fleet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fleetRepo.Create: %w", err)
	}
	return nil
}

func (r *fleetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error) {
	var fleet domain.Fleet
	err := r.db.GetContext(ctx, &fleet, "SELECT * FROM fleets WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFleetNotFound
		}
		return nil, fmt.Errorf("fleetRepo.GetByID: %w", err)
	}
	return &fleet, nil
}

func (r *fleetRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = TRUE"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM fleets"+where); err != nil {
		return nil, 0, fmt.Errorf("fleetRepo.List count: %w", err)
	}

	var fleets []domain.Fleet
	err := r.db.SelectContext(ctx, &fleets,
		"SELECT * FROM fleets"+where+" ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("fleetRepo.List: %w", err)
	}
	return fleets, total, nil
}

func (r *fleetRepo) Update(ctx context.Context, fleet *domain.Fleet) error {
	fleet.UpdatedAt = time.Now().UTC()
	query := `UPDATE fleets SET name = $1, description = $2, is_active = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		fleet.Name, fleet.Description, fleet.IsActive, fleet.UpdatedAt, fleet.ID)
	if err != nil {
		return fmt.Errorf("fleetRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFleetNotFound
	}
	return nil
}

func (r *fleetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM fleets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("fleetRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFleetNotFound
	}
	return nil
}
