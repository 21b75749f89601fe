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

type transporterRepo struct {
	db *sqlx.DB
}

// NewTransporterRepo creates a new PostgreSQL-backed TransporterRepository.
func NewTransporterRepo(db *sqlx.DB) port.TransporterRepository {
	return &transporterRepo{db: db}
}

func (r *transporterRepo) Create(ctx context.Context, t *domain.Transporter) error {
	t.ID = uuid.New()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO transporters (id, name, email, phone, license_number, birth_date, hired_at,
		is_active, fleet_id, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :license_number, :birth_date, :hired_at,
		:is_active, :fleet_id, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		if isUniqueViolation(err, "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("transporterRepo.Create: %w", err)
	}
	return nil
}

func (r *transporterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	var t domain.Transporter
	err := r.db.GetContext(ctx, &t, "SELECT * FROM transporters WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransporterNotFound
		}
		return nil, fmt.Errorf("transporterRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *transporterRepo) GetByEmail(ctx context.Context, email string) (*domain.Transporter, error) {
	var t domain.Transporter
	err := r.db.GetContext(ctx, &t, "SELECT * FROM transporters WHERE LOWER(email) = LOWER($1)", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransporterNotFound
		}
		return nil, fmt.Errorf("transporterRepo.GetByEmail: %w", err)
	}
	return &t, nil
}

func (r *transporterRepo) List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error) {
	var conds []string
	var args []interface{}
	if fleetID != nil {
		args = append(args, *fleetID)
		conds = append(conds, fmt.Sprintf("fleet_id = $%d", len(args)))
	}
	if activeOnly {
		conds = append(conds, "is_active = TRUE")
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM transporters"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("transporterRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM transporters%s ORDER BY name LIMIT $%d OFFSET $%d", where, len(args)+1, len(args)+2)
	var transporters []domain.Transporter
	if err := r.db.SelectContext(ctx, &transporters, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("transporterRepo.List: %w", err)
	}
	return transporters, total, nil
}

func (r *transporterRepo) Update(ctx context.Context, t *domain.Transporter) error {
	t.UpdatedAt = time.Now().UTC()
	query := `UPDATE transporters SET name = :name, email = :email, phone = :phone,
		license_number = :license_number, birth_date = :birth_date, is_active = :is_active,
		fleet_id = :fleet_id, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("transporterRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTransporterNotFound
	}
	return nil
}

func (r *transporterRepo) CountByFleet(ctx context.Context, fleetID uuid.UUID) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM transporters WHERE fleet_id = $1", fleetID); err != nil {
		return 0, fmt.Errorf("transporterRepo.CountByFleet: %w", err)
	}
	return n, nil
}
