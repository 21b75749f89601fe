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

type transportRepo struct {
	db *sqlx.DB
}

// NewTransportRepo creates a new PostgreSQL-backed TransportRepository.
func NewTransportRepo(db *sqlx.DB) port.TransportRepository {
	return &transportRepo{db: db}
}

func (r *transportRepo) Create(ctx context.Context, t *domain.Transport) error {
	t.ID = uuid.New()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO transports (id, code, capacity_kg, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Code, t.CapacityKg, t.IsActive, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "code") {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("transportRepo.Create: %w", err)
	}
	return nil
}

func (r *transportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transport, error) {
	var t domain.Transport
	err := r.db.GetContext(ctx, &t, "SELECT * FROM transports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransportNotFound
		}
		return nil, fmt.Errorf("transportRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *transportRepo) GetByCode(ctx context.Context, code string) (*domain.Transport, error) {
	var t domain.Transport
	err := r.db.GetContext(ctx, &t, "SELECT * FROM transports WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransportNotFound
		}
		return nil, fmt.Errorf("transportRepo.GetByCode: %w", err)
	}
	return &t, nil
}

func (r *transportRepo) List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error) {
	var total int
	var transports []domain.Transport

	if active == nil {
		if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM transports"); err != nil {
			return nil, 0, fmt.Errorf("transportRepo.List count: %w", err)
		}
		err := r.db.SelectContext(ctx, &transports,
			"SELECT * FROM transports ORDER BY code LIMIT $1 OFFSET $2", limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("transportRepo.List: %w", err)
		}
		return transports, total, nil
	}

	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM transports WHERE is_active = $1", *active); err != nil {
		return nil, 0, fmt.Errorf("transportRepo.List count: %w", err)
	}
	err := r.db.SelectContext(ctx, &transports,
		"SELECT * FROM transports WHERE is_active = $1 ORDER BY code LIMIT $2 OFFSET $3", *active, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("transportRepo.List: %w", err)
	}
	return transports, total, nil
}

func (r *transportRepo) Update(ctx context.Context, t *domain.Transport) error {
	t.UpdatedAt = time.Now().UTC()
	query := `UPDATE transports SET code = $1, capacity_kg = $2, is_active = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, t.Code, t.CapacityKg, t.IsActive, t.UpdatedAt, t.ID)
	if err != nil {
		if isUniqueViolation(err, "code") {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("transportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTransportNotFound
	}
	return nil
}
