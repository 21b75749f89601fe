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

type cmrDocumentRepo struct {
	db *sqlx.DB
}

// NewCMRDocumentRepo creates a new PostgreSQL-backed CMRDocumentRepository.
func NewCMRDocumentRepo(db *sqlx.DB) port.CMRDocumentRepository {
	return &cmrDocumentRepo{db: db}
}

func (r *cmrDocumentRepo) Create(ctx context.Context, rec *domain.CMRRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()

	query := `INSERT INTO cmr_documents (id, document_number, status, is_valid, vehicle_plate, sender_name,
		recipient_name, gross_weight_kg, issue_date, processing_error, structured_data, confidence_scores,
		original_name, file_size, s3_bucket, s3_key, processed_at, created_at)
		VALUES (:id, :document_number, :status, :is_valid, :vehicle_plate, :sender_name,
		:recipient_name, :gross_weight_kg, :issue_date, :processing_error, :structured_data, :confidence_scores,
		:original_name, :file_size, :s3_bucket, :s3_key, :processed_at, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("cmrDocumentRepo.Create: %w", err)
	}
	return nil
}

func (r *cmrDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error) {
	var rec domain.CMRRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM cmr_documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCMRNotFound
		}
		return nil, fmt.Errorf("cmrDocumentRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *cmrDocumentRepo) List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM cmr_documents"); err != nil {
		return nil, 0, fmt.Errorf("cmrDocumentRepo.List count: %w", err)
	}

	var records []domain.CMRRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM cmr_documents ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("cmrDocumentRepo.List: %w", err)
	}
	return records, total, nil
}

// ListAfter pages through all records in id order, starting after afterID.
// Pass uuid.Nil to start from the beginning.
func (r *cmrDocumentRepo) ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.CMRRecord, error) {
	var records []domain.CMRRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM cmr_documents WHERE id > $1 ORDER BY id LIMIT $2", afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("cmrDocumentRepo.ListAfter: %w", err)
	}
	return records, nil
}

func (r *cmrDocumentRepo) UpdateValidity(ctx context.Context, id uuid.UUID, isValid bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE cmr_documents SET is_valid = $1 WHERE id = $2", isValid, id)
	if err != nil {
		return fmt.Errorf("cmrDocumentRepo.UpdateValidity: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCMRNotFound
	}
	return nil
}
