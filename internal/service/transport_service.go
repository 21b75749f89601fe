package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"flota/internal/domain"
	"flota/internal/port"
)

// CreateTransportInput is the DTO for creating a transport unit.
type CreateTransportInput struct {
	Code       string  `json:"code" binding:"required"`
	CapacityKg float64 `json:"capacity_kg" binding:"required"`
}

// UpdateTransportInput is the DTO for a partial transport update.
type UpdateTransportInput struct {
	Code       *string  `json:"code"`
	CapacityKg *float64 `json:"capacity_kg"`
	IsActive   *bool    `json:"is_active"`
}

func (in UpdateTransportInput) empty() bool {
	return in.Code == nil && in.CapacityKg == nil && in.IsActive == nil
}

// TransportService defines the transport unit management contract.
type TransportService interface {
	Create(ctx context.Context, input CreateTransportInput) (*domain.Transport, error)
	List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTransportInput) (*domain.Transport, error)
}

type transportService struct {
	repo port.TransportRepository
}

// NewTransportService creates a new TransportService implementation.
func NewTransportService(repo port.TransportRepository) TransportService {
	return &transportService{repo: repo}
}

func (s *transportService) Create(ctx context.Context, input CreateTransportInput) (*domain.Transport, error) {
	t := &domain.Transport{
		Code:       strings.TrimSpace(input.Code),
		CapacityKg: input.CapacityKg,
		IsActive:   true,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, t.Code); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transportService) List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error) {
	return s.repo.List(ctx, active, offset, limit)
}

func (s *transportService) Update(ctx context.Context, id uuid.UUID, input UpdateTransportInput) (*domain.Transport, error) {
	if input.empty() {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrNoFieldsToUpdate)
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if code != t.Code {
			if err := s.ensureCodeFree(ctx, code); err != nil {
				return nil, err
			}
		}
		t.Code = code
	}
	if input.CapacityKg != nil {
		t.CapacityKg = *input.CapacityKg
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transportService) ensureCodeFree(ctx context.Context, code string) error {
	_, err := s.repo.GetByCode(ctx, code)
	switch {
	case err == nil:
		return domain.ErrDuplicateCode
	case errors.Is(err, domain.ErrTransportNotFound):
		return nil
	default:
		return err
	}
}
