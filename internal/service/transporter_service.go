package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"flota/internal/domain"
	"flota/internal/port"
)

// CreateTransporterInput is the DTO for registering a transporter.
type CreateTransporterInput struct {
	Name          string     `json:"name" binding:"required,max=255"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone" binding:"max=50"`
	LicenseNumber string     `json:"license_number" binding:"required,max=50"`
	BirthDate     *time.Time `json:"birth_date"`
	HiredAt       *time.Time `json:"hired_at"`
	FleetID       *uuid.UUID `json:"fleet_id"`
}

// TransporterAvailability answers whether a transporter can take work.
type TransporterAvailability struct {
	TransporterID uuid.UUID  `json:"transporter_id"`
	Available     bool       `json:"available"`
	Active        bool       `json:"active"`
	FleetID       *uuid.UUID `json:"fleet_id"`
}

// TransporterService defines the transporter management contract.
type TransporterService interface {
	Create(ctx context.Context, input CreateTransporterInput) (*domain.Transporter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error)
	List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error)
	AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Transporter, error)
	RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Transporter, error)
	CheckAvailability(ctx context.Context, id uuid.UUID) (*TransporterAvailability, error)
}

type transporterService struct {
	transporters port.TransporterRepository
	fleets       port.FleetRepository
}

// NewTransporterService creates a new TransporterService implementation.
func NewTransporterService(transporters port.TransporterRepository, fleets port.FleetRepository) TransporterService {
	return &transporterService{transporters: transporters, fleets: fleets}
}

func (s *transporterService) Create(ctx context.Context, input CreateTransporterInput) (*domain.Transporter, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.transporters.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrTransporterNotFound) {
		return nil, err
	}

	if input.FleetID != nil {
		if _, err := s.fleets.GetByID(ctx, *input.FleetID); err != nil {
			return nil, err
		}
	}

	hired := time.Now().UTC()
	if input.HiredAt != nil {
		hired = *input.HiredAt
	}

	t := &domain.Transporter{
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		Phone:         input.Phone,
		LicenseNumber: strings.ToUpper(strings.TrimSpace(input.LicenseNumber)),
		BirthDate:     input.BirthDate,
		HiredAt:       hired,
		IsActive:      true,
		FleetID:       input.FleetID,
	}
	if err := s.transporters.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transporterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	return s.transporters.GetByID(ctx, id)
}

func (s *transporterService) List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error) {
	return s.transporters.List(ctx, fleetID, activeOnly, offset, limit)
}

func (s *transporterService) AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Transporter, error) {
	if _, err := s.fleets.GetByID(ctx, fleetID); err != nil {
		return nil, err
	}
	t, err := s.transporters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.FleetID = &fleetID
	if err := s.transporters.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transporterService) RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	t, err := s.transporters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.FleetID = nil
	if err := s.transporters.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transporterService) CheckAvailability(ctx context.Context, id uuid.UUID) (*TransporterAvailability, error) {
	t, err := s.transporters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TransporterAvailability{
		TransporterID: t.ID,
		Available:     t.IsAvailable(),
		Active:        t.IsActive,
		FleetID:       t.FleetID,
	}, nil
}
