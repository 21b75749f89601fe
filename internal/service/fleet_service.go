package service

import (
	"context"

	"github.com/google/uuid"

	"flota/internal/domain"
	"flota/internal/port"
)

// CreateFleetInput is the DTO for creating a fleet.
type CreateFleetInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateFleetInput is the DTO for updating a fleet.
type UpdateFleetInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// FleetService defines the fleet management contract.
type FleetService interface {
	Create(ctx context.Context, input CreateFleetInput) (*domain.Fleet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateFleetInput) (*domain.Fleet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddTransporter(ctx context.Context, fleetID, transporterID uuid.UUID) (*domain.Transporter, error)
	AddVehicle(ctx context.Context, fleetID, vehicleID uuid.UUID) (*domain.Vehicle, error)
	Stats(ctx context.Context, fleetID uuid.UUID) (*domain.FleetStats, error)
}

type fleetService struct {
	fleets       port.FleetRepository
	vehicles     port.VehicleRepository
	transporters port.TransporterRepository
}

// NewFleetService creates a new FleetService implementation.
func NewFleetService(
	fleets port.FleetRepository,
	vehicles port.VehicleRepository,
	transporters port.TransporterRepository,
) FleetService {
	return &fleetService{fleets: fleets, vehicles: vehicles, transporters: transporters}
}

func (s *fleetService) Create(ctx context.Context, input CreateFleetInput) (*domain.Fleet, error) {
	fleet := &domain.Fleet{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.fleets.Create(ctx, fleet); err != nil {
		return nil, err
	}
	return fleet, nil
}

func (s *fleetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error) {
	return s.fleets.GetByID(ctx, id)
}

func (s *fleetService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error) {
	return s.fleets.List(ctx, activeOnly, offset, limit)
}

func (s *fleetService) Update(ctx context.Context, id uuid.UUID, input UpdateFleetInput) (*domain.Fleet, error) {
	fleet, err := s.fleets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		fleet.Name = *input.Name
	}
	if input.Description != nil {
		fleet.Description = *input.Description
	}
	if input.IsActive != nil {
		fleet.IsActive = *input.IsActive
	}

	if err := s.fleets.Update(ctx, fleet); err != nil {
		return nil, err
	}
	return fleet, nil
}

func (s *fleetService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.fleets.Delete(ctx, id)
}

func (s *fleetService) AddTransporter(ctx context.Context, fleetID, transporterID uuid.UUID) (*domain.Transporter, error) {
	if _, err := s.fleets.GetByID(ctx, fleetID); err != nil {
		return nil, err
	}
	t, err := s.transporters.GetByID(ctx, transporterID)
	if err != nil {
		return nil, err
	}
	t.FleetID = &fleetID
	if err := s.transporters.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *fleetService) AddVehicle(ctx context.Context, fleetID, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	if _, err := s.fleets.GetByID(ctx, fleetID); err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	v.FleetID = &fleetID
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *fleetService) Stats(ctx context.Context, fleetID uuid.UUID) (*domain.FleetStats, error) {
	fleet, err := s.fleets.GetByID(ctx, fleetID)
	if err != nil {
		return nil, err
	}
	transporters, err := s.transporters.CountByFleet(ctx, fleetID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.CountByFleet(ctx, fleetID)
	if err != nil {
		return nil, err
	}
	return &domain.FleetStats{
		FleetID:           fleet.ID,
		TotalTransporters: transporters,
		TotalVehicles:     vehicles,
		Active:            fleet.IsActive,
	}, nil
}
