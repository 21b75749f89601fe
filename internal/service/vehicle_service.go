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

// CreateVehicleInput is the DTO for registering a vehicle.
type CreateVehicleInput struct {
	Plate             string             `json:"plate" binding:"required"`
	Brand             string             `json:"brand" binding:"required,max=100"`
	Model             string             `json:"model" binding:"required,max=100"`
	Type              domain.VehicleType `json:"type" binding:"required"`
	LoadCapacityKg    float64            `json:"load_capacity_kg" binding:"required,gt=0"`
	RegisteredAt      time.Time          `json:"registered_at" binding:"required"`
	LastMaintenanceAt *time.Time         `json:"last_maintenance_at"`
	MileageKm         int                `json:"mileage_km" binding:"gte=0"`
	FleetID           *uuid.UUID         `json:"fleet_id"`
}

// UpdateVehicleInput is the DTO for updating a vehicle.
type UpdateVehicleInput struct {
	Brand             *string    `json:"brand" binding:"omitempty,min=1,max=100"`
	Model             *string    `json:"model" binding:"omitempty,min=1,max=100"`
	LoadCapacityKg    *float64   `json:"load_capacity_kg" binding:"omitempty,gt=0"`
	LastMaintenanceAt *time.Time `json:"last_maintenance_at"`
	MileageKm         *int       `json:"mileage_km" binding:"omitempty,gte=0"`
}

// VehicleListFilter narrows vehicle listings.
type VehicleListFilter struct {
	FleetID       *uuid.UUID
	Status        domain.VehicleStatus
	AvailableOnly bool
}

// VehicleService defines the vehicle management contract.
type VehicleService interface {
	Create(ctx context.Context, input CreateVehicleInput) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	List(ctx context.Context, filter VehicleListFilter, offset, limit int) ([]domain.Vehicle, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*domain.Vehicle, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) (*domain.Vehicle, error)
	AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Vehicle, error)
	RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	AssignTransporter(ctx context.Context, id, transporterID uuid.UUID) (*domain.Vehicle, error)
	ReleaseTransporter(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleService struct {
	vehicles     port.VehicleRepository
	fleets       port.FleetRepository
	transporters port.TransporterRepository
	now          func() time.Time
}

// NewVehicleService creates a new VehicleService implementation.
func NewVehicleService(
	vehicles port.VehicleRepository,
	fleets port.FleetRepository,
	transporters port.TransporterRepository,
) VehicleService {
	return &vehicleService{
		vehicles:     vehicles,
		fleets:       fleets,
		transporters: transporters,
		now:          time.Now,
	}
}

func (s *vehicleService) Create(ctx context.Context, input CreateVehicleInput) (*domain.Vehicle, error) {
	plate, err := domain.NormalizePlate(input.Plate)
	if err != nil {
		return nil, err
	}
	vt := domain.VehicleType(strings.ToLower(string(input.Type)))
	if !domain.ValidVehicleTypes[vt] {
		return nil, &domain.FieldError{Field: "type", Message: "must be one of truck, van, motorcycle, trailer"}
	}
	if input.LoadCapacityKg <= 0 {
		return nil, &domain.FieldError{Field: "load_capacity_kg", Message: "must be greater than 0"}
	}
	if input.MileageKm < 0 {
		return nil, &domain.FieldError{Field: "mileage_km", Message: "cannot be negative"}
	}

	if _, err := s.vehicles.GetByPlate(ctx, plate); err == nil {
		return nil, domain.ErrDuplicatePlate
	} else if !errors.Is(err, domain.ErrVehicleNotFound) {
		return nil, err
	}

	if input.FleetID != nil {
		if _, err := s.fleets.GetByID(ctx, *input.FleetID); err != nil {
			return nil, err
		}
	}

	v := &domain.Vehicle{
		Plate:             plate,
		Brand:             strings.TrimSpace(input.Brand),
		Model:             strings.TrimSpace(input.Model),
		Type:              vt,
		LoadCapacityKg:    input.LoadCapacityKg,
		Status:            domain.VehicleStatusAvailable,
		RegisteredAt:      input.RegisteredAt,
		LastMaintenanceAt: input.LastMaintenanceAt,
		MileageKm:         input.MileageKm,
		FleetID:           input.FleetID,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context, filter VehicleListFilter, offset, limit int) ([]domain.Vehicle, int, error) {
	f := port.VehicleFilter{FleetID: filter.FleetID, Status: filter.Status}
	if filter.Status != "" && !domain.ValidVehicleStatuses[filter.Status] {
		return nil, 0, &domain.FieldError{Field: "status", Message: "unknown vehicle status"}
	}
	if filter.AvailableOnly {
		cutoff := s.now().Add(-domain.MaintenanceInterval)
		f.Status = domain.VehicleStatusAvailable
		f.InFleet = true
		f.MaintainedAfter = &cutoff
		f.MaxMileageKm = domain.MaintenanceMileageKm
	}
	return s.vehicles.List(ctx, f, offset, limit)
}

func (s *vehicleService) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Brand != nil {
		v.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Model != nil {
		v.Model = strings.TrimSpace(*input.Model)
	}
	if input.LoadCapacityKg != nil {
		if *input.LoadCapacityKg <= 0 {
			return nil, &domain.FieldError{Field: "load_capacity_kg", Message: "must be greater than 0"}
		}
		v.LoadCapacityKg = *input.LoadCapacityKg
	}
	if input.LastMaintenanceAt != nil {
		v.LastMaintenanceAt = input.LastMaintenanceAt
	}
	if input.MileageKm != nil {
		if *input.MileageKm < v.MileageKm {
			return nil, &domain.FieldError{Field: "mileage_km", Message: "mileage cannot decrease"}
		}
		v.UpdateMileage(*input.MileageKm)
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) (*domain.Vehicle, error) {
	if !domain.ValidVehicleStatuses[status] {
		return nil, &domain.FieldError{Field: "status", Message: "unknown vehicle status"}
	}
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Status = status
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Vehicle, error) {
	if _, err := s.fleets.GetByID(ctx, fleetID); err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.FleetID = &fleetID
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.FleetID = nil
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) AssignTransporter(ctx context.Context, id, transporterID uuid.UUID) (*domain.Vehicle, error) {
	t, err := s.transporters.GetByID(ctx, transporterID)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, &domain.FieldError{Field: "transporter_id", Message: "transporter is not active"}
	}
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.AssignTransporter(transporterID)
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) ReleaseTransporter(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.ReleaseTransporter()
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vehicles.Delete(ctx, id)
}
