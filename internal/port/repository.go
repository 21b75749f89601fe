package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flota/internal/domain"
)

// FleetRepository defines the contract for fleet persistence.
type FleetRepository interface {
	Create(ctx context.Context, fleet *domain.Fleet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error)
	Update(ctx context.Context, fleet *domain.Fleet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleFilter narrows vehicle listings. Zero values mean "any".
type VehicleFilter struct {
	FleetID *uuid.UUID
	Status  domain.VehicleStatus
	// InFleet keeps only vehicles assigned to some fleet.
	InFleet bool
	// MaintainedAfter keeps only vehicles serviced after this instant.
	MaintainedAfter *time.Time
	// MaxMileageKm keeps only vehicles at or below this mileage. Zero means no limit.
	MaxMileageKm int
}

// VehicleRepository defines the contract for vehicle persistence.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter, offset, limit int) ([]domain.Vehicle, int, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	CountByFleet(ctx context.Context, fleetID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransporterRepository defines the contract for transporter persistence.
type TransporterRepository interface {
	Create(ctx context.Context, transporter *domain.Transporter) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error)
	GetByEmail(ctx context.Context, email string) (*domain.Transporter, error)
	List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error)
	Update(ctx context.Context, transporter *domain.Transporter) error
	CountByFleet(ctx context.Context, fleetID uuid.UUID) (int, error)
}

// TransportRepository defines the contract for transport unit persistence.
type TransportRepository interface {
	Create(ctx context.Context, transport *domain.Transport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transport, error)
	GetByCode(ctx context.Context, code string) (*domain.Transport, error)
	List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error)
	Update(ctx context.Context, transport *domain.Transport) error
}

// CMRDocumentRepository stores the trace of every CMR extraction.
type CMRDocumentRepository interface {
	Create(ctx context.Context, record *domain.CMRRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error)
	ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.CMRRecord, error)
	UpdateValidity(ctx context.Context, id uuid.UUID, isValid bool) error
}
