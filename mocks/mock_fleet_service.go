package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/service"
)

// MockFleetService is a mock implementation of service.FleetService.
type MockFleetService struct {
	mock.Mock
}

func (m *MockFleetService) Create(ctx context.Context, input service.CreateFleetInput) (*domain.Fleet, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fleet), args.Error(1)
}

func (m *MockFleetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fleet), args.Error(1)
}

func (m *MockFleetService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Fleet), args.Int(1), args.Error(2)
}

func (m *MockFleetService) Update(ctx context.Context, id uuid.UUID, input service.UpdateFleetInput) (*domain.Fleet, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fleet), args.Error(1)
}

func (m *MockFleetService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFleetService) AddTransporter(ctx context.Context, fleetID, transporterID uuid.UUID) (*domain.Transporter, error) {
	args := m.Called(ctx, fleetID, transporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockFleetService) AddVehicle(ctx context.Context, fleetID, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	args := m.Called(ctx, fleetID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockFleetService) Stats(ctx context.Context, fleetID uuid.UUID) (*domain.FleetStats, error) {
	args := m.Called(ctx, fleetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FleetStats), args.Error(1)
}
