package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/service"
)

// MockVehicleService is a mock implementation of service.VehicleService.
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) vehicle(args mock.Arguments) (*domain.Vehicle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) Create(ctx context.Context, input service.CreateVehicleInput) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, input))
}

func (m *MockVehicleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id))
}

func (m *MockVehicleService) List(ctx context.Context, filter service.VehicleListFilter, offset, limit int) ([]domain.Vehicle, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Vehicle), args.Int(1), args.Error(2)
}

func (m *MockVehicleService) Update(ctx context.Context, id uuid.UUID, input service.UpdateVehicleInput) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id, input))
}

func (m *MockVehicleService) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id, status))
}

func (m *MockVehicleService) AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id, fleetID))
}

func (m *MockVehicleService) RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id))
}

func (m *MockVehicleService) AssignTransporter(ctx context.Context, id, transporterID uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id, transporterID))
}

func (m *MockVehicleService) ReleaseTransporter(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return m.vehicle(m.Called(ctx, id))
}

func (m *MockVehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
