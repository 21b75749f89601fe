package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/service"
)

// MockTransporterService is a mock implementation of service.TransporterService.
type MockTransporterService struct {
	mock.Mock
}

func (m *MockTransporterService) Create(ctx context.Context, input service.CreateTransporterInput) (*domain.Transporter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterService) List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error) {
	args := m.Called(ctx, fleetID, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transporter), args.Int(1), args.Error(2)
}

func (m *MockTransporterService) AssignToFleet(ctx context.Context, id, fleetID uuid.UUID) (*domain.Transporter, error) {
	args := m.Called(ctx, id, fleetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterService) RemoveFromFleet(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterService) CheckAvailability(ctx context.Context, id uuid.UUID) (*service.TransporterAvailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransporterAvailability), args.Error(1)
}
