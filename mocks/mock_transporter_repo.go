package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
)

// MockTransporterRepo is a mock implementation of port.TransporterRepository.
type MockTransporterRepo struct {
	mock.Mock
}

func (m *MockTransporterRepo) Create(ctx context.Context, transporter *domain.Transporter) error {
	args := m.Called(ctx, transporter)
	return args.Error(0)
}

func (m *MockTransporterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transporter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterRepo) GetByEmail(ctx context.Context, email string) (*domain.Transporter, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transporter), args.Error(1)
}

func (m *MockTransporterRepo) List(ctx context.Context, fleetID *uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Transporter, int, error) {
	args := m.Called(ctx, fleetID, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transporter), args.Int(1), args.Error(2)
}

func (m *MockTransporterRepo) Update(ctx context.Context, transporter *domain.Transporter) error {
	args := m.Called(ctx, transporter)
	return args.Error(0)
}

func (m *MockTransporterRepo) CountByFleet(ctx context.Context, fleetID uuid.UUID) (int, error) {
	args := m.Called(ctx, fleetID)
	return args.Int(0), args.Error(1)
}
