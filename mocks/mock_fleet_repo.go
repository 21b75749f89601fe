package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
)

// MockFleetRepo is a mock implementation of port.FleetRepository.
type MockFleetRepo struct {
	mock.Mock
}

func (m *MockFleetRepo) Create(ctx context.Context, fleet *domain.Fleet) error {
	args := m.Called(ctx, fleet)
	return args.Error(0)
}

func (m *MockFleetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fleet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fleet), args.Error(1)
}

func (m *MockFleetRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Fleet, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Fleet), args.Int(1), args.Error(2)
}

func (m *MockFleetRepo) Update(ctx context.Context, fleet *domain.Fleet) error {
	args := m.Called(ctx, fleet)
	return args.Error(0)
}

func (m *MockFleetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
