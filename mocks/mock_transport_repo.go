package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
)

// MockTransportRepo is a mock implementation of port.TransportRepository.
type MockTransportRepo struct {
	mock.Mock
}

func (m *MockTransportRepo) Create(ctx context.Context, transport *domain.Transport) error {
	args := m.Called(ctx, transport)
	return args.Error(0)
}

func (m *MockTransportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}

func (m *MockTransportRepo) GetByCode(ctx context.Context, code string) (*domain.Transport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}

func (m *MockTransportRepo) List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error) {
	args := m.Called(ctx, active, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transport), args.Int(1), args.Error(2)
}

func (m *MockTransportRepo) Update(ctx context.Context, transport *domain.Transport) error {
	args := m.Called(ctx, transport)
	return args.Error(0)
}
