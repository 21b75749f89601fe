package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/service"
)

// MockTransportService is a mock implementation of service.TransportService.
type MockTransportService struct {
	mock.Mock
}

func (m *MockTransportService) Create(ctx context.Context, input service.CreateTransportInput) (*domain.Transport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}

func (m *MockTransportService) List(ctx context.Context, active *bool, offset, limit int) ([]domain.Transport, int, error) {
	args := m.Called(ctx, active, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transport), args.Int(1), args.Error(2)
}

func (m *MockTransportService) Update(ctx context.Context, id uuid.UUID, input service.UpdateTransportInput) (*domain.Transport, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}
