package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
)

// MockCMRDocumentRepo is a mock implementation of port.CMRDocumentRepository.
type MockCMRDocumentRepo struct {
	mock.Mock
}

func (m *MockCMRDocumentRepo) Create(ctx context.Context, record *domain.CMRRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCMRDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMRRecord), args.Error(1)
}

func (m *MockCMRDocumentRepo) List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CMRRecord), args.Int(1), args.Error(2)
}

func (m *MockCMRDocumentRepo) ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.CMRRecord, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CMRRecord), args.Error(1)
}

func (m *MockCMRDocumentRepo) UpdateValidity(ctx context.Context, id uuid.UUID, isValid bool) error {
	args := m.Called(ctx, id, isValid)
	return args.Error(0)
}
