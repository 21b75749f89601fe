package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
)

// MockCMRExtractor is a mock implementation of port.CMRExtractor.
type MockCMRExtractor struct {
	mock.Mock
}

func (m *MockCMRExtractor) Extract(ctx context.Context, document []byte) (*domain.RawExtraction, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawExtraction), args.Error(1)
}
