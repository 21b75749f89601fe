package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/service"
)

// MockCMRService is a mock implementation of service.CMRService.
type MockCMRService struct {
	mock.Mock
}

func (m *MockCMRService) Process(ctx context.Context, input service.ProcessCMRInput) (*service.ProcessCMRResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessCMRResult), args.Error(1)
}

func (m *MockCMRService) Validate(doc *domain.CMRDocument) service.ValidationReport {
	args := m.Called(doc)
	return args.Get(0).(service.ValidationReport)
}

func (m *MockCMRService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMRRecord), args.Error(1)
}

func (m *MockCMRService) List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CMRRecord), args.Int(1), args.Error(2)
}

func (m *MockCMRService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// Export writes the string given as the first return value to w.
func (m *MockCMRService) Export(ctx context.Context, format string, w io.Writer) error {
	args := m.Called(ctx, format, w)
	if body, ok := args.Get(0).(string); ok {
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockCMRService) Revalidate(ctx context.Context, batchSize int) (*service.RevalidateStats, error) {
	args := m.Called(ctx, batchSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RevalidateStats), args.Error(1)
}

func (m *MockCMRService) Health(ctx context.Context) service.HealthInfo {
	args := m.Called(ctx)
	return args.Get(0).(service.HealthInfo)
}
