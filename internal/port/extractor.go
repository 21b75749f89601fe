package port

import (
	"context"

	"flota/internal/domain"
)

// CMRExtractor reads the raw text of a CMR document.
type CMRExtractor interface {
	Extract(ctx context.Context, document []byte) (*domain.RawExtraction, error)
}

// HealthChecker is implemented by extractors backed by a remote service.
type HealthChecker interface {
	Healthz(ctx context.Context) (bool, error)
}
