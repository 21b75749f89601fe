// Package ocrhttp implements port.CMRExtractor on top of an external OCR
// HTTP service.
package ocrhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"flota/internal/cmr"
	"flota/internal/config"
	"flota/internal/domain"
	"flota/internal/port"
)

var logger = logrus.StandardLogger().WithField("package", "ocrhttp")

func init() {
	cmr.RegisterExtractor("http", func(cfg *config.CMRConfig) (port.CMRExtractor, error) {
		return New(cfg.OCREndpoint, cfg.OCRTimeout)
	})
}

// Extractor sends documents to the OCR service and returns the recognized text.
type Extractor struct {
	http     *http.Client
	endpoint *url.URL
	now      func() time.Time
}

var (
	_ port.CMRExtractor = (*Extractor)(nil)
	_ port.HealthChecker = (*Extractor)(nil)
)

// New creates an Extractor for the OCR service at endpoint.
func New(endpoint string, timeout time.Duration) (*Extractor, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing ocr endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scheme %q is not supported", u.Scheme)
	}
	return &Extractor{
		http:     &http.Client{Timeout: timeout},
		endpoint: u,
		now:      time.Now,
	}, nil
}

// Extract implements port.CMRExtractor.
func (e *Extractor) Extract(ctx context.Context, document []byte) (*domain.RawExtraction, error) {
	ocrURL := e.endpoint.JoinPath("api", "v1", "ocr")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ocrURL.String(), bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("creating ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")

	start := time.Now()
	res, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling ocr service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service returned %s", res.Status)
	}

	var result Result
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding ocr response: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"blocks":  len(result.TextBlocks),
		"elapsed": time.Since(start),
	}).Debug("ocr completed")

	return &domain.RawExtraction{
		Text: result.Text(),
		Confidence: map[string]float64{
			"ocr_mean": result.MeanConfidence(),
		},
		Metadata: map[string]any{
			"document_type":        "CMR",
			"extraction_method":    "http_ocr",
			"blocks":               len(result.TextBlocks),
			"processing_timestamp": e.now().Format(time.RFC3339),
		},
	}, nil
}

// Healthz reports whether the OCR service answers its health check.
func (e *Extractor) Healthz(ctx context.Context) (bool, error) {
	healthURL := e.endpoint.JoinPath("healthz")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL.String(), http.NoBody)
	if err != nil {
		return false, err
	}
	res, err := e.http.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK, nil
}
