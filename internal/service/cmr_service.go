package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"flota/internal/cmr"
	"flota/internal/config"
	"flota/internal/domain"
	"flota/internal/export"
	"flota/internal/port"
)

// ServiceVersion is reported by the CMR health endpoint.
const ServiceVersion = "1.0.0"

// Export formats accepted by CMRService.Export.
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
)

const exportPageSize = 500

// ProcessCMRInput is one uploaded CMR file.
type ProcessCMRInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProcessCMRResult is the outcome of processing an uploaded CMR file.
// RecordID is nil when the result could not be stored.
type ProcessCMRResult struct {
	RecordID   *uuid.UUID          `json:"record_id,omitempty"`
	Document   *domain.CMRDocument `json:"document"`
	Valid      bool                `json:"valid"`
	Violations []string            `json:"violations"`
	Confidence map[string]float64  `json:"confidence_scores"`
}

// ValidationReport is the verdict of the validation gate.
type ValidationReport struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// HealthInfo describes the CMR processing capability.
type HealthInfo struct {
	Status       string   `json:"status"`
	Service      string   `json:"service"`
	Version      string   `json:"version"`
	Extractor    string   `json:"extractor"`
	Capabilities []string `json:"capabilities"`
	// ExtractorReachable is set only for extractors backed by a remote service.
	ExtractorReachable *bool `json:"extractor_reachable,omitempty"`
}

// RevalidateStats summarizes a revalidation run.
type RevalidateStats struct {
	Scanned int
	Changed int
	Failed  int
}

// CMRService defines the CMR processing contract.
type CMRService interface {
	Process(ctx context.Context, input ProcessCMRInput) (*ProcessCMRResult, error)
	Validate(doc *domain.CMRDocument) ValidationReport
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Export(ctx context.Context, format string, w io.Writer) error
	Revalidate(ctx context.Context, batchSize int) (*RevalidateStats, error)
	Health(ctx context.Context) HealthInfo
}

type cmrService struct {
	normalizer *cmr.Normalizer
	repo       port.CMRDocumentRepository
	storage    port.ObjectStorage
	cmrCfg     *config.CMRConfig
	s3Cfg      *config.S3Config
	log        *logrus.Entry
}

// NewCMRService creates a new CMRService implementation.
// repo and storage may be nil, in which case results are not stored.
func NewCMRService(
	normalizer *cmr.Normalizer,
	repo port.CMRDocumentRepository,
	storage port.ObjectStorage,
	cmrCfg *config.CMRConfig,
	s3Cfg *config.S3Config,
) CMRService {
	return &cmrService{
		normalizer: normalizer,
		repo:       repo,
		storage:    storage,
		cmrCfg:     cmrCfg,
		s3Cfg:      s3Cfg,
		log:        logrus.WithField("component", "cmr.service"),
	}
}

func (s *cmrService) Process(ctx context.Context, input ProcessCMRInput) (*ProcessCMRResult, error) {
	if err := checkFileType(input.Filename, input.ContentType); err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	if int64(len(input.Data)) > s.cmrCfg.MaxDocumentBytes() {
		return nil, domain.ErrDocumentTooLarge
	}

	res := s.normalizer.NormalizeDetailed(ctx, input.Data)
	violations := cmr.Violations(res.Document)
	result := &ProcessCMRResult{
		Document:   res.Document,
		Valid:      len(violations) == 0,
		Violations: violations,
		Confidence: res.Confidence,
	}
	if result.Violations == nil {
		result.Violations = []string{}
	}

	if rec := s.record(ctx, input, result); rec != nil {
		result.RecordID = &rec.ID
	}

	s.log.WithFields(logrus.Fields{
		"document_number": res.Document.Number,
		"status":          res.Document.Status,
		"valid":           result.Valid,
		"size":            len(input.Data),
	}).Info("cmr document processed")

	return result, nil
}

// record archives the original and stores the result. Failures are logged
// and never returned.
func (s *cmrService) record(ctx context.Context, input ProcessCMRInput, result *ProcessCMRResult) *domain.CMRRecord {
	if s.repo == nil {
		return nil
	}
	doc := result.Document

	data, err := json.Marshal(doc)
	if err != nil {
		s.log.WithError(err).Error("marshalling cmr document")
		return nil
	}
	confidence, err := json.Marshal(result.Confidence)
	if err != nil {
		s.log.WithError(err).Error("marshalling confidence scores")
		return nil
	}

	rec := &domain.CMRRecord{
		ID:               uuid.New(),
		DocumentNumber:   doc.Number,
		Status:           doc.Status,
		IsValid:          result.Valid,
		VehiclePlate:     doc.VehiclePlate,
		SenderName:       doc.Sender.Name,
		RecipientName:    doc.Recipient.Name,
		GrossWeightKg:    doc.Cargo.GrossWeightKg,
		IssueDate:        doc.IssueDate,
		StructuredData:   data,
		ConfidenceScores: confidence,
		OriginalName:     input.Filename,
		FileSize:         int64(len(input.Data)),
		ProcessedAt:      time.Now().UTC(),
	}
	if doc.ProcessingError != nil {
		rec.ProcessingError = *doc.ProcessingError
	}
	if doc.ProcessedAt != nil {
		rec.ProcessedAt = doc.ProcessedAt.UTC()
	}

	if s.storage != nil {
		key := s.archiveKey(rec.ID, input.Filename)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.s3Cfg.Bucket,
			Key:         key,
			Body:        bytes.NewReader(input.Data),
			ContentType: "application/pdf",
			Size:        rec.FileSize,
			Metadata:    map[string]string{"document-number": doc.Number},
		})
		if err != nil {
			s.log.WithError(err).WithField("key", key).Warn("archiving cmr original failed")
		} else {
			rec.S3Bucket = s.s3Cfg.Bucket
			rec.S3Key = key
		}
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.WithError(err).WithField("document_number", doc.Number).Error("storing cmr record failed")
		if rec.S3Key != "" {
			if derr := s.storage.Delete(ctx, rec.S3Bucket, rec.S3Key); derr != nil {
				s.log.WithError(derr).WithField("key", rec.S3Key).Warn("removing orphaned cmr original failed")
			}
		}
		return nil
	}
	return rec
}

func (s *cmrService) archiveKey(id uuid.UUID, filename string) string {
	name := export.SanitizeFilename(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" {
		name = "document"
	}
	return fmt.Sprintf("%s/%s/%s/%s.pdf", s.cmrCfg.ArchivePrefix, time.Now().UTC().Format("2006/01/02"), id, name)
}

// checkFileType accepts the upload unless the file name or the declared
// content type says it is not a PDF.
func checkFileType(filename, contentType string) error {
	if filename != "" {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
		if _, ok := domain.AllowedExtensions[ext]; !ok {
			return domain.ErrUnsupportedFileType
		}
	}
	if contentType != "" {
		mediaType, _, _ := strings.Cut(contentType, ";")
		if _, ok := domain.AllowedContentTypes[strings.TrimSpace(strings.ToLower(mediaType))]; !ok {
			return domain.ErrUnsupportedFileType
		}
	}
	return nil
}

func (s *cmrService) Validate(doc *domain.CMRDocument) ValidationReport {
	violations := cmr.Violations(doc)
	if violations == nil {
		violations = []string{}
	}
	return ValidationReport{Valid: len(violations) == 0, Violations: violations}
}

func (s *cmrService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CMRRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *cmrService) List(ctx context.Context, offset, limit int) ([]domain.CMRRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *cmrService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if rec.S3Key == "" || s.storage == nil {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, rec.S3Bucket, rec.S3Key, s.s3Cfg.PresignExpiry)
}

func (s *cmrService) Export(ctx context.Context, format string, w io.Writer) error {
	if format != ExportCSV && format != ExportXLSX {
		return fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, format)
	}

	// Keyset pages stay stable while new documents are being recorded.
	var all []domain.CMRRecord
	after := uuid.Nil
	for {
		page, err := s.repo.ListAfter(ctx, after, exportPageSize)
		if err != nil {
			return fmt.Errorf("listing cmr records: %w", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
		after = page[len(page)-1].ID
	}

	if format == ExportXLSX {
		return export.WriteXLSX(w, all)
	}

	if _, err := w.Write(export.BOM); err != nil {
		return err
	}
	cw := export.NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteRecords(all); err != nil {
		return err
	}
	return cw.Flush()
}

// Revalidate re-runs the validation gate over every stored record and
// updates is_valid where the verdict changed.
func (s *cmrService) Revalidate(ctx context.Context, batchSize int) (*RevalidateStats, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	stats := &RevalidateStats{}
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		batch, err := s.repo.ListAfter(ctx, after, batchSize)
		if err != nil {
			return stats, fmt.Errorf("listing cmr records: %w", err)
		}
		for i := range batch {
			rec := &batch[i]
			stats.Scanned++
			doc, err := rec.Document()
			if err != nil {
				s.log.WithError(err).WithField("id", rec.ID).Warn("undecodable cmr record")
				stats.Failed++
				continue
			}
			valid := cmr.IsValid(doc)
			if valid == rec.IsValid {
				continue
			}
			if err := s.repo.UpdateValidity(ctx, rec.ID, valid); err != nil {
				s.log.WithError(err).WithField("id", rec.ID).Warn("updating cmr validity failed")
				stats.Failed++
				continue
			}
			stats.Changed++
		}
		if len(batch) < batchSize {
			return stats, nil
		}
		after = batch[len(batch)-1].ID
	}
}

func (s *cmrService) Health(ctx context.Context) HealthInfo {
	info := HealthInfo{
		Status:    "healthy",
		Service:   "cmr_processor",
		Version:   ServiceVersion,
		Extractor: s.cmrCfg.Extractor,
		Capabilities: []string{
			"pdf_processing",
			"ocr_extraction",
			"data_normalization",
			"validation",
		},
	}
	if s.normalizer == nil {
		return info
	}
	if checker, ok := s.normalizer.Extractor().(port.HealthChecker); ok {
		reachable, err := checker.Healthz(ctx)
		if err != nil {
			s.log.WithError(err).Warn("ocr health check failed")
		}
		info.ExtractorReachable = &reachable
		if !reachable {
			info.Status = "degraded"
		}
	}
	return info
}
