package handler_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flota/internal/domain"
	"flota/internal/handler"
	"flota/internal/service"
	"flota/mocks"
)

const testMaxBytes = 1 << 20

func newCMRHandler() (*handler.CMRHandler, *mocks.MockCMRService) {
	mockSvc := new(mocks.MockCMRService)
	return handler.NewCMRHandler(mockSvc, testMaxBytes), mockSvc
}

func uploadContext(t *testing.T, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/cmr/extract", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c, w
}

// --- Extract ---

func TestCMRHandler_Extract_Valid(t *testing.T) {
	h, mockSvc := newCMRHandler()

	recordID := uuid.New()
	mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(in service.ProcessCMRInput) bool {
		return in.Filename == "albaran.pdf" && string(in.Data) == "%PDF-1.4 fake"
	})).Return(&service.ProcessCMRResult{
		RecordID:   &recordID,
		Document:   &domain.CMRDocument{Number: "CMR-2025-0042"},
		Valid:      true,
		Violations: []string{},
		Confidence: map[string]float64{"numero_cmr": 0.95},
	}, nil)

	c, w := uploadContext(t, "albaran.pdf", []byte("%PDF-1.4 fake"))
	h.Extract(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"document_number":"CMR-2025-0042"`)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	mockSvc.AssertExpectations(t)
}

func TestCMRHandler_Extract_InvalidData(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Process", mock.Anything, mock.Anything).Return(&service.ProcessCMRResult{
		Document:   &domain.CMRDocument{},
		Valid:      false,
		Violations: []string{"document_number is required", "vehicle_plate is required"},
	}, nil)

	c, w := uploadContext(t, "albaran.pdf", []byte("%PDF-1.4 fake"))
	h.Extract(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CMR_DATA", resp.Error.Code)
	assert.Equal(t, "extracted cmr data failed validation: document_number is required; vehicle_plate is required", resp.Error.Message)
}

func TestCMRHandler_Extract_MissingFile(t *testing.T) {
	h, mockSvc := newCMRHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/cmr/extract", strings.NewReader(""))
	h.Extract(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FILE", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestCMRHandler_Extract_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not a pdf", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"empty", domain.ErrEmptyDocument, http.StatusBadRequest, "EMPTY_DOCUMENT"},
		{"too large", domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newCMRHandler()
			mockSvc.On("Process", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := uploadContext(t, "file.pdf", []byte("x"))
			h.Extract(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
		})
	}
}

func TestCMRHandler_Extract_TruncatesOversizedUpload(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(in service.ProcessCMRInput) bool {
		return len(in.Data) == testMaxBytes+1
	})).Return(nil, domain.ErrDocumentTooLarge)

	c, w := uploadContext(t, "big.pdf", bytes.Repeat([]byte("a"), testMaxBytes+500))
	h.Extract(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Validate ---

func TestCMRHandler_Validate(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Validate", mock.MatchedBy(func(doc *domain.CMRDocument) bool {
		return doc.Number == "CMR-1"
	})).Return(service.ValidationReport{Valid: false, Violations: []string{"sender name is required"}})

	c, w := jsonContext(http.MethodPost, "/api/v1/documents/cmr/validate", map[string]any{
		"document_number": "CMR-1",
		"issue_date":      "2025-01-15T00:00:00Z",
	})
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sender name is required")
}

// --- Download ---

func TestCMRHandler_Download(t *testing.T) {
	h, mockSvc := newCMRHandler()

	id := uuid.New()
	mockSvc.On("GetDownloadURL", mock.Anything, id).Return("https://example.com/signed", nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/"+id.String()+"/download", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://example.com/signed"`)
}

func TestCMRHandler_Download_NotArchived(t *testing.T) {
	h, mockSvc := newCMRHandler()

	id := uuid.New()
	mockSvc.On("GetDownloadURL", mock.Anything, id).Return("", domain.ErrNotFound)

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/"+id.String()+"/download", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Export ---

func TestCMRHandler_Export_CSV(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Export", mock.Anything, "csv", mock.Anything).Return("numero_cmr\nCMR-1\n", nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/export?format=CSV", "")
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="cmr_documents_`)
	assert.True(t, strings.HasSuffix(w.Header().Get("Content-Disposition"), `.csv"`))
	assert.Equal(t, "numero_cmr\nCMR-1\n", w.Body.String())
}

func TestCMRHandler_Export_XLSX(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Export", mock.Anything, "xlsx", mock.Anything).Return("PK", nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/export?format=xlsx", "")
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
}

func TestCMRHandler_Export_UnsupportedFormat(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Export", mock.Anything, "pdf", mock.Anything).
		Return(nil, fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, "pdf"))

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/export?format=pdf", "")
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

// --- Health ---

func TestCMRHandler_Health(t *testing.T) {
	h, mockSvc := newCMRHandler()

	mockSvc.On("Health", mock.Anything).Return(service.HealthInfo{Status: "healthy", Service: "cmr", Extractor: "mock"})

	c, w := jsonContext(http.MethodGet, "/api/v1/documents/cmr/health", "")
	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"extractor":"mock"`)
}
