package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"flota/internal/domain"
	"flota/internal/export"
	"flota/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CMRHandler handles CMR waybill endpoints.
type CMRHandler struct {
	cmrService service.CMRService
	maxBytes   int64
}

// NewCMRHandler creates a new CMRHandler. Uploads are read up to one byte
// past maxBytes so the service can reject them as too large.
func NewCMRHandler(cmrService service.CMRService, maxBytes int64) *CMRHandler {
	return &CMRHandler{cmrService: cmrService, maxBytes: maxBytes}
}

// Extract handles POST /api/v1/documents/cmr/extract
// @Summary Extract a CMR waybill
// @Description Upload a CMR PDF; the normalized document is returned together with the validation verdict.
// @Tags cmr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CMR document (PDF)"
// @Success 200 {object} Response{data=service.ProcessCMRResult} "Document extracted and valid"
// @Failure 400 {object} ErrorResponseBody "Missing, empty or non-PDF file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} Response{data=service.ProcessCMRResult} "Extracted data failed validation"
// @Router /documents/cmr/extract [post]
func (h *CMRHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.cmrService.Process(c.Request.Context(), service.ProcessCMRInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	if !result.Valid {
		_, code, _ := MapDomainError(domain.ErrInvalidCMRData)
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Data:    result,
			Error: &APIError{
				Code:    code,
				Message: "extracted cmr data failed validation: " + strings.Join(result.Violations, "; "),
			},
		})
		return
	}

	RespondOK(c, result)
}

// Validate handles POST /api/v1/documents/cmr/validate
// @Summary Validate a CMR document
// @Tags cmr
// @Accept json
// @Produce json
// @Param request body domain.CMRDocument true "Normalized CMR document"
// @Success 200 {object} Response{data=service.ValidationReport} "Validation verdict"
// @Failure 400 {object} ErrorResponseBody "Malformed document"
// @Router /documents/cmr/validate [post]
func (h *CMRHandler) Validate(c *gin.Context) {
	var doc domain.CMRDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, h.cmrService.Validate(&doc))
}

// List handles GET /api/v1/documents/cmr
// @Summary List processed CMR documents
// @Tags cmr
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.CMRRecord,meta=PagMeta} "Processed documents"
// @Router /documents/cmr [get]
func (h *CMRHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	records, total, err := h.cmrService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/cmr/:id
// @Summary Get a processed CMR document
// @Tags cmr
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.CMRRecord} "Processed document"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/cmr/{id} [get]
func (h *CMRHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	rec, err := h.cmrService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Download handles GET /api/v1/documents/cmr/:id/download
// @Summary Presigned URL of the archived original
// @Tags cmr
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Document or archive not found"
// @Router /documents/cmr/{id}/download [get]
func (h *CMRHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	url, err := h.cmrService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// Export handles GET /api/v1/documents/cmr/export
// @Summary Export processed CMR documents
// @Tags cmr
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Router /documents/cmr/export [get]
func (h *CMRHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", service.ExportCSV))

	var buf bytes.Buffer
	if err := h.cmrService.Export(c.Request.Context(), format, &buf); err != nil {
		HandleError(c, err)
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == service.ExportXLSX {
		contentType = xlsxContentType
	}
	filename := export.BuildFilename("cmr_documents", format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Health handles GET /api/v1/documents/cmr/health
// @Summary CMR processing health
// @Tags cmr
// @Produce json
// @Success 200 {object} Response{data=service.HealthInfo} "Service health"
// @Router /documents/cmr/health [get]
func (h *CMRHandler) Health(c *gin.Context) {
	RespondOK(c, h.cmrService.Health(c.Request.Context()))
}
