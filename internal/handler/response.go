package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"flota/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Specific sentinels are checked before the generic ones they may wrap.
func MapDomainError(err error) (status int, code, msg string) {
	var fieldErr *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrFleetNotFound):
		return http.StatusNotFound, "FLEET_NOT_FOUND", "fleet not found"
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "VEHICLE_NOT_FOUND", "vehicle not found"
	case errors.Is(err, domain.ErrTransporterNotFound):
		return http.StatusNotFound, "TRANSPORTER_NOT_FOUND", "transporter not found"
	case errors.Is(err, domain.ErrTransportNotFound):
		return http.StatusNotFound, "TRANSPORT_NOT_FOUND", "transport not found"
	case errors.Is(err, domain.ErrCMRNotFound):
		return http.StatusNotFound, "CMR_NOT_FOUND", "cmr document not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicatePlate):
		return http.StatusConflict, "DUPLICATE_PLATE", "a vehicle with this plate already exists"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "a transporter with this email already exists"
	case errors.Is(err, domain.ErrDuplicateCode):
		return http.StatusConflict, "DUPLICATE_CODE", "a transport with this code already exists"
	case errors.Is(err, domain.ErrInvalidPlate):
		return http.StatusBadRequest, "INVALID_PLATE", "invalid plate; expected format 1234ABC"
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return http.StatusBadRequest, "INVALID_COORDINATES", "latitude must be within [-90, 90] and longitude within [-180, 180]"
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, "NO_FIELDS_TO_UPDATE", "at least one field must be provided for update"
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, "VALIDATION_ERROR", fieldErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "document is empty"
	case errors.Is(err, domain.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE", "document exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidCMRData):
		return http.StatusUnprocessableEntity, "INVALID_CMR_DATA", "extracted cmr data failed validation"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}

// parseID reads the :id path parameter. On failure the 400 response has
// already been written.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads offset and limit, clamping limit to (0, 100].
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
