package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"flota/internal/domain"
	"flota/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrFleetNotFound, http.StatusNotFound, "FLEET_NOT_FOUND"},
		{fmt.Errorf("vehicleRepo.GetByID: %w", domain.ErrVehicleNotFound), http.StatusNotFound, "VEHICLE_NOT_FOUND"},
		{domain.ErrTransporterNotFound, http.StatusNotFound, "TRANSPORTER_NOT_FOUND"},
		{domain.ErrTransportNotFound, http.StatusNotFound, "TRANSPORT_NOT_FOUND"},
		{domain.ErrCMRNotFound, http.StatusNotFound, "CMR_NOT_FOUND"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicatePlate, http.StatusConflict, "DUPLICATE_PLATE"},
		{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{domain.ErrDuplicateCode, http.StatusConflict, "DUPLICATE_CODE"},
		{domain.ErrInvalidPlate, http.StatusBadRequest, "INVALID_PLATE"},
		{domain.ErrInvalidCoordinates, http.StatusBadRequest, "INVALID_COORDINATES"},
		{fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrNoFieldsToUpdate), http.StatusBadRequest, "NO_FIELDS_TO_UPDATE"},
		{&domain.FieldError{Field: "code", Message: "too short"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("%w: unsupported export format", domain.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrEmptyDocument, http.StatusBadRequest, "EMPTY_DOCUMENT"},
		{domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE"},
		{domain.ErrInvalidCMRData, http.StatusUnprocessableEntity, "INVALID_CMR_DATA"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_FieldErrorMessage(t *testing.T) {
	_, _, msg := handler.MapDomainError(&domain.FieldError{Field: "mileage_km", Message: "mileage cannot decrease"})
	assert.Equal(t, "mileage_km: mileage cannot decrease", msg)
}
