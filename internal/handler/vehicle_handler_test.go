package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"flota/internal/domain"
	"flota/internal/handler"
	"flota/internal/service"
	"flota/mocks"
)

func newVehicleHandler() (*handler.VehicleHandler, *mocks.MockVehicleService) {
	mockSvc := new(mocks.MockVehicleService)
	return handler.NewVehicleHandler(mockSvc), mockSvc
}

func TestVehicleHandler_Create_Success(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateVehicleInput) bool {
		return in.Plate == "1234-abc" && in.Type == "truck" && in.LoadCapacityKg == 24000
	})).Return(&domain.Vehicle{ID: uuid.New(), Plate: "1234ABC"}, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/vehicles", map[string]any{
		"plate":            "1234-abc",
		"brand":            "Volvo",
		"model":            "FH16",
		"type":             "truck",
		"load_capacity_kg": 24000,
		"registered_at":    "2022-05-10T00:00:00Z",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"plate":"1234ABC"`)
	mockSvc.AssertExpectations(t)
}

func TestVehicleHandler_Create_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid plate", domain.ErrInvalidPlate, http.StatusBadRequest, "INVALID_PLATE"},
		{"duplicate plate", domain.ErrDuplicatePlate, http.StatusConflict, "DUPLICATE_PLATE"},
		{"unknown fleet", domain.ErrFleetNotFound, http.StatusNotFound, "FLEET_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newVehicleHandler()
			mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := jsonContext(http.MethodPost, "/api/v1/vehicles", map[string]any{
				"plate":            "XX",
				"brand":            "Volvo",
				"model":            "FH16",
				"type":             "truck",
				"load_capacity_kg": 24000,
				"registered_at":    "2022-05-10T00:00:00Z",
			})
			h.Create(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
		})
	}
}

func TestVehicleHandler_List_Filters(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	fleetID := uuid.New()
	mockSvc.On("List", mock.Anything, service.VehicleListFilter{
		FleetID:       &fleetID,
		Status:        domain.VehicleStatusAvailable,
		AvailableOnly: true,
	}, 0, 20).Return([]domain.Vehicle{}, 0, nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/vehicles?fleet_id="+fleetID.String()+"&status=available&available=true", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestVehicleHandler_List_InvalidFleetID(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	c, w := jsonContext(http.MethodGet, "/api/v1/vehicles?fleet_id=abc", "")
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVehicleHandler_ChangeStatus(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	id := uuid.New()
	mockSvc.On("ChangeStatus", mock.Anything, id, domain.VehicleStatusMaintenance).
		Return(&domain.Vehicle{ID: id, Status: domain.VehicleStatusMaintenance}, nil)

	c, w := jsonContext(http.MethodPatch, "/api/v1/vehicles/"+id.String()+"/status", map[string]string{"status": "maintenance"})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"maintenance"`)
}

func TestVehicleHandler_Update_MileageDecrease(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	id := uuid.New()
	mockSvc.On("Update", mock.Anything, id, mock.AnythingOfType("service.UpdateVehicleInput")).
		Return(nil, &domain.FieldError{Field: "mileage_km", Message: "mileage cannot decrease"})

	c, w := jsonContext(http.MethodPut, "/api/v1/vehicles/"+id.String(), map[string]int{"mileage_km": 10})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "mileage cannot decrease")
}

func TestVehicleHandler_AssignTransporter(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	id, driver := uuid.New(), uuid.New()
	mockSvc.On("AssignTransporter", mock.Anything, id, driver).
		Return(&domain.Vehicle{ID: id, TransporterID: &driver, Status: domain.VehicleStatusInUse}, nil)

	c, w := jsonContext(http.MethodPatch, "/api/v1/vehicles/"+id.String()+"/transporter", map[string]string{"transporter_id": driver.String()})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.AssignTransporter(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestVehicleHandler_RemoveFromFleet_NotFound(t *testing.T) {
	h, mockSvc := newVehicleHandler()

	id := uuid.New()
	mockSvc.On("RemoveFromFleet", mock.Anything, id).Return(nil, domain.ErrVehicleNotFound)

	c, w := jsonContext(http.MethodDelete, "/api/v1/vehicles/"+id.String()+"/fleet", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.RemoveFromFleet(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
