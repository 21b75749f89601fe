package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newFleetHandler() (*handler.FleetHandler, *mocks.MockFleetService) {
	mockSvc := new(mocks.MockFleetService)
	return handler.NewFleetHandler(mockSvc), mockSvc
}

func jsonContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(s))
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Create ---

func TestFleetHandler_Create_Success(t *testing.T) {
	h, mockSvc := newFleetHandler()

	expected := &domain.Fleet{ID: uuid.New(), Name: "Flota Norte", IsActive: true}
	mockSvc.On("Create", mock.Anything, service.CreateFleetInput{Name: "Flota Norte"}).Return(expected, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/fleets", map[string]string{"name": "Flota Norte"})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	mockSvc.AssertExpectations(t)
}

func TestFleetHandler_Create_MissingName(t *testing.T) {
	h, mockSvc := newFleetHandler()

	c, w := jsonContext(http.MethodPost, "/api/v1/fleets", map[string]string{"description": "sin nombre"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- GetByID ---

func TestFleetHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newFleetHandler()

	c, w := jsonContext(http.MethodGet, "/api/v1/fleets/nope", "")
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode(t, w).Error.Code)
}

func TestFleetHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newFleetHandler()

	id := uuid.New()
	mockSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrFleetNotFound)

	c, w := jsonContext(http.MethodGet, "/api/v1/fleets/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FLEET_NOT_FOUND", decode(t, w).Error.Code)
}

// --- List ---

func TestFleetHandler_List_Pagination(t *testing.T) {
	h, mockSvc := newFleetHandler()

	fleets := []domain.Fleet{{ID: uuid.New(), Name: "A"}}
	mockSvc.On("List", mock.Anything, true, 5, 20).Return(fleets, 6, nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/fleets?active=true&offset=5&limit=500", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 6, resp.Meta.Total)
	assert.Equal(t, 5, resp.Meta.Offset)
	assert.Equal(t, 20, resp.Meta.Limit)
}

// --- Membership ---

func TestFleetHandler_AddVehicle(t *testing.T) {
	h, mockSvc := newFleetHandler()

	fleetID, vehicleID := uuid.New(), uuid.New()
	mockSvc.On("AddVehicle", mock.Anything, fleetID, vehicleID).Return(&domain.Vehicle{ID: vehicleID, FleetID: &fleetID}, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/fleets/"+fleetID.String()+"/vehicles", map[string]string{"id": vehicleID.String()})
	c.Params = gin.Params{{Key: "id", Value: fleetID.String()}}
	h.AddVehicle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestFleetHandler_AddTransporter_MissingID(t *testing.T) {
	h, mockSvc := newFleetHandler()

	fleetID := uuid.New()
	c, w := jsonContext(http.MethodPost, "/api/v1/fleets/"+fleetID.String()+"/transporters", map[string]string{})
	c.Params = gin.Params{{Key: "id", Value: fleetID.String()}}
	h.AddTransporter(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "AddTransporter", mock.Anything, mock.Anything, mock.Anything)
}

func TestFleetHandler_Stats(t *testing.T) {
	h, mockSvc := newFleetHandler()

	fleetID := uuid.New()
	mockSvc.On("Stats", mock.Anything, fleetID).Return(&domain.FleetStats{FleetID: fleetID, TotalVehicles: 4, TotalTransporters: 2, Active: true}, nil)

	c, w := jsonContext(http.MethodGet, "/api/v1/fleets/"+fleetID.String()+"/stats", "")
	c.Params = gin.Params{{Key: "id", Value: fleetID.String()}}
	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_vehicles":4`)
	assert.Contains(t, w.Body.String(), `"total_transporters":2`)
}

func TestFleetHandler_Delete(t *testing.T) {
	h, mockSvc := newFleetHandler()

	id := uuid.New()
	mockSvc.On("Delete", mock.Anything, id).Return(nil)

	c, w := jsonContext(http.MethodDelete, "/api/v1/fleets/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fleet deleted")
}
