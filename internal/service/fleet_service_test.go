package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flota/internal/domain"
	"flota/internal/service"
	"flota/mocks"
)

func setupFleetService() (service.FleetService, *mocks.MockFleetRepo, *mocks.MockVehicleRepo, *mocks.MockTransporterRepo) {
	fleets := new(mocks.MockFleetRepo)
	vehicles := new(mocks.MockVehicleRepo)
	transporters := new(mocks.MockTransporterRepo)
	return service.NewFleetService(fleets, vehicles, transporters), fleets, vehicles, transporters
}

func TestFleetService_Create_Success(t *testing.T) {
	svc, fleets, _, _ := setupFleetService()

	fleets.On("Create", mock.Anything, mock.AnythingOfType("*domain.Fleet")).Return(nil)

	fleet, err := svc.Create(context.Background(), service.CreateFleetInput{
		Name:        "Flota Norte",
		Description: "Rutas del norte",
	})

	require.NoError(t, err)
	assert.Equal(t, "Flota Norte", fleet.Name)
	assert.Equal(t, "Rutas del norte", fleet.Description)
	assert.True(t, fleet.IsActive)
	fleets.AssertExpectations(t)
}

func TestFleetService_GetByID_NotFound(t *testing.T) {
	svc, fleets, _, _ := setupFleetService()

	id := uuid.New()
	fleets.On("GetByID", mock.Anything, id).Return(nil, domain.ErrFleetNotFound)

	fleet, err := svc.GetByID(context.Background(), id)

	assert.Nil(t, fleet)
	assert.ErrorIs(t, err, domain.ErrFleetNotFound)
}

func TestFleetService_List_ActiveOnly(t *testing.T) {
	svc, fleets, _, _ := setupFleetService()

	expected := []domain.Fleet{{ID: uuid.New(), Name: "A", IsActive: true}}
	fleets.On("List", mock.Anything, true, 0, 20).Return(expected, 1, nil)

	list, total, err := svc.List(context.Background(), true, 0, 20)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, expected, list)
}

func TestFleetService_Update_PartialFields(t *testing.T) {
	svc, fleets, _, _ := setupFleetService()

	id := uuid.New()
	existing := &domain.Fleet{ID: id, Name: "Old", Description: "keep", IsActive: true}
	fleets.On("GetByID", mock.Anything, id).Return(existing, nil)
	fleets.On("Update", mock.Anything, existing).Return(nil)

	name := "New"
	inactive := false
	fleet, err := svc.Update(context.Background(), id, service.UpdateFleetInput{Name: &name, IsActive: &inactive})

	require.NoError(t, err)
	assert.Equal(t, "New", fleet.Name)
	assert.Equal(t, "keep", fleet.Description)
	assert.False(t, fleet.IsActive)
}

func TestFleetService_Delete_NotFound(t *testing.T) {
	svc, fleets, _, _ := setupFleetService()

	id := uuid.New()
	fleets.On("Delete", mock.Anything, id).Return(domain.ErrFleetNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrFleetNotFound)
}

func TestFleetService_AddTransporter_Success(t *testing.T) {
	svc, fleets, _, transporters := setupFleetService()

	fleetID, transporterID := uuid.New(), uuid.New()
	fleets.On("GetByID", mock.Anything, fleetID).Return(&domain.Fleet{ID: fleetID}, nil)
	transporters.On("GetByID", mock.Anything, transporterID).Return(&domain.Transporter{ID: transporterID, IsActive: true}, nil)
	transporters.On("Update", mock.Anything, mock.MatchedBy(func(tr *domain.Transporter) bool {
		return tr.FleetID != nil && *tr.FleetID == fleetID
	})).Return(nil)

	tr, err := svc.AddTransporter(context.Background(), fleetID, transporterID)

	require.NoError(t, err)
	assert.Equal(t, fleetID, *tr.FleetID)
	assert.True(t, tr.IsAvailable())
	transporters.AssertExpectations(t)
}

func TestFleetService_AddVehicle_FleetNotFound(t *testing.T) {
	svc, fleets, vehicles, _ := setupFleetService()

	fleetID := uuid.New()
	fleets.On("GetByID", mock.Anything, fleetID).Return(nil, domain.ErrFleetNotFound)

	v, err := svc.AddVehicle(context.Background(), fleetID, uuid.New())

	assert.Nil(t, v)
	assert.ErrorIs(t, err, domain.ErrFleetNotFound)
	vehicles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFleetService_AddVehicle_Success(t *testing.T) {
	svc, fleets, vehicles, _ := setupFleetService()

	fleetID, vehicleID := uuid.New(), uuid.New()
	fleets.On("GetByID", mock.Anything, fleetID).Return(&domain.Fleet{ID: fleetID}, nil)
	vehicles.On("GetByID", mock.Anything, vehicleID).Return(&domain.Vehicle{ID: vehicleID}, nil)
	vehicles.On("Update", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

	v, err := svc.AddVehicle(context.Background(), fleetID, vehicleID)

	require.NoError(t, err)
	require.NotNil(t, v.FleetID)
	assert.Equal(t, fleetID, *v.FleetID)
}

func TestFleetService_Stats(t *testing.T) {
	svc, fleets, vehicles, transporters := setupFleetService()

	fleetID := uuid.New()
	fleets.On("GetByID", mock.Anything, fleetID).Return(&domain.Fleet{ID: fleetID, IsActive: true}, nil)
	transporters.On("CountByFleet", mock.Anything, fleetID).Return(3, nil)
	vehicles.On("CountByFleet", mock.Anything, fleetID).Return(5, nil)

	stats, err := svc.Stats(context.Background(), fleetID)

	require.NoError(t, err)
	assert.Equal(t, &domain.FleetStats{
		FleetID:           fleetID,
		TotalTransporters: 3,
		TotalVehicles:     5,
		Active:            true,
	}, stats)
}
