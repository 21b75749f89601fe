package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flota/internal/domain"
	"flota/internal/service"
	"flota/mocks"
)

func setupTransporterService() (service.TransporterService, *mocks.MockTransporterRepo, *mocks.MockFleetRepo) {
	transporters := new(mocks.MockTransporterRepo)
	fleets := new(mocks.MockFleetRepo)
	return service.NewTransporterService(transporters, fleets), transporters, fleets
}

func TestTransporterService_Create_Success(t *testing.T) {
	svc, transporters, _ := setupTransporterService()

	transporters.On("GetByEmail", mock.Anything, "carlos@example.com").Return(nil, domain.ErrTransporterNotFound)
	transporters.On("Create", mock.Anything, mock.AnythingOfType("*domain.Transporter")).Return(nil)

	tr, err := svc.Create(context.Background(), service.CreateTransporterInput{
		Name:          " Carlos Rodríguez ",
		Email:         "Carlos@Example.com",
		LicenseNumber: "c1-998877",
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos Rodríguez", tr.Name)
	assert.Equal(t, "carlos@example.com", tr.Email)
	assert.Equal(t, "C1-998877", tr.LicenseNumber)
	assert.True(t, tr.IsActive)
	assert.False(t, tr.HiredAt.IsZero())
	assert.False(t, tr.IsAvailable())
	transporters.AssertExpectations(t)
}

func TestTransporterService_Create_DuplicateEmail(t *testing.T) {
	svc, transporters, _ := setupTransporterService()

	transporters.On("GetByEmail", mock.Anything, "dup@example.com").Return(&domain.Transporter{Email: "dup@example.com"}, nil)

	tr, err := svc.Create(context.Background(), service.CreateTransporterInput{
		Name:          "Dup",
		Email:         "dup@example.com",
		LicenseNumber: "X",
	})

	assert.Nil(t, tr)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	transporters.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransporterService_Create_LookupError(t *testing.T) {
	svc, transporters, _ := setupTransporterService()

	dbErr := errors.New("connection reset")
	transporters.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, dbErr)

	tr, err := svc.Create(context.Background(), service.CreateTransporterInput{Email: "a@example.com"})

	assert.Nil(t, tr)
	assert.ErrorIs(t, err, dbErr)
}

func TestTransporterService_AssignToFleet(t *testing.T) {
	svc, transporters, fleets := setupTransporterService()

	id, fleetID := uuid.New(), uuid.New()
	fleets.On("GetByID", mock.Anything, fleetID).Return(&domain.Fleet{ID: fleetID}, nil)
	transporters.On("GetByID", mock.Anything, id).Return(&domain.Transporter{ID: id, IsActive: true}, nil)
	transporters.On("Update", mock.Anything, mock.AnythingOfType("*domain.Transporter")).Return(nil)

	tr, err := svc.AssignToFleet(context.Background(), id, fleetID)

	require.NoError(t, err)
	assert.Equal(t, fleetID, *tr.FleetID)
}

func TestTransporterService_RemoveFromFleet(t *testing.T) {
	svc, transporters, _ := setupTransporterService()

	id, fleetID := uuid.New(), uuid.New()
	transporters.On("GetByID", mock.Anything, id).Return(&domain.Transporter{ID: id, FleetID: &fleetID}, nil)
	transporters.On("Update", mock.Anything, mock.AnythingOfType("*domain.Transporter")).Return(nil)

	tr, err := svc.RemoveFromFleet(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, tr.FleetID)
}

func TestTransporterService_CheckAvailability(t *testing.T) {
	fleetID := uuid.New()
	tests := []struct {
		name      string
		active    bool
		fleetID   *uuid.UUID
		available bool
	}{
		{"active in fleet", true, &fleetID, true},
		{"active without fleet", true, nil, false},
		{"inactive in fleet", false, &fleetID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, transporters, _ := setupTransporterService()
			id := uuid.New()
			transporters.On("GetByID", mock.Anything, id).Return(&domain.Transporter{ID: id, IsActive: tt.active, FleetID: tt.fleetID}, nil)

			av, err := svc.CheckAvailability(context.Background(), id)

			require.NoError(t, err)
			assert.Equal(t, tt.available, av.Available)
			assert.Equal(t, tt.active, av.Active)
			assert.Equal(t, id, av.TransporterID)
		})
	}
}
