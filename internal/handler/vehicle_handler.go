package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flota/internal/domain"
	"flota/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

type statusRequest struct {
	Status domain.VehicleStatus `json:"status" binding:"required"`
}

type fleetRequest struct {
	FleetID uuid.UUID `json:"fleet_id" binding:"required"`
}

type transporterRequest struct {
	TransporterID uuid.UUID `json:"transporter_id" binding:"required"`
}

// Create handles POST /api/v1/vehicles
// @Summary Register a vehicle
// @Description The plate is normalized to the Spanish format 1234ABC.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} Response{data=domain.Vehicle} "Vehicle created"
// @Failure 400 {object} ErrorResponseBody "Validation error or invalid plate"
// @Failure 404 {object} ErrorResponseBody "Fleet not found"
// @Failure 409 {object} ErrorResponseBody "Plate already registered"
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var input service.CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.vehicleService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, v)
}

// List handles GET /api/v1/vehicles
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Param fleet_id query string false "Filter by fleet"
// @Param status query string false "Filter by status"
// @Param available query bool false "Only vehicles that can take an assignment"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Vehicle,meta=PagMeta} "List of vehicles"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	filter := service.VehicleListFilter{
		Status:        domain.VehicleStatus(c.Query("status")),
		AvailableOnly: c.Query("available") == "true",
	}
	if raw := c.Query("fleet_id"); raw != "" {
		fleetID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fleet ID")
			return
		}
		filter.FleetID = &fleetID
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, vehicles, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/vehicles/:id
// @Summary Get vehicle by ID
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} Response{data=domain.Vehicle} "Vehicle details"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	v, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// Update handles PUT /api/v1/vehicles/:id
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param request body UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Vehicle} "Vehicle updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var input service.UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.vehicleService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// ChangeStatus handles PATCH /api/v1/vehicles/:id/status
// @Summary Change vehicle status
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param request body VehicleStatusRequest true "New status"
// @Success 200 {object} Response{data=domain.Vehicle} "Status changed"
// @Failure 400 {object} ErrorResponseBody "Unknown status"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id}/status [patch]
func (h *VehicleHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.vehicleService.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// AssignToFleet handles PATCH /api/v1/vehicles/:id/fleet
// @Summary Move a vehicle into a fleet
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param request body FleetAssignmentRequest true "Fleet ID"
// @Success 200 {object} Response{data=domain.Vehicle} "Vehicle assigned"
// @Failure 404 {object} ErrorResponseBody "Vehicle or fleet not found"
// @Router /vehicles/{id}/fleet [patch]
func (h *VehicleHandler) AssignToFleet(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req fleetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.vehicleService.AssignToFleet(c.Request.Context(), id, req.FleetID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// RemoveFromFleet handles DELETE /api/v1/vehicles/:id/fleet
// @Summary Remove a vehicle from its fleet
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} Response{data=domain.Vehicle} "Vehicle removed from fleet"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id}/fleet [delete]
func (h *VehicleHandler) RemoveFromFleet(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	v, err := h.vehicleService.RemoveFromFleet(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// AssignTransporter handles PATCH /api/v1/vehicles/:id/transporter
// @Summary Assign a driver to a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param request body TransporterAssignmentRequest true "Transporter ID"
// @Success 200 {object} Response{data=domain.Vehicle} "Driver assigned"
// @Failure 400 {object} ErrorResponseBody "Transporter not active"
// @Failure 404 {object} ErrorResponseBody "Vehicle or transporter not found"
// @Router /vehicles/{id}/transporter [patch]
func (h *VehicleHandler) AssignTransporter(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req transporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.vehicleService.AssignTransporter(c.Request.Context(), id, req.TransporterID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// ReleaseTransporter handles DELETE /api/v1/vehicles/:id/transporter
// @Summary Release the driver of a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} Response{data=domain.Vehicle} "Driver released"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id}/transporter [delete]
func (h *VehicleHandler) ReleaseTransporter(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	v, err := h.vehicleService.ReleaseTransporter(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// Delete handles DELETE /api/v1/vehicles/:id
// @Summary Delete a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Vehicle deleted"
// @Failure 404 {object} ErrorResponseBody "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "vehicle deleted"})
}
