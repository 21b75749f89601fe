package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flota/internal/service"
)

// FleetHandler handles fleet management endpoints.
type FleetHandler struct {
	fleetService service.FleetService
}

// NewFleetHandler creates a new FleetHandler.
func NewFleetHandler(fleetService service.FleetService) *FleetHandler {
	return &FleetHandler{fleetService: fleetService}
}

// memberRequest is the body of the fleet membership endpoints.
type memberRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// Create handles POST /api/v1/fleets
// @Summary Create a fleet
// @Tags fleets
// @Accept json
// @Produce json
// @Param request body CreateFleetRequest true "Fleet details"
// @Success 201 {object} Response{data=domain.Fleet} "Fleet created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /fleets [post]
func (h *FleetHandler) Create(c *gin.Context) {
	var input service.CreateFleetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fleet, err := h.fleetService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, fleet)
}

// List handles GET /api/v1/fleets
// @Summary List fleets
// @Tags fleets
// @Produce json
// @Param active query bool false "Only active fleets"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Fleet,meta=PagMeta} "List of fleets"
// @Router /fleets [get]
func (h *FleetHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	activeOnly := c.Query("active") == "true"

	fleets, total, err := h.fleetService.List(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, fleets, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/fleets/:id
// @Summary Get fleet by ID
// @Tags fleets
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Success 200 {object} Response{data=domain.Fleet} "Fleet details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Fleet not found"
// @Router /fleets/{id} [get]
func (h *FleetHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	fleet, err := h.fleetService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fleet)
}

// Update handles PUT /api/v1/fleets/:id
// @Summary Update a fleet
// @Tags fleets
// @Accept json
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Param request body UpdateFleetRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Fleet} "Fleet updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Fleet not found"
// @Router /fleets/{id} [put]
func (h *FleetHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	var input service.UpdateFleetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fleet, err := h.fleetService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fleet)
}

// Delete handles DELETE /api/v1/fleets/:id
// @Summary Delete a fleet
// @Tags fleets
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Fleet deleted"
// @Failure 404 {object} ErrorResponseBody "Fleet not found"
// @Router /fleets/{id} [delete]
func (h *FleetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	if err := h.fleetService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "fleet deleted"})
}

// AddTransporter handles POST /api/v1/fleets/:id/transporters
// @Summary Add a transporter to a fleet
// @Tags fleets
// @Accept json
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Param request body MemberRequest true "Transporter ID"
// @Success 200 {object} Response{data=domain.Transporter} "Transporter added"
// @Failure 404 {object} ErrorResponseBody "Fleet or transporter not found"
// @Router /fleets/{id}/transporters [post]
func (h *FleetHandler) AddTransporter(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.fleetService.AddTransporter(c.Request.Context(), id, req.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// AddVehicle handles POST /api/v1/fleets/:id/vehicles
// @Summary Add a vehicle to a fleet
// @Tags fleets
// @Accept json
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Param request body MemberRequest true "Vehicle ID"
// @Success 200 {object} Response{data=domain.Vehicle} "Vehicle added"
// @Failure 404 {object} ErrorResponseBody "Fleet or vehicle not found"
// @Router /fleets/{id}/vehicles [post]
func (h *FleetHandler) AddVehicle(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.fleetService.AddVehicle(c.Request.Context(), id, req.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, v)
}

// Stats handles GET /api/v1/fleets/:id/stats
// @Summary Fleet membership statistics
// @Tags fleets
// @Produce json
// @Param id path string true "Fleet ID (UUID)"
// @Success 200 {object} Response{data=domain.FleetStats} "Fleet statistics"
// @Failure 404 {object} ErrorResponseBody "Fleet not found"
// @Router /fleets/{id}/stats [get]
func (h *FleetHandler) Stats(c *gin.Context) {
	id, ok := parseID(c, "fleet")
	if !ok {
		return
	}

	stats, err := h.fleetService.Stats(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
