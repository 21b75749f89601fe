package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flota/internal/service"
)

// TransporterHandler handles transporter (driver) endpoints.
type TransporterHandler struct {
	transporterService service.TransporterService
}

// NewTransporterHandler creates a new TransporterHandler.
func NewTransporterHandler(transporterService service.TransporterService) *TransporterHandler {
	return &TransporterHandler{transporterService: transporterService}
}

// Create handles POST /api/v1/transporters
// @Summary Register a transporter
// @Tags transporters
// @Accept json
// @Produce json
// @Param request body CreateTransporterRequest true "Transporter details"
// @Success 201 {object} Response{data=domain.Transporter} "Transporter created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Email already registered"
// @Router /transporters [post]
func (h *TransporterHandler) Create(c *gin.Context) {
	var input service.CreateTransporterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.transporterService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, t)
}

// List handles GET /api/v1/transporters
// @Summary List transporters
// @Tags transporters
// @Produce json
// @Param fleet_id query string false "Filter by fleet"
// @Param active query bool false "Only active transporters"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Transporter,meta=PagMeta} "List of transporters"
// @Router /transporters [get]
func (h *TransporterHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	var fleetID *uuid.UUID
	if raw := c.Query("fleet_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fleet ID")
			return
		}
		fleetID = &id
	}

	list, total, err := h.transporterService.List(c.Request.Context(), fleetID, c.Query("active") == "true", offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/transporters/:id
// @Summary Get transporter by ID
// @Tags transporters
// @Produce json
// @Param id path string true "Transporter ID (UUID)"
// @Success 200 {object} Response{data=domain.Transporter} "Transporter details"
// @Failure 404 {object} ErrorResponseBody "Transporter not found"
// @Router /transporters/{id} [get]
func (h *TransporterHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "transporter")
	if !ok {
		return
	}

	t, err := h.transporterService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// AssignToFleet handles PATCH /api/v1/transporters/:id/fleet
// @Summary Move a transporter into a fleet
// @Tags transporters
// @Accept json
// @Produce json
// @Param id path string true "Transporter ID (UUID)"
// @Param request body FleetAssignmentRequest true "Fleet ID"
// @Success 200 {object} Response{data=domain.Transporter} "Transporter assigned"
// @Failure 404 {object} ErrorResponseBody "Transporter or fleet not found"
// @Router /transporters/{id}/fleet [patch]
func (h *TransporterHandler) AssignToFleet(c *gin.Context) {
	id, ok := parseID(c, "transporter")
	if !ok {
		return
	}

	var req fleetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.transporterService.AssignToFleet(c.Request.Context(), id, req.FleetID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// RemoveFromFleet handles DELETE /api/v1/transporters/:id/fleet
// @Summary Remove a transporter from its fleet
// @Tags transporters
// @Produce json
// @Param id path string true "Transporter ID (UUID)"
// @Success 200 {object} Response{data=domain.Transporter} "Transporter removed from fleet"
// @Failure 404 {object} ErrorResponseBody "Transporter not found"
// @Router /transporters/{id}/fleet [delete]
func (h *TransporterHandler) RemoveFromFleet(c *gin.Context) {
	id, ok := parseID(c, "transporter")
	if !ok {
		return
	}

	t, err := h.transporterService.RemoveFromFleet(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// Availability handles GET /api/v1/transporters/:id/availability
// @Summary Check whether a transporter can take work
// @Tags transporters
// @Produce json
// @Param id path string true "Transporter ID (UUID)"
// @Success 200 {object} Response{data=service.TransporterAvailability} "Availability"
// @Failure 404 {object} ErrorResponseBody "Transporter not found"
// @Router /transporters/{id}/availability [get]
func (h *TransporterHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "transporter")
	if !ok {
		return
	}

	av, err := h.transporterService.CheckAvailability(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, av)
}
