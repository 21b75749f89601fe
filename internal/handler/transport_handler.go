package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flota/internal/service"
)

// TransportHandler handles transport unit endpoints.
type TransportHandler struct {
	transportService service.TransportService
}

// NewTransportHandler creates a new TransportHandler.
func NewTransportHandler(transportService service.TransportService) *TransportHandler {
	return &TransportHandler{transportService: transportService}
}

// Create handles POST /api/v1/transports
// @Summary Create a transport unit
// @Tags transports
// @Accept json
// @Produce json
// @Param request body CreateTransportRequest true "Transport details"
// @Success 201 {object} Response{data=domain.Transport} "Transport created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Code already exists"
// @Router /transports [post]
func (h *TransportHandler) Create(c *gin.Context) {
	var input service.CreateTransportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.transportService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, t)
}

// List handles GET /api/v1/transports
// @Summary List transport units
// @Tags transports
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Transport,meta=PagMeta} "List of transports"
// @Failure 400 {object} ErrorResponseBody "Invalid active flag"
// @Router /transports [get]
func (h *TransportHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "active must be true or false")
			return
		}
		active = &v
	}

	list, total, err := h.transportService.List(c.Request.Context(), active, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/transports/:id
// @Summary Update a transport unit
// @Tags transports
// @Accept json
// @Produce json
// @Param id path string true "Transport ID (UUID)"
// @Param request body UpdateTransportRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Transport} "Transport updated"
// @Failure 400 {object} ErrorResponseBody "Validation error or no fields"
// @Failure 404 {object} ErrorResponseBody "Transport not found"
// @Failure 409 {object} ErrorResponseBody "Code already exists"
// @Router /transports/{id} [put]
func (h *TransportHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "transport")
	if !ok {
		return
	}

	var input service.UpdateTransportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.transportService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}
