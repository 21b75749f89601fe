package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flota/internal/domain"
)

// RouteHandler computes distances between GPS positions.
type RouteHandler struct{}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler() *RouteHandler {
	return &RouteHandler{}
}

type distanceRequest struct {
	Origin      *domain.Coordinates `json:"origin" binding:"required"`
	Destination *domain.Coordinates `json:"destination" binding:"required"`
}

type distanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}

// Distance handles POST /api/v1/routes/distance
// @Summary Great-circle distance between two points
// @Tags routes
// @Accept json
// @Produce json
// @Param request body DistanceRequest true "Origin and destination"
// @Success 200 {object} Response{data=DistanceResponse} "Distance in kilometres"
// @Failure 400 {object} ErrorResponseBody "Coordinates out of range"
// @Router /routes/distance [post]
func (h *RouteHandler) Distance(c *gin.Context) {
	var req distanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	km, err := req.Origin.DistanceKm(*req.Destination)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, distanceResponse{DistanceKm: km})
}
