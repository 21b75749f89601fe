package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flota/internal/handler"
)

func postDistance(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/routes/distance", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.NewRouteHandler().Distance(c)
	return w
}

func TestRouteHandler_Distance_MadridBarcelona(t *testing.T) {
	w := postDistance(t, `{"origin":{"lat":40.4168,"lng":-3.7038},"destination":{"lat":41.3874,"lng":2.1686}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			DistanceKm float64 `json:"distance_km"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.InDelta(t, 505.1, resp.Data.DistanceKm, 0.5)
}

func TestRouteHandler_Distance_OutOfRange(t *testing.T) {
	w := postDistance(t, `{"origin":{"lat":91,"lng":0},"destination":{"lat":0,"lng":0}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_COORDINATES")
}

func TestRouteHandler_Distance_MissingDestination(t *testing.T) {
	w := postDistance(t, `{"origin":{"lat":40,"lng":-3}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
