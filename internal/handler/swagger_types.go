package handler

import (
	"time"

	"github.com/google/uuid"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// CreateFleetRequest represents the create fleet request body.
type CreateFleetRequest struct {
	Name        string `json:"name" binding:"required" example:"Flota Norte"`
	Description string `json:"description" example:"Rutas Bilbao - Santander"`
}

// UpdateFleetRequest represents the update fleet request body.
type UpdateFleetRequest struct {
	Name        string `json:"name" example:"Flota Norte"`
	Description string `json:"description" example:"Rutas del Cantábrico"`
	IsActive    bool   `json:"is_active" example:"true"`
}

// MemberRequest identifies a vehicle or transporter to add to a fleet.
type MemberRequest struct {
	ID uuid.UUID `json:"id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// CreateVehicleRequest represents the register vehicle request body.
type CreateVehicleRequest struct {
	Plate             string     `json:"plate" binding:"required" example:"1234-ABC"`
	Brand             string     `json:"brand" binding:"required" example:"Volvo"`
	Model             string     `json:"model" binding:"required" example:"FH16"`
	Type              string     `json:"type" binding:"required" example:"truck"`
	LoadCapacityKg    float64    `json:"load_capacity_kg" binding:"required" example:"24000"`
	RegisteredAt      time.Time  `json:"registered_at" binding:"required" example:"2022-05-10T00:00:00Z"`
	LastMaintenanceAt *time.Time `json:"last_maintenance_at" example:"2024-11-02T00:00:00Z"`
	MileageKm         int        `json:"mileage_km" example:"18250"`
	FleetID           *uuid.UUID `json:"fleet_id" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// UpdateVehicleRequest represents the update vehicle request body.
type UpdateVehicleRequest struct {
	Brand             string    `json:"brand" example:"Volvo"`
	Model             string    `json:"model" example:"FH"`
	LoadCapacityKg    float64   `json:"load_capacity_kg" example:"26000"`
	LastMaintenanceAt time.Time `json:"last_maintenance_at" example:"2025-01-20T00:00:00Z"`
	MileageKm         int       `json:"mileage_km" example:"20500"`
}

// VehicleStatusRequest represents the change status request body.
type VehicleStatusRequest struct {
	Status string `json:"status" binding:"required" example:"maintenance"`
}

// FleetAssignmentRequest represents a move into a fleet.
type FleetAssignmentRequest struct {
	FleetID uuid.UUID `json:"fleet_id" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// TransporterAssignmentRequest represents a driver assignment.
type TransporterAssignmentRequest struct {
	TransporterID uuid.UUID `json:"transporter_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
}

// CreateTransporterRequest represents the register transporter request body.
type CreateTransporterRequest struct {
	Name          string     `json:"name" binding:"required" example:"Carlos Rodríguez"`
	Email         string     `json:"email" binding:"required" example:"carlos@transportes.es"`
	Phone         string     `json:"phone" example:"+34 600 123 456"`
	LicenseNumber string     `json:"license_number" binding:"required" example:"C-12345678"`
	BirthDate     *time.Time `json:"birth_date" example:"1985-04-12T00:00:00Z"`
	HiredAt       *time.Time `json:"hired_at" example:"2019-09-01T00:00:00Z"`
	FleetID       *uuid.UUID `json:"fleet_id" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// CreateTransportRequest represents the create transport request body.
type CreateTransportRequest struct {
	Code       string  `json:"code" binding:"required" example:"TR-01"`
	CapacityKg float64 `json:"capacity_kg" binding:"required" example:"1500"`
}

// UpdateTransportRequest represents the update transport request body.
type UpdateTransportRequest struct {
	Code       string  `json:"code" example:"TR-02"`
	CapacityKg float64 `json:"capacity_kg" example:"1800"`
	IsActive   bool    `json:"is_active" example:"false"`
}

// Point is a GPS position in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" example:"40.4168"`
	Lng float64 `json:"lng" example:"-3.7038"`
}

// DistanceRequest represents the route distance request body.
type DistanceRequest struct {
	Origin      Point `json:"origin" binding:"required"`
	Destination Point `json:"destination" binding:"required"`
}

// --- Response Types ---

// DistanceResponse represents the route distance result.
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km" example:"505.10"`
}

// DownloadURLResponse carries a presigned download URL.
type DownloadURLResponse struct {
	URL string `json:"url" example:"https://s3.eu-west-1.amazonaws.com/flota-cmr/cmr/2025/01/15/...?X-Amz-Signature=..."`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
