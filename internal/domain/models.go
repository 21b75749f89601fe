package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Fleet groups vehicles and transporters under one operator.
// Membership is stored on the vehicle and transporter rows.
type Fleet struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// FleetStats summarizes a fleet's membership.
type FleetStats struct {
	FleetID           uuid.UUID `json:"fleet_id"`
	TotalTransporters int       `json:"total_transporters"`
	TotalVehicles     int       `json:"total_vehicles"`
	Active            bool      `json:"active"`
}

// A vehicle is due for maintenance once either limit is exceeded.
const (
	MaintenanceInterval  = 90 * 24 * time.Hour
	MaintenanceMileageKm = 50000
)

// Vehicle is a registered fleet vehicle.
type Vehicle struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	Plate             string        `db:"plate" json:"plate"`
	Brand             string        `db:"brand" json:"brand"`
	Model             string        `db:"model" json:"model"`
	Type              VehicleType   `db:"vehicle_type" json:"type"`
	LoadCapacityKg    float64       `db:"load_capacity_kg" json:"load_capacity_kg"`
	Status            VehicleStatus `db:"status" json:"status"`
	RegisteredAt      time.Time     `db:"registered_at" json:"registered_at"`
	LastMaintenanceAt *time.Time    `db:"last_maintenance_at" json:"last_maintenance_at"`
	MileageKm         int           `db:"mileage_km" json:"mileage_km"`
	FleetID           *uuid.UUID    `db:"fleet_id" json:"fleet_id"`
	TransporterID     *uuid.UUID    `db:"transporter_id" json:"transporter_id"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

// NeedsMaintenance reports whether the vehicle is due for a service.
// A vehicle that has never been serviced always needs one.
func (v *Vehicle) NeedsMaintenance(now time.Time) bool {
	if v.LastMaintenanceAt == nil {
		return true
	}
	return now.Sub(*v.LastMaintenanceAt) > MaintenanceInterval || v.MileageKm > MaintenanceMileageKm
}

// IsAvailable reports whether the vehicle can take a new assignment.
func (v *Vehicle) IsAvailable(now time.Time) bool {
	return v.Status == VehicleStatusAvailable && v.FleetID != nil && !v.NeedsMaintenance(now)
}

// UpdateMileage sets the odometer reading. Readings lower than the current
// one are ignored.
func (v *Vehicle) UpdateMileage(km int) {
	if km >= v.MileageKm {
		v.MileageKm = km
	}
}

// AssignTransporter sets the current driver and marks an available vehicle as in use.
func (v *Vehicle) AssignTransporter(transporterID uuid.UUID) {
	v.TransporterID = &transporterID
	if v.Status == VehicleStatusAvailable {
		v.Status = VehicleStatusInUse
	}
}

// ReleaseTransporter clears the driver and frees an in-use vehicle.
func (v *Vehicle) ReleaseTransporter() {
	v.TransporterID = nil
	if v.Status == VehicleStatusInUse {
		v.Status = VehicleStatusAvailable
	}
}

// Transporter is a driver employed by the operator.
type Transporter struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         string     `db:"email" json:"email"`
	Phone         string     `db:"phone" json:"phone"`
	LicenseNumber string     `db:"license_number" json:"license_number"`
	BirthDate     *time.Time `db:"birth_date" json:"birth_date"`
	HiredAt       time.Time  `db:"hired_at" json:"hired_at"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	FleetID       *uuid.UUID `db:"fleet_id" json:"fleet_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// IsAvailable reports whether the transporter can be given assignments.
func (t *Transporter) IsAvailable() bool {
	return t.IsActive && t.FleetID != nil
}

// Transport is a transport unit identified by a unique code.
type Transport struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Code       string    `db:"code" json:"code"`
	CapacityKg float64   `db:"capacity_kg" json:"capacity_kg"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Validate checks the transport invariants.
func (t *Transport) Validate() error {
	if len(t.Code) < 2 {
		return &FieldError{Field: "code", Message: "code must be at least 2 characters long"}
	}
	if t.CapacityKg <= 0 {
		return &FieldError{Field: "capacity_kg", Message: "capacity must be greater than 0"}
	}
	return nil
}

// FieldError describes a single invalid field. It matches ErrValidation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// CMRRecord is the stored trace of one CMR extraction request.
type CMRRecord struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	DocumentNumber   string          `db:"document_number" json:"document_number"`
	Status           CMRStatus       `db:"status" json:"status"`
	IsValid          bool            `db:"is_valid" json:"is_valid"`
	VehiclePlate     string          `db:"vehicle_plate" json:"vehicle_plate"`
	SenderName       string          `db:"sender_name" json:"sender_name"`
	RecipientName    string          `db:"recipient_name" json:"recipient_name"`
	GrossWeightKg    float64         `db:"gross_weight_kg" json:"gross_weight_kg"`
	IssueDate        time.Time       `db:"issue_date" json:"issue_date"`
	ProcessingError  string          `db:"processing_error" json:"processing_error"`
	StructuredData   json.RawMessage `db:"structured_data" json:"structured_data"`
	ConfidenceScores json.RawMessage `db:"confidence_scores" json:"confidence_scores"`
	OriginalName     string          `db:"original_name" json:"original_name"`
	FileSize         int64           `db:"file_size" json:"file_size"`
	S3Bucket         string          `db:"s3_bucket" json:"s3_bucket"`
	S3Key            string          `db:"s3_key" json:"s3_key"`
	ProcessedAt      time.Time       `db:"processed_at" json:"processed_at"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// Document decodes the stored structured data.
func (r *CMRRecord) Document() (*CMRDocument, error) {
	var doc CMRDocument
	if err := json.Unmarshal(r.StructuredData, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
