package domain

import "time"

// RawExtraction is what an extractor reads from a document: the full text,
// a confidence score per section and free-form metadata.
type RawExtraction struct {
	Text       string             `json:"raw_text"`
	Confidence map[string]float64 `json:"confidence_scores"`
	Metadata   map[string]any     `json:"metadata"`
}

// PartyInfo is the sender or recipient block of a waybill.
type PartyInfo struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code,omitempty"`
	Contact    *string `json:"contact,omitempty"`
}

// CargoInfo describes the goods carried.
type CargoInfo struct {
	Description   string        `json:"description"`
	Category      CargoCategory `json:"category"`
	GrossWeightKg float64       `json:"gross_weight_kg"`
	VolumeM3      *float64      `json:"volume_m3,omitempty"`
	Units         *int          `json:"units,omitempty"`
	DeclaredValue *float64      `json:"declared_value,omitempty"`
}

// CMRDocument is a normalized international consignment note.
//
// A document with Status CMRStatusError still has every required field set,
// holding the error sentinels instead of extracted values.
type CMRDocument struct {
	Number              string     `json:"document_number"`
	IssueDate           time.Time  `json:"issue_date"`
	LoadingDate         *time.Time `json:"loading_date,omitempty"`
	DeliveryDate        *time.Time `json:"delivery_date,omitempty"`
	Sender              PartyInfo  `json:"sender"`
	Recipient           PartyInfo  `json:"recipient"`
	VehiclePlate        string     `json:"vehicle_plate"`
	Driver              *string    `json:"driver,omitempty"`
	Cargo               CargoInfo  `json:"cargo"`
	SpecialInstructions *string    `json:"special_instructions,omitempty"`
	TransportConditions *string    `json:"transport_conditions,omitempty"`
	Status              CMRStatus  `json:"status"`
	ProcessingError     *string    `json:"processing_error,omitempty"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
}
