package domain

// FileType represents the document formats accepted for CMR extraction.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedContentTypes maps MIME content types to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// VehicleType classifies a vehicle.
type VehicleType string

const (
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTrailer    VehicleType = "trailer"
)

// ValidVehicleTypes lists the accepted vehicle types.
var ValidVehicleTypes = map[VehicleType]bool{
	VehicleTypeTruck:      true,
	VehicleTypeVan:        true,
	VehicleTypeMotorcycle: true,
	VehicleTypeTrailer:    true,
}

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "available"
	VehicleStatusInUse        VehicleStatus = "in_use"
	VehicleStatusMaintenance  VehicleStatus = "maintenance"
	VehicleStatusOutOfService VehicleStatus = "out_of_service"
)

// ValidVehicleStatuses lists the accepted vehicle statuses.
var ValidVehicleStatuses = map[VehicleStatus]bool{
	VehicleStatusAvailable:    true,
	VehicleStatusInUse:        true,
	VehicleStatusMaintenance:  true,
	VehicleStatusOutOfService: true,
}

// CMRStatus is the processing state of a normalized CMR document.
type CMRStatus string

const (
	CMRStatusPending   CMRStatus = "pending"
	CMRStatusProcessed CMRStatus = "processed"
	CMRStatusError     CMRStatus = "error"
)

// CargoCategory is the declared kind of goods on a waybill.
type CargoCategory string

const (
	CargoGeneral      CargoCategory = "general"
	CargoDangerous    CargoCategory = "dangerous"
	CargoFragile      CargoCategory = "fragile"
	CargoRefrigerated CargoCategory = "refrigerated"
	CargoLiquid       CargoCategory = "liquid"
	CargoBulk         CargoCategory = "bulk"
)

// Sentinel values carried by CMR documents when a field could not be
// extracted or the whole document failed.
const (
	CMRNumberUnknown = "CMR-UNKNOWN"
	CMRNumberError   = "ERROR"
	PlateUnknown     = "UNKNOWN"
	PlateError       = "ERROR"
	PartyUnknown     = "Unknown"
	PartyError       = "Error"
	CargoErrorDesc   = "Error processing document"
	CargoDefaultDesc = "Mercancía general"
)
