package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	ErrFleetNotFound       = errors.New("fleet not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrTransporterNotFound = errors.New("transporter not found")
	ErrTransportNotFound   = errors.New("transport not found")
	ErrCMRNotFound         = errors.New("cmr document not found")

	ErrDuplicatePlate = errors.New("a vehicle with this plate already exists")
	ErrDuplicateEmail = errors.New("a transporter with this email already exists")
	ErrDuplicateCode  = errors.New("a transport with this code already exists")

	ErrInvalidPlate       = errors.New("invalid plate; expected 4 digits followed by 3 letters")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")

	ErrEmptyDocument    = errors.New("document bytes cannot be empty")
	ErrDocumentTooLarge = errors.New("document exceeds maximum allowed size")
	ErrInvalidCMRData   = errors.New("invalid cmr document data extracted")
)
