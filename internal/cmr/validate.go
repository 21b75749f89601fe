package cmr

import "flota/internal/domain"

// Violations lists every business rule the document breaks. An empty result
// means the document is valid.
func Violations(doc *domain.CMRDocument) []string {
	if doc == nil {
		return []string{"document is missing"}
	}

	var v []string
	if doc.Number == "" || doc.Number == domain.CMRNumberError {
		v = append(v, "document number is missing")
	}
	if doc.Sender.Name == "" || doc.Sender.Name == domain.PartyError {
		v = append(v, "sender name is missing")
	}
	if doc.Recipient.Name == "" || doc.Recipient.Name == domain.PartyError {
		v = append(v, "recipient name is missing")
	}
	if doc.VehiclePlate == "" || doc.VehiclePlate == domain.PlateError {
		v = append(v, "vehicle plate is missing")
	}
	if doc.Cargo.GrossWeightKg <= 0 {
		v = append(v, "gross weight must be greater than 0")
	}
	if doc.LoadingDate != nil && doc.DeliveryDate != nil && doc.LoadingDate.After(*doc.DeliveryDate) {
		v = append(v, "loading date is after delivery date")
	}
	return v
}

// IsValid reports whether the document passes every business rule.
func IsValid(doc *domain.CMRDocument) bool {
	return len(Violations(doc)) == 0
}
