// Package export renders stored CMR records as CSV or XLSX.
package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"flota/internal/domain"
)

// columns is the header row shared by the CSV and XLSX formats.
var columns = []string{
	"ID",
	"Document Number",
	"Status",
	"Valid",
	"Issue Date",
	"Loading Date",
	"Delivery Date",
	"Sender",
	"Sender City",
	"Recipient",
	"Recipient City",
	"Vehicle Plate",
	"Driver",
	"Cargo Description",
	"Cargo Category",
	"Gross Weight (kg)",
	"Volume (m3)",
	"Units",
	"Declared Value (EUR)",
	"Processing Error",
	"Original File",
	"Processed At",
}

// recordToRow flattens a record into len(columns) cells. Columns that come
// from the structured document are left empty when it cannot be decoded.
func recordToRow(rec *domain.CMRRecord) []string {
	row := make([]string, len(columns))

	row[0] = rec.ID.String()
	row[1] = rec.DocumentNumber
	row[2] = string(rec.Status)
	row[3] = formatBool(rec.IsValid)
	row[4] = formatDate(&rec.IssueDate)
	row[7] = rec.SenderName
	row[9] = rec.RecipientName
	row[11] = rec.VehiclePlate
	row[15] = formatFloat(rec.GrossWeightKg)
	row[19] = rec.ProcessingError
	row[20] = rec.OriginalName
	row[21] = rec.ProcessedAt.Format(time.RFC3339)

	if len(rec.StructuredData) == 0 {
		return row
	}
	doc, err := rec.Document()
	if err != nil {
		return row
	}

	row[5] = formatDate(doc.LoadingDate)
	row[6] = formatDate(doc.DeliveryDate)
	row[8] = doc.Sender.City
	row[10] = doc.Recipient.City
	row[12] = deref(doc.Driver)
	row[13] = doc.Cargo.Description
	row[14] = string(doc.Cargo.Category)
	if doc.Cargo.VolumeM3 != nil {
		row[16] = formatFloat(*doc.Cargo.VolumeM3)
	}
	if doc.Cargo.Units != nil {
		row[17] = strconv.Itoa(*doc.Cargo.Units)
	}
	if doc.Cargo.DeclaredValue != nil {
		row[18] = strconv.FormatFloat(*doc.Cargo.DeclaredValue, 'f', 2, 64)
	}
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename makes name safe for a Content-Disposition header and for
// object keys: anything other than letters, digits, - and _ becomes _, runs of
// _ collapse, and the result is capped at 100 characters.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns "{prefix}_{YYYY-MM-DD}.{ext}".
func BuildFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), now.Format("2006-01-02"), ext)
}
