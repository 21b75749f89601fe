package export

import (
	"encoding/csv"
	"io"

	"flota/internal/domain"
)

// BOM is written before the header so Excel on Windows detects UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter streams CMR records as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords writes one row per record.
func (w *CSVWriter) WriteRecords(records []domain.CMRRecord) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows and returns any write error.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
