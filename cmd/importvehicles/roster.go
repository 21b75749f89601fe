package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"flota/internal/domain"
	"flota/internal/service"
)

const (
	colPlate = iota
	colBrand
	colModel
	colType
	colCapacity
	colRegistered
	rosterColumns
)

// rosterRow is one parsed spreadsheet row. Row is 1-based as shown in Excel.
type rosterRow struct {
	Row   int
	Input service.CreateVehicleInput
}

type rowError struct {
	Row int
	Err error
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "2/1/2006"}

// parseRoster reads sheet (or the first sheet when empty). Rows that cannot be
// parsed are reported in the second result and skipped.
func parseRoster(f *excelize.File, sheet string) ([]rosterRow, []rowError, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	var (
		out  []rosterRow
		errs []rowError
	)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		input, perr := parseRow(row)
		if perr != nil {
			errs = append(errs, rowError{Row: i + 1, Err: perr})
			continue
		}
		out = append(out, rosterRow{Row: i + 1, Input: input})
	}
	return out, errs, nil
}

func parseRow(row []string) (service.CreateVehicleInput, error) {
	if len(row) < rosterColumns {
		return service.CreateVehicleInput{}, fmt.Errorf("expected %d columns, got %d", rosterColumns, len(row))
	}

	capacity, err := strconv.ParseFloat(cellVal(row, colCapacity), 64)
	if err != nil {
		return service.CreateVehicleInput{}, fmt.Errorf("capacity: %w", err)
	}
	registered, err := parseDate(cellVal(row, colRegistered))
	if err != nil {
		return service.CreateVehicleInput{}, fmt.Errorf("registered: %w", err)
	}

	return service.CreateVehicleInput{
		Plate:          cellVal(row, colPlate),
		Brand:          cellVal(row, colBrand),
		Model:          cellVal(row, colModel),
		Type:           domain.VehicleType(strings.ToLower(cellVal(row, colType))),
		LoadCapacityKg: capacity,
		RegisteredAt:   registered,
	}, nil
}

// parseDate accepts text dates and Excel serial numbers.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return excelize.ExcelDateToTime(serial, false)
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
