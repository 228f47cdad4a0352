package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/smagulov/flightlog/internal/models"
)

// Sheet is the name of the single worksheet in an exported workbook.
const Sheet = "Flights"

var header = []any{"Date", "Exercise", "Hours", "Minutes", "FlightKind", "TimeOfDay", "DutyType"}

// Workbook renders a flight log as an xlsx file, one row per record
// in insertion order under a fixed header row.
func Workbook(records []models.FlightRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{rec.Date, rec.Exercise, rec.Hours, rec.Minutes, rec.FlightKind, string(rec.TimeOfDay), string(rec.DutyType)}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the attachment name delivered to a user.
func Filename(userID int64) string {
	return fmt.Sprintf("flightlog_%d.xlsx", userID)
}
