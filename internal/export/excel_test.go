package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/smagulov/flightlog/internal/models"
)

func TestWorkbookRoundTrip(t *testing.T) {
	t.Parallel()
	records := []models.FlightRecord{
		{Date: "2025-08-28", Exercise: 130, Hours: 2, Minutes: 30, FlightKind: "Combat engagement", TimeOfDay: models.TimeDay, DutyType: models.DutyCombat},
		{Date: "2025-08-29", Exercise: 230, Hours: 1, Minutes: 0, FlightKind: "Training", TimeOfDay: models.TimeNight, DutyType: models.DutyTraining},
	}

	data, err := Workbook(records)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook holds %d rows, want header + 2 records", len(rows))
	}

	wantHeader := []string{"Date", "Exercise", "Hours", "Minutes", "FlightKind", "TimeOfDay", "DutyType"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Fatalf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}

	first := rows[1]
	if first[0] != "2025-08-28" || first[1] != "130" || first[4] != "Combat engagement" || first[6] != "Combat" {
		t.Fatalf("unexpected first row: %v", first)
	}
}

func TestWorkbookEmptyLog(t *testing.T) {
	t.Parallel()
	data, err := Workbook(nil)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty export should hold only the header, got %d rows", len(rows))
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()
	if got := Filename(42); got != "flightlog_42.xlsx" {
		t.Fatalf("Filename(42) = %q", got)
	}
}
