package db

import (
	"path/filepath"
	"testing"

	"github.com/smagulov/flightlog/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "flightlog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateEmptyAndExists(t *testing.T) {
	store := openTestStore(t)

	ok, err := store.Exists(1)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Fatal("log should not exist before CreateEmpty")
	}

	if err := store.CreateEmpty(1); err != nil {
		t.Fatalf("CreateEmpty: %v", err)
	}
	// Creating twice must not fail.
	if err := store.CreateEmpty(1); err != nil {
		t.Fatalf("CreateEmpty again: %v", err)
	}

	ok, err = store.Exists(1)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatal("log should exist after CreateEmpty")
	}

	n, err := store.Count(1)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("fresh log holds %d records", n)
	}
}

func TestAppendAndReadAllKeepOrder(t *testing.T) {
	store := openTestStore(t)

	for i, date := range []string{"2025-08-01", "2025-08-02", "2025-08-03"} {
		rec := models.FlightRecord{
			Date:       date,
			Exercise:   130 + i,
			Hours:      i,
			Minutes:    10 * i,
			FlightKind: "Combat engagement",
			TimeOfDay:  models.TimeDay,
			DutyType:   models.DutyCombat,
		}
		if err := store.Append(7, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	// Append creates the log on the fly for users that skipped /start.
	ok, err := store.Exists(7)
	if err != nil || !ok {
		t.Fatalf("Exists after Append = %v, %v", ok, err)
	}

	records, err := store.ReadAll(7)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ReadAll returned %d records, want 3", len(records))
	}
	for i, rec := range records {
		if rec.Exercise != 130+i {
			t.Fatalf("record %d out of order: %+v", i, rec)
		}
	}
}

func TestRemoveLast(t *testing.T) {
	store := openTestStore(t)

	// Removing from an empty log is a no-op.
	if err := store.CreateEmpty(1); err != nil {
		t.Fatalf("CreateEmpty: %v", err)
	}
	if err := store.RemoveLast(1); err != nil {
		t.Fatalf("RemoveLast on empty log: %v", err)
	}

	store.Append(1, models.FlightRecord{Date: "2025-08-01", Exercise: 101})
	store.Append(1, models.FlightRecord{Date: "2025-08-02", Exercise: 102})

	if err := store.RemoveLast(1); err != nil {
		t.Fatalf("RemoveLast: %v", err)
	}
	records, err := store.ReadAll(1)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 1 || records[0].Exercise != 101 {
		t.Fatalf("RemoveLast should pop only the newest record, got %+v", records)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	store.Append(1, models.FlightRecord{Date: "2025-08-01", Exercise: 101})
	store.Append(1, models.FlightRecord{Date: "2025-08-02", Exercise: 102})

	for i := 0; i < 2; i++ {
		if err := store.Clear(1); err != nil {
			t.Fatalf("Clear run %d: %v", i+1, err)
		}
		n, err := store.Count(1)
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if n != 0 {
			t.Fatalf("Clear run %d left %d records", i+1, n)
		}
	}

	// The log itself survives clearing.
	ok, err := store.Exists(1)
	if err != nil || !ok {
		t.Fatalf("Exists after Clear = %v, %v", ok, err)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store := openTestStore(t)

	store.Append(1, models.FlightRecord{Date: "2025-08-01", Exercise: 101})
	store.Append(2, models.FlightRecord{Date: "2025-08-02", Exercise: 202})

	if err := store.Clear(1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	records, err := store.ReadAll(2)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 1 || records[0].Exercise != 202 {
		t.Fatalf("user 2 records disturbed: %+v", records)
	}
}
