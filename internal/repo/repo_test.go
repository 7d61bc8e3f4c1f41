package repo

import (
	"fmt"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/record"
)

// backends returns a fresh instance of every Repository implementation so
// the contract tests below run against each of them.
func backends(t *testing.T) map[string]Repository {
	t.Helper()

	csvRepo, err := NewCSV(filepath.Join(t.TempDir(), "calculations.csv"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}
	sqliteRepo, err := NewSQLite(filepath.Join(t.TempDir(), "calculations.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}

	repos := map[string]Repository{
		"memory": NewMemory(),
		"csv":    csvRepo,
		"sqlite": sqliteRepo,
	}
	for _, r := range repos {
		r := r
		t.Cleanup(func() { r.Close() })
	}
	return repos
}

func testRecord(id, operation string) record.Record {
	return record.Record{
		ID:            id,
		OperationName: operation,
		Operands:      "2,3",
		Result:        "5",
		Timestamp:     "2026-03-14T09:26:53Z",
	}
}

func TestRepository_AddAndGetAll(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if err := r.Add(testRecord(fmt.Sprintf("id-%d", i), "add")); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}

			records, err := r.GetAll()
			if err != nil {
				t.Fatalf("GetAll: %v", err)
			}
			if len(records) != 3 {
				t.Fatalf("expected 3 records, got %d", len(records))
			}
			for i, rec := range records {
				want := fmt.Sprintf("id-%d", i)
				if rec.ID != want {
					t.Errorf("record %d: expected ID %s, got %s", i, want, rec.ID)
				}
			}
		})
	}
}

func TestRepository_GetAllEmpty(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := r.GetAll()
			if !IsEmptyStore(err) {
				t.Errorf("expected EmptyStoreError, got %v", err)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("first", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("second", "divide")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			rec, err := r.GetByID("second")
			if err != nil {
				t.Fatalf("GetByID: %v", err)
			}
			if rec.OperationName != "divide" {
				t.Errorf("expected operation divide, got %s", rec.OperationName)
			}
		})
	}
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("present", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			_, err := r.GetByID("absent")
			if !IsNotFound(err) {
				t.Errorf("expected NotFoundError, got %v", err)
			}
		})
	}
}

// Duplicate IDs are allowed on Add; GetByID returns the earliest match.
func TestRepository_DuplicateIDs(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("dup", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("dup", "multiply")); err != nil {
				t.Fatalf("Add duplicate: %v", err)
			}

			rec, err := r.GetByID("dup")
			if err != nil {
				t.Fatalf("GetByID: %v", err)
			}
			if rec.OperationName != "add" {
				t.Errorf("expected first inserted record, got operation %s", rec.OperationName)
			}
		})
	}
}

func TestRepository_GetLast(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("older", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("newer", "subtract")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			rec, err := r.GetLast()
			if err != nil {
				t.Fatalf("GetLast: %v", err)
			}
			if rec.ID != "newer" {
				t.Errorf("expected most recent record, got %s", rec.ID)
			}
		})
	}
}

func TestRepository_GetLastEmpty(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := r.GetLast()
			if !IsEmptyStore(err) {
				t.Errorf("expected EmptyStoreError, got %v", err)
			}
		})
	}
}

func TestRepository_Filter(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("a", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("b", "divide")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("c", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			matches, err := r.Filter(func(rec record.Record) bool {
				return rec.OperationName == "add"
			})
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			if len(matches) != 2 {
				t.Fatalf("expected 2 matches, got %d", len(matches))
			}
			if matches[0].ID != "a" || matches[1].ID != "c" {
				t.Errorf("expected matches in insertion order, got %s, %s", matches[0].ID, matches[1].ID)
			}
		})
	}
}

// Filter on an empty store succeeds with an empty, non-nil slice.
func TestRepository_FilterEmpty(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			matches, err := r.Filter(func(record.Record) bool { return true })
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			if matches == nil {
				t.Error("expected empty slice, got nil")
			}
			if len(matches) != 0 {
				t.Errorf("expected no matches, got %d", len(matches))
			}
		})
	}
}

func TestRepository_Clear(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("doomed", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			if err := r.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := r.GetAll(); !IsEmptyStore(err) {
				t.Errorf("expected EmptyStoreError after Clear, got %v", err)
			}

			// Clearing an already empty store is not an error.
			if err := r.Clear(); err != nil {
				t.Errorf("Clear on empty store: %v", err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("keep", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("drop", "divide")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			if err := r.Delete("drop"); err != nil {
				t.Fatalf("Delete: %v", err)
			}

			records, err := r.GetAll()
			if err != nil {
				t.Fatalf("GetAll: %v", err)
			}
			if len(records) != 1 || records[0].ID != "keep" {
				t.Errorf("expected only the kept record, got %v", records)
			}
		})
	}
}

// Delete removes every record sharing the ID, not just the first.
func TestRepository_DeleteDuplicates(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := r.Add(testRecord("dup", "add")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("dup", "multiply")); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.Add(testRecord("other", "divide")); err != nil {
				t.Fatalf("Add: %v", err)
			}

			if err := r.Delete("dup"); err != nil {
				t.Fatalf("Delete: %v", err)
			}

			records, err := r.GetAll()
			if err != nil {
				t.Fatalf("GetAll: %v", err)
			}
			if len(records) != 1 || records[0].ID != "other" {
				t.Errorf("expected only the unrelated record to survive, got %v", records)
			}
		})
	}
}

func TestRepository_DeleteNotFound(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := r.Delete("absent")
			if !IsNotFound(err) {
				t.Errorf("expected NotFoundError, got %v", err)
			}
		})
	}
}
