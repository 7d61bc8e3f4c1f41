package repo

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tally-cli/tally/internal/record"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a durable backend over a single-file SQLite database. It
// satisfies the same append-only contract as the CSV backend while letting
// the database handle durability instead of full-file rewrites.
type SQLite struct {
	db *sql.DB
}

var _ Repository = (*SQLite)(nil)

// NewSQLite creates or opens a SQLite database at the given path and
// applies the schema. Idempotent — safe to call on an existing database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StoreIOError{Op: "initialization", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreIOError{Op: "initialization", Err: err}
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under the calculator's synchronous use.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, &StoreIOError{Op: "initialization", Err: fmt.Errorf("execute %q: %w", pragma, err)}
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &StoreIOError{Op: "initialization", Err: fmt.Errorf("apply schema: %w", err)}
	}

	return &SQLite{db: db}, nil
}

// Add implements Repository.
func (s *SQLite) Add(rec record.Record) error {
	_, err := s.db.Exec(`
		INSERT INTO calculations (id, operation_name, operands, result, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.OperationName,
		rec.Operands,
		rec.Result,
		rec.Timestamp,
	)
	if err != nil {
		return &StoreIOError{Op: "add", Err: err}
	}
	return nil
}

// readAll returns all records in insertion order. An empty table yields an
// empty slice; GetAll layers the EmptyStoreError contract on top.
func (s *SQLite) readAll() ([]record.Record, error) {
	rows, err := s.db.Query(`
		SELECT id, operation_name, operands, result, timestamp
		FROM calculations
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []record.Record{}
	for rows.Next() {
		var rec record.Record
		if err := rows.Scan(&rec.ID, &rec.OperationName, &rec.Operands, &rec.Result, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}

	return records, nil
}

// GetAll implements Repository.
func (s *SQLite) GetAll() ([]record.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &EmptyStoreError{}
	}
	return records, nil
}

// GetByID implements Repository.
func (s *SQLite) GetByID(id string) (record.Record, error) {
	row := s.db.QueryRow(`
		SELECT id, operation_name, operands, result, timestamp
		FROM calculations
		WHERE id = ?
		ORDER BY seq ASC
		LIMIT 1
	`, id)

	var rec record.Record
	err := row.Scan(&rec.ID, &rec.OperationName, &rec.Operands, &rec.Result, &rec.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return record.Record{}, fmt.Errorf("scan calculation: %w", err)
	}
	return rec, nil
}

// GetLast implements Repository.
func (s *SQLite) GetLast() (record.Record, error) {
	row := s.db.QueryRow(`
		SELECT id, operation_name, operands, result, timestamp
		FROM calculations
		ORDER BY seq DESC
		LIMIT 1
	`)

	var rec record.Record
	err := row.Scan(&rec.ID, &rec.OperationName, &rec.Operands, &rec.Result, &rec.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, &EmptyStoreError{}
	}
	if err != nil {
		return record.Record{}, fmt.Errorf("scan calculation: %w", err)
	}
	return rec, nil
}

// Filter implements Repository. Predicates are arbitrary Go functions, so
// filtering happens in memory rather than in SQL.
func (s *SQLite) Filter(pred func(record.Record) bool) ([]record.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	out := []record.Record{}
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Clear implements Repository.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM calculations`); err != nil {
		return &StoreIOError{Op: "clear", Err: err}
	}
	return nil
}

// Delete implements Repository.
func (s *SQLite) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return &StoreIOError{Op: "delete", Err: err}
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &StoreIOError{Op: "delete", Err: err}
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// Close implements Repository.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
