package repo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/record"
)

// CSV is the durable flat-file backend. The whole table lives in memory and
// every mutation rewrites the file from scratch: no incremental appends,
// which keeps the file format trivial at the cost of write amplification
// that does not matter at calculator scale.
//
// The file is a text table with a header row naming the record fields and
// one data row per record.
type CSV struct {
	path    string
	logger  *zap.Logger
	records []record.Record
}

var _ Repository = (*CSV)(nil)

// NewCSV creates a backend over the file at path, loading any existing
// records. The parent directory is created if missing.
//
// A file that exists but cannot be read or parsed is logged and treated as
// empty — corrupt data must not turn into a startup crash. Failure to
// create the parent directory is fatal and reported as a StoreIOError.
func NewCSV(path string, logger *zap.Logger) (*CSV, error) {
	c := &CSV{path: path, logger: logger}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StoreIOError{Op: "initialization", Err: err}
		}
	}

	if err := c.load(); err != nil {
		logger.Warn("could not load calculation file, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		c.records = nil
	}

	return c, nil
}

// load reads the file into the in-memory table. A missing or empty file
// loads as an empty table.
func (c *CSV) load() error {
	info, err := os.Stat(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	if info.Size() == 0 {
		return nil
	}

	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.path, err)
	}
	if len(rows) == 0 {
		return nil
	}

	// Columns are located by header name, so field order in the file is
	// not load-bearing.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, field := range record.Fields {
		if _, ok := index[field]; !ok {
			return fmt.Errorf("parse %s: missing column %q", c.path, field)
		}
	}

	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, record.Record{
			ID:            row[index["id"]],
			OperationName: row[index["operation_name"]],
			Operands:      row[index["operands"]],
			Result:        row[index["result"]],
			Timestamp:     row[index["timestamp"]],
		})
	}
	c.records = records

	c.logger.Debug("loaded calculation file",
		zap.String("path", c.path),
		zap.Int("records", len(records)),
	)
	return nil
}

// save rewrites the whole file from the in-memory table.
func (c *CSV) save() error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Fields); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range c.records {
		if err := w.Write(rec.Row()); err != nil {
			f.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", c.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	return nil
}

// Add implements Repository.
func (c *CSV) Add(rec record.Record) error {
	// The table is restored on a failed write so memory never diverges
	// from the file.
	prior := c.records
	c.records = append(c.records, rec)
	if err := c.save(); err != nil {
		c.records = prior
		return &StoreIOError{Op: "add", Err: err}
	}
	c.logger.Debug("added record", zap.String("id", rec.ID))
	return nil
}

// GetAll implements Repository.
func (c *CSV) GetAll() ([]record.Record, error) {
	if len(c.records) == 0 {
		return nil, &EmptyStoreError{}
	}
	out := make([]record.Record, len(c.records))
	copy(out, c.records)
	return out, nil
}

// GetByID implements Repository.
func (c *CSV) GetByID(id string) (record.Record, error) {
	for _, rec := range c.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return record.Record{}, &NotFoundError{ID: id}
}

// GetLast implements Repository.
func (c *CSV) GetLast() (record.Record, error) {
	if len(c.records) == 0 {
		return record.Record{}, &EmptyStoreError{}
	}
	return c.records[len(c.records)-1], nil
}

// Filter implements Repository.
func (c *CSV) Filter(pred func(record.Record) bool) ([]record.Record, error) {
	out := []record.Record{}
	for _, rec := range c.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Clear implements Repository.
func (c *CSV) Clear() error {
	prior := c.records
	c.records = nil
	if err := c.save(); err != nil {
		c.records = prior
		return &StoreIOError{Op: "clear", Err: err}
	}
	return nil
}

// Delete implements Repository.
func (c *CSV) Delete(id string) error {
	kept := c.records[:0:0]
	for _, rec := range c.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(c.records) {
		return &NotFoundError{ID: id}
	}
	prior := c.records
	c.records = kept
	if err := c.save(); err != nil {
		c.records = prior
		return &StoreIOError{Op: "delete", Err: err}
	}
	return nil
}

// Close implements Repository. The table is already on disk, so there is
// nothing to flush.
func (c *CSV) Close() error {
	return nil
}
