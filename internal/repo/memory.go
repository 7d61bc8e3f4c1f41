package repo

import (
	"github.com/tally-cli/tally/internal/record"
)

// Memory is the ephemeral backend: an ordered slice held for the process
// lifetime. Linear scans are fine at calculator scale.
type Memory struct {
	records []record.Record
}

var _ Repository = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Add implements Repository.
func (m *Memory) Add(rec record.Record) error {
	m.records = append(m.records, rec)
	return nil
}

// GetAll implements Repository.
func (m *Memory) GetAll() ([]record.Record, error) {
	if len(m.records) == 0 {
		return nil, &EmptyStoreError{}
	}
	out := make([]record.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// GetByID implements Repository.
func (m *Memory) GetByID(id string) (record.Record, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return record.Record{}, &NotFoundError{ID: id}
}

// GetLast implements Repository.
func (m *Memory) GetLast() (record.Record, error) {
	if len(m.records) == 0 {
		return record.Record{}, &EmptyStoreError{}
	}
	return m.records[len(m.records)-1], nil
}

// Filter implements Repository.
func (m *Memory) Filter(pred func(record.Record) bool) ([]record.Record, error) {
	out := []record.Record{}
	for _, rec := range m.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Clear implements Repository.
func (m *Memory) Clear() error {
	m.records = nil
	return nil
}

// Delete implements Repository.
func (m *Memory) Delete(id string) error {
	kept := m.records[:0:0]
	for _, rec := range m.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(m.records) {
		return &NotFoundError{ID: id}
	}
	m.records = kept
	return nil
}

// Close implements Repository. It is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}
