// Package history is the domain-level view over a storage backend. It
// encodes calculations into flat records on the way in, decodes on the way
// out, and translates backend errors into the domain vocabulary so callers
// never see storage-specific failures.
package history

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/calc"
	"github.com/tally-cli/tally/internal/record"
	"github.com/tally-cli/tally/internal/repo"
)

// Service manages the calculation history over one active backend.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService creates a history service over the given backend.
func NewService(r repo.Repository, logger *zap.Logger) *Service {
	return &Service{repo: r, logger: logger}
}

// Add records a calculation.
func (s *Service) Add(c *calc.Calculation) error {
	s.logger.Debug("adding calculation to history",
		zap.String("id", c.ID),
		zap.String("operation", c.Op.Name()),
	)
	if err := s.repo.Add(record.Encode(c)); err != nil {
		return fmt.Errorf("add calculation: %w", err)
	}
	return nil
}

// All returns every calculation in insertion order.
//
// A record that fails to decode is skipped with a warning rather than
// failing the whole read — partial history beats no history. An empty
// backend fails with EmptyHistoryError.
func (s *Service) All() ([]*calc.Calculation, error) {
	recs, err := s.repo.GetAll()
	if err != nil {
		if repo.IsEmptyStore(err) {
			return nil, &EmptyHistoryError{}
		}
		return nil, fmt.Errorf("load history: %w", err)
	}

	calcs := make([]*calc.Calculation, 0, len(recs))
	for _, rec := range recs {
		c, err := record.Decode(rec)
		if err != nil {
			s.logger.Warn("skipping unreadable history record",
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			continue
		}
		calcs = append(calcs, c)
	}
	return calcs, nil
}

// ByID returns the calculation with the given ID.
// Absence fails with CalculationNotFoundError; a record that exists but
// does not decode fails with InvalidCalculationDataError.
func (s *Service) ByID(id string) (*calc.Calculation, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, &CalculationNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get calculation %s: %w", id, err)
	}

	c, err := record.Decode(rec)
	if err != nil {
		return nil, &InvalidCalculationDataError{ID: id, Err: err}
	}
	return c, nil
}

// Last returns the most recently added calculation.
// An empty history fails with EmptyHistoryError.
func (s *Service) Last() (*calc.Calculation, error) {
	rec, err := s.repo.GetLast()
	if err != nil {
		if repo.IsEmptyStore(err) {
			return nil, &EmptyHistoryError{}
		}
		return nil, fmt.Errorf("get last calculation: %w", err)
	}

	c, err := record.Decode(rec)
	if err != nil {
		return nil, &InvalidCalculationDataError{ID: rec.ID, Err: err}
	}
	return c, nil
}

// FilterByOperation returns calculations whose operation matches name.
// Filtering an empty history is a valid, empty outcome — not an error.
func (s *Service) FilterByOperation(name string) ([]*calc.Calculation, error) {
	calcs, err := s.allOrEmpty()
	if err != nil {
		return nil, err
	}

	out := []*calc.Calculation{}
	for _, c := range calcs {
		if c.Op.Name() == name {
			out = append(out, c)
		}
	}
	return out, nil
}

// FilterByResult returns calculations whose result equals value exactly.
// Filtering an empty history is a valid, empty outcome — not an error.
func (s *Service) FilterByResult(value decimal.Decimal) ([]*calc.Calculation, error) {
	calcs, err := s.allOrEmpty()
	if err != nil {
		return nil, err
	}

	out := []*calc.Calculation{}
	for _, c := range calcs {
		if c.HasResult && c.Result.Equal(value) {
			out = append(out, c)
		}
	}
	return out, nil
}

// allOrEmpty is All with the empty-history error downgraded to an empty
// slice, for the filter operations.
func (s *Service) allOrEmpty() ([]*calc.Calculation, error) {
	calcs, err := s.All()
	if err != nil {
		if IsEmptyHistory(err) {
			return nil, nil
		}
		return nil, err
	}
	return calcs, nil
}

// Clear removes the entire history.
func (s *Service) Clear() error {
	s.logger.Debug("clearing calculation history")
	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Delete removes the calculation with the given ID.
// Absence fails with CalculationNotFoundError.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if repo.IsNotFound(err) {
			return &CalculationNotFoundError{ID: id}
		}
		return fmt.Errorf("delete calculation %s: %w", id, err)
	}
	return nil
}
