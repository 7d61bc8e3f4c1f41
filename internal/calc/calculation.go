// Package calc holds the calculator's core entity: a Calculation binds an
// operation to its operands and, once performed, its result.
package calc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Calculation is one unit of history: an operation, the operands it was
// given, and (once performed) its result.
//
// Invariants:
//   - Operands is never empty.
//   - Result is absent (HasResult false) until Perform has run, and is set
//     exactly once.
//   - ID uniquely identifies the calculation within one history instance.
type Calculation struct {
	ID        string
	Op        Operation
	Operands  []decimal.Decimal
	Result    decimal.Decimal
	HasResult bool
	Timestamp time.Time
}

// New creates a Calculation with a generated ID and a creation timestamp
// taken from clock. At least one operand is required; zero operands fail
// with InvalidOperandsError.
func New(clock Clock, op Operation, operands ...decimal.Decimal) (*Calculation, error) {
	if len(operands) == 0 {
		return nil, &InvalidOperandsError{}
	}

	return &Calculation{
		ID:        uuid.NewString(),
		Op:        op,
		Operands:  append([]decimal.Decimal(nil), operands...),
		Timestamp: clock.Now(),
	}, nil
}

// Perform applies the operation cumulatively left to right across the
// operands and stores the result. The result is set at most once; calling
// Perform again returns the stored result without recomputing.
func (c *Calculation) Perform() (decimal.Decimal, error) {
	if c.HasResult {
		return c.Result, nil
	}

	result := c.Operands[0]
	for _, operand := range c.Operands[1:] {
		next, err := c.Op.Apply(result, operand)
		if err != nil {
			return decimal.Decimal{}, err
		}
		result = next
	}

	c.Result = result
	c.HasResult = true
	return result, nil
}
