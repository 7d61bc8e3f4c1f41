package calc

import (
	"github.com/shopspring/decimal"
)

// Operation identifies one of the built-in binary arithmetic operations.
//
// The set is closed: a stored record's operation name is decoded with a
// switch over these variants, so an unresolvable name is caught at decode
// time instead of surfacing as a nil function later.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

// Operations returns all operations in display order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// Name returns the stable name used for command dispatch and storage.
func (op Operation) Name() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return "unknown"
}

// DisplayName returns the human-readable name used in result reports.
func (op Operation) DisplayName() string {
	switch op {
	case Add:
		return "Addition"
	case Subtract:
		return "Subtraction"
	case Multiply:
		return "Multiplication"
	case Divide:
		return "Division"
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	return op.Name()
}

// Apply performs the operation on two decimals.
// Divide fails with DivisionByZeroError when b is zero.
func (op Operation) Apply(a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Subtract:
		return a.Sub(b), nil
	case Multiply:
		return a.Mul(b), nil
	case Divide:
		if b.IsZero() {
			return decimal.Decimal{}, &DivisionByZeroError{}
		}
		return a.Div(b), nil
	}
	return decimal.Decimal{}, &UnknownOperationError{Name: op.Name()}
}

// ParseOperation resolves a stored operation name back to its variant.
// Unresolvable names fail with UnknownOperationError.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.Name() == name {
			return op, nil
		}
	}
	return 0, &UnknownOperationError{Name: name}
}
