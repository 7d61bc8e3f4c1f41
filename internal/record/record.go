// Package record converts Calculation entities to and from the flat
// string-keyed form that storage backends persist.
//
// The flat form is a fixed set of string fields:
//
//	id, operation_name, operands, result, timestamp
//
// Operands are comma-joined decimal literals, result is the decimal string
// or the empty string when the calculation has not been performed, and the
// timestamp is RFC 3339 with nanoseconds. Encode followed by Decode
// reproduces every field exactly (decimal equality, not floating point).
package record

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-cli/tally/internal/calc"
)

// Fields is the column order for flat calculation records. The CSV backend
// writes it as its header row.
var Fields = []string{"id", "operation_name", "operands", "result", "timestamp"}

// operandSeparator joins operand literals in the flat form. Decimal strings
// never contain it, so splitting is unambiguous.
const operandSeparator = ","

// Record is the flat string form of a Calculation as stored by a backend.
type Record struct {
	ID            string
	OperationName string
	Operands      string
	Result        string
	Timestamp     string
}

// Row returns the record's values in Fields order.
func (r Record) Row() []string {
	return []string{r.ID, r.OperationName, r.Operands, r.Result, r.Timestamp}
}

// Encode flattens a Calculation into its stored form.
func Encode(c *calc.Calculation) Record {
	operands := make([]string, len(c.Operands))
	for i, operand := range c.Operands {
		operands[i] = operand.String()
	}

	result := ""
	if c.HasResult {
		result = c.Result.String()
	}

	return Record{
		ID:            c.ID,
		OperationName: c.Op.Name(),
		Operands:      strings.Join(operands, operandSeparator),
		Result:        result,
		Timestamp:     c.Timestamp.Format(time.RFC3339Nano),
	}
}

// Decode reconstructs a Calculation from its stored form.
//
// Fails with UnknownOperationError when the operation name does not
// resolve, and with InvalidRecordError when any operand segment, the
// result, or the timestamp does not parse.
func Decode(rec Record) (*calc.Calculation, error) {
	op, err := calc.ParseOperation(rec.OperationName)
	if err != nil {
		return nil, err
	}

	if rec.Operands == "" {
		return nil, &InvalidRecordError{Field: "operands", Value: rec.Operands, Reason: "no operands"}
	}

	segments := strings.Split(rec.Operands, operandSeparator)
	operands := make([]decimal.Decimal, len(segments))
	for i, segment := range segments {
		operand, err := decimal.NewFromString(strings.TrimSpace(segment))
		if err != nil {
			return nil, &InvalidRecordError{Field: "operands", Value: segment, Reason: "not a decimal"}
		}
		operands[i] = operand
	}

	c := &calc.Calculation{
		ID:       rec.ID,
		Op:       op,
		Operands: operands,
	}

	if rec.Result != "" {
		result, err := decimal.NewFromString(rec.Result)
		if err != nil {
			return nil, &InvalidRecordError{Field: "result", Value: rec.Result, Reason: "not a decimal"}
		}
		c.Result = result
		c.HasResult = true
	}

	timestamp, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return nil, &InvalidRecordError{Field: "timestamp", Value: rec.Timestamp, Reason: "not an RFC 3339 timestamp"}
	}
	c.Timestamp = timestamp

	return c, nil
}
