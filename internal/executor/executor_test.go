package executor

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/calc"
	"github.com/tally-cli/tally/internal/history"
	"github.com/tally-cli/tally/internal/record"
	"github.com/tally-cli/tally/internal/repo"
)

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestBinary(t *testing.T, op calc.Operation, input string) (*Binary, *bytes.Buffer, *history.Service) {
	t.Helper()
	out := &bytes.Buffer{}
	hist := history.NewService(repo.NewMemory(), zap.NewNop())
	in := bufio.NewReader(strings.NewReader(input))
	return NewBinary(op, hist, calc.FixedClock{T: testTime}, in, out, zap.NewNop()), out, hist
}

func TestBinary_Add(t *testing.T) {
	b, out, hist := newTestBinary(t, calc.Add, "2\n3\n")

	require.NoError(t, b.Execute())

	assert.Contains(t, out.String(), "Enter the first number: ")
	assert.Contains(t, out.String(), "Enter the second number: ")
	assert.Contains(t, out.String(), "Result of Addition: 5\n")

	calcs, err := hist.All()
	require.NoError(t, err)
	require.Len(t, calcs, 1)
	assert.Equal(t, calc.Add, calcs[0].Op)
	require.Len(t, calcs[0].Operands, 2)
	assert.True(t, calcs[0].Operands[0].Equal(d("2")))
	assert.True(t, calcs[0].Operands[1].Equal(d("3")))
	assert.True(t, calcs[0].Result.Equal(d("5")))
	assert.Equal(t, testTime, calcs[0].Timestamp)
}

func TestBinary_Divide(t *testing.T) {
	b, out, _ := newTestBinary(t, calc.Divide, "10\n4\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Result of Division: 2.5\n")
}

func TestBinary_DecimalOperands(t *testing.T) {
	b, out, _ := newTestBinary(t, calc.Add, "0.1\n0.2\n")

	require.NoError(t, b.Execute())
	// Exact decimal arithmetic, not binary floating point.
	assert.Contains(t, out.String(), "Result of Addition: 0.3\n")
}

func TestBinary_TrimsInputWhitespace(t *testing.T) {
	b, out, _ := newTestBinary(t, calc.Subtract, "  10  \n\t4\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Result of Subtraction: 6\n")
}

func TestBinary_InvalidFirstOperand(t *testing.T) {
	b, out, hist := newTestBinary(t, calc.Add, "banana\n3\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Invalid input. Please enter valid decimal numbers.")
	assert.NotContains(t, out.String(), "Result of")

	_, err := hist.All()
	assert.True(t, history.IsEmptyHistory(err), "aborted operation must not be recorded")
}

func TestBinary_InvalidSecondOperand(t *testing.T) {
	b, out, hist := newTestBinary(t, calc.Add, "2\nbanana\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Enter the second number: ")
	assert.Contains(t, out.String(), "Invalid input. Please enter valid decimal numbers.")

	_, err := hist.All()
	assert.True(t, history.IsEmptyHistory(err))
}

func TestBinary_InputEndsEarly(t *testing.T) {
	b, out, hist := newTestBinary(t, calc.Add, "2\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Invalid input. Please enter valid decimal numbers.")

	_, err := hist.All()
	assert.True(t, history.IsEmptyHistory(err))
}

func TestBinary_DivisionByZero(t *testing.T) {
	b, out, hist := newTestBinary(t, calc.Divide, "10\n0\n")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Error: Division by zero.")
	assert.NotContains(t, out.String(), "Result of")

	_, err := hist.All()
	assert.True(t, history.IsEmptyHistory(err), "failed division must leave history unchanged")
}

// A final line without a trailing newline is still a valid operand.
func TestBinary_LastLineWithoutNewline(t *testing.T) {
	b, out, _ := newTestBinary(t, calc.Multiply, "6\n7")

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Result of Multiplication: 42\n")
}

// failingRepo rejects writes so the recording-failure path can be observed.
type failingRepo struct {
	*repo.Memory
}

func (f *failingRepo) Add(record.Record) error {
	return &repo.StoreIOError{Op: "add", Err: assert.AnError}
}

func TestBinary_RecordingFailureStillReportsResult(t *testing.T) {
	out := &bytes.Buffer{}
	hist := history.NewService(&failingRepo{Memory: repo.NewMemory()}, zap.NewNop())
	in := bufio.NewReader(strings.NewReader("2\n3\n"))
	b := NewBinary(calc.Add, hist, calc.FixedClock{T: testTime}, in, out, zap.NewNop())

	require.NoError(t, b.Execute())
	assert.Contains(t, out.String(), "Warning: result not recorded:")
	assert.Contains(t, out.String(), "Result of Addition: 5\n")
}
