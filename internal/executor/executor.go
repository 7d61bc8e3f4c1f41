// Package executor implements the shared execution protocol for the
// arithmetic commands: read two decimal operands, apply the bound
// operation, record the outcome in history, report the result.
package executor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/calc"
	"github.com/tally-cli/tally/internal/command"
	"github.com/tally-cli/tally/internal/history"
)

// Binary binds one arithmetic operation to the shared two-operand
// protocol. Each invocation walks
//
//	awaiting operands -> validated -> executed -> recorded -> reported
//
// and any failure along the way reports a one-line message and aborts
// without touching history. Nothing is retried.
type Binary struct {
	op      calc.Operation
	history *history.Service
	clock   calc.Clock
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
}

var _ command.Command = (*Binary)(nil)

// NewBinary creates the command for op. The reader is shared with the
// surrounding command loop so buffered input is consumed exactly once.
func NewBinary(op calc.Operation, hist *history.Service, clock calc.Clock, in *bufio.Reader, out io.Writer, logger *zap.Logger) *Binary {
	return &Binary{
		op:      op,
		history: hist,
		clock:   clock,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Execute implements command.Command.
func (b *Binary) Execute() error {
	first, err := b.readOperand("Enter the first number: ")
	if err != nil {
		fmt.Fprintln(b.out, "Invalid input. Please enter valid decimal numbers.")
		return nil
	}
	second, err := b.readOperand("Enter the second number: ")
	if err != nil {
		fmt.Fprintln(b.out, "Invalid input. Please enter valid decimal numbers.")
		return nil
	}

	calculation, err := calc.New(b.clock, b.op, first, second)
	if err != nil {
		fmt.Fprintf(b.out, "An error occurred: %v\n", err)
		return nil
	}

	b.logger.Info("executing operation",
		zap.String("operation", b.op.Name()),
		zap.String("a", first.String()),
		zap.String("b", second.String()),
	)

	result, err := calculation.Perform()
	if err != nil {
		if calc.IsDivisionByZero(err) {
			b.logger.Warn("division by zero", zap.String("operation", b.op.Name()))
			fmt.Fprintln(b.out, "Error: Division by zero.")
			return nil
		}
		b.logger.Error("operation failed", zap.Error(err))
		fmt.Fprintf(b.out, "An error occurred: %v\n", err)
		return nil
	}

	if err := b.history.Add(calculation); err != nil {
		// The computation succeeded; still show the result.
		b.logger.Error("could not record calculation", zap.Error(err))
		fmt.Fprintf(b.out, "Warning: result not recorded: %v\n", err)
	}

	fmt.Fprintf(b.out, "Result of %s: %s\n", b.op.DisplayName(), result)
	return nil
}

func (b *Binary) readOperand(prompt string) (decimal.Decimal, error) {
	fmt.Fprint(b.out, prompt)
	line, err := b.in.ReadString('\n')
	if err != nil && line == "" {
		return decimal.Decimal{}, fmt.Errorf("read operand: %w", err)
	}
	operand, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse operand: %w", err)
	}
	return operand, nil
}
