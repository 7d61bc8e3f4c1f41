package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/calc"
	"github.com/tally-cli/tally/internal/command"
	"github.com/tally-cli/tally/internal/executor"
	"github.com/tally-cli/tally/internal/history"
)

// RegisterBuiltins populates the registry with the calculator's command
// set: one command per arithmetic operation plus the history, greeting,
// and exit commands. Registration is explicit and happens once at startup.
func RegisterBuiltins(reg *command.Registry, hist *history.Service, clock calc.Clock, in *bufio.Reader, out io.Writer, logger *zap.Logger) {
	for _, op := range calc.Operations() {
		reg.Register(op.Name(), executor.NewBinary(op, hist, clock, in, out, logger))
	}

	reg.Register("history", &HistoryCommand{History: hist, Out: out})
	reg.Register("deletehistory", &DeleteHistoryCommand{History: hist, In: in, Out: out, Logger: logger})
	reg.Register("clearhistory", &ClearHistoryCommand{History: hist, Out: out})

	reg.Register("greet", command.Func(func() error {
		fmt.Fprintln(out, "Hello, World!")
		return nil
	}))
	reg.Register("exit", command.Func(func() error {
		return command.ErrExit
	}))
}

// HistoryCommand renders the whole calculation history.
type HistoryCommand struct {
	History *history.Service
	Out     io.Writer
}

// Execute implements command.Command.
func (h *HistoryCommand) Execute() error {
	calcs, err := h.History.All()
	if err != nil {
		if history.IsEmptyHistory(err) {
			fmt.Fprintln(h.Out, "History is empty.")
			return nil
		}
		return err
	}
	if len(calcs) == 0 {
		// Every stored record was unreadable.
		fmt.Fprintln(h.Out, "History is empty.")
		return nil
	}

	fmt.Fprintln(h.Out, "Calculation History:")
	for _, c := range calcs {
		operands := make([]string, len(c.Operands))
		for i, operand := range c.Operands {
			operands[i] = operand.String()
		}
		result := ""
		if c.HasResult {
			result = c.Result.String()
		}
		fmt.Fprintf(h.Out, "ID: %s, Operation: %s, Operands: %s, Result: %s\n",
			c.ID, c.Op.Name(), strings.Join(operands, ","), result)
	}
	return nil
}

// DeleteHistoryCommand prompts for a calculation ID and removes it.
type DeleteHistoryCommand struct {
	History *history.Service
	In      *bufio.Reader
	Out     io.Writer
	Logger  *zap.Logger
}

// Execute implements command.Command.
func (d *DeleteHistoryCommand) Execute() error {
	fmt.Fprint(d.Out, "Enter the ID of the calculation to delete: ")
	line, err := d.In.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(d.Out, "Error: please provide a calculation ID to delete.")
		return nil
	}

	id := strings.TrimSpace(line)
	if id == "" {
		fmt.Fprintln(d.Out, "Error: please provide a calculation ID to delete.")
		return nil
	}

	if err := d.History.Delete(id); err != nil {
		fmt.Fprintf(d.Out, "Error: %v\n", err)
		return nil
	}

	d.Logger.Info("deleted calculation", zap.String("id", id))
	fmt.Fprintf(d.Out, "Calculation with ID %s has been deleted.\n", id)
	return nil
}

// ClearHistoryCommand removes the entire calculation history.
type ClearHistoryCommand struct {
	History *history.Service
	Out     io.Writer
}

// Execute implements command.Command.
func (c *ClearHistoryCommand) Execute() error {
	if err := c.History.Clear(); err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.Out, "Calculation history has been cleared.")
	return nil
}
