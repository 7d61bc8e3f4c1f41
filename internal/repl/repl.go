// Package repl runs the interactive command loop: read a command name,
// dispatch it through the registry, repeat until exit or end of input.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/command"
)

// Loop is the interactive read-dispatch loop. Execution is single-threaded
// and synchronous: each command runs to completion before the next line is
// read.
type Loop struct {
	registry *command.Registry
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
}

// New creates a loop over the given reader and writer. The reader must be
// the same one handed to the registered commands, so that operand input is
// consumed from a single buffer.
func New(registry *command.Registry, in *bufio.Reader, out io.Writer, logger *zap.Logger) *Loop {
	return &Loop{
		registry: registry,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run reads and dispatches commands until the exit command or end of
// input. Command failures are reported on one line and the loop continues;
// only a read error other than EOF ends the loop with an error.
func (l *Loop) Run() error {
	l.logger.Info("starting the application")

	for {
		fmt.Fprint(l.out, "Enter a command: ")
		line, readErr := l.in.ReadString('\n')

		if name := strings.TrimSpace(line); name != "" {
			if err := l.registry.Dispatch(name); err != nil {
				if errors.Is(err, command.ErrExit) {
					l.exit()
					return nil
				}
				fmt.Fprintf(l.out, "Error: %v\n", err)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				l.exit()
				return nil
			}
			return fmt.Errorf("read command: %w", readErr)
		}
	}
}

func (l *Loop) exit() {
	l.logger.Info("exiting the application")
	fmt.Fprintln(l.out, "Exiting the application...")
}
