package command

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Registry resolves user-typed names to commands. It is populated by
// explicit registration at startup — there is no runtime discovery — and
// always contains a built-in help command listing the registered names, so
// the miss fallback has something to show.
type Registry struct {
	commands map[string]Command
	out      io.Writer
	logger   *zap.Logger
}

// NewRegistry creates a registry holding only the built-in help command.
func NewRegistry(out io.Writer, logger *zap.Logger) *Registry {
	r := &Registry{
		commands: make(map[string]Command),
		out:      out,
		logger:   logger,
	}
	r.Register("help", Func(func() error {
		r.printHelp()
		return nil
	}))
	return r
}

// Register associates name with cmd. Re-registering a name overwrites
// silently — last write wins.
func (r *Registry) Register(name string, cmd Command) {
	r.commands[norm.NFC.String(name)] = cmd
}

// Names returns all registered command names, sorted. Used by help and as
// the suggestion candidate pool.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the command registered under name. Names are
// NFC-normalized before lookup so pasted input with decomposed accents
// still matches.
func (r *Registry) Resolve(name string) (Command, bool) {
	cmd, ok := r.commands[norm.NFC.String(name)]
	return cmd, ok
}

// Dispatch resolves name and executes the command. On a miss it offers
// the closest registered name when one is similar enough, and otherwise
// reports the miss and prints the help listing. The name is NFC-normalized
// once up front so lookup and suggestion scoring see the same form.
func (r *Registry) Dispatch(name string) error {
	name = norm.NFC.String(name)
	cmd, ok := r.commands[name]
	if !ok {
		r.handleUnknown(name)
		return nil
	}

	r.logger.Debug("executing command", zap.String("command", name))
	return cmd.Execute()
}

func (r *Registry) handleUnknown(name string) {
	if suggestion, ok := Suggest(name, r.Names()); ok {
		r.logger.Debug("suggesting command",
			zap.String("input", name),
			zap.String("suggestion", suggestion),
		)
		fmt.Fprintf(r.out, "Command %q not found. Did you mean %q?\n", name, suggestion)
		return
	}

	fmt.Fprintf(r.out, "Command %q not found\n", name)
	r.printHelp()
}

func (r *Registry) printHelp() {
	fmt.Fprintln(r.out, "Available commands:")
	for _, name := range r.Names() {
		fmt.Fprintf(r.out, "  %s\n", name)
	}
}
