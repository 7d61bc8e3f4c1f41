// Package command provides the registry that maps user-typed names to
// executable commands, with typo-tolerant resolution: a near-miss gets a
// suggestion, a far miss gets the help listing.
package command

import "errors"

// Command is one named, zero-argument executable unit. Everything beyond
// the name — prompts, echoing, output — happens inside Execute.
type Command interface {
	Execute() error
}

// Func adapts a plain function to the Command interface.
type Func func() error

// Execute implements Command.
func (f Func) Execute() error {
	return f()
}

// ErrExit signals that the user asked to leave the command loop. The loop
// treats it as a clean shutdown, not a failure.
var ErrExit = errors.New("exit requested")
