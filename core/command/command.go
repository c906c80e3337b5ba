// Package command defines the command abstraction and its built-in variants.
// A command encapsulates a request as a callable unit so that whoever triggers
// it does not need to know what it does or who does it.
package command

import (
	"io"
	"os"
)

// Command is the base interface for all commands.
// Execute performs the encapsulated action exactly once per call. It reports
// nothing back to the caller.
type Command interface {
	Execute()
	// CommandName returns the name of the command for logging/debugging
	CommandName() string
}

// Receiver is the set of operations a ComplexCommand delegates to.
// Any type with these methods qualifies.
type Receiver interface {
	DoSomething(a string)
	DoSomethingElse(b string)
}

// Func adapts an ordinary function into a Command.
type Func struct {
	Name string
	Fn   func()
}

func (f Func) Execute() {
	if f.Fn != nil {
		f.Fn()
	}
}

func (f Func) CommandName() string {
	if f.Name == "" {
		return "Func"
	}
	return f.Name
}

// output returns w, or os.Stdout when w is nil.
func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
