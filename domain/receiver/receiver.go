// Package receiver holds the business operations commands delegate to.
package receiver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Receiver performs the actual work behind a delegating command.
// It keeps no state between calls and may be shared by many commands.
type Receiver struct {
	out    io.Writer
	logger *slog.Logger
}

// New creates a Receiver that reports to w (stdout if nil).
// A nil logger falls back to slog.Default().
func New(w io.Writer, logger *slog.Logger) *Receiver {
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Receiver{out: w, logger: logger}
}

func (r *Receiver) DoSomething(a string) {
	r.logger.Debug("Receiver operation", "op", "DoSomething", "arg", a)
	fmt.Fprintf(r.out, "Receiver: Working on (%s.)\n", a)
}

func (r *Receiver) DoSomethingElse(b string) {
	r.logger.Debug("Receiver operation", "op", "DoSomethingElse", "arg", b)
	fmt.Fprintf(r.out, "Receiver: Also working on (%s.)\n", b)
}
