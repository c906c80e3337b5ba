package command

import (
	"fmt"
	"io"
)

// SimpleCommand carries its own payload and handles it without help.
type SimpleCommand struct {
	payload string
	out     io.Writer
}

// NewSimpleCommand creates a SimpleCommand that reports payload to w.
// A nil w reports to stdout.
func NewSimpleCommand(payload string, w io.Writer) *SimpleCommand {
	return &SimpleCommand{
		payload: payload,
		out:     output(w),
	}
}

// Payload returns the payload as given at construction.
func (c *SimpleCommand) Payload() string {
	return c.payload
}

func (c *SimpleCommand) Execute() {
	fmt.Fprintf(c.out, "SimpleCommand: See, I can do simple things like printing (%s)\n", c.payload)
}

func (c *SimpleCommand) CommandName() string {
	return "SimpleCommand"
}
