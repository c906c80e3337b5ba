package command

import (
	"fmt"
	"io"
	"reflect"
)

// ComplexCommand delegates its work to a Receiver.
//
// The receiver is borrowed, not owned: it must stay usable for as long as the
// command may be executed.
type ComplexCommand struct {
	receiver Receiver
	out      io.Writer

	// Context passed to the receiver operations.
	a string
	b string
}

// NewComplexCommand creates a command that calls r.DoSomething(a) and then
// r.DoSomethingElse(b). It panics if r is nil, including a typed nil
// pointer wrapped in the interface.
func NewComplexCommand(r Receiver, a, b string, w io.Writer) *ComplexCommand {
	if isNil(r) {
		panic("command: ComplexCommand requires a receiver")
	}
	return &ComplexCommand{
		receiver: r,
		out:      output(w),
		a:        a,
		b:        b,
	}
}

// Context returns the two context strings in delegation order.
func (c *ComplexCommand) Context() (a, b string) {
	return c.a, c.b
}

func (c *ComplexCommand) Execute() {
	fmt.Fprintln(c.out, "ComplexCommand: Complex stuff should be done by a receiver object.")
	c.receiver.DoSomething(c.a)
	c.receiver.DoSomethingElse(c.b)
}

func (c *ComplexCommand) CommandName() string {
	return "ComplexCommand"
}

func isNil(r Receiver) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
