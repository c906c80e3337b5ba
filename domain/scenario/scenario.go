// Package scenario describes how a client wires commands into an invoker.
package scenario

import (
	"errors"
	"fmt"
)

// CommandType selects which command variant a CommandSpec builds.
type CommandType string

const (
	CommandSimple  CommandType = "simple"
	CommandComplex CommandType = "complex"
)

// Scenario names the commands to place in each invoker slot.
// A nil slot spec leaves that slot empty.
type Scenario struct {
	Name        string
	Description string
	OnStart     *CommandSpec
	OnFinish    *CommandSpec
}

// CommandSpec describes a single command.
type CommandSpec struct {
	Type CommandType

	// Payload is used by simple commands.
	Payload string

	// A and B are the receiver context used by complex commands.
	A string
	B string
}

var (
	ErrMissingName    = errors.New("scenario name is required")
	ErrUnknownType    = errors.New("unknown command type")
	ErrMissingPayload = errors.New("simple command requires a payload key")
	ErrMissingContext = errors.New("complex command requires both a and b keys")
	ErrUnusedFields   = errors.New("field not used by this command type")
)

// Validate checks that the scenario can be built.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if err := s.OnStart.Validate(); err != nil {
		return fmt.Errorf("scenario %s: onStart: %w", s.Name, err)
	}
	if err := s.OnFinish.Validate(); err != nil {
		return fmt.Errorf("scenario %s: onFinish: %w", s.Name, err)
	}
	return nil
}

// Validate checks the command spec. A nil spec is valid (empty slot).
// Any string, including the empty one, is an acceptable payload or context;
// only fields belonging to the other variant are rejected.
func (c *CommandSpec) Validate() error {
	if c == nil {
		return nil
	}

	switch c.Type {
	case CommandSimple:
		if c.A != "" || c.B != "" {
			return fmt.Errorf("%w: a/b on simple command", ErrUnusedFields)
		}
	case CommandComplex:
		if c.Payload != "" {
			return fmt.Errorf("%w: payload on complex command", ErrUnusedFields)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}
	return nil
}

// SlotCount returns how many slots the scenario fills.
func (s *Scenario) SlotCount() int {
	n := 0
	if s.OnStart != nil {
		n++
	}
	if s.OnFinish != nil {
		n++
	}
	return n
}
