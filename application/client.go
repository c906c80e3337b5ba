// Package application wires receivers, commands and invokers together from
// scenario descriptions.
package application

import (
	"context"
	"fmt"
	"io"
	"os"

	"invoker-go/core/command"
	"invoker-go/core/eventbus"
	"invoker-go/core/invoker"
	"invoker-go/domain/receiver"
	"invoker-go/domain/scenario"
	"invoker-go/infrastructure/logging"
)

// Client builds invokers from scenarios and triggers them.
// Diagnostics go to the logger carried by the context (see logging.With).
type Client struct {
	out      io.Writer
	eventBus eventbus.EventBus
	registry *scenario.Registry
}

// ClientConfig holds configuration for the Client.
type ClientConfig struct {
	// Writer receives all demo output. Defaults to os.Stdout.
	Writer   io.Writer
	EventBus eventbus.EventBus
	Registry *scenario.Registry
}

// NewClient creates a new Client.
func NewClient(cfg *ClientConfig) *Client {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Registry == nil {
		cfg.Registry = scenario.NewRegistry()
	}

	return &Client{
		out:      cfg.Writer,
		eventBus: cfg.EventBus,
		registry: cfg.Registry,
	}
}

// Build constructs a receiver, the scenario's commands and an invoker with
// those commands in its slots. The receiver is shared by every complex
// command of the scenario and lives as long as the returned invoker does.
func (c *Client) Build(ctx context.Context, sc *scenario.Scenario) (*invoker.Invoker, error) {
	if sc == nil {
		return nil, fmt.Errorf("invalid scenario: %w", scenario.ErrMissingName)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger := logging.From(ctx)
	recv := receiver.New(c.out, logger)

	inv := invoker.New(&invoker.Config{
		Writer:   c.out,
		EventBus: c.eventBus,
		Logger:   logger,
	})

	if cmd := c.buildCommand(sc.OnStart, recv); cmd != nil {
		inv.SetOnStart(cmd)
	}
	if cmd := c.buildCommand(sc.OnFinish, recv); cmd != nil {
		inv.SetOnFinish(cmd)
	}

	logger.Debug("Scenario built", "invoker_id", inv.ID(), "slots", sc.SlotCount())
	return inv, nil
}

// Run builds the named scenario and triggers it once.
func (c *Client) Run(ctx context.Context, name string) error {
	sc := c.registry.Get(name)
	if sc == nil {
		return fmt.Errorf("scenario not found: %s", name)
	}

	ctx = logging.WithAttrs(ctx, "scenario", name)
	inv, err := c.Build(ctx, sc)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("Triggering invoker", "invoker_id", inv.ID())
	inv.DoSomethingImportant()
	return nil
}

// Scenarios returns the names of all known scenarios.
func (c *Client) Scenarios() []string {
	return c.registry.List()
}

// buildCommand returns nil for a nil spec. spec must already be validated.
func (c *Client) buildCommand(spec *scenario.CommandSpec, recv *receiver.Receiver) command.Command {
	if spec == nil {
		return nil
	}

	switch spec.Type {
	case scenario.CommandSimple:
		return command.NewSimpleCommand(spec.Payload, c.out)
	case scenario.CommandComplex:
		return command.NewComplexCommand(recv, spec.A, spec.B, c.out)
	default:
		panic(fmt.Sprintf("application: unvalidated command type %q", spec.Type))
	}
}
