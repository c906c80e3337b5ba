// Package invoker provides the Invoker, which triggers commands around its
// own work without knowing what those commands are or what they do.
package invoker

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"invoker-go/core/command"
	"invoker-go/core/event"
	"invoker-go/core/eventbus"
	"invoker-go/core/state"
)

// Invoker holds two optional command hooks and runs them around its work.
//
// Slots hold non-owning references: the caller keeps each command (and
// whatever it references) alive for as long as the invoker may trigger it.
// An Invoker is not safe for concurrent use.
type Invoker struct {
	id       string
	onStart  command.Command
	onFinish command.Command
	state    state.InvokerState

	out      io.Writer
	eventBus eventbus.EventBus
	logger   *slog.Logger
}

// Config holds configuration for an Invoker.
type Config struct {
	// ID identifies the invoker in events. Generated if empty.
	ID string
	// Writer receives the invoker's notifications. Defaults to os.Stdout.
	Writer io.Writer
	// EventBus is optional; when set, trigger progress is published to it.
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// New creates an Invoker with both slots empty.
func New(cfg *Config) *Invoker {
	if cfg == nil {
		cfg = &Config{}
	}

	inv := &Invoker{
		id:       cfg.ID,
		state:    state.StateUnconfigured,
		out:      cfg.Writer,
		eventBus: cfg.EventBus,
		logger:   cfg.Logger,
	}
	if inv.id == "" {
		inv.id = uuid.NewString()
	}
	if inv.out == nil {
		inv.out = os.Stdout
	}
	if inv.logger == nil {
		inv.logger = slog.Default()
	}
	inv.logger = inv.logger.With("invoker_id", inv.id)

	return inv
}

// ID returns the invoker ID.
func (i *Invoker) ID() string {
	return i.id
}

// State returns the current lifecycle state.
func (i *Invoker) State() state.InvokerState {
	return i.state
}

// SetOnStart sets the command run before the invoker's work.
// A nil cmd clears the slot.
func (i *Invoker) SetOnStart(cmd command.Command) {
	i.onStart = cmd
	i.configured(event.SlotOnStart, cmd)
}

// SetOnFinish sets the command run after the invoker's work.
// A nil cmd clears the slot.
func (i *Invoker) SetOnFinish(cmd command.Command) {
	i.onFinish = cmd
	i.configured(event.SlotOnFinish, cmd)
}

// OnStart returns the onStart command and whether the slot is set.
func (i *Invoker) OnStart() (command.Command, bool) {
	return i.onStart, i.onStart != nil
}

// OnFinish returns the onFinish command and whether the slot is set.
func (i *Invoker) OnFinish() (command.Command, bool) {
	return i.onFinish, i.onFinish != nil
}

// DoSomethingImportant runs one trigger cycle: notification, onStart,
// internal work, notification, onFinish. Empty slots are skipped.
func (i *Invoker) DoSomethingImportant() {
	i.transition(state.StateTriggering)
	i.publish(event.NewTriggerStarted(i.id))

	executed := 0

	i.notify("Invoker: Does anybody want something done before I begin?")
	if i.run(event.SlotOnStart, i.onStart) {
		executed++
	}

	i.notify("Invoker: ...doing something really important...")

	i.notify("Invoker: Does anybody want something done after I finish?")
	if i.run(event.SlotOnFinish, i.onFinish) {
		executed++
	}

	i.publish(event.NewTriggerCompleted(i.id, executed))
	i.transition(state.StateTriggered)
}

// run executes cmd if present and reports whether it ran.
func (i *Invoker) run(slot event.Slot, cmd command.Command) bool {
	if cmd == nil {
		i.logger.Debug("Slot empty, skipping", "slot", slot)
		return false
	}

	i.logger.Debug("Executing command", "slot", slot, "command", cmd.CommandName())
	cmd.Execute()
	i.publish(event.NewCommandExecuted(i.id, slot, cmd.CommandName()))
	return true
}

func (i *Invoker) configured(slot event.Slot, cmd command.Command) {
	name := "<none>"
	if cmd != nil {
		name = cmd.CommandName()
	}
	i.logger.Debug("Slot set", "slot", slot, "command", name)
	i.transition(state.StateConfigured)
}

func (i *Invoker) notify(msg string) {
	fmt.Fprintln(i.out, msg)
}

// transition moves to the target state. Invalid transitions are logged and
// applied anyway: lifecycle tracking never blocks the invoker.
func (i *Invoker) transition(to state.InvokerState) {
	from := i.state
	if !from.CanTransitionTo(to) {
		reason := "out-of-order lifecycle"
		if from.IsTriggering() {
			reason = "invoker used from inside its own trigger"
		}
		i.logger.Warn("Unexpected state transition",
			"error", state.NewTransitionError(from, to, reason))
	}
	i.state = to
	if from != to {
		i.publish(event.NewStateChanged(i.id, from, to))
	}
}

func (i *Invoker) publish(e event.Event) {
	if i.eventBus != nil {
		i.eventBus.Publish(e)
	}
}
