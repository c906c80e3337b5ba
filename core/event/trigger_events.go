package event

// Slot identifies one of the invoker's command hooks.
type Slot string

const (
	SlotOnStart  Slot = "onStart"
	SlotOnFinish Slot = "onFinish"
)

// TriggerStarted is published when a trigger cycle begins.
type TriggerStarted struct {
	baseInvokerEvent
}

func NewTriggerStarted(invokerID string) *TriggerStarted {
	return &TriggerStarted{baseInvokerEvent{invokerID: invokerID}}
}

func (e *TriggerStarted) EventName() string {
	return "TriggerStarted"
}

// CommandExecuted is published after a slot's command has run.
type CommandExecuted struct {
	baseInvokerEvent
	Slot        Slot
	CommandName string
}

func NewCommandExecuted(invokerID string, slot Slot, commandName string) *CommandExecuted {
	return &CommandExecuted{
		baseInvokerEvent: baseInvokerEvent{invokerID: invokerID},
		Slot:             slot,
		CommandName:      commandName,
	}
}

func (e *CommandExecuted) EventName() string {
	return "CommandExecuted"
}

// TriggerCompleted is published when a trigger cycle ends.
type TriggerCompleted struct {
	baseInvokerEvent
	Executed int // number of slot commands that ran
}

func NewTriggerCompleted(invokerID string, executed int) *TriggerCompleted {
	return &TriggerCompleted{
		baseInvokerEvent: baseInvokerEvent{invokerID: invokerID},
		Executed:         executed,
	}
}

func (e *TriggerCompleted) EventName() string {
	return "TriggerCompleted"
}
