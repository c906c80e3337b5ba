// Package main is the entry point for the invoker demo.
package main

import (
	"context"
	"os"

	"invoker-go/application"
	"invoker-go/core/event"
	"invoker-go/core/eventbus"
	"invoker-go/domain/scenario"
	"invoker-go/infrastructure/logging"
	"invoker-go/resources"
)

const defaultScenario = "hello"

func main() {
	os.Exit(run())
}

// run returns the exit status; deferred cleanup happens before main exits.
func run() int {
	if err := logging.LoadDotEnv(); err != nil {
		os.Stderr.WriteString("Failed to load .env: " + err.Error() + "\n")
		return 1
	}

	// Initialize logging (dev: stderr only, prod: rotating file)
	logger, closeLog, err := logging.Setup(logging.ConfigFromEnv())
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer closeLog()

	ctx := logging.With(context.Background(), logger)

	// Load scenarios
	registry := scenario.NewRegistry()
	if err := scenario.NewLoader(registry).LoadFromFS(resources.ScenarioFiles); err != nil {
		logger.Error("Failed to load scenarios", "error", err)
		return 1
	}
	logger.Debug("Scenarios loaded", "count", registry.Count())

	// Trace invoker activity in the log; Close drains before the log is closed
	eventBus := eventbus.New(100, logger)
	defer eventBus.Close()
	eventBus.Subscribe(func(e event.Event) {
		logger.Debug("Event", "event", e.EventName())
	})

	client := application.NewClient(&application.ClientConfig{
		Writer:   os.Stdout,
		EventBus: eventBus,
		Registry: registry,
	})

	if err := client.Run(ctx, defaultScenario); err != nil {
		logger.Error("Run failed", "scenario", defaultScenario, "error", err)
		return 1
	}
	return 0
}
