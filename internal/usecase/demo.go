package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// DemoScenarios returns the canned notifications sent when the tool runs without arguments.
func DemoScenarios() []Scenario {
	return []Scenario{
		{Channel: ChannelEmail, Recipient: "John", Content: "Your order has been shipped!"},
		{Channel: ChannelSMS, Recipient: "Alice", Content: "Your appointment is confirmed!"},
	}
}

// RunDemo sends every scenario through its own service, built from a fresh
// dependency bundle. It stops at the first failure.
func RunDemo(ctx context.Context, scenarios []Scenario, factory DependenciesFactory, logger *slog.Logger) error {
	if logger == nil {
		panic("logger is required")
	}
	if factory == nil {
		return fmt.Errorf("dependencies factory not available: %w", ErrCritical)
	}

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("demo stopped before scenario %d: %w", i+1, ErrInterrupted)
		}
		deps, err := factory(sc.Channel)
		if err != nil {
			return err
		}
		if deps == nil || deps.Notifier == nil || deps.Logger == nil {
			return fmt.Errorf("incomplete dependencies for channel %s: %w", sc.Channel, ErrCritical)
		}

		logger.DebugContext(ctx, "Sending notification", "scenario", i+1, "channel", sc.Channel.String(), "recipient", sc.Recipient)
		service := NewNotificationService(deps.Notifier, deps.Logger)
		if err := service.SendNotification(ctx, sc.Recipient, sc.Content); err != nil {
			return err
		}
	}
	logger.DebugContext(ctx, "Demo finished", "notifications", len(scenarios))
	return nil
}
