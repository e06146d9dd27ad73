package usecase

import "context"

// Dependencies bundles the collaborators a NotificationService is built from.
type Dependencies struct {
	Notifier NotifierPort
	Logger   LoggerPort
}

// DependenciesFactory builds a fresh dependency bundle for a channel.
type DependenciesFactory func(channel Channel) (*Dependencies, error)

// Ports define the interfaces that use cases need (hexagonal architecture)

// NotifierPort delivers an already formatted message through one channel.
type NotifierPort interface {
	Send(ctx context.Context, message string) error
}

// LoggerPort records an informational event.
type LoggerPort interface {
	Log(ctx context.Context, info string) error
}
