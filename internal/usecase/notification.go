package usecase

import "context"

// NotificationService formats a message, sends it through the injected
// notifier and records the delivery through the injected logger.
type NotificationService struct {
	notifier  NotifierPort
	logger    LoggerPort
	formatter MessageFormatter
}

// NewNotificationService creates a service from externally built collaborators.
func NewNotificationService(notifier NotifierPort, logger LoggerPort) *NotificationService {
	if notifier == nil {
		panic("notification service requires notifier")
	}
	if logger == nil {
		panic("notification service requires logger")
	}
	return &NotificationService{notifier: notifier, logger: logger}
}

// SendNotification sends one message to recipient and logs it.
// Errors from the notifier or the logger are returned as is; a failed send is not logged.
func (s *NotificationService) SendNotification(ctx context.Context, recipient, content string) error {
	message := s.formatter.FormatMessage(recipient, content)
	if err := s.notifier.Send(ctx, message); err != nil {
		return err
	}
	return s.logger.Log(ctx, "Notification sent to "+recipient)
}
