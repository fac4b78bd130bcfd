package usecase

import "context"

// MessageNotifier receives a reference after a user's message has been
// committed. Implementations must not block the caller and never fail it.
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, reference string)
}

// NoopNotifier discards notifications.
type NoopNotifier struct{}

func (NoopNotifier) NotifyMessage(context.Context, string) {}
