package platform

import "context"

// Notification is a desktop notification.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
	Close() error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) error { return nil }
func (nopNotifier) Close() error                               { return nil }

// NopNotifier drops every notification.
func NopNotifier() Notifier {
	return nopNotifier{}
}
