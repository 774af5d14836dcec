//go:build linux

package platform

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = notificationsService + ".Notify"
	notifyTimeoutMillis  = int32(8000)
)

type dbusNotifier struct {
	appName string
	conn    *dbus.Conn
}

// NewNotifier connects to the session bus and sends notifications through
// org.freedesktop.Notifications.
func NewNotifier(appName string) (Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &dbusNotifier{appName: appName, conn: conn}, nil
}

func (notifier *dbusNotifier) Notify(ctx context.Context, notification Notification) error {
	icon := notification.Icon
	if icon == "" {
		icon = "appointment-soon"
	}
	obj := notifier.conn.Object(notificationsService, dbus.ObjectPath(notificationsPath))
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		notifier.appName,
		uint32(0),
		icon,
		notification.Title,
		notification.Body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		notifyTimeoutMillis,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

func (notifier *dbusNotifier) Close() error {
	return notifier.conn.Close()
}
