//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"

	appName      = "Lumen"
	desktopEntry = "lumen"
)

// dbusNotifier talks to the freedesktop notification daemon on the
// session bus.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New connects to the session bus. Without one the returned Notifier
// swallows everything; the app must keep running headless.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return stubNotifier{}, nil //nolint:nilerr // headless sessions run without notifications
	}

	return &dbusNotifier{
		conn: conn,
		obj:  conn.Object(notifyDest, notifyPath),
	}, nil
}

// Notify raises or updates a desktop notification and returns its ID.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}

	// org.freedesktop.Notifications.Notify(app_name, replaces_id, icon,
	// summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		notifyIface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close dismisses the notification with the given ID.
func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(notifyIface+".CloseNotification", 0, id).Err
}

// stubNotifier covers Linux hosts with no session bus.
type stubNotifier struct{}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
