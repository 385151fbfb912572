// Package notify delivers desktop notifications over D-Bus. The app uses
// it to alert the operator when a critical fault fires while the terminal
// is unattended.
package notify

// Urgency is the freedesktop urgency hint, in its wire encoding.
type Urgency byte

const (
	UrgencyLow      Urgency = iota // 0
	UrgencyNormal                  // 1
	UrgencyCritical                // 2
)

// Notification contains data for one desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier posts notifications to the desktop shell.
type Notifier interface {
	// Notify sends a notification and returns its ID. Passing the ID of
	// an earlier notification as ReplacesID updates it in place, which
	// the app uses to collapse a cascade of criticals into one bubble.
	// On hosts without a notification service the ID is 0 and err nil.
	Notify(n Notification) (uint32, error)
	// Close dismisses the notification with the given ID.
	Close(id uint32) error
}
