//go:build !linux

package notify

// stubNotifier swallows notifications on platforms without a D-Bus
// session; critical faults still reach the modal and the journal.
type stubNotifier struct{}

// New hands back the stub; only Linux gets a bus connection.
func New() (Notifier, error) {
	return stubNotifier{}, nil
}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
