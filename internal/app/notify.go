// internal/app/notify.go
package app

import (
	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/notify"
)

// sendCriticalNotification mirrors a critical fault to the desktop so
// it is seen even when the terminal is not focused. Consecutive
// criticals replace the previous notification instead of stacking,
// matching the last-critical-wins modal.
func (m *Model) sendCriticalNotification(e fault.Event) {
	if m.Notifier == nil || !m.notifyEnabled {
		return
	}

	body := e.Category
	if e.Origin.File != "" {
		body += " · " + e.Origin.Short()
	}

	id, err := m.Notifier.Notify(notify.Notification{
		Title:      e.Message,
		Body:       body,
		Timeout:    int32(m.notifyConfig.TimeoutMS),
		ReplacesID: m.lastCriticalID,
		Urgency:    notify.UrgencyCritical,
	})
	if err != nil {
		m.Handler.Report(errmsg.Format(errmsg.OpNotifySend, err), fault.SeverityWarn)
		return
	}
	m.lastCriticalID = id
}
