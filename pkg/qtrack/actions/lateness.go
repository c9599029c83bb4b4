package actions

import (
	"time"

	"github.com/qtrack/qtrack/pkg/qtrack/models"
)

// Lateness reports whether a corrective action is overdue at time now, and
// by how many whole days. Computed at read time from its three stored
// inputs, never cached: "now" is the only time-varying input, so a stored
// flag would go stale. A finished action is never late.
func Lateness(createdAt time.Time, deadlineDays int, status models.ActionStatus, now time.Time) (isLate bool, daysOverdue int) {
	if status == models.ActionStatusTermine {
		return false, 0
	}
	daysElapsed := int(now.Sub(createdAt).Hours() / 24)
	if daysElapsed > deadlineDays {
		return true, daysElapsed - deadlineDays
	}
	return false, 0
}
