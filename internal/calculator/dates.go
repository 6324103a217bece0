package calculator

import "time"

// DateStatus classifies how close a date is.
type DateStatus string

const (
	StatusOK      DateStatus = "ok"
	StatusWarning DateStatus = "warning"
	StatusUrgent  DateStatus = "urgent"
	StatusOverdue DateStatus = "overdue"
)

const (
	// UrgentWithinDays is the last day (inclusive) that counts as urgent.
	UrgentWithinDays = 7
	// WarningWithinDays is the last day (inclusive) that counts as a warning.
	WarningWithinDays = 30
)

// DaysUntil returns the number of calendar days from now's date to target's
// date. Both dates are read in their own location; time of day is ignored.
func DaysUntil(target, now time.Time) int {
	ty, tm, td := target.Date()
	ny, nm, nd := now.Date()
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(n).Hours() / 24)
}

// ClassifyDate returns the status of target relative to now.
// Boundaries belong to the more urgent bucket. A zero target is StatusOK.
func ClassifyDate(target, now time.Time) DateStatus {
	if target.IsZero() {
		return StatusOK
	}
	return ClassifyDays(DaysUntil(target, now))
}

func ClassifyDays(days int) DateStatus {
	switch {
	case days < 0:
		return StatusOverdue
	case days <= UrgentWithinDays:
		return StatusUrgent
	case days <= WarningWithinDays:
		return StatusWarning
	default:
		return StatusOK
	}
}
