package deal

import (
	"slices"
	"time"
)

// IsActiveAt reports whether the deal is live at now. The calendar date and
// wall-clock time are read in now's location, so callers pass now already
// converted to the venue's zone.
//
// The result is never stored; it is recomputed on every query.
func (d *Deal) IsActiveAt(now time.Time) bool {
	if d == nil || !d.active {
		return false
	}
	return d.schedule.ActiveAt(now)
}

// ActiveAt evaluates the schedule alone, ignoring the kill switch.
// Incomplete schedules evaluate to false instead of failing.
func (s Schedule) ActiveAt(now time.Time) bool {
	today := DateOf(now)

	switch s.mode {
	case ModeOneOff:
		if s.dateStart.IsZero() || s.dateEnd.IsZero() {
			return false
		}
		if today.Before(s.dateStart) || today.After(s.dateEnd) {
			return false
		}
	case ModeRecurring:
		if s.recurrenceEnd != nil && today.After(*s.recurrenceEnd) {
			return false
		}
		switch s.recurrence {
		case RecurrenceDaily:
		case RecurrenceWeekly:
			// an empty set never matches
			if !s.days.Contains(now.Weekday()) {
				return false
			}
		default:
			return false
		}
	default:
		return false
	}

	return s.window.Contains(ClockOf(now))
}

// FilterActive keeps the deals live at now, preserving input order.
func FilterActive(deals []*Deal, now time.Time) []*Deal {
	active := make([]*Deal, 0, len(deals))
	for _, d := range deals {
		if d.IsActiveAt(now) {
			active = append(active, d)
		}
	}
	return active
}

// SortNewestFirst orders by creation time descending, then id ascending.
func SortNewestFirst(deals []*Deal) {
	slices.SortStableFunc(deals, func(a, b *Deal) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return compareIDs(a.id, b.id)
	})
}

func compareIDs(a, b [16]byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
