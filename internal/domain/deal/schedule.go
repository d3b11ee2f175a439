package deal

type Mode string

const (
	ModeOneOff    Mode = "one_off"
	ModeRecurring Mode = "recurring"
)

type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// TimeWindow bounds the hours of a day a deal is live. A nil bound is open.
type TimeWindow struct {
	Start *TimeOfDay
	End   *TimeOfDay
}

func NewTimeWindow(start, end *TimeOfDay) (TimeWindow, error) {
	if start != nil && end != nil && *start > *end {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{Start: start, End: end}, nil
}

func (w TimeWindow) Contains(clock TimeOfDay) bool {
	if w.Start != nil && clock < *w.Start {
		return false
	}
	if w.End != nil && clock > *w.End {
		return false
	}
	return true
}

func (w TimeWindow) IsAllDay() bool { return w.Start == nil && w.End == nil }

// Schedule is either a one-off inclusive date range or a daily/weekly
// recurrence, each optionally narrowed by a time-of-day window.
type Schedule struct {
	mode          Mode
	dateStart     Date
	dateEnd       Date
	recurrence    RecurrenceType
	days          WeekdaySet
	recurrenceEnd *Date
	window        TimeWindow
}

func NewOneOffSchedule(start, end Date, window TimeWindow) (Schedule, error) {
	if start.IsZero() || end.IsZero() {
		return Schedule{}, ErrMissingDateRange
	}
	if start.After(end) {
		return Schedule{}, ErrInvalidDateRange
	}
	if _, err := NewTimeWindow(window.Start, window.End); err != nil {
		return Schedule{}, err
	}
	return Schedule{
		mode:      ModeOneOff,
		dateStart: start,
		dateEnd:   end,
		window:    window,
	}, nil
}

func NewRecurringSchedule(recurrence RecurrenceType, days WeekdaySet, until *Date, window TimeWindow) (Schedule, error) {
	switch recurrence {
	case RecurrenceDaily:
		if !days.IsEmpty() {
			return Schedule{}, ErrUnexpectedDays
		}
	case RecurrenceWeekly:
		if days.IsEmpty() {
			return Schedule{}, ErrEmptyRecurrenceDays
		}
	default:
		return Schedule{}, ErrUnknownRecurrence
	}
	if until != nil && until.IsZero() {
		until = nil
	}
	if _, err := NewTimeWindow(window.Start, window.End); err != nil {
		return Schedule{}, err
	}
	return Schedule{
		mode:          ModeRecurring,
		recurrence:    recurrence,
		days:          days,
		recurrenceEnd: until,
		window:        window,
	}, nil
}

// ReconstructSchedule rebuilds a stored schedule without validation. Whatever
// was persisted must still be evaluable, so inconsistent combinations are kept
// and simply never match.
func ReconstructSchedule(mode Mode, dateStart, dateEnd Date, recurrence RecurrenceType, days WeekdaySet, until *Date, window TimeWindow) Schedule {
	return Schedule{
		mode:          mode,
		dateStart:     dateStart,
		dateEnd:       dateEnd,
		recurrence:    recurrence,
		days:          days,
		recurrenceEnd: until,
		window:        window,
	}
}

func (s Schedule) Mode() Mode                 { return s.mode }
func (s Schedule) DateStart() Date            { return s.dateStart }
func (s Schedule) DateEnd() Date              { return s.dateEnd }
func (s Schedule) Recurrence() RecurrenceType { return s.recurrence }
func (s Schedule) Days() WeekdaySet           { return s.days }
func (s Schedule) RecurrenceEnd() *Date       { return s.recurrenceEnd }
func (s Schedule) Window() TimeWindow         { return s.window }
