package deal

import "venue-deals/internal/pkg/errs"

var (
	ErrEmptyTitle          = errs.NewMarked("title cannot be empty", errs.ErrValidation)
	ErrTitleTooLong        = errs.NewMarked("title exceeds maximum length", errs.ErrValidation)
	ErrDescriptionTooLong  = errs.NewMarked("description exceeds maximum length", errs.ErrValidation)
	ErrNegativePrice       = errs.NewMarked("price cannot be negative", errs.ErrValidation)
	ErrDiscountAboveOrigin = errs.NewMarked("discounted price cannot exceed original price", errs.ErrValidation)
	ErrTooManyMediaRefs    = errs.NewMarked("too many media references", errs.ErrValidation)
	ErrEmptyMediaRef       = errs.NewMarked("media reference cannot be empty", errs.ErrValidation)
	ErrMissingVenue        = errs.NewMarked("venue id is required", errs.ErrValidation)
	ErrInvalidDate         = errs.NewMarked("invalid calendar date", errs.ErrValidation)
	ErrInvalidTimeOfDay    = errs.NewMarked("invalid time of day", errs.ErrValidation)
	ErrInvalidWeekday      = errs.NewMarked("invalid weekday", errs.ErrValidation)
	ErrInvalidTimeWindow   = errs.NewMarked("time window start must not be after its end", errs.ErrValidation)
	ErrMissingDateRange    = errs.NewMarked("one-off deal requires both start and end dates", errs.ErrValidation)
	ErrInvalidDateRange    = errs.NewMarked("start date must not be after end date", errs.ErrValidation)
	ErrUnknownRecurrence   = errs.NewMarked("recurrence type must be daily or weekly", errs.ErrValidation)
	ErrEmptyRecurrenceDays = errs.NewMarked("weekly recurrence requires at least one weekday", errs.ErrValidation)
	ErrUnexpectedDays      = errs.NewMarked("daily recurrence cannot carry weekdays", errs.ErrValidation)
	ErrUnknownScheduleMode = errs.NewMarked("schedule mode must be one_off or recurring", errs.ErrValidation)
	ErrMixedScheduleFields = errs.NewMarked("schedule mixes one-off and recurring fields", errs.ErrValidation)
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxMediaRefs         = 10
)
