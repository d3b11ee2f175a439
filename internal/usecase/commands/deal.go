package commands

import (
	"context"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/usecase/queries"
	"venue-deals/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDealInput struct {
	VenueID         uuid.UUID
	Title           string
	Description     string
	OriginalPrice   *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	MediaRefs       []string
	IsActive        bool
	Schedule        ScheduleInput
}

// ScheduleInput carries the raw schedule fields as received. Fields that do
// not belong to Mode must be absent.
type ScheduleInput struct {
	Mode              string
	DateStart         *string
	DateEnd           *string
	RecurrenceType    *string
	RecurrenceDays    []string
	RecurrenceEndDate *string
	TimeStart         *string
	TimeEnd           *string
}

type DealCommands interface {
	Create(ctx context.Context, in CreateDealInput) (uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dealCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDealCommands(uow shared.UnitOfWork, clk clock.Clock) DealCommands {
	return &dealCommandsImpl{uow: uow, clock: clk}
}

func (uc *dealCommandsImpl) Create(ctx context.Context, in CreateDealInput) (uuid.UUID, error) {
	schedule, err := BuildSchedule(in.Schedule)
	if err != nil {
		return uuid.Nil, err
	}

	content := deal.Content{
		Title:           in.Title,
		Description:     in.Description,
		OriginalPrice:   in.OriginalPrice,
		DiscountedPrice: in.DiscountedPrice,
		MediaRefs:       in.MediaRefs,
	}
	d, err := deal.NewDeal(uuid.New(), in.VenueID, content, in.IsActive, schedule, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Deals().Create(ctx, tx.DB(), d)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, shared.ClassifyStoreErr(err, queries.ErrDealNotFound)
	}
	return createdID, nil
}

func (uc *dealCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Deals().SetActive(ctx, tx.DB(), id, active, uc.clock.Now())
	})
	return shared.ClassifyStoreErr(err, queries.ErrDealNotFound)
}

// Delete is a hard delete; engagement records go with the deal.
func (uc *dealCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Deals().Delete(ctx, tx.DB(), id)
	})
	return shared.ClassifyStoreErr(err, queries.ErrDealNotFound)
}

// BuildSchedule validates raw schedule fields into a schedule the resolver can
// evaluate. Malformed schedules are rejected here so they are never stored.
func BuildSchedule(in ScheduleInput) (deal.Schedule, error) {
	window, err := buildWindow(in.TimeStart, in.TimeEnd)
	if err != nil {
		return deal.Schedule{}, err
	}

	switch deal.Mode(in.Mode) {
	case deal.ModeOneOff:
		if in.RecurrenceType != nil || len(in.RecurrenceDays) > 0 || in.RecurrenceEndDate != nil {
			return deal.Schedule{}, deal.ErrMixedScheduleFields
		}
		start, err := parseOptionalDate(in.DateStart)
		if err != nil {
			return deal.Schedule{}, err
		}
		end, err := parseOptionalDate(in.DateEnd)
		if err != nil {
			return deal.Schedule{}, err
		}
		return deal.NewOneOffSchedule(start, end, window)

	case deal.ModeRecurring:
		if in.DateStart != nil || in.DateEnd != nil {
			return deal.Schedule{}, deal.ErrMixedScheduleFields
		}
		if in.RecurrenceType == nil {
			return deal.Schedule{}, deal.ErrUnknownRecurrence
		}
		days, err := deal.ParseWeekdays(in.RecurrenceDays)
		if err != nil {
			return deal.Schedule{}, err
		}
		var until *deal.Date
		if in.RecurrenceEndDate != nil {
			d, err := deal.ParseDate(*in.RecurrenceEndDate)
			if err != nil {
				return deal.Schedule{}, err
			}
			until = &d
		}
		return deal.NewRecurringSchedule(deal.RecurrenceType(*in.RecurrenceType), days, until, window)

	default:
		return deal.Schedule{}, deal.ErrUnknownScheduleMode
	}
}

func buildWindow(start, end *string) (deal.TimeWindow, error) {
	var w deal.TimeWindow
	if start != nil {
		t, err := deal.ParseTimeOfDay(*start)
		if err != nil {
			return deal.TimeWindow{}, err
		}
		w.Start = &t
	}
	if end != nil {
		t, err := deal.ParseTimeOfDay(*end)
		if err != nil {
			return deal.TimeWindow{}, err
		}
		w.End = &t
	}
	return deal.NewTimeWindow(w.Start, w.End)
}

func parseOptionalDate(s *string) (deal.Date, error) {
	if s == nil {
		return deal.Date{}, nil
	}
	return deal.ParseDate(*s)
}
