package request

import (
	"venue-deals/internal/pkg/patch"
	"venue-deals/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDealRequest struct {
	VenueID         uuid.UUID        `json:"venue_id" binding:"required"`
	Title           string           `json:"title" binding:"required,max=200"`
	Description     string           `json:"description" binding:"max=2000"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	MediaRefs       []string         `json:"media_refs,omitempty" binding:"max=10,dive,required"`
	// Defaults to true when omitted.
	IsActive *bool            `json:"is_active,omitempty"`
	Schedule *ScheduleRequest `json:"schedule" binding:"required"`
}

type ScheduleRequest struct {
	Mode              string   `json:"mode" binding:"required,oneof=one_off recurring"`
	DateStart         *string  `json:"date_start,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DateEnd           *string  `json:"date_end,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RecurrenceType    *string  `json:"recurrence_type,omitempty" binding:"omitempty,oneof=daily weekly"`
	RecurrenceDays    []string `json:"recurrence_days,omitempty" binding:"omitempty,max=7,dive,weekday"`
	RecurrenceEndDate *string  `json:"recurrence_end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	TimeStart         *string  `json:"time_start,omitempty" binding:"omitempty,clock"`
	TimeEnd           *string  `json:"time_end,omitempty" binding:"omitempty,clock"`
}

type SetActivationRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (r *CreateDealRequest) ToInput() commands.CreateDealInput {
	in := commands.CreateDealInput{
		VenueID:         r.VenueID,
		Title:           r.Title,
		Description:     r.Description,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		MediaRefs:       r.MediaRefs,
		IsActive:        patch.Coalesce(r.IsActive, true),
	}
	if r.Schedule != nil {
		in.Schedule = commands.ScheduleInput{
			Mode:              r.Schedule.Mode,
			DateStart:         r.Schedule.DateStart,
			DateEnd:           r.Schedule.DateEnd,
			RecurrenceType:    r.Schedule.RecurrenceType,
			RecurrenceDays:    r.Schedule.RecurrenceDays,
			RecurrenceEndDate: r.Schedule.RecurrenceEndDate,
			TimeStart:         r.Schedule.TimeStart,
			TimeEnd:           r.Schedule.TimeEnd,
		}
	}
	return in
}
