package response

import (
	"time"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ScheduleResponse struct {
	Mode              string   `json:"mode"`
	DateStart         *string  `json:"date_start,omitempty"`
	DateEnd           *string  `json:"date_end,omitempty"`
	RecurrenceType    *string  `json:"recurrence_type,omitempty"`
	RecurrenceDays    []string `json:"recurrence_days,omitempty"`
	RecurrenceEndDate *string  `json:"recurrence_end_date,omitempty"`
	TimeStart         *string  `json:"time_start,omitempty"`
	TimeEnd           *string  `json:"time_end,omitempty"`
}

type DealResponse struct {
	ID              uuid.UUID        `json:"id"`
	VenueID         uuid.UUID        `json:"venue_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	MediaRefs       []string         `json:"media_refs"`
	IsActive        bool             `json:"is_active"`
	Schedule        ScheduleResponse `json:"schedule"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type DealDetailResponse struct {
	DealResponse
	ActiveNow bool `json:"active_now"`
}

type ActiveDealsResponse struct {
	VenueID uuid.UUID       `json:"venue_id"`
	At      time.Time       `json:"at"`
	Deals   []*DealResponse `json:"deals"`
}

type CreateDealResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromDeal(d *deal.Deal) *DealResponse {
	refs := d.MediaRefs()
	if refs == nil {
		refs = []string{}
	}
	return &DealResponse{
		ID:              d.ID(),
		VenueID:         d.VenueID(),
		Title:           d.Title(),
		Description:     d.Description(),
		OriginalPrice:   d.OriginalPrice(),
		DiscountedPrice: d.DiscountedPrice(),
		MediaRefs:       refs,
		IsActive:        d.Active(),
		Schedule:        fromSchedule(d.Schedule()),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func FromDeals(deals []*deal.Deal) []*DealResponse {
	res := make([]*DealResponse, len(deals))
	for i, d := range deals {
		res[i] = FromDeal(d)
	}
	return res
}

func FromDealDetail(v *queries.DealDetail) *DealDetailResponse {
	return &DealDetailResponse{
		DealResponse: *FromDeal(v.Deal),
		ActiveNow:    v.ActiveNow,
	}
}

func fromSchedule(s deal.Schedule) ScheduleResponse {
	res := ScheduleResponse{Mode: string(s.Mode())}
	switch s.Mode() {
	case deal.ModeOneOff:
		res.DateStart = dateString(s.DateStart())
		res.DateEnd = dateString(s.DateEnd())
	case deal.ModeRecurring:
		rt := string(s.Recurrence())
		res.RecurrenceType = &rt
		if s.Recurrence() == deal.RecurrenceWeekly {
			res.RecurrenceDays = s.Days().Names()
		}
		if until := s.RecurrenceEnd(); until != nil {
			res.RecurrenceEndDate = dateString(*until)
		}
	}
	w := s.Window()
	if w.Start != nil {
		v := w.Start.String()
		res.TimeStart = &v
	}
	if w.End != nil {
		v := w.End.String()
		res.TimeEnd = &v
	}
	return res
}

func dateString(d deal.Date) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}
