//go:build unit || e2e

package builder

import (
	"time"

	"venue-deals/internal/domain/deal"
	reqdto "venue-deals/internal/handler/dto/request"
	"venue-deals/internal/infra/repository/converter"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DealBuilder struct {
	ID              uuid.UUID
	VenueID         uuid.UUID
	Title           string
	Description     string
	OriginalPrice   *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	MediaRefs       []string
	IsActive        bool
	Schedule        commands.ScheduleInput
	CreatedAt       time.Time
}

// NewDealBuilder defaults to an active all-day one-off deal spanning a wide
// date range.
func NewDealBuilder() *DealBuilder {
	original := decimal.RequireFromString("3000")
	discounted := decimal.RequireFromString("2400")
	return &DealBuilder{
		ID:              uuid.New(),
		VenueID:         uuid.New(),
		Title:           "Happy hour",
		Description:     "Draft beer 20% off",
		OriginalPrice:   &original,
		DiscountedPrice: &discounted,
		MediaRefs:       []string{"media/happy-hour.jpg"},
		IsActive:        true,
		Schedule: commands.ScheduleInput{
			Mode:      string(deal.ModeOneOff),
			DateStart: strPtr("2024-01-01"),
			DateEnd:   strPtr("2099-12-31"),
		},
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DealBuilder) BuildSchedule() (deal.Schedule, error) {
	return commands.BuildSchedule(b.Schedule)
}

func (b *DealBuilder) BuildDomain() (*deal.Deal, error) {
	schedule, err := b.BuildSchedule()
	if err != nil {
		return nil, err
	}
	return deal.NewDeal(b.ID, b.VenueID, b.content(), b.IsActive, schedule, b.CreatedAt)
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *DealBuilder) MustBuildDomain() *deal.Deal {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *DealBuilder) BuildInfra() sqlc.Deals {
	p := converter.DealToCreateParams(b.MustBuildDomain())
	return sqlc.Deals{
		ID:                p.ID,
		VenueID:           p.VenueID,
		Title:             p.Title,
		Description:       p.Description,
		OriginalPrice:     p.OriginalPrice,
		DiscountedPrice:   p.DiscountedPrice,
		MediaRefs:         p.MediaRefs,
		IsActive:          p.IsActive,
		ScheduleMode:      p.ScheduleMode,
		DateStart:         p.DateStart,
		DateEnd:           p.DateEnd,
		RecurrenceType:    p.RecurrenceType,
		RecurrenceDays:    p.RecurrenceDays,
		RecurrenceEndDate: p.RecurrenceEndDate,
		TimeStart:         p.TimeStart,
		TimeEnd:           p.TimeEnd,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (b *DealBuilder) BuildCreateInput() commands.CreateDealInput {
	return commands.CreateDealInput{
		VenueID:         b.VenueID,
		Title:           b.Title,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		MediaRefs:       b.MediaRefs,
		IsActive:        b.IsActive,
		Schedule:        b.Schedule,
	}
}

func (b *DealBuilder) BuildCreateRequestDTO() reqdto.CreateDealRequest {
	active := b.IsActive
	s := b.Schedule
	return reqdto.CreateDealRequest{
		VenueID:         b.VenueID,
		Title:           b.Title,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		MediaRefs:       b.MediaRefs,
		IsActive:        &active,
		Schedule: &reqdto.ScheduleRequest{
			Mode:              s.Mode,
			DateStart:         s.DateStart,
			DateEnd:           s.DateEnd,
			RecurrenceType:    s.RecurrenceType,
			RecurrenceDays:    s.RecurrenceDays,
			RecurrenceEndDate: s.RecurrenceEndDate,
			TimeStart:         s.TimeStart,
			TimeEnd:           s.TimeEnd,
		},
	}
}

func (b *DealBuilder) content() deal.Content {
	return deal.Content{
		Title:           b.Title,
		Description:     b.Description,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		MediaRefs:       b.MediaRefs,
	}
}

// Fluent builder methods
func (b *DealBuilder) WithID(id uuid.UUID) *DealBuilder {
	b.ID = id
	return b
}

func (b *DealBuilder) WithVenueID(venueID uuid.UUID) *DealBuilder {
	b.VenueID = venueID
	return b
}

func (b *DealBuilder) WithTitle(title string) *DealBuilder {
	b.Title = title
	return b
}

func (b *DealBuilder) WithPrices(original, discounted string) *DealBuilder {
	o := decimal.RequireFromString(original)
	d := decimal.RequireFromString(discounted)
	b.OriginalPrice = &o
	b.DiscountedPrice = &d
	return b
}

func (b *DealBuilder) WithoutPrices() *DealBuilder {
	b.OriginalPrice = nil
	b.DiscountedPrice = nil
	return b
}

func (b *DealBuilder) WithCreatedAt(createdAt time.Time) *DealBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *DealBuilder) Inactive() *DealBuilder {
	b.IsActive = false
	return b
}

func (b *DealBuilder) AsOneOff(start, end string) *DealBuilder {
	b.Schedule = commands.ScheduleInput{
		Mode:      string(deal.ModeOneOff),
		DateStart: strPtr(start),
		DateEnd:   strPtr(end),
		TimeStart: b.Schedule.TimeStart,
		TimeEnd:   b.Schedule.TimeEnd,
	}
	return b
}

func (b *DealBuilder) AsDaily() *DealBuilder {
	b.Schedule = commands.ScheduleInput{
		Mode:           string(deal.ModeRecurring),
		RecurrenceType: strPtr(string(deal.RecurrenceDaily)),
		TimeStart:      b.Schedule.TimeStart,
		TimeEnd:        b.Schedule.TimeEnd,
	}
	return b
}

func (b *DealBuilder) AsWeekly(days ...string) *DealBuilder {
	b.Schedule = commands.ScheduleInput{
		Mode:           string(deal.ModeRecurring),
		RecurrenceType: strPtr(string(deal.RecurrenceWeekly)),
		RecurrenceDays: days,
		TimeStart:      b.Schedule.TimeStart,
		TimeEnd:        b.Schedule.TimeEnd,
	}
	return b
}

func (b *DealBuilder) Until(date string) *DealBuilder {
	b.Schedule.RecurrenceEndDate = strPtr(date)
	return b
}

func (b *DealBuilder) WithWindow(start, end string) *DealBuilder {
	b.Schedule.TimeStart = optionalStr(start)
	b.Schedule.TimeEnd = optionalStr(end)
	return b
}

func strPtr(s string) *string {
	return &s
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
