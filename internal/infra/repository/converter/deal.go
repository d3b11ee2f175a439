package converter

import (
	"venue-deals/internal/domain/deal"
	"venue-deals/internal/domain/engagement"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DealToCreateParams(d *deal.Deal) sqlc.CreateDealParams {
	s := d.Schedule()
	params := sqlc.CreateDealParams{
		ID:              d.ID(),
		VenueID:         d.VenueID(),
		Title:           d.Title(),
		Description:     d.Description(),
		OriginalPrice:   pgconv.DecimalPtrToNumeric(d.OriginalPrice()),
		DiscountedPrice: pgconv.DecimalPtrToNumeric(d.DiscountedPrice()),
		MediaRefs:       d.MediaRefs(),
		IsActive:        d.Active(),
		ScheduleMode:    string(s.Mode()),
		RecurrenceDays:  s.Days().Bits(),
		TimeStart:       timeOfDayToPgtype(s.Window().Start),
		TimeEnd:         timeOfDayToPgtype(s.Window().End),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	}
	if params.MediaRefs == nil {
		params.MediaRefs = []string{}
	}

	switch s.Mode() {
	case deal.ModeOneOff:
		params.DateStart = dateToPgtype(s.DateStart())
		params.DateEnd = dateToPgtype(s.DateEnd())
	case deal.ModeRecurring:
		recurrence := string(s.Recurrence())
		params.RecurrenceType = pgconv.StringPtrToPgtype(&recurrence)
		if until := s.RecurrenceEnd(); until != nil {
			params.RecurrenceEndDate = dateToPgtype(*until)
		}
	}
	return params
}

// DealFromRow rebuilds a stored deal without validation; the resolver copes
// with whatever was persisted.
func DealFromRow(row sqlc.Deals) *deal.Deal {
	var recurrence deal.RecurrenceType
	if r := pgconv.StringPtrFromPgtype(row.RecurrenceType); r != nil {
		recurrence = deal.RecurrenceType(*r)
	}

	var until *deal.Date
	if d, ok := dateFromPgtype(row.RecurrenceEndDate); ok {
		until = &d
	}
	start, _ := dateFromPgtype(row.DateStart)
	end, _ := dateFromPgtype(row.DateEnd)

	schedule := deal.ReconstructSchedule(
		deal.Mode(row.ScheduleMode),
		start,
		end,
		recurrence,
		deal.WeekdaySetFromBits(row.RecurrenceDays),
		until,
		deal.TimeWindow{
			Start: timeOfDayFromPgtype(row.TimeStart),
			End:   timeOfDayFromPgtype(row.TimeEnd),
		},
	)

	content := deal.Content{
		Title:           row.Title,
		Description:     row.Description,
		OriginalPrice:   pgconv.DecimalPtrFromNumeric(row.OriginalPrice),
		DiscountedPrice: pgconv.DecimalPtrFromNumeric(row.DiscountedPrice),
		MediaRefs:       row.MediaRefs,
	}

	return deal.ReconstructDeal(
		row.ID,
		row.VenueID,
		content,
		row.IsActive,
		schedule,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func EngagementToUpsertParams(rec *engagement.Record) sqlc.UpsertEngagementParams {
	return sqlc.UpsertEngagementParams{
		DealID:         rec.DealID(),
		SourceIdentity: rec.Source().String(),
		Signal:         rec.Signal().String(),
		RecordedAt:     pgconv.TimeToPgtype(rec.RecordedAt()),
	}
}

func dateToPgtype(d deal.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(d.Year(), d.Month(), d.Day())
}

func dateFromPgtype(pd pgtype.Date) (deal.Date, bool) {
	y, m, d, ok := pgconv.DateFromPgtype(pd)
	if !ok {
		return deal.Date{}, false
	}
	date, err := deal.NewDate(y, m, d)
	if err != nil {
		return deal.Date{}, false
	}
	return date, true
}

func timeOfDayToPgtype(t *deal.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{Valid: false}
	}
	return pgconv.SecondsToPgtypeTime(t.Seconds())
}

func timeOfDayFromPgtype(pt pgtype.Time) *deal.TimeOfDay {
	secs, ok := pgconv.SecondsFromPgtypeTime(pt)
	if !ok {
		return nil
	}
	t := deal.TimeOfDayFromSeconds(secs)
	return &t
}
