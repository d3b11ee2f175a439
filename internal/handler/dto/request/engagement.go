package request

import (
	"time"

	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordEngagementRequest struct {
	DealID    uuid.UUID  `json:"deal_id" binding:"required"`
	Type      string     `json:"type" binding:"required,oneof=liked disliked"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func (r *RecordEngagementRequest) ToInput(source string) commands.RecordEngagementInput {
	return commands.RecordEngagementInput{
		DealID: r.DealID,
		Source: source,
		Type:   r.Type,
		At:     r.Timestamp,
	}
}

type StatsQuery struct {
	DealID  string `form:"deal_id" binding:"omitempty,uuid"`
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
}

// Selector enforces that exactly one of deal_id or venue_id is set.
func (q *StatsQuery) Selector() (queries.StatsSelector, error) {
	return queries.NewStatsSelector(parseOptionalUUID(q.DealID), parseOptionalUUID(q.VenueID))
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
