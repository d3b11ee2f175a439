package response

import (
	"time"

	"venue-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RecentEngagementResponse struct {
	DealID     uuid.UUID `json:"deal_id"`
	Signal     string    `json:"type"`
	RecordedAt time.Time `json:"recorded_at"`
}

type EngagementStatsResponse struct {
	DealID   *uuid.UUID                  `json:"deal_id,omitempty"`
	VenueID  *uuid.UUID                  `json:"venue_id,omitempty"`
	Liked    int64                       `json:"liked"`
	Disliked int64                       `json:"disliked"`
	Total    int64                       `json:"total"`
	Rate     float64                     `json:"rate"`
	Bucket   string                      `json:"bucket"`
	Recent   []*RecentEngagementResponse `json:"recent"`
}

func FromEngagementStats(sel queries.StatsSelector, v *queries.EngagementStats) (*EngagementStatsResponse, error) {
	rate, _ := v.Stats.Rate().Float64()
	res := &EngagementStatsResponse{
		Liked:    v.Stats.Liked(),
		Disliked: v.Stats.Disliked(),
		Total:    v.Stats.Total(),
		Rate:     rate,
		Bucket:   string(v.Stats.Bucket()),
		Recent:   []*RecentEngagementResponse{},
	}
	if id, ok := sel.DealID(); ok {
		res.DealID = &id
	}
	if id, ok := sel.VenueID(); ok {
		res.VenueID = &id
	}
	if err := copier.Copy(&res.Recent, v.Recent); err != nil {
		return nil, err
	}
	return res, nil
}
