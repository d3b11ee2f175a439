package readstore

import (
	"context"

	"venue-deals/internal/infra"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/pgconv"
	"venue-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type EngagementReadQueries interface {
	CountEngagementsByDeal(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) (sqlc.CountEngagementsByDealRow, error)
	CountEngagementsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) (sqlc.CountEngagementsByVenueRow, error)
	ListRecentEngagementsByDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentEngagementsByDealParams) ([]sqlc.ListRecentEngagementsByDealRow, error)
	ListRecentEngagementsByVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentEngagementsByVenueParams) ([]sqlc.ListRecentEngagementsByVenueRow, error)
}

type EngagementReadStore struct {
	queries EngagementReadQueries
	db      sqlc.DBTX
}

func NewEngagementReadStore(queries EngagementReadQueries, db sqlc.DBTX) *EngagementReadStore {
	return &EngagementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EngagementReadStore) CountByDeal(ctx context.Context, dealID uuid.UUID) (*queries.EngagementCounts, error) {
	row, err := r.queries.CountEngagementsByDeal(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count engagements by deal", err)
	}
	return &queries.EngagementCounts{Liked: row.Liked, Disliked: row.Disliked}, nil
}

func (r *EngagementReadStore) CountByVenue(ctx context.Context, venueID uuid.UUID) (*queries.EngagementCounts, error) {
	row, err := r.queries.CountEngagementsByVenue(ctx, r.db, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count engagements by venue", err)
	}
	return &queries.EngagementCounts{Liked: row.Liked, Disliked: row.Disliked}, nil
}

func (r *EngagementReadStore) RecentByDeal(ctx context.Context, dealID uuid.UUID, limit int32) ([]*queries.RecentEngagement, error) {
	rows, err := r.queries.ListRecentEngagementsByDeal(ctx, r.db, sqlc.ListRecentEngagementsByDealParams{
		DealID: dealID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent engagements by deal", err)
	}
	result := make([]*queries.RecentEngagement, len(rows))
	for i, row := range rows {
		result[i] = &queries.RecentEngagement{
			DealID:     row.DealID,
			Signal:     row.Signal,
			RecordedAt: pgconv.TimeFromPgtype(row.RecordedAt),
		}
	}
	return result, nil
}

func (r *EngagementReadStore) RecentByVenue(ctx context.Context, venueID uuid.UUID, limit int32) ([]*queries.RecentEngagement, error) {
	rows, err := r.queries.ListRecentEngagementsByVenue(ctx, r.db, sqlc.ListRecentEngagementsByVenueParams{
		VenueID: venueID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent engagements by venue", err)
	}
	result := make([]*queries.RecentEngagement, len(rows))
	for i, row := range rows {
		result[i] = &queries.RecentEngagement{
			DealID:     row.DealID,
			Signal:     row.Signal,
			RecordedAt: pgconv.TimeFromPgtype(row.RecordedAt),
		}
	}
	return result, nil
}
