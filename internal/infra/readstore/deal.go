package readstore

import (
	"context"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/infra"
	"venue-deals/internal/infra/repository/converter"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealReadQueries interface {
	ListActiveDealsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.Deals, error)
	GetDealByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
}

type DealReadStore struct {
	queries DealReadQueries
	db      sqlc.DBTX
}

func NewDealReadStore(queries DealReadQueries, db sqlc.DBTX) *DealReadStore {
	return &DealReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DealReadStore) ListActiveByVenue(ctx context.Context, venueID uuid.UUID) ([]*deal.Deal, error) {
	rows, err := r.queries.ListActiveDealsByVenue(ctx, r.db, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active deals by venue", err)
	}
	result := make([]*deal.Deal, len(rows))
	for i, row := range rows {
		result[i] = converter.DealFromRow(row)
	}
	return result, nil
}

func (r *DealReadStore) GetByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal by id", err)
	}
	return converter.DealFromRow(row), nil
}
