package repository

import (
	"context"

	"venue-deals/internal/domain/engagement"
	"venue-deals/internal/infra"
	"venue-deals/internal/infra/repository/converter"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/pgconv"
)

type EngagementWriteQueries interface {
	UpsertEngagement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertEngagementParams) error
}

type EngagementRepository struct {
	queries EngagementWriteQueries
}

func NewEngagementRepository(queries EngagementWriteQueries) *EngagementRepository {
	return &EngagementRepository{queries: queries}
}

// Upsert is one INSERT ... ON CONFLICT statement, so concurrent signals from
// the same source serialize on the row and the last writer wins.
func (r *EngagementRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rec *engagement.Record) error {
	err := r.queries.UpsertEngagement(ctx, tx, converter.EngagementToUpsertParams(rec))
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("deal no longer exists", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert engagement", err)
	}
	return nil
}
