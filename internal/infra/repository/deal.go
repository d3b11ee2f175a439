package repository

import (
	"context"
	"time"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/infra"
	"venue-deals/internal/infra/repository/converter"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) (sqlc.Deals, error)
	SetDealActive(ctx context.Context, db sqlc.DBTX, arg sqlc.SetDealActiveParams) (int64, error)
	DeleteDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DealRepository struct {
	queries DealWriteQueries
}

func NewDealRepository(queries DealWriteQueries) *DealRepository {
	return &DealRepository{queries: queries}
}

func (r *DealRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error) {
	row, err := r.queries.CreateDeal(ctx, tx, converter.DealToCreateParams(d))
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("deal already exists", err, infra.KindDuplicateKey)
		case pgconv.IsCheckViolation(err):
			return uuid.Nil, infra.WrapRepoErr("deal violates schedule constraints", err, infra.KindConstraintViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create deal", err)
	}
	return row.ID, nil
}

func (r *DealRepository) SetActive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, active bool, at time.Time) error {
	n, err := r.queries.SetDealActive(ctx, tx, sqlc.SetDealActiveParams{
		ID:        id,
		IsActive:  active,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update deal activation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteDeal(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete deal", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)
	}
	return nil
}
