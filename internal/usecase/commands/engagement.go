package commands

import (
	"context"
	"time"

	"venue-deals/internal/domain/engagement"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/usecase/queries"
	"venue-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordEngagementInput struct {
	DealID uuid.UUID
	// Source is the opaque per-origin identity derived at the HTTP boundary.
	Source string
	Type   string
	// At defaults to the current time when nil.
	At *time.Time
}

type EngagementCommands interface {
	Record(ctx context.Context, in RecordEngagementInput) error
}

type engagementCommandsImpl struct {
	uow   shared.UnitOfWork
	repo  shared.EngagementRepository
	clock clock.Clock
}

func NewEngagementCommands(uow shared.UnitOfWork, repo shared.EngagementRepository, clk clock.Clock) EngagementCommands {
	return &engagementCommandsImpl{uow: uow, repo: repo, clock: clk}
}

// Record stores the source's latest signal for the deal. Repeating the call
// leaves one record per (deal, source) carrying the last type and time.
func (uc *engagementCommandsImpl) Record(ctx context.Context, in RecordEngagementInput) error {
	recordedAt := uc.clock.Now()
	if in.At != nil && !in.At.IsZero() {
		recordedAt = *in.At
	}

	rec, err := engagement.NewRecord(in.DealID, in.Source, in.Type, recordedAt)
	if err != nil {
		return err
	}

	if _, err := uc.uow.CommandReads().DealByID(ctx, rec.DealID()); err != nil {
		return shared.ClassifyStoreErr(err, queries.ErrDealNotFound)
	}

	// A hard delete between the check and the upsert surfaces as a foreign
	// key violation, which is classified as not found as well.
	err = uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return uc.repo.Upsert(ctx, db, rec)
	})
	return shared.ClassifyStoreErr(err, queries.ErrDealNotFound)
}
