package queries

import (
	"context"
	"time"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/pkg/errs"
	"venue-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDealNotFound = errs.NewMarked("deal not found", errs.ErrNotFound)

// DealDetail is a single deal with its activity derived at read time.
type DealDetail struct {
	Deal      *deal.Deal
	ActiveNow bool
}

type DealReadStore interface {
	// ListActiveByVenue returns the venue's deals whose kill switch is on.
	ListActiveByVenue(ctx context.Context, venueID uuid.UUID) ([]*deal.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
}

type DealQueries interface {
	// ActiveDealsFor lists the venue's deals live at the given instant, or at
	// the current time when at is nil, newest first.
	ActiveDealsFor(ctx context.Context, venueID uuid.UUID, at *time.Time) ([]*deal.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DealDetail, error)
}

type dealQueriesImpl struct {
	store DealReadStore
	clock clock.Clock
}

func NewDealQueries(store DealReadStore, clk clock.Clock) DealQueries {
	return &dealQueriesImpl{store: store, clock: clk}
}

func (q *dealQueriesImpl) ActiveDealsFor(ctx context.Context, venueID uuid.UUID, at *time.Time) ([]*deal.Deal, error) {
	now := q.now(at)

	candidates, err := q.store.ListActiveByVenue(ctx, venueID)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, ErrDealNotFound)
	}

	active := deal.FilterActive(candidates, now)
	deal.SortNewestFirst(active)
	return active, nil
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DealDetail, error) {
	d, err := q.store.GetByID(ctx, id)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, ErrDealNotFound)
	}
	return &DealDetail{Deal: d, ActiveNow: d.IsActiveAt(q.now(nil))}, nil
}

// now converts an explicit instant to the clock's zone so that schedules are
// read against the venue wall clock.
func (q *dealQueriesImpl) now(at *time.Time) time.Time {
	now := q.clock.Now()
	if at == nil || at.IsZero() {
		return now
	}
	return at.In(now.Location())
}
