package queries

import (
	"context"
	"time"

	"venue-deals/internal/domain/engagement"
	"venue-deals/internal/pkg/config"
	"venue-deals/internal/pkg/errs"
	"venue-deals/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSampleSize = 10
	maxSampleSize     = 100
)

var ErrInvalidStatsSelector = errs.NewMarked("exactly one of deal_id or venue_id is required", errs.ErrValidation)

type EngagementCounts struct {
	Liked    int64
	Disliked int64
}

type RecentEngagement struct {
	DealID     uuid.UUID `json:"deal_id"`
	Signal     string    `json:"type"`
	RecordedAt time.Time `json:"recorded_at"`
}

type EngagementStats struct {
	Stats  engagement.Stats
	Recent []*RecentEngagement
}

// StatsSelector scopes a stats query to one deal or one venue, never both.
type StatsSelector struct {
	dealID  uuid.UUID
	venueID uuid.UUID
}

func NewStatsSelector(dealID, venueID *uuid.UUID) (StatsSelector, error) {
	hasDeal := dealID != nil && *dealID != uuid.Nil
	hasVenue := venueID != nil && *venueID != uuid.Nil
	switch {
	case hasDeal && !hasVenue:
		return StatsSelector{dealID: *dealID}, nil
	case hasVenue && !hasDeal:
		return StatsSelector{venueID: *venueID}, nil
	default:
		return StatsSelector{}, ErrInvalidStatsSelector
	}
}

func ForDeal(id uuid.UUID) StatsSelector  { return StatsSelector{dealID: id} }
func ForVenue(id uuid.UUID) StatsSelector { return StatsSelector{venueID: id} }

func (s StatsSelector) DealID() (uuid.UUID, bool)  { return s.dealID, s.dealID != uuid.Nil }
func (s StatsSelector) VenueID() (uuid.UUID, bool) { return s.venueID, s.venueID != uuid.Nil }

func (s StatsSelector) valid() bool {
	_, d := s.DealID()
	_, v := s.VenueID()
	return d != v
}

type EngagementReadStore interface {
	CountByDeal(ctx context.Context, dealID uuid.UUID) (*EngagementCounts, error)
	CountByVenue(ctx context.Context, venueID uuid.UUID) (*EngagementCounts, error)
	RecentByDeal(ctx context.Context, dealID uuid.UUID, limit int32) ([]*RecentEngagement, error)
	RecentByVenue(ctx context.Context, venueID uuid.UUID, limit int32) ([]*RecentEngagement, error)
}

type EngagementQueries interface {
	StatsFor(ctx context.Context, sel StatsSelector) (*EngagementStats, error)
}

type engagementQueriesImpl struct {
	store      EngagementReadStore
	sampleSize int32
}

func NewEngagementQueries(store EngagementReadStore, cfg config.Config) EngagementQueries {
	size := cfg.Deals.SampleSize
	switch {
	case size <= 0:
		size = defaultSampleSize
	case size > maxSampleSize:
		size = maxSampleSize
	}
	return &engagementQueriesImpl{store: store, sampleSize: int32(size)}
}

// StatsFor reads counts and the recent sample concurrently. The two reads are
// not a consistent snapshot; a concurrent record may show up in only one.
func (q *engagementQueriesImpl) StatsFor(ctx context.Context, sel StatsSelector) (*EngagementStats, error) {
	if !sel.valid() {
		return nil, ErrInvalidStatsSelector
	}

	var (
		counts *EngagementCounts
		recent []*RecentEngagement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if id, ok := sel.DealID(); ok {
			counts, err = q.store.CountByDeal(gctx, id)
		} else {
			id, _ := sel.VenueID()
			counts, err = q.store.CountByVenue(gctx, id)
		}
		return err
	})
	g.Go(func() error {
		var err error
		if id, ok := sel.DealID(); ok {
			recent, err = q.store.RecentByDeal(gctx, id, q.sampleSize)
		} else {
			id, _ := sel.VenueID()
			recent, err = q.store.RecentByVenue(gctx, id, q.sampleSize)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, shared.ClassifyStoreErr(err, ErrDealNotFound)
	}

	if counts == nil {
		counts = &EngagementCounts{}
	}
	if recent == nil {
		recent = []*RecentEngagement{}
	}

	return &EngagementStats{
		Stats:  engagement.NewStats(counts.Liked, counts.Disliked),
		Recent: recent,
	}, nil
}
