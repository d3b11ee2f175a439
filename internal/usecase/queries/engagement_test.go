//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-deals/internal/domain/engagement"
	"venue-deals/internal/infra"
	"venue-deals/internal/pkg/config"
	"venue-deals/internal/pkg/errs"
	"venue-deals/internal/usecase/queries"
	"venue-deals/tests/common/builder"
	queriesmock "venue-deals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewStatsSelector(t *testing.T) {
	dealID := uuid.New()
	venueID := uuid.New()
	nilID := uuid.Nil

	testCases := []struct {
		name    string
		dealID  *uuid.UUID
		venueID *uuid.UUID
		wantErr bool
	}{
		{name: "deal only", dealID: &dealID},
		{name: "venue only", venueID: &venueID},
		{name: "neither", wantErr: true},
		{name: "both", dealID: &dealID, venueID: &venueID, wantErr: true},
		{name: "nil uuid counts as absent", dealID: &nilID, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := queries.NewStatsSelector(tc.dealID, tc.venueID)
			if tc.wantErr {
				require.ErrorIs(t, err, queries.ErrInvalidStatsSelector)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
			_, hasDeal := sel.DealID()
			_, hasVenue := sel.VenueID()
			assert.NotEqual(t, hasDeal, hasVenue)
		})
	}
}

func TestEngagementQueries_StatsFor(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	dealID := uuid.New()
	venueID := uuid.New()

	t.Run("success: deal stats with rate and sample", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		q := queries.NewEngagementQueries(store, cfg)

		recent := []*queries.RecentEngagement{builder.NewEngagementBuilder().WithDealID(dealID).BuildRecent()}
		store.EXPECT().CountByDeal(gomock.Any(), dealID).Return(&queries.EngagementCounts{Liked: 2, Disliked: 1}, nil)
		store.EXPECT().RecentByDeal(gomock.Any(), dealID, int32(10)).Return(recent, nil)

		got, err := q.StatsFor(ctx, queries.ForDeal(dealID))
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Stats.Total())
		assert.Equal(t, "66.67", got.Stats.Rate().StringFixed(2))
		assert.Equal(t, engagement.BucketGood, got.Stats.Bucket())
		assert.Equal(t, recent, got.Recent)
	})

	t.Run("success: venue with no engagement yields zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		q := queries.NewEngagementQueries(store, cfg)

		store.EXPECT().CountByVenue(gomock.Any(), venueID).Return(&queries.EngagementCounts{}, nil)
		store.EXPECT().RecentByVenue(gomock.Any(), venueID, int32(10)).Return(nil, nil)

		got, err := q.StatsFor(ctx, queries.ForVenue(venueID))
		require.NoError(t, err)
		assert.Zero(t, got.Stats.Total())
		assert.True(t, got.Stats.Rate().IsZero())
		assert.NotNil(t, got.Recent)
		assert.Empty(t, got.Recent)
	})

	t.Run("success: sample size comes from config and is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		big := cfg
		big.Deals.SampleSize = 5000
		q := queries.NewEngagementQueries(store, big)

		store.EXPECT().CountByDeal(gomock.Any(), dealID).Return(&queries.EngagementCounts{}, nil)
		store.EXPECT().RecentByDeal(gomock.Any(), dealID, int32(100)).Return(nil, nil)

		_, err := q.StatsFor(ctx, queries.ForDeal(dealID))
		require.NoError(t, err)
	})

	t.Run("error: zero-value selector is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		q := queries.NewEngagementQueries(store, cfg)

		_, err := q.StatsFor(ctx, queries.StatsSelector{})
		require.ErrorIs(t, err, queries.ErrInvalidStatsSelector)
	})

	t.Run("error: store failure surfaces as store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		q := queries.NewEngagementQueries(store, cfg)

		store.EXPECT().CountByDeal(gomock.Any(), dealID).
			Return(nil, infra.WrapRepoErr("failed to count engagements by deal", errors.New("timeout")))
		store.EXPECT().RecentByDeal(gomock.Any(), dealID, int32(10)).Return(nil, nil).AnyTimes()

		got, err := q.StatsFor(ctx, queries.ForDeal(dealID))
		require.Error(t, err)
		assert.True(t, errs.IsStoreUnavailable(err))
		assert.Nil(t, got)
	})

	t.Run("success: recent sample keeps store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEngagementReadStore(ctrl)
		q := queries.NewEngagementQueries(store, cfg)

		base := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
		newer := builder.NewEngagementBuilder().WithDealID(dealID).WithRecordedAt(base).BuildRecent()
		older := builder.NewEngagementBuilder().WithDealID(dealID).WithRecordedAt(base.Add(-time.Minute)).BuildRecent()
		store.EXPECT().CountByDeal(gomock.Any(), dealID).Return(&queries.EngagementCounts{Liked: 2}, nil)
		store.EXPECT().RecentByDeal(gomock.Any(), dealID, int32(10)).Return([]*queries.RecentEngagement{newer, older}, nil)

		got, err := q.StatsFor(ctx, queries.ForDeal(dealID))
		require.NoError(t, err)
		require.Len(t, got.Recent, 2)
		assert.Same(t, newer, got.Recent[0])
	})
}
