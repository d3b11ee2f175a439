//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-deals/internal/infra"
	"venue-deals/internal/infra/readstore"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/tests/common/builder"
	readstoremock "venue-deals/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// ListActiveByVenue Tests
// =============================================================================

func TestDealReadStore_ListActiveByVenue(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockDealReadQueries) []sqlc.Deals
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rows are converted in store order",
			setupMock: func(mock *readstoremock.MockDealReadQueries) []sqlc.Deals {
				rows := []sqlc.Deals{
					builder.NewDealBuilder().WithVenueID(venueID).AsWeekly("mon", "fri").WithWindow("17:00", "20:00").BuildInfra(),
					builder.NewDealBuilder().WithVenueID(venueID).BuildInfra(),
				}
				mock.EXPECT().ListActiveDealsByVenue(ctx, gomock.Any(), venueID).Return(rows, nil)
				return rows
			},
		},
		{
			name: "success: venue without deals",
			setupMock: func(mock *readstoremock.MockDealReadQueries) []sqlc.Deals {
				mock.EXPECT().ListActiveDealsByVenue(ctx, gomock.Any(), venueID).Return(nil, nil)
				return nil
			},
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockDealReadQueries) []sqlc.Deals {
				mock.EXPECT().ListActiveDealsByVenue(ctx, gomock.Any(), venueID).Return(nil, errDBConnectionLost)
				return nil
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockDealReadQueries(ctrl)
			store := readstore.NewDealReadStore(mockQueries, &mockDBTX{})

			rows := tc.setupMock(mockQueries)

			result, actualError := store.ListActiveByVenue(ctx, venueID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			require.Len(t, result, len(rows))
			for i, row := range rows {
				assert.Equal(t, row.ID, result[i].ID())
				assert.Equal(t, venueID, result[i].VenueID())
				assert.Equal(t, row.ScheduleMode, string(result[i].Schedule().Mode()))
			}
		})
	}
}

// =============================================================================
// GetByID Tests
// =============================================================================

func TestDealReadStore_GetByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewDealBuilder().BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockDealReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: deal found",
			setupMock: func(mock *readstoremock.MockDealReadQueries) {
				mock.EXPECT().GetDealByID(ctx, gomock.Any(), row.ID).Return(row, nil)
			},
		},
		{
			name: "error: deal not found",
			setupMock: func(mock *readstoremock.MockDealReadQueries) {
				mock.EXPECT().GetDealByID(ctx, gomock.Any(), row.ID).Return(sqlc.Deals{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockDealReadQueries) {
				mock.EXPECT().GetDealByID(ctx, gomock.Any(), row.ID).Return(sqlc.Deals{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockDealReadQueries(ctrl)
			store := readstore.NewDealReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.GetByID(ctx, row.ID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, row.ID, result.ID())
				assert.Equal(t, row.Title, result.Title())
				assert.True(t, result.CreatedAt().Equal(row.CreatedAt.Time))
				assert.True(t, result.IsActiveAt(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)))
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
