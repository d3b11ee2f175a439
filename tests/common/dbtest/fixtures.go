//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "venue-deals/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestDeal inserts a deal row as built by builder.DealBuilder.BuildInfra.
func CreateTestDeal(t *testing.T, db DBLike, d sqlc.Deals) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO deals (
		    id, venue_id, title, description, original_price, discounted_price, media_refs,
		    is_active, schedule_mode, date_start, date_end, recurrence_type, recurrence_days,
		    recurrence_end_date, time_start, time_end, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		d.ID, d.VenueID, d.Title, d.Description, d.OriginalPrice, d.DiscountedPrice, d.MediaRefs,
		d.IsActive, d.ScheduleMode, d.DateStart, d.DateEnd, d.RecurrenceType, d.RecurrenceDays,
		d.RecurrenceEndDate, d.TimeStart, d.TimeEnd, d.CreatedAt, d.UpdatedAt)
	require.NoError(t, err)

	return d.ID
}

func CreateTestEngagement(t *testing.T, db DBLike, dealID uuid.UUID, source, signal string, recordedAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO deal_engagements (deal_id, source_identity, signal, recorded_at) VALUES ($1, $2, $3, $4)",
		dealID, source, signal, recordedAt)
	require.NoError(t, err)
}

// CountEngagements returns the number of stored records for the deal.
func CountEngagements(t *testing.T, db DBLike, dealID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM deal_engagements WHERE deal_id = $1", dealID).Scan(&n)
	require.NoError(t, err)
	return n
}

// GetEngagementSignal returns the stored signal for (deal, source).
func GetEngagementSignal(t *testing.T, db DBLike, dealID uuid.UUID, source string) (string, time.Time) {
	t.Helper()

	var (
		signal     string
		recordedAt time.Time
	)
	err := db.QueryRow(context.Background(),
		"SELECT signal, recorded_at FROM deal_engagements WHERE deal_id = $1 AND source_identity = $2",
		dealID, source).Scan(&signal, &recordedAt)
	require.NoError(t, err)
	return signal, recordedAt
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
