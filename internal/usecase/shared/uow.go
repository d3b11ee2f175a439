package shared

import (
	"context"
	"time"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/domain/engagement"
	sqlc "venue-deals/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Deals() DealRepository
	Engagements() EngagementRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	DealByID(ctx context.Context, id uuid.UUID) (*DealSnapshot, error)
}

type DealRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error)
	SetActive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, active bool, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type EngagementRepository interface {
	// Upsert must be a single statement keyed by (deal, source).
	Upsert(ctx context.Context, tx sqlc.DBTX, rec *engagement.Record) error
}
