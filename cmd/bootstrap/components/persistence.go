package components

import (
	"venue-deals/internal/infra/readstore"
	"venue-deals/internal/infra/repository"
	sqlc "venue-deals/internal/infra/sqlc/generated"
	"venue-deals/internal/infra/uow"
	"venue-deals/internal/usecase/queries"
	"venue-deals/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DealReadQueries)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
		// Engagement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EngagementReadQueries)),
		),
		fx.Annotate(
			readstore.NewEngagementReadStore,
			fx.As(new(queries.EngagementReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DealWriteQueries)),
		),
		fx.Annotate(
			repository.NewDealRepository,
			fx.As(new(shared.DealRepository)),
		),
		// Engagement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.EngagementWriteQueries)),
		),
		fx.Annotate(
			repository.NewEngagementRepository,
			fx.As(new(shared.EngagementRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
