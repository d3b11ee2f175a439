package components

import (
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/pkg/config"
	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClock(cfg.Deals.Location())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDealCommands,
		commands.NewEngagementCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
		queries.NewEngagementQueries,
	),
)
