package components

import (
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/config"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCardCommands,
		commands.NewCardRequestCommands,
		commands.NewSubmissionCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCardQueries,
		queries.NewCardRequestQueries,
		queries.NewSubmissionQueries,
		queries.NewCouponQueries,
		func(store queries.EventReadStore, cfg config.Config) queries.EventQueries {
			return queries.NewEventQueries(store, cfg.App.EventLogLimit)
		},
	),
)
