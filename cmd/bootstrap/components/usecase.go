package components

import (
	"cosmic-courier/internal/pkg/clock"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/usecase/commands"
	"cosmic-courier/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.CronConfig { return cfg.Cron },
	func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
	func(cfg config.Config) config.PushConfig { return cfg.Push },
	func(cfg config.Config) config.EphemerisConfig { return cfg.Ephemeris },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDispatchUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSnapshotQueries,
	),
)
