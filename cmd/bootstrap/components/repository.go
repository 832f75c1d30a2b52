package components

import (
	domephemeris "cosmic-courier/internal/domain/ephemeris"
	"cosmic-courier/internal/infra/ephemeris"
	"cosmic-courier/internal/infra/push"
	"cosmic-courier/internal/infra/repository"
	"cosmic-courier/internal/usecase/commands"
	"cosmic-courier/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewSentEventsRepository,
			fx.As(new(commands.SentEventsStore)),
		),
		fx.Annotate(
			ephemeris.NewClient,
			fx.As(new(domephemeris.Source)),
		),
		fx.Annotate(
			domephemeris.NewAdapter,
			fx.As(new(commands.SnapshotBuilder)),
			fx.As(new(queries.SnapshotSource)),
		),
		fx.Annotate(
			push.NewClient,
			fx.As(new(commands.PushSender)),
		),
	),
)
