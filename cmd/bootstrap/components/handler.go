package components

import (
	"cosmic-courier/internal/handler"
	"cosmic-courier/internal/handler/api"
	"cosmic-courier/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSnapshotHandler,
		api.NewCronHandler,
		middleware.NewCronAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
