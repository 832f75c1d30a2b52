package bootstrap

import (
	"context"

	"cosmic-courier/internal/infra/scheduler"
	"cosmic-courier/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.NewDispatchScheduler,
	),
	fx.Invoke(registerScheduler),
)

// registerScheduler starts the in-process cron loop only when
// CRON_ENABLE_SCHEDULER is set. Deployments that drive the /cron
// endpoints from an external scheduler leave it off.
func registerScheduler(lc fx.Lifecycle, cfg config.Config, sched *scheduler.DispatchScheduler) {
	if !cfg.Cron.EnableScheduler {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sched.Start()
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
