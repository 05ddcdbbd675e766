package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/vamshigadde09/GWG/config"
	"github.com/vamshigadde09/GWG/internal/service"
)

// OutboxReplayJob periodically drains lifecycle events whose inbox
// projection failed on the request path, so every addressed teacher
// eventually receives their notification.
type OutboxReplayJob struct {
	cron     *cron.Cron
	notifier service.NotificationService
	spec     string
}

func NewOutboxReplayJob(cfg *config.Config, notifier service.NotificationService) *OutboxReplayJob {
	return &OutboxReplayJob{
		cron:     cron.New(),
		notifier: notifier,
		spec:     cfg.Interview.OutboxReplaySpec,
	}
}

func (j *OutboxReplayJob) run() {
	projected, err := j.notifier.Project()
	if err != nil {
		log.Error().Err(err).Msg("Outbox replay failed")
		return
	}
	if projected > 0 {
		log.Info().Int("events", projected).Msg("Outbox replay projected pending events")
	}
}

// Register hooks the job into the application lifecycle.
func Register(lc fx.Lifecycle, job *OutboxReplayJob) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := job.cron.AddFunc(job.spec, job.run); err != nil {
				return err
			}
			job.cron.Start()
			log.Info().Str("spec", job.spec).Msg("Outbox replay job scheduled")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := job.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}
