package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"oja/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EverySecond is the default tick schedule.
const EverySecond = "* * * * * *"

// AdvanceDeliveriesHandler runs one simulation tick.
type AdvanceDeliveriesHandler interface {
	Handle(ctx context.Context, command commands.AdvanceDeliveriesCommand) error
}

// DeliveryProgressJob ticks the courier position simulation on a cron schedule.
type DeliveryProgressJob struct {
	handler  AdvanceDeliveriesHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryProgressJob schedules a tick every interval. Intervals below one second
// fall back to EverySecond, the finest resolution of the seconds-enabled parser.
func NewDeliveryProgressJob(
	handler AdvanceDeliveriesHandler,
	interval time.Duration,
	logger *slog.Logger,
) *DeliveryProgressJob {
	schedule := EverySecond
	if interval > time.Second {
		schedule = fmt.Sprintf("@every %s", interval)
	}
	timeout := interval
	if timeout < time.Second {
		timeout = time.Second
	}

	return &DeliveryProgressJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "delivery_progress_job"),
	}
}

func (j *DeliveryProgressJob) Schedule() string {
	return j.schedule
}

// Start registers the tick and starts the scheduler.
func (j *DeliveryProgressJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Tick); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progress job started", "schedule", j.schedule)
	return nil
}

// Tick runs a single simulation step. Failures are logged and retried on the next tick.
func (j *DeliveryProgressJob) Tick() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.handler.Handle(ctx, commands.NewAdvanceDeliveriesCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Delivery progress job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *DeliveryProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery progress job stopped")
}
