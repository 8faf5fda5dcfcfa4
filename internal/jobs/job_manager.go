package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a job manager holding the delivery progress job.
func NewJobManager(
	advanceHandler AdvanceDeliveriesHandler,
	tickInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	jm.Register("delivery progress", NewDeliveryProgressJob(advanceHandler, tickInterval, logger))
	return jm
}

// Register adds a job. Jobs start in registration order and stop in reverse order.
func (jm *JobManager) Register(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all scheduled jobs.
// If one fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for j := i - 1; j >= 0; j-- {
				jm.jobs[j].job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
