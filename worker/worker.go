package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

// OnWork one round of a job
type OnWork func(ctx context.Context) error

// BaseJob run OnWork on a cron schedule, a round is skipped while the previous one is still running
type BaseJob struct {
	Name     string
	Cron     *cron.Cron
	Schedule string
	OnWork   OnWork
}

// NewBaseJob run onWork every interval, schedules are evaluated in location
func NewBaseJob(name, location string, interval time.Duration, onWork OnWork) (*BaseJob, error) {
	l, err := time.LoadLocation(location)
	if err != nil {
		return nil, err
	}

	return &BaseJob{
		Name:     name,
		Cron:     cron.New(cron.WithLocation(l), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Schedule: fmt.Sprintf("@every %s", interval),
		OnWork:   onWork,
	}, nil
}

// Run start the schedule and block until ctx is done
func (job *BaseJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", job.Name)
	ctx = logger.WithContext(ctx, log)

	if _, err := job.Cron.AddFunc(job.Schedule, func() {
		if err := job.OnWork(ctx); err != nil {
			log.WithError(err).Errorln("on work")
		}
	}); err != nil {
		return err
	}

	job.Cron.Start()
	log.Infof("started, %s", job.Schedule)

	<-ctx.Done()
	<-job.Cron.Stop().Done()
	log.Infoln("stopped")
	return nil
}
