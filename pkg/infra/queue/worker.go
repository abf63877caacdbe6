package queue

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	"golang.org/x/sync/semaphore"
)

const dequeueWait = 5 * time.Second

// Worker drains the run queue with a bounded level of parallelism. Each job
// executes one run and then recomputes the owning test's summary; a failed
// job is logged and dropped since the run itself already carries the failure.
type Worker struct {
	logger   *logrus.Logger
	queue    *RunQueue
	executor appTest.RunExecutor
	updater  appTest.StatusUpdater
	sem      *semaphore.Weighted
}

func NewWorker(
	logger *logrus.Logger,
	queue *RunQueue,
	executor appTest.RunExecutor,
	updater appTest.StatusUpdater,
	maxConcurrent int,
) *Worker {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Worker{
		logger:   logger,
		queue:    queue,
		executor: executor,
		updater:  updater,
		sem:      semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Run blocks until ctx is cancelled, then waits for in-flight jobs to finish.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("run worker started")

	var wg sync.WaitGroup
	for {
		job, err := w.queue.Dequeue(ctx, dequeueWait)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			w.logger.WithError(err).Error("failed to dequeue run job")
			continue
		}
		if job == nil {
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if err := w.sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(job *RunJob) {
			defer wg.Done()
			defer w.sem.Release(1)
			w.process(ctx, job)
		}(job)
	}

	wg.Wait()
	w.logger.Info("run worker stopped")
	return ctx.Err()
}

func (w *Worker) process(ctx context.Context, job *RunJob) {
	if _, err := w.executor.Execute(ctx, job.VariantID, job.Model); err != nil {
		w.logger.WithError(err).WithFields(logrus.Fields{
			"test_id":    job.TestID,
			"variant_id": job.VariantID,
		}).Error("run job failed")
		return
	}

	if _, err := w.updater.Update(ctx, job.TestID); err != nil {
		w.logger.WithError(err).WithField("test_id", job.TestID).Error("failed to update test status")
	}
}
