package scheduler

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Status is the lifecycle state of one scheduled fetch cycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// CycleResult is the explicit outcome of one firing, including how many
// attempts were spent. The retry decision lives here in the runner, not
// inside the task body.
type CycleResult struct {
	Status   Status
	Attempts int
	Err      error
}

// Task is the unit of work invoked on each firing, typically one fetch
// pipeline execution. It must not retry internally.
type Task func(ctx context.Context) error

// Config holds the schedule and retry policy for the runner.
type Config struct {
	Interval    time.Duration // time between firings
	RetryBase   time.Duration // first retry delay; doubles each attempt
	MaxAttempts int           // total attempts per firing, including the first
}

// Runner fires a task on a fixed interval and retries failed cycles with
// exponential backoff (base, 2*base, 4*base, ...). Exhausting MaxAttempts is
// fatal for that cycle only: the process and the next scheduled firing
// continue. Firings are independent; there is no overlap prevention, so a
// slow cycle can run concurrently with the next one.
type Runner struct {
	cfg    Config
	task   Task
	cron   *gocron.Scheduler
	logger *zap.Logger
}

// NewRunner creates a new scheduled task runner.
func NewRunner(cfg Config, task Task, logger *zap.Logger) *Runner {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Runner{
		cfg:    cfg,
		task:   task,
		cron:   gocron.NewScheduler(time.UTC),
		logger: logger,
	}
}

// Start begins firing the task every interval. Non-blocking.
func (r *Runner) Start() error {
	_, err := r.cron.Every(r.cfg.Interval).Do(func() {
		r.RunCycle(context.Background())
	})
	if err != nil {
		return err
	}

	r.cron.StartAsync()
	r.logger.Info("Scheduler started",
		zap.Duration("interval", r.cfg.Interval),
		zap.Int("maxAttempts", r.cfg.MaxAttempts))
	return nil
}

// Stop stops the schedule. In-flight cycles are not cancelled.
func (r *Runner) Stop() {
	r.cron.Stop()
	r.logger.Info("Scheduler stopped")
}

// RunCycle executes one firing: the task plus up to MaxAttempts-1 retries.
func (r *Runner) RunCycle(ctx context.Context) CycleResult {
	result := CycleResult{Status: StatusPending}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.cfg.RetryBase
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxInterval = time.Minute
	policy.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	operation := func() error {
		result.Status = StatusRunning
		result.Attempts++
		return r.task(ctx)
	}

	notify := func(err error, next time.Duration) {
		r.logger.Warn("Fetch cycle attempt failed, retrying",
			zap.Error(err),
			zap.Int("attempt", result.Attempts),
			zap.Duration("retryIn", next))
	}

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.cfg.MaxAttempts-1)), ctx),
		notify,
	)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		r.logger.Error("Fetch cycle failed after max attempts",
			zap.Error(err),
			zap.Int("attempts", result.Attempts))
		return result
	}

	result.Status = StatusSucceeded
	return result
}
