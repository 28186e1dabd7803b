package cleanup

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// SchedulerClient is the slice of the Chronos API the executor mutates
// through. Implementations signal success solely by returning a nil error;
// response payloads are never inspected.
type SchedulerClient interface {
	DeleteTasks(ctx context.Context, name string) error
	DeleteJob(ctx context.Context, name string) error
}

// OpResult records a single deletion attempt. Err is nil on success.
type OpResult struct {
	Err error
}

// OK reports whether the attempt succeeded
func (r OpResult) OK() bool {
	return r.Err == nil
}

// Outcome records the two deletion attempts made for one orphaned job.
// Created once per orphan per run and never mutated afterwards.
type Outcome struct {
	Job          JobID
	TaskDeletion OpResult
	JobDeletion  OpResult
}

// Executor deletes orphaned jobs from the scheduler, isolating failures so
// one misbehaving job cannot block cleanup of the rest.
type Executor struct {
	client  SchedulerClient
	logger  *slog.Logger
	workers int
	dryRun  bool
}

// ExecutorConfig holds configuration for creating an Executor
type ExecutorConfig struct {
	Client  SchedulerClient
	Logger  *slog.Logger
	Workers int // concurrent jobs; 1 means sequential
	DryRun  bool
}

// NewExecutor creates a new cleanup executor
func NewExecutor(cfg ExecutorConfig) *Executor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Executor{
		client:  cfg.Client,
		logger:  logger.With("component", "cleanup"),
		workers: workers,
		dryRun:  cfg.DryRun,
	}
}

// Run attempts task deletion then job deletion for every orphan and returns
// one Outcome per orphan, in input order. Any error from the client is
// absorbed into the outcome; Run itself never fails. An empty orphan list
// issues no client calls.
func (e *Executor) Run(ctx context.Context, orphans []JobID) []Outcome {
	if len(orphans) == 0 {
		return nil
	}

	outcomes := make([]Outcome, len(orphans))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)

	for i, job := range orphans {
		g.Go(func() error {
			outcomes[i] = e.cleanupJob(ctx, job)
			return nil
		})
	}

	// Workers never return errors; Wait is only a completion barrier.
	_ = g.Wait()

	return outcomes
}

// cleanupJob performs both deletion attempts for one job. The two attempts
// are independent: a failed task deletion does not skip the job deletion.
func (e *Executor) cleanupJob(ctx context.Context, job JobID) Outcome {
	outcome := Outcome{Job: job}

	if e.dryRun {
		e.logger.InfoContext(ctx, "[DRY RUN] would delete tasks and job", "job", string(job))
		return outcome
	}

	if err := e.client.DeleteTasks(ctx, string(job)); err != nil {
		e.logger.ErrorContext(ctx, "failed to delete tasks, continuing", "job", string(job), "error", err)
		outcome.TaskDeletion = OpResult{Err: err}
	} else {
		e.logger.InfoContext(ctx, "deleted tasks", "job", string(job))
	}

	if err := e.client.DeleteJob(ctx, string(job)); err != nil {
		e.logger.ErrorContext(ctx, "failed to delete job, continuing", "job", string(job), "error", err)
		outcome.JobDeletion = OpResult{Err: err}
	} else {
		e.logger.InfoContext(ctx, "deleted job", "job", string(job))
	}

	return outcome
}
