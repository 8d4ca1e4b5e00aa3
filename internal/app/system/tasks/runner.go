// internal/app/system/tasks/runner.go
//
// Interval scheduler for background jobs. Each registered job runs in its
// own goroutine: once at startup, then on every tick, until Stop.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named background task with a fixed run interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner schedules registered jobs. Register everything before Start;
// the runner does not support adding jobs while running.
type Runner struct {
	logger   *zap.Logger
	jobs     map[string]Job
	order    []string
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	inFlight sync.Map // job name -> struct{} while a run is executing
}

// New creates a runner with no jobs registered.
func New(logger *zap.Logger) *Runner {
	return &Runner{
		logger: logger,
		jobs:   make(map[string]Job),
	}
}

// Register adds a job. Registering the same name twice replaces the job.
func (r *Runner) Register(job Job) {
	if _, exists := r.jobs[job.Name]; !exists {
		r.order = append(r.order, job.Name)
	}
	r.jobs[job.Name] = job
}

// Start launches one scheduling goroutine per registered job.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, name := range r.order {
		job := r.jobs[name]
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.schedule(ctx, job)
		}()
	}

	r.logger.Info("task runner started", zap.Int("jobs", len(r.jobs)))
}

// Stop cancels every job context and waits for in-flight runs to drain.
// When ctx expires first it returns ctx.Err() and logs the jobs that were
// still executing; pass context.Background() to wait without limit.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	drained := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		r.logger.Info("task runner stopped")
		return nil
	case <-ctx.Done():
		var stuck []string
		r.inFlight.Range(func(key, _ any) bool {
			stuck = append(stuck, key.(string))
			return true
		})
		r.logger.Warn("task runner shutdown timed out",
			zap.Strings("still_running", stuck))
		return ctx.Err()
	}
}

// RunOnce executes a registered job by name, outside its schedule.
func (r *Runner) RunOnce(ctx context.Context, name string) error {
	job, ok := r.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	return job.Run(ctx)
}

func (r *Runner) schedule(ctx context.Context, job Job) {
	r.run(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.run(ctx, job)
		}
	}
}

func (r *Runner) run(ctx context.Context, job Job) {
	r.inFlight.Store(job.Name, struct{}{})
	defer r.inFlight.Delete(job.Name)

	start := time.Now()
	err := job.Run(ctx)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		r.logger.Debug("job ran",
			zap.String("job", job.Name), zap.Duration("took", elapsed))
	case ctx.Err() != nil:
		// Interrupted by shutdown, not a failure
		r.logger.Debug("job interrupted", zap.String("job", job.Name))
	default:
		r.logger.Error("job failed",
			zap.String("job", job.Name),
			zap.Duration("took", elapsed),
			zap.Error(err))
	}
}
