package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals until stopped. Each job
// also fires once immediately when the scheduler starts.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	stop    context.CancelFunc
	ctx     context.Context
	done    sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, stop: cancel}
}

// AddJob registers a job. Must be called before Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	s.mu.Unlock()

	slog.Info("cron job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.done.Add(1)
		go s.loop(j)
	}
	slog.Info("cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels every job loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.stop()
	s.done.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.done.Done()

	s.execute(j)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time, for tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if err := j.run(ctx); err != nil {
			slog.Error("cron job failed", "name", j.name, "error", err)
		}
	}
}
