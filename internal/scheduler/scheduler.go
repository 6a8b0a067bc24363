package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"MarketBench/internal/bench"
)

// Scheduler repeats benchmark rounds on a cron schedule.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *bench.Runner
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler. Cron specs include a seconds field;
// a round still running when the next one is due is skipped.
func NewScheduler(ctx context.Context, runner *bench.Runner) *Scheduler {
	logger := cron.PrintfLogger(log.Default())
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(logger))),
		Runner: runner,
		Ctx:    ctx,
	}
}

// Register schedules benchmark rounds on spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.benchTask); err != nil {
		return fmt.Errorf("register bench task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running round to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one benchmark round immediately.
func (s *Scheduler) RunNow() {
	s.benchTask()
}

func (s *Scheduler) benchTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running bench task")
	res, err := s.Runner.Run(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] bench task: %v", err)
		return
	}
	log.Printf("[INFO] bench %s done", res.RunID)
}
