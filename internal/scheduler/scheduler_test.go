package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketBench/internal/bench"
	"MarketBench/internal/generator"
	"MarketBench/internal/model"
)

type countingRecorder struct {
	mu sync.Mutex
	n  int
}

func (c *countingRecorder) RecordBench(_ *model.BenchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return nil
}

func (c *countingRecorder) Close() error { return nil }

func newTestScheduler(ctx context.Context, rec *countingRecorder) *Scheduler {
	runner := bench.NewRunner(&generator.MockSource{}, rec, bench.Options{Profiles: 10, Stocks: 5, Iterations: 1})
	return NewScheduler(ctx, runner)
}

func TestRegister(t *testing.T) {
	s := newTestScheduler(context.Background(), &countingRecorder{})

	require.NoError(t, s.Register("0 */5 * * * *"))
	require.NoError(t, s.Register("@every 1h"))
	assert.Len(t, s.Cron.Entries(), 2)

	err := s.Register("not a cron spec")
	assert.Error(t, err)
	// five-field specs lack the seconds field
	assert.Error(t, s.Register("*/5 * * * *"))
}

func TestRunNow(t *testing.T) {
	rec := &countingRecorder{}
	s := newTestScheduler(context.Background(), rec)
	s.RunNow()
	assert.Equal(t, 1, rec.n)
}

func TestRunNow_CancelledContext(t *testing.T) {
	rec := &countingRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newTestScheduler(ctx, rec)
	s.RunNow()
	assert.Equal(t, 0, rec.n)
}

func TestStartStop(t *testing.T) {
	s := newTestScheduler(context.Background(), &countingRecorder{})
	require.NoError(t, s.Register("@every 1h"))
	s.Start()
	s.Stop()
}
