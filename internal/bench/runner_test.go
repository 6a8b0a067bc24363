package bench

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketBench/internal/generator"
	"MarketBench/internal/model"
)

type memRecorder struct {
	mu      sync.Mutex
	results []*model.BenchResult
	err     error
}

func (m *memRecorder) RecordBench(res *model.BenchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
	return m.err
}

func (m *memRecorder) Close() error { return nil }

func TestAverage(t *testing.T) {
	calls := 0
	avg := Average("noop", 5, func() { calls++ })
	assert.Equal(t, 5, calls)
	assert.GreaterOrEqual(t, avg, time.Duration(0))

	calls = 0
	Average("clamped", 0, func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestRunner_Run(t *testing.T) {
	rec := &memRecorder{}
	runner := NewRunner(&generator.MockSource{}, rec, Options{Profiles: 200, Stocks: 20, Iterations: 2})
	runner.Now = func() time.Time { return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) }

	res, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, 200, res.Profiles)
	assert.Equal(t, 20, res.Stocks)
	assert.Equal(t, 2, res.Iterations)
	assert.NotEmpty(t, res.Stats.LargestBloodType)
	assert.GreaterOrEqual(t, res.Stats.OldestAge, res.Stats.AverageAge)
	assert.Greater(t, res.Market.HighestValue, 0.0)

	require.Len(t, rec.results, 1)
	assert.Same(t, res, rec.results[0])
}

func TestRunner_DefaultOptions(t *testing.T) {
	runner := NewRunner(&generator.MockSource{}, &memRecorder{}, Options{})
	assert.Equal(t, generator.DefaultProfiles, runner.Options.Profiles)
	assert.Equal(t, generator.DefaultStocks, runner.Options.Stocks)
	assert.Equal(t, model.PricePoints, runner.Options.PricePoints)
	assert.Equal(t, 10, runner.Options.Iterations)
}

func TestRunner_RecorderErrorIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("sink down")}
	runner := NewRunner(&generator.MockSource{}, rec, Options{Profiles: 10, Stocks: 5, Iterations: 1})
	_, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, rec.results, 1)
}

func TestRunner_CancelledContext(t *testing.T) {
	rec := &memRecorder{}
	runner := NewRunner(&generator.MockSource{}, rec, Options{Profiles: 10, Stocks: 5, Iterations: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.results)
}
