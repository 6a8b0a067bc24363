package recorder

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketBench/internal/model"
)

func TestLogRecorder(t *testing.T) {
	var buf bytes.Buffer
	rec := NewLogRecorder(log.New(&buf, "", 0))

	res := &model.BenchResult{
		RunID:         uuid.New(),
		StartedAt:     time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
		Iterations:    10,
		Profiles:      10000,
		Stocks:        100,
		StructuredAvg: 2 * time.Millisecond,
		MappingAvg:    3 * time.Millisecond,
		Stats:         model.StatsResult{LargestBloodType: "O+", OldestAge: 115.2, AverageAge: 57.31},
		Market:        model.MarketValue{OpeningValue: 75, HighestValue: 80, ClosingValue: 77.5},
	}
	require.NoError(t, rec.RecordBench(res))

	out := buf.String()
	assert.Contains(t, out, res.RunID.String())
	assert.Contains(t, out, "2024-03-05 10:00:00")
	assert.Contains(t, out, "mapping/structured: 1.50x")
	assert.Contains(t, out, "largest blood type: O+")
	assert.Contains(t, out, "highest: 80.0000")

	assert.Error(t, rec.RecordBench(nil))
	require.NoError(t, rec.Close())
	assert.Error(t, rec.RecordBench(res))
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	assert.NoError(t, rec.RecordBench(&model.BenchResult{}))
	assert.NoError(t, rec.Close())
}
