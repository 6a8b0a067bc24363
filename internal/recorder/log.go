package recorder

import (
	"errors"
	"log"
	"sync"

	"MarketBench/internal/model"
	"MarketBench/internal/report"
)

// LogRecorder writes a formatted report of every result to a logger.
type LogRecorder struct {
	mu     sync.Mutex
	logger *log.Logger
	closed bool
}

// NewLogRecorder creates a LogRecorder. A nil logger uses the standard one.
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordBench(res *model.BenchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.New("recorder closed")
	}
	if res == nil {
		return errors.New("nil bench result")
	}
	r.logger.Printf("[INFO] bench result\n%s", report.FormatBench(res))
	return nil
}

func (r *LogRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
