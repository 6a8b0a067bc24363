package recorder

import "MarketBench/internal/model"

// Recorder receives the results of benchmark rounds.
type Recorder interface {
	RecordBench(res *model.BenchResult) error
	Close() error
}
