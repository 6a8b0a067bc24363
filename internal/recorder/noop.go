package recorder

import "MarketBench/internal/model"

// NoopRecorder discards every result.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordBench(_ *model.BenchResult) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
