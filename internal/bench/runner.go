package bench

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"MarketBench/internal/calculator"
	"MarketBench/internal/generator"
	"MarketBench/internal/model"
	"MarketBench/internal/recorder"
)

// Options sizes one benchmark round.
type Options struct {
	Profiles    int
	Stocks      int
	PricePoints int
	Iterations  int
}

// Runner generates datasets and times the calculators over them.
type Runner struct {
	mu       sync.Mutex
	Source   generator.Source
	Recorder recorder.Recorder
	Options  Options
	Now      func() time.Time
}

// NewRunner creates a new Runner.
func NewRunner(src generator.Source, rec recorder.Recorder, opts Options) *Runner {
	if opts.Profiles <= 0 {
		opts.Profiles = generator.DefaultProfiles
	}
	if opts.Stocks <= 0 {
		opts.Stocks = generator.DefaultStocks
	}
	if opts.PricePoints <= 0 {
		opts.PricePoints = model.PricePoints
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 10
	}
	return &Runner{Source: src, Recorder: rec, Options: opts, Now: time.Now}
}

// Run executes one benchmark round and hands the result to the recorder.
// Rounds are serialized; the source is not safe for concurrent use.
func (r *Runner) Run(ctx context.Context) (*model.BenchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := &model.BenchResult{
		RunID:      uuid.New(),
		StartedAt:  r.Now(),
		Iterations: r.Options.Iterations,
		Profiles:   r.Options.Profiles,
		Stocks:     r.Options.Stocks,
	}
	log.Printf("[INFO] bench %s: generating %d profiles and %d stocks from %s",
		res.RunID, res.Profiles, res.Stocks, r.Source.Name())

	profiles := generator.GenerateProfiles(r.Source, r.Options.Profiles)
	records := profiles.Records()
	mappings := profiles.Mappings()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bench %s: %w", res.RunID, err)
	}

	var structured, mapped model.StatsResult
	res.StructuredAvg = Average("stats (structured)", r.Options.Iterations, func() {
		structured = calculator.Stats(records, res.StartedAt)
	})
	res.MappingAvg = Average("stats (mapping)", r.Options.Iterations, func() {
		mapped = calculator.StatsFromMappings(mappings, res.StartedAt)
	})
	if structured != mapped {
		return nil, fmt.Errorf("bench %s: representations disagree: %+v != %+v", res.RunID, structured, mapped)
	}
	res.Stats = structured
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bench %s: %w", res.RunID, err)
	}

	stocks := generator.GenerateStocks(r.Source, r.Options.Stocks, r.Options.PricePoints)
	var valErr error
	res.ValuationAvg = Average("market value", r.Options.Iterations, func() {
		res.Market, valErr = calculator.Evaluate(stocks, nil)
	})
	if valErr != nil {
		return nil, fmt.Errorf("bench %s: market value: %w", res.RunID, valErr)
	}

	if err := r.Recorder.RecordBench(res); err != nil {
		log.Printf("[ERROR] record bench %s: %v", res.RunID, err)
	}
	return res, nil
}
