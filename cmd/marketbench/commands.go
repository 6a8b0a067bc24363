package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"MarketBench/internal/bench"
	"MarketBench/internal/calculator"
	"MarketBench/internal/config"
	"MarketBench/internal/generator"
	"MarketBench/internal/recorder"
	"MarketBench/internal/report"
	"MarketBench/internal/scheduler"
)

var configPath = flag.String("config", defaultConfigPath(), "Path to the YAML config file")

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newSource(cfg *config.Config) generator.Source {
	src := generator.NewFakerSource(cfg.Generator.Seed)
	log.Printf("[INFO] data source: %s (seed %d)", src.Name(), cfg.Generator.Seed)
	return src
}

// closeRecorder closes rec; a failure is logged and not fatal.
func closeRecorder(rec recorder.Recorder) {
	if err := rec.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}

// stocksCmd generates a market and prints its value for the day.
type stocksCmd struct {
	n int
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "generate stock records and compute the market value" }
func (*stocksCmd) Usage() string {
	return `marketbench stocks [-n <count>]

  Generates fake stock records, validates them and prints the opening,
  highest and closing market value weighted by each record's weight.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Number of stocks. Defaults to generator.stocks from the config.")
}

func (c *stocksCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	n := cfg.Generator.Stocks
	if c.n > 0 {
		n = c.n
	}

	stocks := generator.GenerateStocks(newSource(cfg), n, cfg.Generator.PricePoints)
	mv, err := calculator.Evaluate(stocks, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing market value: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(report.FormatMarketValue(mv))
	return subcommands.ExitSuccess
}

// profilesCmd generates profiles and prints their statistics in both representations.
type profilesCmd struct {
	n int
}

func (*profilesCmd) Name() string     { return "profiles" }
func (*profilesCmd) Synopsis() string { return "generate profiles and compute summary statistics" }
func (*profilesCmd) Usage() string {
	return `marketbench profiles [-n <count>]

  Generates fake profiles and prints the most common blood type, the oldest
  and average age and the mean current location, computed over structured
  records and over mappings.
`
}

func (c *profilesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Number of profiles. Defaults to generator.profiles from the config.")
}

func (c *profilesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	n := cfg.Generator.Profiles
	if c.n > 0 {
		n = c.n
	}

	profiles := generator.GenerateProfiles(newSource(cfg), n)
	now := time.Now()
	structured := calculator.Stats(profiles.Records(), now)
	mapped := calculator.StatsFromMappings(profiles.Mappings(), now)

	fmt.Print(report.FormatStats(structured))
	if structured != mapped {
		fmt.Fprintf(os.Stderr, "Error: mapping statistics differ:\n%s", report.FormatStats(mapped))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// benchCmd times the calculators, once or on a cron schedule.
type benchCmd struct {
	cron       string
	iterations int
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "time structured vs mapping statistics and the valuation" }
func (*benchCmd) Usage() string {
	return `marketbench bench [-iterations <n>] [-cron <spec>]

  Runs one benchmark round. With a cron spec (seconds field first) rounds
  repeat on the schedule until interrupted.
`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cron, "cron", "", "Cron spec for repeated rounds. Defaults to bench.cron from the config.")
	f.IntVar(&c.iterations, "iterations", 0, "Timed iterations per round. Defaults to bench.iterations from the config.")
}

func (c *benchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.cron != "" {
		cfg.Bench.Cron = c.cron
	}
	if c.iterations > 0 {
		cfg.Bench.Iterations = c.iterations
	}

	var rec recorder.Recorder
	switch cfg.Recorder.Kind {
	case "noop":
		rec = recorder.NewNoopRecorder()
	default:
		rec = recorder.NewLogRecorder(nil)
	}
	defer closeRecorder(rec)

	runner := bench.NewRunner(newSource(cfg), rec, bench.Options{
		Profiles:    cfg.Generator.Profiles,
		Stocks:      cfg.Generator.Stocks,
		PricePoints: cfg.Generator.PricePoints,
		Iterations:  cfg.Bench.Iterations,
	})

	if cfg.Bench.Cron == "" {
		if _, err := runner.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.NewScheduler(ctx, runner)
	if err := sched.Register(cfg.Bench.Cron); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Bench.RunOnStart {
		log.Println("[INFO] run_on_start enabled, executing bench round now")
		go sched.RunNow()
	}

	log.Printf("[INFO] benchmarking on %q. Press Ctrl+C to stop.", cfg.Bench.Cron)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return subcommands.ExitSuccess
}
