package report

import (
	"fmt"
	"strings"

	"MarketBench/internal/model"
)

// FormatMarketValue formats the market value of a day.
func FormatMarketValue(mv model.MarketValue) string {
	var b strings.Builder
	b.WriteString("Stock market value\n")
	b.WriteString(fmt.Sprintf("  opening: %.4f\n", mv.OpeningValue))
	b.WriteString(fmt.Sprintf("  highest: %.4f\n", mv.HighestValue))
	b.WriteString(fmt.Sprintf("  closing: %.4f\n", mv.ClosingValue))
	return b.String()
}

// FormatStats formats profile statistics.
func FormatStats(s model.StatsResult) string {
	var b strings.Builder
	b.WriteString("Profile statistics\n")
	b.WriteString(fmt.Sprintf("  largest blood type: %s\n", s.LargestBloodType))
	b.WriteString(fmt.Sprintf("  oldest age:         %.2f\n", s.OldestAge))
	b.WriteString(fmt.Sprintf("  average age:        %.2f\n", s.AverageAge))
	b.WriteString(fmt.Sprintf("  mean location:      (%.2f, %.2f)\n", s.MeanX, s.MeanY))
	return b.String()
}

// FormatBench formats one benchmark round.
func FormatBench(res *model.BenchResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Benchmark %s | %s\n", res.RunID, res.StartedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("  %d profiles, %d stocks, %d iterations\n\n", res.Profiles, res.Stocks, res.Iterations))

	b.WriteString(fmt.Sprintf("  stats (structured): %s\n", res.StructuredAvg))
	b.WriteString(fmt.Sprintf("  stats (mapping):    %s\n", res.MappingAvg))
	if res.StructuredAvg > 0 && res.MappingAvg > 0 {
		ratio := float64(res.MappingAvg) / float64(res.StructuredAvg)
		b.WriteString(fmt.Sprintf("  mapping/structured: %.2fx\n", ratio))
	}
	b.WriteString(fmt.Sprintf("  market value:       %s\n\n", res.ValuationAvg))

	b.WriteString(FormatStats(res.Stats))
	b.WriteString(FormatMarketValue(res.Market))
	return b.String()
}
