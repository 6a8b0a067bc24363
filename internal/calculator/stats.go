package calculator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"MarketBench/internal/model"
)

// sample is the representation-independent view of a profile.
type sample struct {
	bloodGroup string
	age        float64
	x, y       float64
}

// Stats computes the largest blood type, oldest and average age and mean
// current location of structured profiles.
func Stats(records []model.Profile, now time.Time) model.StatsResult {
	samples := make([]sample, len(records))
	for i, p := range records {
		samples[i] = sample{
			bloodGroup: p.BloodGroup,
			age:        Age(p.Birthdate, now),
			x:          p.CurrentLocation[0].InexactFloat64(),
			y:          p.CurrentLocation[1].InexactFloat64(),
		}
	}
	return summarize(samples)
}

// StatsFromMappings is Stats over the mapping representation of profiles.
func StatsFromMappings(records []map[string]any, now time.Time) model.StatsResult {
	samples := make([]sample, len(records))
	for i, m := range records {
		bg, _ := m[model.KeyBloodGroup].(string)
		x, y := coordinates(m[model.KeyCurrentLocation])
		samples[i] = sample{
			bloodGroup: bg,
			age:        Age(birthdate(m[model.KeyBirthdate]), now),
			x:          x,
			y:          y,
		}
	}
	return summarize(samples)
}

func summarize(samples []sample) model.StatsResult {
	if len(samples) == 0 {
		return model.StatsResult{}
	}

	ages := make([]float64, len(samples))
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	counts := make(map[string]int)
	for i, s := range samples {
		ages[i], xs[i], ys[i] = s.age, s.x, s.y
		counts[s.bloodGroup]++
	}

	oldest, _, _ := SeriesRange(ages)
	avgAge, _ := Mean(ages)
	meanX, _ := Mean(xs)
	meanY, _ := Mean(ys)

	return model.StatsResult{
		LargestBloodType: mostCommon(counts),
		OldestAge:        Round2(oldest),
		AverageAge:       Round2(avgAge),
		MeanX:            Round2(meanX),
		MeanY:            Round2(meanY),
	}
}

// mostCommon returns the most frequent key; ties go to the smallest key.
func mostCommon(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := ""
	bestCount := 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

func birthdate(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if d, err := time.Parse(time.DateOnly, t); err == nil {
			return d
		}
	}
	return time.Time{}
}

func coordinates(v any) (x, y float64) {
	switch loc := v.(type) {
	case [2]decimal.Decimal:
		return loc[0].InexactFloat64(), loc[1].InexactFloat64()
	case [2]float64:
		return loc[0], loc[1]
	case []decimal.Decimal:
		if len(loc) >= 2 {
			return loc[0].InexactFloat64(), loc[1].InexactFloat64()
		}
	case []float64:
		if len(loc) >= 2 {
			return loc[0], loc[1]
		}
	case []any:
		if len(loc) >= 2 {
			return toFloat(loc[0]), toFloat(loc[1])
		}
	}
	return 0, 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case decimal.Decimal:
		return n.InexactFloat64()
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d.InexactFloat64()
		}
	}
	return 0
}
