package model

import (
	"time"

	"github.com/google/uuid"
)

// StatsResult holds the summary statistics of a profile batch.
type StatsResult struct {
	LargestBloodType string  `json:"largest_blood_type"` // most common blood type
	OldestAge        float64 `json:"oldest_age"`
	AverageAge       float64 `json:"average_age"`
	MeanX            float64 `json:"mean_current_location_x"`
	MeanY            float64 `json:"mean_current_location_y"`
}

// BenchResult is the output of one benchmark round.
type BenchResult struct {
	RunID         uuid.UUID
	StartedAt     time.Time
	Iterations    int
	Profiles      int
	Stocks        int
	StructuredAvg time.Duration
	MappingAvg    time.Duration
	ValuationAvg  time.Duration
	Stats         StatsResult
	Market        MarketValue
}
