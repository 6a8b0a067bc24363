package calculator

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// SeriesRange scans the series and returns its high and low.
func SeriesRange(series []float64) (high, low float64, err error) {
	if len(series) == 0 {
		return 0, 0, errors.New("empty series")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, v := range series {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return high, low, nil
}

// Mean computes the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("not enough data for mean calculation")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// exactDigits is enough fractional digits to hold any float64 exactly.
const exactDigits = -1100

// Round2 rounds half to even at two decimals, applied to the exact binary
// value of v: 1.225 (stored just above) gives 1.23 and 2.675 (stored just
// below) gives 2.67.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloatWithExponent(v, exactDigits).RoundBank(2).InexactFloat64()
}
