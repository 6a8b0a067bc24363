package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"MarketBench/internal/model"
	"MarketBench/internal/validation"
)

// MarketValue computes the opening, highest and closing value of the market
// for a day. When weights is nil every record contributes its own Weight;
// otherwise weights must match the records one to one and sum to exactly 1.
func MarketValue(records []model.StockRecord, weights []float64) (model.MarketValue, error) {
	if weights != nil {
		if len(weights) != len(records) {
			return model.MarketValue{}, model.NewError(model.KindLengthMismatch,
				"The length of weight and all_companies arrays should be the same")
		}
		if !sumsToOne(weights) {
			return model.MarketValue{}, model.NewError(model.KindWeightSumError,
				"The sum of weights is not equal to 1")
		}
	}

	steps := model.PricePoints
	if len(records) > 0 {
		steps = len(records[0].Price)
	}
	for _, r := range records {
		if len(r.Price) != steps {
			return model.MarketValue{}, model.NewError(model.KindInvalidFieldType,
				fmt.Sprintf("price series of %s has %d points, expected %d", r.Symbol, len(r.Price), steps))
		}
	}

	series := make([]float64, steps)
	for j := range series {
		for i, r := range records {
			w := r.Weight
			if weights != nil {
				w = weights[i]
			}
			series[j] += r.Price[j] * w
		}
	}

	high, _, err := SeriesRange(series)
	if err != nil {
		return model.MarketValue{}, fmt.Errorf("market value range: %w", err)
	}
	return model.MarketValue{
		OpeningValue: series[0],
		HighestValue: high,
		ClosingValue: series[len(series)-1],
	}, nil
}

// Evaluate validates data and computes its market value.
func Evaluate(data any, weights []float64) (model.MarketValue, error) {
	records, err := validation.Validate(data)
	if err != nil {
		return model.MarketValue{}, err
	}
	return MarketValue(records, weights)
}

func sumsToOne(weights []float64) bool {
	sum := decimal.Zero
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return false
		}
		sum = sum.Add(decimal.NewFromFloat(w))
	}
	return sum.Equal(decimal.NewFromInt(1))
}
