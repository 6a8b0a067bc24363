package generator

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketBench/internal/calculator"
	"MarketBench/internal/model"
)

func assertStockInvariants(t *testing.T, stocks []model.StockRecord, points int) {
	t.Helper()
	sum := decimal.Zero
	for _, s := range stocks {
		require.Len(t, s.Price, points)
		high, _, err := calculator.SeriesRange(s.Price)
		require.NoError(t, err)
		assert.Equal(t, high, s.High, s.Name)
		assert.Equal(t, s.Price[0], s.Open, s.Name)
		assert.Equal(t, s.Price[points-1], s.Close, s.Name)
		assert.Equal(t, Symbol(s.Name), s.Symbol)
		assert.GreaterOrEqual(t, s.Weight, 0.0)
		assert.LessOrEqual(t, s.Weight, 1.0)
		sum = sum.Add(decimal.NewFromFloat(s.Weight))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "weights sum to %s", sum)
}

func TestGenerateStocks_Faker(t *testing.T) {
	stocks := GenerateStocks(NewFakerSource(42), DefaultStocks, model.PricePoints)
	require.Len(t, stocks, DefaultStocks)
	assertStockInvariants(t, stocks, model.PricePoints)

	again := GenerateStocks(NewFakerSource(42), DefaultStocks, model.PricePoints)
	assert.Equal(t, stocks, again)
}

func TestGenerateStocks_Mock(t *testing.T) {
	src := &MockSource{Companies: []string{"Acme Widgets LLC", "Globex Corporation"}}
	stocks := GenerateStocks(src, 7, 12)
	require.Len(t, stocks, 7)
	assertStockInvariants(t, stocks, 12)
}

func TestGenerateStocks_ValueThroughCalculator(t *testing.T) {
	stocks := GenerateStocks(NewFakerSource(7), DefaultStocks, model.PricePoints)
	weights := make([]float64, len(stocks))
	for i, s := range stocks {
		weights[i] = s.Weight
	}

	implicit, err := calculator.Evaluate(stocks, nil)
	require.NoError(t, err)
	explicit, err := calculator.Evaluate(stocks, weights)
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit)
	assert.GreaterOrEqual(t, implicit.HighestValue, implicit.OpeningValue)
	assert.GreaterOrEqual(t, implicit.HighestValue, implicit.ClosingValue)
}

func TestRandomPrice_StepBounds(t *testing.T) {
	price := RandomPrice(NewFakerSource(3), 200)
	for i := 1; i < len(price); i++ {
		ratio := price[i] / price[i-1]
		// each point is rounded, so allow one unit of slack on either side
		slack := 1.0 / price[i-1]
		assert.GreaterOrEqual(t, ratio, 0.981-2*slack)
		assert.LessOrEqual(t, ratio, 1.019+2*slack)
		assert.Equal(t, math.Round(price[i]), price[i])
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Johnson, Smith and Jones", "JSJ"},
		{"Acme Widgets LLC", "AWLLC"},
		{"lowercase only", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Symbol(tt.name))
	}
}

func TestGenerateProfiles(t *testing.T) {
	profiles := GenerateProfiles(NewFakerSource(11), 500)
	require.Equal(t, 500, profiles.Len())

	records := profiles.Records()
	mappings := profiles.Mappings()
	require.Len(t, mappings, len(records))
	for _, i := range []int{0, 17, 250, 499} {
		assert.Equal(t, records[i], model.ProfileFromMap(mappings[i]))
		assert.Contains(t, bloodGroups, records[i].BloodGroup)
		assert.NotEmpty(t, records[i].Website)
	}

	now := time.Now()
	structured := calculator.Stats(records, now)
	mapped := calculator.StatsFromMappings(mappings, now)
	assert.Equal(t, structured, mapped)
	assert.GreaterOrEqual(t, structured.OldestAge, structured.AverageAge)
}

func TestGenerateProfiles_RecordsAreCopies(t *testing.T) {
	profiles := GenerateProfiles(&MockSource{}, 3)
	records := profiles.Records()
	records[0].BloodGroup = "changed"
	assert.NotEqual(t, "changed", profiles.Records()[0].BloodGroup)
}
