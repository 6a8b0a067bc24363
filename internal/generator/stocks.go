package generator

import (
	"log"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"MarketBench/internal/calculator"
	"MarketBench/internal/model"
)

// DefaultStocks is the number of companies in a reference market.
const DefaultStocks = 100

// GenerateStocks produces n fake stock records with points intraday prices each.
// Weights are normalized to 4 decimals and sum to exactly 1.
func GenerateStocks(src Source, n, points int) []model.StockRecord {
	if n <= 0 {
		return nil
	}
	if points <= 0 {
		points = model.PricePoints
	}

	weights := normalizedWeights(src, n)
	stocks := make([]model.StockRecord, n)
	for i := 0; i < n; i++ {
		name := src.Company()
		price := RandomPrice(src, points)
		high, _, err := calculator.SeriesRange(price)
		if err != nil {
			log.Printf("[WARN] price range for %s: %v", name, err)
		}
		stocks[i] = model.StockRecord{
			Name:   name,
			Symbol: Symbol(name),
			Price:  price,
			Open:   price[0],
			High:   high,
			Close:  price[len(price)-1],
			Weight: weights[i],
		}
	}
	return stocks
}

// RandomPrice generates a multiplicative random-walk price series.
func RandomPrice(src Source, points int) []float64 {
	price := make([]float64, points)
	x := float64(src.IntRange(50, 4999))
	for i := range price {
		x *= float64(src.IntRange(981, 1019)) / 1000.0
		price[i] = math.RoundToEven(x)
	}
	return price
}

// Symbol builds a ticker from the uppercase letters of a company name.
func Symbol(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizedWeights draws n uniform weights and normalizes them to 4 decimals
// with the largest-remainder method, so every weight is the floor or ceiling
// of its exact share and the set sums to exactly 1.
func normalizedWeights(src Source, n int) []float64 {
	raw := make([]decimal.Decimal, n)
	total := decimal.Zero
	for i := range raw {
		raw[i] = decimal.NewFromFloat(src.Float64Range(1, 100))
		total = total.Add(raw[i])
	}

	const units = 10000
	shares := make([]decimal.Decimal, n)
	remainders := make([]decimal.Decimal, n)
	left := int64(units)
	for i, w := range raw {
		exact := w.Mul(decimal.NewFromInt(units)).DivRound(total, 12)
		shares[i] = exact.Floor()
		remainders[i] = exact.Sub(shares[i])
		left -= shares[i].IntPart()
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})
	for i := 0; i < int(left) && i < n; i++ {
		shares[order[i]] = shares[order[i]].Add(decimal.NewFromInt(1))
	}

	weights := make([]float64, n)
	for i, s := range shares {
		weights[i] = s.Div(decimal.NewFromInt(units)).InexactFloat64()
	}
	return weights
}
