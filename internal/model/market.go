package model

// PricePoints is the number of intraday observations per stock.
const PricePoints = 50

// StockRecord holds the open/high/close and intraday price data for a given stock.
type StockRecord struct {
	Name   string    `json:"name" validate:"required"`
	Symbol string    `json:"symbol"`
	Price  []float64 `json:"price" validate:"required,min=1"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Close  float64   `json:"close"`
	Weight float64   `json:"weight" validate:"gte=0,lte=1"`
}

// StockTuple is a positional stock record as it arrives from an untyped
// source. Fields are checked and converted by the validation package.
type StockTuple struct {
	Name   any
	Symbol any
	Price  any
	Open   any
	High   any
	Close  any
	Weight any
}

// MarketValue contains the opening, highest and closing value of the stock market for a day.
type MarketValue struct {
	OpeningValue float64 `json:"opening_value"`
	HighestValue float64 `json:"highest_value"`
	ClosingValue float64 `json:"closing_value"`
}
