// Package validation checks candidate stock records before valuation and
// normalizes them into model.StockRecord.
package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"MarketBench/internal/model"
)

var validate = validator.New()

// Validate checks every candidate in data and returns them as StockRecords.
// data may be a slice of candidates or a single candidate. Accepted
// candidates are model.StockRecord and model.StockTuple (or pointers to them).
func Validate(data any) ([]model.StockRecord, error) {
	candidates := asSlice(data)
	records := make([]model.StockRecord, 0, len(candidates))
	for _, c := range candidates {
		rec, err := normalize(c)
		if err != nil {
			return nil, err
		}
		if err := validate.Struct(rec); err != nil {
			return nil, model.NewError(model.KindInvalidFieldType,
				fmt.Sprintf("incorrect datatype in stock record %+v: %v", c, err))
		}
		records = append(records, rec)
	}

	for _, r := range records {
		if len(r.Price) != len(records[0].Price) {
			return nil, model.NewError(model.KindInvalidFieldType,
				fmt.Sprintf("incorrect datatype in stock record %+v: price has %d points, expected %d",
					r, len(r.Price), len(records[0].Price)))
		}
	}
	return records, nil
}

func asSlice(data any) []any {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return []any{data}
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}

func normalize(c any) (model.StockRecord, error) {
	switch v := c.(type) {
	case model.StockRecord:
		return v, nil
	case *model.StockRecord:
		if v != nil {
			return *v, nil
		}
	case model.StockTuple:
		return fromTuple(v)
	case *model.StockTuple:
		if v != nil {
			return fromTuple(*v)
		}
	}
	return model.StockRecord{}, model.NewError(model.KindInvalidInputKind,
		fmt.Sprintf("Please send the stock market data as a structured stock record, got %T", c))
}

func fromTuple(t model.StockTuple) (model.StockRecord, error) {
	name, okName := t.Name.(string)
	symbol, okSymbol := t.Symbol.(string)
	price, okPrice := toSeries(t.Price)
	open, okOpen := toNumber(t.Open)
	high, okHigh := toNumber(t.High)
	closing, okClose := toNumber(t.Close)
	weight, okWeight := toFloat(t.Weight)

	if !(okName && okSymbol && okPrice && okOpen && okHigh && okClose && okWeight) {
		return model.StockRecord{}, model.NewError(model.KindInvalidFieldType,
			fmt.Sprintf("incorrect datatype in stock record %+v", t))
	}
	return model.StockRecord{
		Name:   name,
		Symbol: symbol,
		Price:  price,
		Open:   open,
		High:   high,
		Close:  closing,
		Weight: weight,
	}, nil
}

func toSeries(v any) ([]float64, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]float64, rv.Len())
	for i := range out {
		n, ok := toNumber(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// toNumber accepts any integer or floating point value.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return toFloat(v)
}

// toFloat accepts floating point values only.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	}
	return 0, false
}
