package model

import "github.com/shopspring/decimal"

// ConversionResponse mirrors the body of the rates API /latest endpoint.
// Rates are kept loosely typed so a non-numeric value can be told apart from
// a missing one.
type ConversionResponse struct {
	Amount float64                `json:"amount"`
	Base   string                 `json:"base"`
	Date   string                 `json:"date"`
	Rates  map[string]interface{} `json:"rates"`
}

// ConversionResult holds the outcome of a single conversion. Rate is the
// converted total for RequestedAmount, not a per-unit price.
type ConversionResult struct {
	RequestedAmount float64 `json:"requested_amount"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
	AsOfDate        string  `json:"as_of_date"`
}

// UnitRate is what one unit of the source currency is worth in the target
// currency. It is undefined when nothing was requested.
func (r ConversionResult) UnitRate() (float64, bool) {
	if r.RequestedAmount <= 0 {
		return 0, false
	}
	unit, _ := decimal.NewFromFloat(r.ConvertedAmount).
		Div(decimal.NewFromFloat(r.RequestedAmount)).
		Float64()
	return unit, true
}
