package model

import "sort"

type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Label is the text shown for the currency in a selection control.
func (c Currency) Label() string {
	return c.Code + " — " + c.Name
}

// CurrenciesFromMap turns the code → name mapping served by the rates API
// into a catalog sorted by code.
func CurrenciesFromMap(names map[string]string) []Currency {
	currencies := make([]Currency, 0, len(names))
	for code, name := range names {
		currencies = append(currencies, Currency{Code: code, Name: name})
	}
	SortCurrencies(currencies)
	return currencies
}

func SortCurrencies(currencies []Currency) {
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].Code < currencies[j].Code
	})
}

// FallbackCurrencies is served whenever the live catalog can't be loaded.
func FallbackCurrencies() []Currency {
	currencies := []Currency{
		{Code: "USD", Name: "United States Dollar"},
		{Code: "EUR", Name: "Euro"},
		{Code: "BRL", Name: "Brazilian Real"},
		{Code: "GBP", Name: "British Pound"},
		{Code: "JPY", Name: "Japanese Yen"},
		{Code: "ARS", Name: "Argentine Peso"},
	}
	SortCurrencies(currencies)
	return currencies
}

func ContainsCurrency(currencies []Currency, code string) bool {
	for _, c := range currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
