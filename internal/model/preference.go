package model

const (
	DefaultFromCurrency = "USD"
	DefaultToCurrency   = "BRL"
)

type PreferencePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func DefaultPreferencePair() PreferencePair {
	return PreferencePair{From: DefaultFromCurrency, To: DefaultToCurrency}
}

func (p PreferencePair) Swapped() PreferencePair {
	return PreferencePair{From: p.To, To: p.From}
}
