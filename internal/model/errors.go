package model

import "errors"

var (
	ErrCatalogLoad     = errors.New("failed to load currency catalog")
	ErrValidation      = errors.New("invalid amount")
	ErrTransport       = errors.New("rates service request failed")
	ErrRateUnavailable = errors.New("rate unavailable for the selected pair")
	ErrStorage         = errors.New("preference storage failure")
	ErrKeyNotFound     = errors.New("key not found")
)
