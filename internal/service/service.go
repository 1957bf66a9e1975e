package service

import (
	"context"

	"github.com/Lutefd/currency-widget/internal/model"
)

type CatalogServiceInterface interface {
	LoadCurrencies(ctx context.Context) []model.Currency
	Currencies(ctx context.Context) []model.Currency
	Refresh(ctx context.Context) error
}
