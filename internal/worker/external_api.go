package worker

import (
	"context"

	"github.com/Lutefd/currency-widget/internal/model"
)

type ExternalAPIClient interface {
	FetchCurrencies(ctx context.Context) (map[string]string, error)
	FetchConversion(ctx context.Context, amount float64, from, to string) (*model.ConversionResponse, error)
}
