package handler_test

import (
	"context"
	"testing"

	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Currencies(ctx context.Context) []model.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]model.Currency)
}

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, amount float64, from, to string) (model.ConversionResult, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(model.ConversionResult), args.Error(1)
}

func testCatalog() []model.Currency {
	return []model.Currency{
		{Code: "BRL", Name: "Brazilian Real"},
		{Code: "EUR", Name: "Euro"},
		{Code: "USD", Name: "United States Dollar"},
	}
}

func setupStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := storage.NewRedisStore(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func englishFormatter(t *testing.T) *format.LocaleFormatter {
	f, err := format.NewLocaleFormatter("en")
	require.NoError(t, err)
	return f
}
