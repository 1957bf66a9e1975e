package service_test

import (
	"context"
	"fmt"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockExternalAPIClient struct {
	mock.Mock
}

func (m *MockExternalAPIClient) FetchCurrencies(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExternalAPIClient) FetchConversion(ctx context.Context, amount float64, from, to string) (*model.ConversionResponse, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(0) != nil {
		return args.Get(0).(*model.ConversionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("%w: connection reset", model.ErrStorage)
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return fmt.Errorf("%w: connection reset", model.ErrStorage)
}

func (failingStore) Ping(ctx context.Context) error {
	return fmt.Errorf("%w: connection reset", model.ErrStorage)
}

func (failingStore) Close() error {
	return nil
}
