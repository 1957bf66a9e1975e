package service

import (
	"context"
	"sync"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/worker"
)

type CatalogService struct {
	externalAPI worker.ExternalAPIClient
	metrics     *metrics.Metrics

	mu       sync.RWMutex
	snapshot []model.Currency
}

func NewCatalogService(externalAPI worker.ExternalAPIClient, m *metrics.Metrics) *CatalogService {
	return &CatalogService{
		externalAPI: externalAPI,
		metrics:     m,
	}
}

// LoadCurrencies fetches the live catalog, falling back to a fixed list of
// common currencies when the fetch fails. It never returns an error.
func (s *CatalogService) LoadCurrencies(ctx context.Context) []model.Currency {
	currencies, _ := s.load(ctx)
	return currencies
}

// Currencies returns the process-wide catalog snapshot. Only a live catalog
// is kept, so a fallback answer is retried on the next call.
func (s *CatalogService) Currencies(ctx context.Context) []model.Currency {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		return s.snapshot
	}
	currencies, live := s.load(ctx)
	if live {
		s.snapshot = currencies
	}
	return currencies
}

func (s *CatalogService) load(ctx context.Context) ([]model.Currency, bool) {
	currencies, err := s.fetch(ctx)
	if err != nil {
		logger.Errorf(model.LogSourceCatalog, "using fallback currencies: %v", err)
		s.metrics.CatalogLoaded(metrics.CatalogSourceFallback)
		return model.FallbackCurrencies(), false
	}
	s.metrics.CatalogLoaded(metrics.CatalogSourceLive)
	return currencies, true
}

// Refresh replaces the snapshot with the live catalog. On failure the current
// snapshot is kept.
func (s *CatalogService) Refresh(ctx context.Context) error {
	currencies, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.metrics.CatalogLoaded(metrics.CatalogSourceLive)

	s.mu.Lock()
	s.snapshot = currencies
	s.mu.Unlock()
	logger.Infof(model.LogSourceCatalog, "catalog refreshed with %d currencies", len(currencies))
	return nil
}

func (s *CatalogService) fetch(ctx context.Context) ([]model.Currency, error) {
	names, err := s.externalAPI.FetchCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, model.ErrCatalogLoad
	}
	return model.CurrenciesFromMap(names), nil
}
