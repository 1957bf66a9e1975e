package service

import (
	"context"
	"errors"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/storage"
)

const (
	FromKey = "cc_from"
	ToKey   = "cc_to"
)

// PreferenceService keeps one visitor's last-used currency pair. Storage is
// best effort: failures are logged and never reach the caller.
type PreferenceService struct {
	store     storage.Store
	namespace string
	metrics   *metrics.Metrics
}

func NewPreferenceService(store storage.Store, visitorID string, m *metrics.Metrics) *PreferenceService {
	namespace := ""
	if visitorID != "" {
		namespace = "prefs:" + visitorID + ":"
	}
	return &PreferenceService{
		store:     store,
		namespace: namespace,
		metrics:   m,
	}
}

func (s *PreferenceService) Load(ctx context.Context) model.PreferencePair {
	return model.PreferencePair{
		From: s.read(ctx, FromKey, model.DefaultFromCurrency),
		To:   s.read(ctx, ToKey, model.DefaultToCurrency),
	}
}

func (s *PreferenceService) Save(ctx context.Context, from, to string) {
	s.write(ctx, FromKey, from)
	s.write(ctx, ToKey, to)
}

func (s *PreferenceService) read(ctx context.Context, key, fallback string) string {
	value, err := s.store.Get(ctx, s.namespace+key)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			s.metrics.StorageFailed()
			logger.Errorf(model.LogSourceStorage, "reading %s: %v", key, err)
		}
		return fallback
	}
	if value == "" {
		return fallback
	}
	return value
}

func (s *PreferenceService) write(ctx context.Context, key, value string) {
	if err := s.store.Set(ctx, s.namespace+key, value); err != nil {
		s.metrics.StorageFailed()
		logger.Errorf(model.LogSourceStorage, "writing %s: %v", key, err)
	}
}
