package worker

import (
	"context"
	"fmt"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/robfig/cron/v3"
)

type CatalogSource interface {
	Refresh(ctx context.Context) error
}

// CatalogRefresher reloads the currency catalog snapshot on a cron schedule.
type CatalogRefresher struct {
	source CatalogSource
	spec   string
	cron   *cron.Cron
}

func NewCatalogRefresher(source CatalogSource, spec string) *CatalogRefresher {
	return &CatalogRefresher{
		source: source,
		spec:   spec,
		cron:   cron.New(),
	}
}

func (cr *CatalogRefresher) Start(ctx context.Context) error {
	if _, err := cr.cron.AddFunc(cr.spec, func() { cr.refresh(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule catalog refresh %q: %w", cr.spec, err)
	}

	cr.cron.Start()
	logger.Infof(model.LogSourceCatalog, "catalog refresh scheduled with %q", cr.spec)

	go func() {
		<-ctx.Done()
		<-cr.cron.Stop().Done()
		logger.Info(model.LogSourceCatalog, "catalog refresher stopped")
	}()

	return nil
}

func (cr *CatalogRefresher) refresh(ctx context.Context) {
	if err := cr.source.Refresh(ctx); err != nil {
		logger.Errorf(model.LogSourceCatalog, "failed to refresh catalog: %v", err)
	}
}
