package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/repository"
	"github.com/Lutefd/currency-widget/internal/server"
	"github.com/Lutefd/currency-widget/internal/service"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/Lutefd/currency-widget/internal/worker"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type dependencies struct {
	store     storage.Store
	logRepo   repository.LogRepository
	catalog   service.CatalogServiceInterface
	refresher Refresher
	server    Runner
}

type Refresher interface {
	Start(ctx context.Context) error
}

type Runner interface {
	Start(ctx context.Context) error
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	config, err := commons.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	deps, err := initDependencies(config)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, deps); err != nil {
		log.Fatalf("Widget server failed: %v", err)
	}
}

func initDependencies(config commons.Config) (*dependencies, error) {
	store, err := storage.NewRedisStore(config.RedisAddr, config.RedisPass)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preference store: %w", err)
	}

	var logRepo repository.LogRepository
	if config.PostgresConn != "" {
		pgRepo, err := repository.NewPostgresLogRepository(config.PostgresConn, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log repository: %w", err)
		}
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		logRepo = pgRepo
	}

	formatter, err := format.NewLocaleFormatter(config.Locale)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	externalAPI := worker.NewFrankfurterClient(
		worker.WithBaseURL(config.RatesAPIURL),
		worker.WithHTTPClient(&http.Client{Timeout: config.RatesAPITimeout}),
	)
	catalog := service.NewCatalogService(externalAPI, m)
	converter := service.NewConverterService(externalAPI, m)

	srv := server.NewServer(config, server.Dependencies{
		Catalog:   catalog,
		Converter: converter,
		Store:     store,
		Formatter: formatter,
		Metrics:   m,
		Gatherer:  reg,
	})

	return &dependencies{
		store:     store,
		logRepo:   logRepo,
		catalog:   catalog,
		refresher: worker.NewCatalogRefresher(catalog, config.CatalogRefreshSpec),
		server:    srv,
	}, nil
}

func run(ctx context.Context, deps *dependencies) error {
	if deps.logRepo != nil {
		logger.InitLogger(deps.logRepo)
	}

	defer func() {
		if err := deps.store.Close(); err != nil {
			log.Printf("Error closing preference store: %v", err)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.LoggerShutdownTimeout)
		defer cancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error flushing logs: %v", err)
		}
	}()

	currencies := deps.catalog.Currencies(ctx)
	logger.Infof(model.LogSourceCatalog, "catalog ready with %d currencies", len(currencies))

	if err := deps.refresher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog refresher: %w", err)
	}

	return deps.server.Start(ctx)
}
