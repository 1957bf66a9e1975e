package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/Lutefd/currency-widget/internal/widget"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies are the collaborators shared by every request.
type Dependencies struct {
	Catalog   widget.CatalogLoader
	Converter widget.RateConverter
	Store     storage.Store
	Formatter format.NumberFormatter
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

type Server struct {
	port   int
	router http.Handler
	config commons.Config
}

func NewServer(config commons.Config, deps Dependencies) *Server {
	server := &Server{
		port:   int(config.ServerPort),
		config: config,
	}
	server.registerRoutes(deps)
	return server
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	logger.Infof(model.LogSourceHTTP, "starting server on port %d", s.port)
	ch := make(chan error, 1)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		IdleTimeout:  commons.ServerIdleTimeout,
		ReadTimeout:  commons.ServerReadTimeout,
		WriteTimeout: commons.ServerWriteTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			ch <- fmt.Errorf("failed to start server: %w", err)
		}
		close(ch)
	}()
	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.ServerShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	}
}
