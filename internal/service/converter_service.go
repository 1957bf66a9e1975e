package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/worker"
)

const dateLayout = "2006-01-02"

type ConverterService struct {
	externalAPI worker.ExternalAPIClient
	metrics     *metrics.Metrics
	timeNow     func() time.Time
}

func NewConverterService(externalAPI worker.ExternalAPIClient, m *metrics.Metrics) *ConverterService {
	return &ConverterService{
		externalAPI: externalAPI,
		metrics:     m,
		timeNow:     time.Now,
	}
}

// Convert converts amount from one currency to another with a single API
// call. Converting a currency to itself never touches the network.
func (s *ConverterService) Convert(ctx context.Context, amount float64, from, to string) (model.ConversionResult, error) {
	if from == to {
		s.metrics.Converted(metrics.OutcomeIdentity)
		return model.ConversionResult{
			RequestedAmount: amount,
			Rate:            1,
			ConvertedAmount: amount,
			AsOfDate:        s.timeNow().Format(dateLayout),
		}, nil
	}

	resp, err := s.externalAPI.FetchConversion(ctx, amount, from, to)
	if err != nil {
		s.recordFailure(err)
		return model.ConversionResult{}, err
	}

	rate, ok := resp.Rates[to].(float64)
	if !ok {
		s.metrics.Converted(metrics.OutcomeUnavailable)
		return model.ConversionResult{}, fmt.Errorf("%w: %s to %s", model.ErrRateUnavailable, from, to)
	}

	s.metrics.Converted(metrics.OutcomeSuccess)
	return model.ConversionResult{
		RequestedAmount: resp.Amount,
		Rate:            rate,
		ConvertedAmount: rate,
		AsOfDate:        resp.Date,
	}, nil
}

func (s *ConverterService) recordFailure(err error) {
	if errors.Is(err, model.ErrRateUnavailable) {
		s.metrics.Converted(metrics.OutcomeUnavailable)
		return
	}
	s.metrics.Converted(metrics.OutcomeTransport)
}
