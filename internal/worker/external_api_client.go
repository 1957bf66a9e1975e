package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/shopspring/decimal"
)

const FrankfurterBaseURL = "https://api.frankfurter.app"

type FrankfurterClient struct {
	baseURL string
	client  *http.Client
}

type FrankfurterOption func(*FrankfurterClient)

func WithBaseURL(baseURL string) FrankfurterOption {
	return func(c *FrankfurterClient) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) FrankfurterOption {
	return func(c *FrankfurterClient) {
		c.client = client
	}
}

func NewFrankfurterClient(opts ...FrankfurterOption) *FrankfurterClient {
	c := &FrankfurterClient{
		baseURL: FrankfurterBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *FrankfurterClient) FetchCurrencies(ctx context.Context) (map[string]string, error) {
	resp, err := c.get(ctx, c.baseURL+"/currencies")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogLoad, err)
	}
	defer resp.Body.Close()

	if !successful(resp) {
		return nil, fmt.Errorf("%w: API request failed with status code: %d", model.ErrCatalogLoad, resp.StatusCode)
	}

	var names map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", model.ErrCatalogLoad, err)
	}
	return names, nil
}

// FetchConversion asks the API to convert amount; the returned rate for to is
// the already scaled total.
func (c *FrankfurterClient) FetchConversion(ctx context.Context, amount float64, from, to string) (*model.ConversionResponse, error) {
	query := url.Values{}
	query.Set("amount", decimal.NewFromFloat(amount).String())
	query.Set("from", from)
	query.Set("to", to)

	resp, err := c.get(ctx, c.baseURL+"/latest?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if !successful(resp) {
		return nil, fmt.Errorf("%w: API request failed with status code: %d", model.ErrTransport, resp.StatusCode)
	}

	var conversion model.ConversionResponse
	if err := json.NewDecoder(resp.Body).Decode(&conversion); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", model.ErrRateUnavailable, err)
	}
	return &conversion, nil
}

func (c *FrankfurterClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func successful(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
