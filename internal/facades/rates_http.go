package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// RatesHTTPFacade fetches exchange rates from a JSON HTTP endpoint.
type RatesHTTPFacade struct {
	client *http.Client
	url    string
}

// NewRatesHTTPFacade creates a new facade with the given HTTP client and endpoint URL.
func NewRatesHTTPFacade(client *http.Client, url string) *RatesHTTPFacade {
	return &RatesHTTPFacade{client: client, url: url}
}

// GetExchangeRates fetches the current rate snapshot from the endpoint.
func (f *RatesHTTPFacade) GetExchangeRates(ctx context.Context) (*models.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "url", f.url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected status from rates endpoint", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("rates endpoint returned status %d", resp.StatusCode)
	}

	var snapshot models.RateSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		logger.Log.Errorw("failed to decode rates response", "url", f.url, "error", err)
		return nil, err
	}
	if snapshot.Rates == nil {
		return nil, fmt.Errorf("rates endpoint returned no rates")
	}

	return &snapshot, nil
}
