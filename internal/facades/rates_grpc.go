package facades

import (
	"context"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// RatesGRPCFacade fetches exchange rates from the exchange gRPC service.
type RatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewRatesGRPCFacade creates a new facade with a gRPC client.
func NewRatesGRPCFacade(client pb.ExchangeServiceClient) *RatesGRPCFacade {
	return &RatesGRPCFacade{client: client}
}

// GetExchangeRates fetches all exchange rates and returns them as a snapshot.
// The gRPC service does not report a base currency; the snapshot base is left empty.
func (f *RatesGRPCFacade) GetExchangeRates(ctx context.Context) (*models.RateSnapshot, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate)
	}

	return &models.RateSnapshot{Rates: rates}, nil
}
