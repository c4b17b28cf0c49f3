package facades

import (
	"context"
	"errors"
	"testing"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rates map[string]float32
	err   error
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{Rates: f.rates}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRateResponse{FromCurrency: req.FromCurrency, ToCurrency: req.ToCurrency}, nil
}

// --- Tests ---
func TestRatesGRPCFacade_GetExchangeRates(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"USD": 1.0,
			"EUR": 0.9,
		},
	}
	facade := NewRatesGRPCFacade(client)

	snapshot, err := facade.GetExchangeRates(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1.0, "EUR": float64(float32(0.9))}, snapshot.Rates)
}

func TestRatesGRPCFacade_GetExchangeRates_Error(t *testing.T) {
	client := &fakeExchangeClient{err: errors.New("grpc error")}
	facade := NewRatesGRPCFacade(client)

	snapshot, err := facade.GetExchangeRates(context.Background())
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}
