package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// First conversions are free of charge; the fee applies from this
	// lifetime transaction count onwards.
	freeTransactions = 5

	// Fee rate applied to the sell amount once the free tier is used up.
	commissionRate = 0.007
)

// TransactionsReader reads the lifetime successful-conversion counter.
type TransactionsReader interface {
	GetTransactions(ctx context.Context) (int, error)
}

// CommissionProvider calculates the fee for a conversion. The fee is
// denominated in the sell currency; the description is empty when no fee
// applies.
type CommissionProvider interface {
	GetCommission(ctx context.Context, fromCurrency string, fromAmount float64, toCurrency string, toAmount float64) (fee float64, description string, err error)
}

// DefaultCommissionProvider waives the fee for the first conversions and
// charges a fixed percentage of the sell amount afterwards. The gate is
// the lifetime transaction counter, never reset.
type DefaultCommissionProvider struct {
	transactions TransactionsReader
}

// NewDefaultCommissionProvider creates a provider reading the counter
// from the given store.
func NewDefaultCommissionProvider(transactions TransactionsReader) *DefaultCommissionProvider {
	return &DefaultCommissionProvider{transactions: transactions}
}

// GetCommission returns the fee for a conversion of fromAmount fromCurrency.
func (p *DefaultCommissionProvider) GetCommission(ctx context.Context, fromCurrency string, fromAmount float64, toCurrency string, toAmount float64) (float64, string, error) {
	count, err := p.transactions.GetTransactions(ctx)
	if err != nil {
		return 0, "", err
	}
	if count < freeTransactions {
		return 0, "", nil
	}

	fee := fromAmount * commissionRate
	return fee, fmt.Sprintf("Commission Fee - %s %s", formatMoney(fee), fromCurrency), nil
}

// formatMoney renders an amount with two decimal places for user-facing text.
func formatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
