package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// InsufficientFundsMessage is the user-facing error shown when a
// conversion would drive the sell-side balance below zero.
const InsufficientFundsMessage = "Conversion failed, please check your balances"

var (
	ErrNegativeAmount    = errors.New("sell amount must be non-negative")
	ErrUnknownCurrency   = errors.New("currency is not available")
	ErrSameCurrency      = errors.New("receive currency must differ from sell currency")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// BalancesWriter persists a full replacement of the balances mapping.
type BalancesWriter interface {
	SetBalances(ctx context.Context, balances map[string]float64) error
}

// TransactionsStore reads and replaces the lifetime transaction counter.
type TransactionsStore interface {
	GetTransactions(ctx context.Context) (int, error)
	SetTransactions(ctx context.Context, count int) error
}

// ExchangeService merges three asynchronous inputs (rate updates, stored
// balances, the currency list) into one view state and executes the
// conversion transaction. All state transitions, background ticks and
// user actions alike, are serialized on one mutex; Run is the only
// consumer of the input channels.
type ExchangeService struct {
	mu sync.Mutex

	state models.ExchangeViewState

	// latest cached value of each input, carried forward on every tick
	rates       map[string]float64 // last-known-good rate snapshot
	currencies  []string
	rawBalances map[string]float64

	rateCh       <-chan models.RateUpdate
	balancesCh   <-chan map[string]float64
	currenciesCh <-chan []string

	writer       BalancesWriter
	transactions TransactionsStore
	commission   CommissionProvider

	subs []func(models.ExchangeViewState)
}

// NewExchangeService creates an engine consuming the given input channels.
// The view state starts with empty defaults until the inputs arrive.
func NewExchangeService(
	rateCh <-chan models.RateUpdate,
	balancesCh <-chan map[string]float64,
	currenciesCh <-chan []string,
	writer BalancesWriter,
	transactions TransactionsStore,
	commission CommissionProvider,
) *ExchangeService {
	return &ExchangeService{
		rateCh:       rateCh,
		balancesCh:   balancesCh,
		currenciesCh: currenciesCh,
		writer:       writer,
		transactions: transactions,
		commission:   commission,
	}
}

// Run consumes the input channels until ctx is cancelled. Closed channels
// are dropped from the select.
func (e *ExchangeService) Run(ctx context.Context) {
	rateCh, balancesCh, currenciesCh := e.rateCh, e.balancesCh, e.currenciesCh
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-rateCh:
			if !ok {
				rateCh = nil
				continue
			}
			e.onRateUpdate(upd)
		case balances, ok := <-balancesCh:
			if !ok {
				balancesCh = nil
				continue
			}
			e.onBalancesUpdate(balances)
		case currencies, ok := <-currenciesCh:
			if !ok {
				currenciesCh = nil
				continue
			}
			e.onCurrenciesUpdate(currencies)
		}
	}
}

// ViewState returns a copy of the current view state.
func (e *ExchangeService) ViewState() models.ExchangeViewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe registers a callback invoked with a state copy after every
// recomputation. Callbacks must not call back into the engine.
func (e *ExchangeService) Subscribe(fn func(models.ExchangeViewState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

func (e *ExchangeService) onRateUpdate(upd models.RateUpdate) {
	e.mu.Lock()
	if upd.Err != "" {
		// keep the last-known-good rates and the derived receive amount
		e.state.Error = upd.Err
	} else {
		e.rates = upd.Snapshot.Rates
		e.state.Error = ""
	}
	e.recomputeLocked()
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
}

func (e *ExchangeService) onBalancesUpdate(balances map[string]float64) {
	e.mu.Lock()
	e.rawBalances = balances
	e.recomputeLocked()
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
}

func (e *ExchangeService) onCurrenciesUpdate(currencies []string) {
	e.mu.Lock()
	e.currencies = currencies
	e.recomputeLocked()
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
}

// recomputeLocked derives the dependent view fields from the cached
// inputs. Must be called with the mutex held.
func (e *ExchangeService) recomputeLocked() {
	if len(e.currencies) > 0 {
		balances := make(map[string]float64, len(e.currencies))
		for _, currency := range e.currencies {
			balances[currency] = e.rawBalances[currency]
		}
		e.state.Balances = balances

		if e.state.SellCurrency == "" {
			e.state.SellCurrency = e.currencies[0]
		}
		if e.state.ReceiveCurrency == "" && len(e.currencies) > 1 {
			e.state.ReceiveCurrency = e.currencies[1]
		}
		if e.state.SellCurrencyOptions == nil {
			e.state.SellCurrencyOptions = exclude(e.currencies, e.state.SellCurrency)
		}
		if e.state.ReceiveCurrencyOptions == nil {
			e.state.ReceiveCurrencyOptions = exclude(e.currencies, e.state.SellCurrency, e.state.ReceiveCurrency)
		}
	}

	if e.rates != nil {
		e.state.ReceiveAmount = convert(e.state.SellAmount, e.state.SellCurrency, e.state.ReceiveCurrency, e.rates)
	}
}

// OnSellAmountChange updates the sell amount and rederives the receive
// amount from the last-known-good rates.
func (e *ExchangeService) OnSellAmountChange(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	e.mu.Lock()
	e.state.SellAmount = amount
	e.state.ReceiveAmount = convert(amount, e.state.SellCurrency, e.state.ReceiveCurrency, e.rates)
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// OnSellCurrencyChange selects a new sell currency. When the selection
// collides with the current receive currency, the receive currency moves
// to the first remaining option so the two never match.
func (e *ExchangeService) OnSellCurrencyChange(currency string) error {
	e.mu.Lock()
	if !slices.Contains(e.currencies, currency) {
		e.mu.Unlock()
		return ErrUnknownCurrency
	}

	e.state.SellCurrency = currency
	e.state.SellCurrencyOptions = exclude(e.currencies, currency)
	if e.state.ReceiveCurrency == currency {
		e.state.ReceiveCurrency = ""
		if options := e.state.SellCurrencyOptions; len(options) > 0 {
			e.state.ReceiveCurrency = options[0]
		}
	}
	e.state.ReceiveCurrencyOptions = exclude(e.currencies, currency, e.state.ReceiveCurrency)
	e.state.ReceiveAmount = convert(e.state.SellAmount, currency, e.state.ReceiveCurrency, e.rates)

	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// OnReceiveCurrencyChange selects a new receive currency, which must
// differ from the sell currency.
func (e *ExchangeService) OnReceiveCurrencyChange(currency string) error {
	e.mu.Lock()
	if !slices.Contains(e.currencies, currency) {
		e.mu.Unlock()
		return ErrUnknownCurrency
	}
	if currency == e.state.SellCurrency {
		e.mu.Unlock()
		return ErrSameCurrency
	}

	e.state.ReceiveCurrency = currency
	e.state.ReceiveCurrencyOptions = exclude(e.currencies, currency, e.state.SellCurrency)
	e.state.ReceiveAmount = convert(e.state.SellAmount, e.state.SellCurrency, currency, e.rates)

	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// OnSubmitClick executes the conversion: commission lookup, sufficiency
// check, balance write, counter increment, confirmation dialog. Failure
// paths leave persisted state untouched, except for the documented window
// between the balance write and the counter write.
func (e *ExchangeService) OnSubmitClick(ctx context.Context) error {
	e.mu.Lock()

	sellCurrency := e.state.SellCurrency
	sellAmount := e.state.SellAmount
	receiveCurrency := e.state.ReceiveCurrency
	receiveAmount := e.state.ReceiveAmount

	fee, description, err := e.commission.GetCommission(ctx, sellCurrency, sellAmount, receiveCurrency, receiveAmount)
	if err != nil {
		logger.Log.Errorw("failed to calculate commission", "error", err)
		return e.failLocked(err)
	}

	newSellBalance := e.state.Balances[sellCurrency] - sellAmount - fee
	newReceiveBalance := e.state.Balances[receiveCurrency] + receiveAmount
	if newSellBalance < 0 {
		e.state.Error = InsufficientFundsMessage
		notify := e.publishLocked()
		e.mu.Unlock()
		notify()
		return ErrInsufficientFunds
	}

	newBalances := make(map[string]float64, len(e.state.Balances))
	for currency, amount := range e.state.Balances {
		newBalances[currency] = amount
	}
	newBalances[sellCurrency] = newSellBalance
	newBalances[receiveCurrency] = newReceiveBalance

	if err := e.writer.SetBalances(ctx, newBalances); err != nil {
		logger.Log.Errorw("failed to persist balances", "error", err)
		return e.failLocked(err)
	}

	count, err := e.transactions.GetTransactions(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read transaction count", "error", err)
		return e.failLocked(err)
	}
	if err := e.transactions.SetTransactions(ctx, count+1); err != nil {
		logger.Log.Errorw("failed to persist transaction count", "error", err)
		return e.failLocked(err)
	}

	// set the balances optimistically; the store re-emission confirms them
	e.state.Balances = newBalances
	e.state.Error = ""
	e.state.DialogMessage = fmt.Sprintf("You have converted %s %s to %s %s. %s",
		formatMoney(sellAmount), sellCurrency,
		formatMoney(receiveAmount), receiveCurrency,
		description,
	)

	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// OnDismissDialog clears the confirmation dialog; nothing else changes.
func (e *ExchangeService) OnDismissDialog() {
	e.mu.Lock()
	e.state.DialogMessage = ""
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
}

// failLocked surfaces a submit failure on the view state. Must be called
// with the mutex held; it releases the mutex.
func (e *ExchangeService) failLocked(err error) error {
	e.state.Error = err.Error()
	notify := e.publishLocked()
	e.mu.Unlock()
	notify()
	return err
}

// snapshotLocked copies the state so callers never share the internal
// maps and slices. Must be called with the mutex held.
func (e *ExchangeService) snapshotLocked() models.ExchangeViewState {
	snap := e.state
	if e.state.Balances != nil {
		snap.Balances = make(map[string]float64, len(e.state.Balances))
		for currency, amount := range e.state.Balances {
			snap.Balances[currency] = amount
		}
	}
	snap.SellCurrencyOptions = slices.Clone(e.state.SellCurrencyOptions)
	snap.ReceiveCurrencyOptions = slices.Clone(e.state.ReceiveCurrencyOptions)
	return snap
}

// publishLocked captures the snapshot and subscriber list; the returned
// func must be invoked after the mutex is released.
func (e *ExchangeService) publishLocked() func() {
	snap := e.snapshotLocked()
	subs := slices.Clone(e.subs)
	return func() {
		for _, fn := range subs {
			fn(snap)
		}
	}
}

// convert applies a rate snapshot to an amount. A currency missing from
// the snapshot yields 0 rather than an error so that partial rate data
// never breaks the view.
func convert(amount float64, fromCurrency, toCurrency string, rates map[string]float64) float64 {
	fromRate, ok := rates[fromCurrency]
	if !ok || fromRate == 0 {
		return 0
	}
	toRate, ok := rates[toCurrency]
	if !ok {
		return 0
	}
	return amount * toRate / fromRate
}

// exclude returns the currencies not present in excluded, preserving the
// currency-list order.
func exclude(currencies []string, excluded ...string) []string {
	options := make([]string, 0, len(currencies))
	for _, currency := range currencies {
		if !slices.Contains(excluded, currency) {
			options = append(options, currency)
		}
	}
	return options
}
