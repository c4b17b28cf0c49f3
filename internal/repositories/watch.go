package repositories

import (
	"context"
)

// BalanceStorage is the subset of a balance repository the watcher needs.
type BalanceStorage interface {
	GetBalances(ctx context.Context) (map[string]float64, bool, error)
	SetBalances(ctx context.Context, balances map[string]float64) error
}

// BalancesWatcher turns a balance repository into an observable value: it
// emits the stored balances on Start and re-emits after every successful
// write routed through it. The channel keeps only the latest value, so a
// slow consumer never blocks a writer.
type BalancesWatcher struct {
	storage BalanceStorage
	initial map[string]float64
	ch      chan map[string]float64
}

// NewBalancesWatcher creates a watcher over the given storage. The initial
// balances are written on first run, when the store holds no balances yet.
func NewBalancesWatcher(storage BalanceStorage, initial map[string]float64) *BalancesWatcher {
	return &BalancesWatcher{
		storage: storage,
		initial: initial,
		ch:      make(chan map[string]float64, 1),
	}
}

// Start reads the stored balances, seeding the store on first run, and
// emits the current value on the updates channel.
func (w *BalancesWatcher) Start(ctx context.Context) error {
	balances, ok, err := w.storage.GetBalances(ctx)
	if err != nil {
		return err
	}
	if !ok {
		balances = w.initial
		if err := w.storage.SetBalances(ctx, balances); err != nil {
			return err
		}
	}
	w.notify(balances)
	return nil
}

// Updates returns the channel of balance emissions.
func (w *BalancesWatcher) Updates() <-chan map[string]float64 {
	return w.ch
}

// SetBalances persists the new mapping and re-emits it to observers.
func (w *BalancesWatcher) SetBalances(ctx context.Context, balances map[string]float64) error {
	if err := w.storage.SetBalances(ctx, balances); err != nil {
		return err
	}
	w.notify(balances)
	return nil
}

// notify replaces any pending value with the latest one. Writers are
// serialized by the engine, so the drain-then-send loop cannot livelock.
func (w *BalancesWatcher) notify(balances map[string]float64) {
	for {
		select {
		case w.ch <- balances:
			return
		default:
			select {
			case <-w.ch:
			default:
			}
		}
	}
}
