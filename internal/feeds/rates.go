package feeds

import (
	"context"
	"time"

	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// RatesUnavailableMessage is the fixed user-facing message emitted when a
// rate fetch fails. The underlying cause is only logged.
const RatesUnavailableMessage = "Exchange rates are unavailable at the moment"

// RatesGetter fetches the current rate snapshot from an external source.
type RatesGetter interface {
	GetExchangeRates(ctx context.Context) (*models.RateSnapshot, error)
}

// RatesFeed polls a rate source on a fixed interval and emits snapshots
// or fetch errors. Consecutive identical snapshots are suppressed.
type RatesFeed struct {
	getter   RatesGetter
	interval time.Duration
}

// NewRatesFeed creates a feed polling the given source. The interval is
// measured from the completion of one fetch to the start of the next.
func NewRatesFeed(getter RatesGetter, interval time.Duration) *RatesFeed {
	return &RatesFeed{getter: getter, interval: interval}
}

// Run starts polling in a background goroutine and returns the channel of
// updates. The channel is closed when ctx is cancelled; the feed never
// terminates on its own.
func (f *RatesFeed) Run(ctx context.Context) <-chan models.RateUpdate {
	out := make(chan models.RateUpdate)

	go func() {
		defer close(out)

		var last *models.RateSnapshot
		for {
			snapshot, err := f.getter.GetExchangeRates(ctx)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return
				}
				logger.Log.Errorw("rate fetch failed", "error", err)
				if !send(ctx, out, models.RateUpdate{Err: RatesUnavailableMessage}) {
					return
				}
			case last == nil || !snapshot.Equal(last):
				last = snapshot
				if !send(ctx, out, models.RateUpdate{Snapshot: snapshot}) {
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(f.interval):
			}
		}
	}()

	return out
}

func send(ctx context.Context, out chan<- models.RateUpdate, upd models.RateUpdate) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- upd:
		return true
	}
}
