package repositories

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/currency-exchanger/internal/logger"
)

// Storage keys for the two persisted entries.
const (
	KeyBalances     = "balances"
	KeyTransactions = "transactions"
)

// BalanceRedisRepository persists balances and the transaction counter in
// Redis. Both entries are replaced atomically with single-key SETs.
type BalanceRedisRepository struct {
	client *redis.Client
}

// NewBalanceRedisRepository creates a new repository instance.
func NewBalanceRedisRepository(client *redis.Client) *BalanceRedisRepository {
	return &BalanceRedisRepository{client: client}
}

// GetBalances returns the stored balances. The second return value is false
// when no balances have ever been written.
func (r *BalanceRedisRepository) GetBalances(ctx context.Context) (map[string]float64, bool, error) {
	val, err := r.client.Get(ctx, KeyBalances).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read balances",
			"key", KeyBalances,
			"error", err,
		)
		return nil, false, err
	}

	var balances map[string]float64
	if err := json.Unmarshal([]byte(val), &balances); err != nil {
		logger.Log.Errorw("failed to decode stored balances",
			"key", KeyBalances,
			"value", val,
			"error", err,
		)
		return nil, false, err
	}

	return balances, true, nil
}

// SetBalances atomically replaces the stored balances mapping.
func (r *BalanceRedisRepository) SetBalances(ctx context.Context, balances map[string]float64) error {
	data, err := json.Marshal(balances)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, KeyBalances, data, 0).Err()

	logger.Log.Infow("set balances",
		"key", KeyBalances,
		"balances", balances,
		"error", err,
	)

	return err
}

// GetTransactions returns the lifetime successful-conversion counter,
// defaulting to 0 when unset.
func (r *BalanceRedisRepository) GetTransactions(ctx context.Context) (int, error) {
	val, err := r.client.Get(ctx, KeyTransactions).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read transaction count",
			"key", KeyTransactions,
			"error", err,
		)
		return 0, err
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		logger.Log.Errorw("failed to parse transaction count",
			"key", KeyTransactions,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	return count, nil
}

// SetTransactions atomically replaces the transaction counter.
func (r *BalanceRedisRepository) SetTransactions(ctx context.Context, count int) error {
	err := r.client.Set(ctx, KeyTransactions, strconv.Itoa(count), 0).Err()

	logger.Log.Infow("set transaction count",
		"key", KeyTransactions,
		"count", count,
		"error", err,
	)

	return err
}
