package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/currency-exchanger/internal/logger"
)

// BalancePostgresRepository persists balances and the transaction counter
// in a key-value table. Each write is a single-statement upsert, giving the
// same atomic single-key replace semantics as the Redis backend.
type BalancePostgresRepository struct {
	db *sqlx.DB
}

// NewBalancePostgresRepository creates a new repository instance.
func NewBalancePostgresRepository(db *sqlx.DB) *BalancePostgresRepository {
	return &BalancePostgresRepository{db: db}
}

const kvUpsertQuery = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
`

const kvSelectQuery = `
	SELECT value
	FROM kv_store
	WHERE key = $1
`

func (r *BalancePostgresRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, kvSelectQuery, key)

	logger.Log.Infow("kv get",
		"query", strings.Join(strings.Fields(kvSelectQuery), " "),
		"args", []any{key},
		"result", value,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *BalancePostgresRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, kvUpsertQuery, key, value)

	logger.Log.Infow("kv set",
		"query", strings.Join(strings.Fields(kvUpsertQuery), " "),
		"args", []any{key, value},
		"error", err,
	)

	return err
}

// GetBalances returns the stored balances. The second return value is false
// when no balances have ever been written.
func (r *BalancePostgresRepository) GetBalances(ctx context.Context) (map[string]float64, bool, error) {
	value, ok, err := r.get(ctx, KeyBalances)
	if err != nil || !ok {
		return nil, false, err
	}

	var balances map[string]float64
	if err := json.Unmarshal([]byte(value), &balances); err != nil {
		logger.Log.Errorw("failed to decode stored balances",
			"key", KeyBalances,
			"value", value,
			"error", err,
		)
		return nil, false, err
	}

	return balances, true, nil
}

// SetBalances atomically replaces the stored balances mapping.
func (r *BalancePostgresRepository) SetBalances(ctx context.Context, balances map[string]float64) error {
	data, err := json.Marshal(balances)
	if err != nil {
		return err
	}
	return r.set(ctx, KeyBalances, string(data))
}

// GetTransactions returns the lifetime successful-conversion counter,
// defaulting to 0 when unset.
func (r *BalancePostgresRepository) GetTransactions(ctx context.Context) (int, error) {
	value, ok, err := r.get(ctx, KeyTransactions)
	if err != nil || !ok {
		return 0, err
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		logger.Log.Errorw("failed to parse transaction count",
			"key", KeyTransactions,
			"value", value,
			"error", err,
		)
		return 0, err
	}

	return count, nil
}

// SetTransactions atomically replaces the transaction counter.
func (r *BalancePostgresRepository) SetTransactions(ctx context.Context, count int) error {
	return r.set(ctx, KeyTransactions, strconv.Itoa(count))
}
