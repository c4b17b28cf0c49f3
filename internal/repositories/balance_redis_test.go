package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBalanceRedisRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewBalanceRedisRepository(rdb)

	t.Run("balances unset on first run", func(t *testing.T) {
		balances, ok, err := repo.GetBalances(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, balances)
	})

	t.Run("set and get balances", func(t *testing.T) {
		want := map[string]float64{"EUR": 1000.0, "USD": 0.0}

		err := repo.SetBalances(ctx, want)
		assert.NoError(t, err)

		got, ok, err := repo.GetBalances(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("set replaces the whole mapping", func(t *testing.T) {
		err := repo.SetBalances(ctx, map[string]float64{"EUR": 1.0})
		assert.NoError(t, err)

		got, ok, err := repo.GetBalances(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, map[string]float64{"EUR": 1.0}, got)
	})

	t.Run("transaction count defaults to zero", func(t *testing.T) {
		count, err := repo.GetTransactions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("set and get transaction count", func(t *testing.T) {
		err := repo.SetTransactions(ctx, 6)
		assert.NoError(t, err)

		count, err := repo.GetTransactions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 6, count)
	})
}

func TestBalancesWatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds initial balances on first run", func(t *testing.T) {
		storage := &fakeBalanceStorage{}
		watcher := NewBalancesWatcher(storage, map[string]float64{"EUR": 1000.0})

		err := watcher.Start(ctx)
		assert.NoError(t, err)
		assert.Equal(t, map[string]float64{"EUR": 1000.0}, storage.stored)
		assert.Equal(t, map[string]float64{"EUR": 1000.0}, <-watcher.Updates())
	})

	t.Run("emits stored balances when already set", func(t *testing.T) {
		storage := &fakeBalanceStorage{stored: map[string]float64{"USD": 5.0}, set: true}
		watcher := NewBalancesWatcher(storage, map[string]float64{"EUR": 1000.0})

		err := watcher.Start(ctx)
		assert.NoError(t, err)
		assert.Equal(t, map[string]float64{"USD": 5.0}, <-watcher.Updates())
	})

	t.Run("re-emits after a write", func(t *testing.T) {
		storage := &fakeBalanceStorage{stored: map[string]float64{"USD": 5.0}, set: true}
		watcher := NewBalancesWatcher(storage, nil)

		err := watcher.SetBalances(ctx, map[string]float64{"USD": 7.0})
		assert.NoError(t, err)
		assert.Equal(t, map[string]float64{"USD": 7.0}, storage.stored)
		assert.Equal(t, map[string]float64{"USD": 7.0}, <-watcher.Updates())
	})

	t.Run("keeps only the latest pending value", func(t *testing.T) {
		storage := &fakeBalanceStorage{}
		watcher := NewBalancesWatcher(storage, nil)

		assert.NoError(t, watcher.SetBalances(ctx, map[string]float64{"USD": 1.0}))
		assert.NoError(t, watcher.SetBalances(ctx, map[string]float64{"USD": 2.0}))
		assert.Equal(t, map[string]float64{"USD": 2.0}, <-watcher.Updates())
	})
}

type fakeBalanceStorage struct {
	stored map[string]float64
	set    bool
	err    error
}

func (f *fakeBalanceStorage) GetBalances(ctx context.Context) (map[string]float64, bool, error) {
	return f.stored, f.set, f.err
}

func (f *fakeBalanceStorage) SetBalances(ctx context.Context, balances map[string]float64) error {
	if f.err != nil {
		return f.err
	}
	f.stored = balances
	f.set = true
	return nil
}
