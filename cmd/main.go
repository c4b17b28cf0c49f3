package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/currency-exchanger/internal/facades"
	"github.com/sbilibin2017/currency-exchanger/internal/feeds"
	"github.com/sbilibin2017/currency-exchanger/internal/handlers"
	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/middlewares"
	"github.com/sbilibin2017/currency-exchanger/internal/repositories"
	"github.com/sbilibin2017/currency-exchanger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title currency-exchanger API
// @version 1.0.0
// @description Service maintaining a currency exchange view state backed by a live rates feed
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		ratesDriver, ratesURL, exchangerHost, exchangerPort,
		pollIntervalSeconds, currencies, initialBalances,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		ratesDriver, ratesURL, exchangerHost, exchangerPort,
		pollIntervalSeconds, currencies, initialBalances,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, rates-feed, and exchange configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	ratesDriver, ratesURL, exchangerHost, exchangerPort string,
	pollIntervalSeconds int,
	currencies, initialBalances string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	storageDriver = getEnv("STORAGE_DRIVER", "redis")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Rates feed config
	ratesDriver = getEnv("RATES_DRIVER", "http")
	ratesURL = getEnv("RATES_URL", "https://developers.paysera.com/tasks/api/currency-exchange-rates")
	exchangerHost = getEnv("EXCHANGER_HOST", "localhost")
	exchangerPort = getEnv("EXCHANGER_PORT", "50051")
	if pollIntervalSeconds, err = strconv.Atoi(getEnv("RATES_POLL_INTERVAL_SECONDS", "5")); err != nil {
		return
	}

	// Exchange config
	currencies = getEnv("EXCHANGE_CURRENCIES", "")
	initialBalances = getEnv("EXCHANGE_INITIAL_BALANCES", "")

	return
}

// balanceStore is the full storage surface: balances for the watcher and
// the transaction counter for the engine and commission provider.
type balanceStore interface {
	repositories.BalanceStorage
	services.TransactionsStore
}

// run initializes the logger, storage, rates feed, exchange engine, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	ratesDriver, ratesURL, exchangerHost, exchangerPort string,
	pollIntervalSeconds int,
	currencies, initialBalances string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Initialize balance storage
	var storage balanceStore
	switch storageDriver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("postgres connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping failed: %w", err)
		}
		storage = repositories.NewBalancePostgresRepository(db)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		storage = repositories.NewBalanceRedisRepository(rdb)
	default:
		return fmt.Errorf("unknown storage driver: %s", storageDriver)
	}

	// Initialize rates feed
	var getter feeds.RatesGetter
	switch ratesDriver {
	case "grpc":
		grpcAddr := fmt.Sprintf("%s:%s", exchangerHost, exchangerPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to exchanger at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		getter = facades.NewRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	case "http":
		getter = facades.NewRatesHTTPFacade(&http.Client{Timeout: 5 * time.Second}, ratesURL)
	default:
		return fmt.Errorf("unknown rates driver: %s", ratesDriver)
	}

	feed := feeds.NewRatesFeed(getter, time.Duration(pollIntervalSeconds)*time.Second)

	// Initialize providers
	currenciesProvider := services.NewStaticCurrenciesProvider(parseCurrencies(currencies))
	balances, err := parseInitialBalances(initialBalances)
	if err != nil {
		return fmt.Errorf("invalid initial balances: %w", err)
	}
	initialBalancesProvider := services.NewStaticInitialBalancesProvider(balances)

	// Initialize balances watcher
	watcher := repositories.NewBalancesWatcher(storage, initialBalancesProvider.GetInitialBalances())
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start balances watcher: %w", err)
	}

	// Initialize exchange engine
	engine := services.NewExchangeService(
		feed.Run(ctx),
		watcher.Updates(),
		feeds.Currencies(currenciesProvider),
		watcher,
		storage,
		services.NewDefaultCommissionProvider(storage),
	)
	go engine.Run(ctx)

	// Initialize websocket broadcaster
	broadcaster := handlers.NewStateBroadcaster()
	engine.Subscribe(broadcaster.Broadcast)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handlers.NewGetStateHandler(engine))
		r.Post("/sell/amount", handlers.NewSellAmountHandler(engine))
		r.Post("/sell/currency", handlers.NewSellCurrencyHandler(engine))
		r.Post("/receive/currency", handlers.NewReceiveCurrencyHandler(engine))
		r.Post("/submit", handlers.NewSubmitHandler(engine))
		r.Post("/dialog/dismiss", handlers.NewDismissDialogHandler(engine))
		r.Get("/ws", broadcaster.Handler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// parseCurrencies splits a comma-separated currency list. An empty value
// means the built-in default.
func parseCurrencies(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	currencies := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			currencies = append(currencies, c)
		}
	}
	return currencies
}

// parseInitialBalances decodes a JSON object of currency to amount. An empty
// value means the built-in default.
func parseInitialBalances(s string) (map[string]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var balances map[string]float64
	if err := json.Unmarshal([]byte(s), &balances); err != nil {
		return nil, err
	}
	return balances, nil
}
