package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/walletsync/internal/handlers/cli"
	"github.com/gabapcia/walletsync/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletsync/internal/infra/storage/memory"
	"github.com/gabapcia/walletsync/internal/infra/storage/redis"
	"github.com/gabapcia/walletsync/internal/infra/wallet/keystore"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/walletsync/internal/pkg/transport/http"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/walletsession"
	"github.com/gabapcia/walletsync/internal/walletstore"
	"github.com/gabapcia/walletsync/internal/walletwatch"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return failure
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize telemetry: %v\n", err)
			return failure
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return failure
	}
	defer func() { _ = logger.Sync() }()

	httpClient := httptransport.NewStandardClient(
		httptransport.WithTimeout(cfg.HTTPTimeout),
		httptransport.WithRetryMax(cfg.HTTPRetryMax),
	)
	chain := ethereum.NewClient(jsonrpc.NewClient(httpClient, cfg.NodeURL))

	selection, closeSelection, err := newSelectionStore(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to connect to redis", "error", err)
		return failure
	}
	defer closeSelection()

	var catalog keystoreCatalog
	catalog.chain = chain
	if cfg.KeystoreDir != "" {
		catalog.ks = keystore.Open(cfg.KeystoreDir)
	}

	store := walletstore.New()
	engine := walletwatch.New(store, selection, walletwatch.WithPollInterval(cfg.PollInterval))

	pipeline := &app{
		engine:  engine,
		session: walletsession.New(engine, store, selection),
		store:   store,
		catalog: &catalog,
	}
	if cfg.ExtensionURL != "" {
		pipeline.extension = jsonrpc.NewClient(httpClient, cfg.ExtensionURL)
	}

	// the memory store dies with the process, so select has nothing to write to
	var selector cli.Selector
	if cfg.RedisAddr != "" {
		selector = selection
	}

	if err := cli.Run(ctx, pipeline, &catalog, selector); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return failure
	}

	return success
}

// newSelectionStore returns the Redis selection store when an address is
// configured and an in-memory one otherwise.
func newSelectionStore(ctx context.Context, cfg config) (walletwatch.SelectionStore, func(), error) {
	if cfg.RedisAddr == "" {
		return memory.NewSelection(""), func() {}, nil
	}

	r := retry.New(retry.WithAttempts(5), retry.WithDelay(200*time.Millisecond))

	client, err := redis.NewClient(ctx, r, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	return client, func() { _ = client.Close() }, nil
}
