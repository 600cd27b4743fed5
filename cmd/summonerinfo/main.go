package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kindred-labs/riotapi/internal/config"
	"github.com/kindred-labs/riotapi/internal/logger"
	"github.com/kindred-labs/riotapi/internal/storage"
	"github.com/kindred-labs/riotapi/pkg/ddragon"
	"github.com/kindred-labs/riotapi/pkg/httpclient"
	"github.com/kindred-labs/riotapi/pkg/regions"
	"github.com/kindred-labs/riotapi/pkg/riot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "summonerinfo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: summonerinfo <summoner name>")
	}
	name := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if cfg.RegionsFile != "" {
		if err := regions.Load(cfg.RegionsFile); err != nil {
			return fmt.Errorf("load regions: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := storage.NewCache(cfg.CacheType, cfg.BBoltPath, storage.Options{
		SnapshotTTL:     cfg.CacheTTL,
		CleanupInterval: cfg.CacheCleanupInterval,
	})
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer cache.Close()

	transport := httpclient.NewRestyClient(cfg.Timeout)
	opts := []riot.Option{riot.WithTransport(transport), riot.WithLogger(log)}
	if cfg.RoutingValue != "" {
		opts = append(opts, riot.WithRoutingValue(cfg.RoutingValue))
	}
	client := riot.New(cfg.APIKey, cfg.Platform, opts...)
	static := ddragon.New(transport, cache)

	logger.InfoObj("looking up summoner", "request", map[string]any{
		"name":     name,
		"platform": client.Platform(),
		"routing":  client.RoutingValue(),
	})

	summoner := client.SummonerByName(ctx, name)
	if !summoner.Ok() {
		fmt.Println(summoner)
		return nil
	}
	fmt.Println(summoner)

	if league := client.SoloLeague(ctx, summoner.Value().ID); league.Ok() {
		fmt.Printf("solo queue: %s (%d LP)\n", league.Value().ShortRank(), league.Value().LeaguePoints)
	}

	match := client.LastMatch(ctx, summoner.Value().PUUID)
	if !match.Ok() {
		fmt.Println(match)
		return nil
	}
	queue, err := static.QueueDescription(ctx, match.Value().Info.QueueID)
	if err != nil {
		logger.ErrorObj("queue lookup failed", "error", err)
		queue = "Unknown"
	}
	fmt.Printf("last match: %s, %d seconds, queue %q\n",
		match.Value().Metadata.MatchID, match.Value().Info.DurationSeconds(), queue)

	return nil
}
