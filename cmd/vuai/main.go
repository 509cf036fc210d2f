// File path: cmd/vuai/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/friendlynotebook/vuai/internal/api"
	"github.com/friendlynotebook/vuai/internal/assist"
	"github.com/friendlynotebook/vuai/internal/cache"
	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/config"
	"github.com/friendlynotebook/vuai/internal/llm"
	"github.com/friendlynotebook/vuai/internal/search"
	"github.com/friendlynotebook/vuai/internal/store"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("vuai: .env file not loaded", "error", err)
	} else {
		logger.Info("vuai: environment loaded from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("vuai: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("db", cfg.SQLitePath, "path to the SQLite knowledge base")
	seed := flag.Bool("seed", false, "load the starter knowledge base and exit")
	flag.Parse()

	logger.Info("vuai: startup initiated", "addr", *addr, "db", *dbPath)

	if dir := filepath.Dir(*dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("vuai: create data directory failed", "dir", dir, "error", err)
			fmt.Println("data directory error:", err)
			os.Exit(1)
		}
	}

	kbStore, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("vuai: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer kbStore.Close()

	if *seed {
		inserted, err := kbStore.Seed(ctx)
		if err != nil {
			logger.Error("vuai: seed failed", "error", err)
			fmt.Println("seed error:", err)
			os.Exit(1)
		}
		logger.Info("vuai: knowledge base seeded", "entries", inserted)
		fmt.Printf("Seeded %d knowledge entries into %s\n", inserted, *dbPath)
		return
	}

	provider := llm.NewProvider(ctx)
	logger.Info("vuai: llm provider ready", "provider", provider.Name())

	responseCache := cache.New(
		cache.WithTTL(cfg.CacheTTL),
		cache.WithMaxEntries(cfg.CacheCapacity),
		cache.WithKeyPrefixLen(cfg.CacheKeyPrefix),
	)
	searcher := search.New(kbStore, search.WithFetchLimit(cfg.FetchLimit))
	responder := assist.New(responseCache, searcher, provider,
		assist.WithComposeTimeout(cfg.ComposeTimeout),
		assist.WithResultLimit(cfg.ResultLimit),
		assist.WithTranscripts(kbStore),
	)

	server, err := api.NewServer(kbStore, searcher, responder, responseCache, provider)
	if err != nil {
		logger.Error("vuai: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("vuai: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("vuai: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("vuai: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
