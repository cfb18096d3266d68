package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vitos/cryptopeek/internal/config"
	"github.com/vitos/cryptopeek/internal/domain"
	"github.com/vitos/cryptopeek/internal/infrastructure/coingecko"
	"github.com/vitos/cryptopeek/internal/usecase"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to YAML config")
	currency := flag.String("currency", string(domain.CurrencyUSD), "vs currency for the prices tab")
	query := flag.String("query", "", "search term for the search tab")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := coingecko.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.UpstreamTimeout())
	svc := usecase.NewMarketService(client)
	ctx := context.Background()

	fmt.Printf("Testing CoinGecko Interaction...\n")
	fmt.Printf("Endpoint: %s\n", client.BaseURL())

	failed := 0
	for _, tab := range domain.Tabs() {
		req := usecase.BuildRequest(tab, domain.Currency(*currency), *query)
		items, err := svc.Fetch(ctx, req)
		if err != nil {
			failed++
			fmt.Printf("❌ %-10s %s: %v\n", tab.Key(), client.URL(req.Path, req.RawQuery), err)
			continue
		}
		first := ""
		if len(items) > 0 {
			first = items[0].Label()
		}
		fmt.Printf("✅ %-10s %d items (first: %s)\n", tab.Key(), len(items), first)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
