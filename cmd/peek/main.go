package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vitos/cryptopeek/internal/config"
	"github.com/vitos/cryptopeek/internal/infrastructure/coingecko"
	"github.com/vitos/cryptopeek/internal/infrastructure/logger"
	"github.com/vitos/cryptopeek/internal/tui"
	"github.com/vitos/cryptopeek/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	log, err := logger.NewFileLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client := coingecko.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.UpstreamTimeout())
	svc := usecase.NewMarketService(client)

	p := tea.NewProgram(tui.New(svc.Resolve, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("Dashboard exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
