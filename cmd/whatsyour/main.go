package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/whatsyour-info/whatsyour-go/internal/config"
	"github.com/whatsyour-info/whatsyour-go/internal/logger"
	"github.com/whatsyour-info/whatsyour-go/pkg/whatsyour"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "whatsyour: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("whatsyour starting", "config", cfg)

	client := whatsyour.New(whatsyour.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger.SDK(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(client, cfg.OutputFormat)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.ErrorObj("command failed", "error", err)
		return err
	}
	return nil
}
