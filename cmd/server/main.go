package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wraplens/backend/config"
	httpDelivery "github.com/wraplens/backend/internal/delivery/http"
	"github.com/wraplens/backend/internal/infrastructure/amazon"
	"github.com/wraplens/backend/internal/infrastructure/cache"
	"github.com/wraplens/backend/internal/infrastructure/llm"
	"github.com/wraplens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("starting WrapLens backend",
		"version", "1.0.0",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"model", cfg.LLM.Model,
		"completion_endpoint", cfg.LLM.BaseURL,
	)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	pageClient := amazon.NewClient(amazon.Config{
		BaseURL:           cfg.Amazon.BaseURL,
		UserAgent:         cfg.Amazon.UserAgent,
		Timeout:           cfg.Amazon.Timeout,
		RequestsPerSecond: cfg.Amazon.RequestsPerSecond,
	})

	completionClient := llm.NewClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		TopP:        cfg.LLM.TopP,
		Timeout:     cfg.LLM.Timeout,
	})

	// Initialize usecase layer
	extractionService := usecase.NewExtractionService(
		memoryCache,
		pageClient,
		completionClient,
		usecase.ExtractionServiceConfig{
			Model:    cfg.LLM.Model,
			CacheTTL: cfg.Cache.TTL,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	slog.Info("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
