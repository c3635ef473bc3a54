package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/common/id"
	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/common/logger"
	"promptrelay.app/relay/common/otel"
	"promptrelay.app/relay/core/config"
	httprouter "promptrelay.app/relay/internal/http/router"
	"promptrelay.app/relay/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg := config.Load()

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet, OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	llmClient, err := llm.New(ctx, llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err, "provider", cfg.LLM.Provider)
		os.Exit(1)
	}
	defer llmClient.Close()

	if !cfg.LLM.HasAPIKey() {
		slog.WarnContext(ctx, "no API key configured, generation requests will fail with 401", "provider", llmClient.Provider())
	}
	slog.InfoContext(ctx, "llm client ready", "provider", llmClient.Provider(), "model", llmClient.Model())

	services := service.NewServices(llmClient, service.GenerationConfig{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httprouter.NewEngine(httprouter.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    cfg.OTel.ServiceName,
		TracingEnabled: cfg.OTel.Enabled(),
	}, services)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port, "env", cfg.Env, "allowed_origins", cfg.AllowedOrigins)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

const banner = `
 ___ ___  ___  __  __ ___ _____   ___ ___ _      ___   __
| _ \ _ \/ _ \|  \/  | _ \_   _| | _ \ __| |    /_\ \ / /
|  _/   / (_) | |\/| |  _/ | |   |   / _|| |__ / _ \ V /
|_| |_|_\\___/|_|  |_|_|   |_|   |_|_\___|____/_/ \_\_|
`
