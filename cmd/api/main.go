package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/powergrid/intelligence-api/config"
	"github.com/powergrid/intelligence-api/internal/bootstrap"
	"github.com/powergrid/intelligence-api/internal/compliance/llm"
	"github.com/powergrid/intelligence-api/internal/compliance/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := bootstrap.NewLogger(os.Stdout, bootstrap.LogOptions{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
	})
	slog.SetDefault(logger)
	bootstrap.SetGinMode(cfg.App.Environment)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	completer, err := llm.New(llm.Options{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Error("llm provider", "error", err)
		os.Exit(1)
	}
	if completer == nil {
		logger.Warn("no API key configured, answering in simulation mode", "provider", cfg.LLM.Provider)
	}

	engine := service.NewEngine(completer, service.EngineOptions{
		Model:     cfg.LLM.Model,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
		Metrics:   service.NewMetrics(reg),
	})

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:          cfg.App.ServiceName,
		Logger:               logger,
		Engine:               engine,
		Gatherer:             reg,
		CORSAllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		MaxBodyBytes:         cfg.Server.MaxBodyBytes,
		StrictUpstreamErrors: cfg.Server.UpstreamErrorMode == config.UpstreamErrorsStrict,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("listening",
			"addr", srv.Addr,
			"service", cfg.App.ServiceName,
			"version", cfg.App.Version,
			"provider", cfg.LLM.Provider,
			"model", cfg.LLM.Model,
			"simulation", engine.Simulated(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	// allow in-flight model calls to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
