// Command httpd runs the diff-analyzer HTTP server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/analyzer"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/api"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/config"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/processor"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Must(logging.Config{Level: "error"}).Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.Must(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = logger.Sync() }()

	logger.Info("starting diff-analyzer",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port),
		logging.Bool("debug", cfg.Service.Debug),
	)

	tp := telemetry.NewProvider()

	engine := analyzer.New(logger, tp)
	batchProcessor := processor.NewBatchProcessor(engine, cfg.Service.Concurrency, logger, tp)
	handler := api.NewHandler(engine, batchProcessor, cfg.Service.Name, cfg.Service.MaxBatchSize, logger)
	server := api.NewServer(handler, cfg, tp, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Error("server error", logging.Error(err))
			os.Exit(1)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", logging.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
