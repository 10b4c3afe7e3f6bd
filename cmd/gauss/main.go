package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/rechenwerk/internal/gauss/server"
	"github.com/msto63/rechenwerk/internal/gauss/service"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/core/logging"
)

func main() {
	logger := logging.New("gauss")
	logger.Info("Starting Gauss Computation Service")

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.StartAsync(); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}

	logger.Info("Gauss server started", "address", srv.Address())

	report := srv.Health().CheckWithTimeout(5 * time.Second)
	logger.Info("Initial health check", "status", string(report.Status), "checks", len(report.Checks))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	srv.StopWithTimeout(ctx)

	logger.Info("Gauss server stopped")
}

func loadConfig() (server.Config, error) {
	cfg := server.DefaultConfig()

	configPath := os.Getenv("RECHENWERK_CONFIG")
	if configPath == "" {
		configPath = "configs/config.toml"
	}

	if _, err := os.Stat(configPath); err == nil {
		appCfg, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}

		cfg.Host = appCfg.Gauss.Host
		cfg.Port = appCfg.Gauss.Port
		if appCfg.Gauss.AuditEnabled {
			cfg.Service = service.Config{
				AuditPath:      appCfg.Gauss.AuditPath,
				AuditRetention: time.Duration(appCfg.Gauss.AuditRetentionDays) * 24 * time.Hour,
			}
		}
	}

	// Override from environment
	if host := os.Getenv("GAUSS_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("GAUSS_PORT"); port != "" {
		fmt.Sscanf(port, "%d", &cfg.Port)
	}
	if auditPath := os.Getenv("GAUSS_AUDIT_PATH"); auditPath != "" {
		cfg.Service.AuditPath = auditPath
	}

	return cfg, nil
}
