package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minibank-ledger/internal/api_gateway"
	"github.com/minibank-ledger/internal/config"
	"github.com/minibank-ledger/internal/data/memory"
	"github.com/minibank-ledger/internal/domain/money"
	"github.com/minibank-ledger/internal/fixture"
	"github.com/minibank-ledger/internal/logger"
	"github.com/minibank-ledger/internal/platform/clock"
	"github.com/minibank-ledger/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the in-memory directories and the ledger service
	systemClock := clock.NewSystem()
	customerDirectory := memory.NewCustomerDirectory()
	accountDirectory := memory.NewAccountDirectory(systemClock, cfg.Ledger.FirstAccountNumber)
	ledgerService := service.NewLedgerService(customerDirectory, accountDirectory, money.NewMinorUnitConverter(), systemClock)

	if cfg.Ledger.SeedDemoData {
		numbers, err := fixture.SeedDemoData(ledgerService)
		if err != nil {
			log.Error("Failed to seed demonstration data", "error", err)
			os.Exit(1)
		}
		log.Info("Demonstration data seeded", "accounts", numbers)
	}

	// Initialize REST server
	server := api_gateway.NewServer(log, cfg, ledgerService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	} else if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
