package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/di"
	"github.com/modobot/mood-engine/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present; configuration proper is handled by viper
	_ = godotenv.Load()

	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	analysisServer ports.AnalysisServer,
	classifier core.EmotionClassifier,
	historyRepo core.HistoryRepository,
) error {
	defer logger.Sync()

	// Start the analysis server
	if err := analysisServer.Start(); err != nil {
		logger.Fatal("Failed to start analysis server", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the analysis server
	if err := analysisServer.Stop(); err != nil {
		logger.Error("Failed to stop analysis server", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := classifier.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close classifier", zap.Error(err))
		}
	}

	// Stop the history store if needed
	if stopper, ok := historyRepo.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}
