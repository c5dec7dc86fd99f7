package di

import (
	"go.uber.org/dig"

	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/factory"
	"github.com/modobot/mood-engine/internal/logging"
	"github.com/modobot/mood-engine/internal/ports"
	"github.com/modobot/mood-engine/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewHistoryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewServerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register emotion classifier
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.EmotionClassifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}

	// Register heuristic fallback classifier
	if err := container.Provide(core.NewHeuristicClassifier); err != nil {
		return nil, err
	}

	// Register history repository and limit
	if err := container.Provide(func(f *factory.HistoryFactory) (core.HistoryRepository, error) {
		return f.CreateHistoryRepository()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.HistoryFactory) int {
		return f.GetHistoryLimit()
	}); err != nil {
		return nil, err
	}

	// Register mood service
	if err := container.Provide(core.NewMoodService); err != nil {
		return nil, err
	}

	// Register analysis server
	if err := container.Provide(func(f *factory.ServerFactory) (ports.AnalysisServer, error) {
		return f.CreateAnalysisServer()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
