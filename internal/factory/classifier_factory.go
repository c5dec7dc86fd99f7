package factory

import (
	"fmt"

	"github.com/modobot/mood-engine/internal/adapters/bedrock"
	"github.com/modobot/mood-engine/internal/adapters/gemini"
	"github.com/modobot/mood-engine/internal/adapters/huggingface"
	"github.com/modobot/mood-engine/internal/adapters/openai"
	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
)

// ClassifierFactory creates emotion classifier clients
type ClassifierFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClassifier creates an emotion classifier based on the configuration.
// Provider "none" yields no classifier at all; the orchestrator then resolves
// every call through the keyword heuristic.
func (f *ClassifierFactory) CreateClassifier() (core.EmotionClassifier, error) {
	providerCfg := f.cfg.GetProvider()

	switch providerCfg.Type {
	case "huggingface":
		factory := huggingface.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateClient()
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateClient()
	case "gemini":
		factory := gemini.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateClient()
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateClient()
	case "none":
		f.logger.Info("No emotion provider configured, using keyword heuristic only")
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported emotion provider: %s", providerCfg.Type)
	}
}
