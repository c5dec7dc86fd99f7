package openai

import (
	"fmt"

	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
)

// Factory creates new instances of OpenAIClient
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for OpenAIClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClient creates a new OpenAIClient
func (f *Factory) CreateClient() (core.EmotionClassifier, error) {
	openaiCfg := f.cfg.GetOpenAI()

	timeout, err := f.cfg.GetDuration("openai.timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid openai timeout: %w", err)
	}

	return NewOpenAIClient(
		openaiCfg.APIKey,
		openaiCfg.ModelName,
		openaiCfg.MaxTokens,
		openaiCfg.Temperature,
		openaiCfg.TopP,
		openaiCfg.MaxTextSize,
		timeout,
		f.logger,
		f.textProcessor,
	), nil
}
