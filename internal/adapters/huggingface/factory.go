package huggingface

import (
	"fmt"

	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
)

// Factory creates Hugging Face clients
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new Hugging Face factory
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClient creates a new Hugging Face client
func (f *Factory) CreateClient() (*Client, error) {
	hfCfg := f.cfg.GetHuggingFace()

	timeout, err := f.cfg.GetDuration("huggingface.timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid huggingface timeout: %w", err)
	}

	if hfCfg.APIKey == "" {
		f.logger.Warn("No Hugging Face API key configured, classification will fall back to the keyword heuristic")
	}

	return NewClient(
		hfCfg.APIKey,
		hfCfg.BaseURL,
		hfCfg.Model,
		timeout,
		hfCfg.MaxTextSize,
		f.logger,
		f.textProcessor,
	), nil
}
