package factory

import (
	"github.com/modobot/mood-engine/internal/adapters/server"
	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/ports"
	"go.uber.org/zap"
)

// ServerFactory creates analysis servers
type ServerFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.MoodService
}

// NewServerFactory creates a new server factory
func NewServerFactory(cfg *config.Config, logger *zap.Logger, service *core.MoodService) *ServerFactory {
	return &ServerFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateAnalysisServer creates the engine's transport front end
func (f *ServerFactory) CreateAnalysisServer() (ports.AnalysisServer, error) {
	return server.NewJSONLServer(
		f.service,
		f.logger,
		f.cfg.GetString("server.listen_address"),
	), nil
}
