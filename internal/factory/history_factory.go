package factory

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/modobot/mood-engine/internal/adapters/history"
	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"go.uber.org/zap"
)

// HistoryFactory creates history repositories based on configuration
type HistoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHistoryFactory creates a new history factory
func NewHistoryFactory(cfg *config.Config, logger *zap.Logger) *HistoryFactory {
	return &HistoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateHistoryRepository creates a history repository based on the configuration
func (f *HistoryFactory) CreateHistoryRepository() (core.HistoryRepository, error) {
	if !f.cfg.GetBool("history.enabled") {
		return nil, nil
	}

	historyType := f.cfg.GetString("history.type")
	retention, err := f.cfg.GetDuration("history.retention")
	if err != nil {
		return nil, fmt.Errorf("invalid history retention: %w", err)
	}
	cleanupFreq, err := f.cfg.GetDuration("history.cleanup_frequency")
	if err != nil {
		return nil, fmt.Errorf("invalid history cleanup frequency: %w", err)
	}

	switch historyType {
	case "memory":
		return history.NewMemoryStore(f.logger, retention, cleanupFreq), nil
	case "sqlite":
		sqlitePath := f.cfg.GetString("history.sqlite_path")
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return history.NewSQLiteStore(sqlitePath, f.logger, retention, cleanupFreq)
	case "mysql":
		mysqlDSN := f.cfg.GetString("history.mysql_dsn")
		return history.NewMySQLStore(mysqlDSN, f.logger, retention, cleanupFreq)
	default:
		return nil, fmt.Errorf("unsupported history type: %s", historyType)
	}
}

// GetHistoryLimit returns how many recent events an aggregation considers
func (f *HistoryFactory) GetHistoryLimit() int {
	return f.cfg.GetInt("history.limit")
}

// GetRetention returns the configured event retention
func (f *HistoryFactory) GetRetention() (time.Duration, error) {
	return f.cfg.GetDuration("history.retention")
}
