package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/modobot/mood-engine/internal/core"
	"go.uber.org/zap"
)

// mysqlTimeFormat is the DATETIME literal format MySQL accepts.
const mysqlTimeFormat = "2006-01-02 15:04:05.999999"

// MySQLStore is a MySQL implementation of the HistoryRepository interface
type MySQLStore struct {
	db          *sql.DB
	logger      *zap.Logger
	retention   time.Duration
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLStore creates a new MySQL history store
func NewMySQLStore(dsn string, logger *zap.Logger, retention, cleanupFreq time.Duration) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS mood_events (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			mood VARCHAR(32) NOT NULL,
			confidence DOUBLE,
			recorded_at DATETIME(6) NOT NULL,
			INDEX idx_user_recorded_at (user_id, recorded_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	store := &MySQLStore{
		db:          db,
		logger:      logger,
		retention:   retention,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go store.startCleanupTask()

	return store, nil
}

// Record stores a mood event for a user
func (s *MySQLStore) Record(ctx context.Context, userID string, entry *core.MoodHistoryEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mood_events (user_id, mood, confidence, recorded_at)
		VALUES (?, ?, ?, ?)
	`, userID, string(entry.Mood), entry.Confidence, entry.Timestamp.UTC().Format(mysqlTimeFormat))

	if err != nil {
		return fmt.Errorf("failed to insert mood event: %w", err)
	}
	return nil
}

// Recent returns up to limit events for a user, newest first
func (s *MySQLStore) Recent(ctx context.Context, userID string, limit int) ([]core.MoodHistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mood, confidence, recorded_at
		FROM mood_events
		WHERE user_id = ?
		ORDER BY recorded_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood events: %w", err)
	}
	defer rows.Close()

	var entries []core.MoodHistoryEntry
	for rows.Next() {
		var mood string
		var confidence float64
		var recordedAt string

		if err := rows.Scan(&mood, &confidence, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood event: %w", err)
		}

		timestamp, err := time.Parse(mysqlTimeFormat, recordedAt)
		if err != nil {
			s.logger.Error("Failed to parse recorded_at timestamp",
				zap.Error(err),
				zap.String("user_id", userID))
			continue
		}

		entries = append(entries, core.MoodHistoryEntry{
			Mood:       core.Mood(mood),
			Confidence: confidence,
			Timestamp:  timestamp,
		})
	}

	return entries, rows.Err()
}

// Cleanup removes events older than the retention window
func (s *MySQLStore) Cleanup(ctx context.Context) error {
	cutoff := time.Now().Add(-s.retention).UTC().Format(mysqlTimeFormat)

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM mood_events
		WHERE recorded_at <= ?
	`, cutoff)

	if err != nil {
		return fmt.Errorf("failed to clean up expired mood events: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		s.logger.Debug("Cleaned up expired mood events", zap.Int64("expired_count", rowsAffected))
	}

	return nil
}

// startCleanupTask starts a background task to clean up expired events
func (s *MySQLStore) startCleanupTask() {
	ticker := time.NewTicker(s.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Cleanup(context.Background()); err != nil {
				s.logger.Error("Failed to clean up mood history", zap.Error(err))
			}
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database connection
func (s *MySQLStore) Stop() {
	close(s.stopCh)
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL connection", zap.Error(err))
	}
}
