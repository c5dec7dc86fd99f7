package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/modobot/mood-engine/internal/core"
	"go.uber.org/zap"
)

// MemoryStore is an in-memory implementation of the HistoryRepository interface
type MemoryStore struct {
	entries     map[string][]core.MoodHistoryEntry
	mu          sync.RWMutex
	logger      *zap.Logger
	retention   time.Duration
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore(logger *zap.Logger, retention, cleanupFreq time.Duration) *MemoryStore {
	store := &MemoryStore{
		entries:     make(map[string][]core.MoodHistoryEntry),
		logger:      logger,
		retention:   retention,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go store.startCleanupTask()

	return store
}

// Record stores a mood event for a user
func (s *MemoryStore) Record(ctx context.Context, userID string, entry *core.MoodHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = append(s.entries[userID], *entry)
	return nil
}

// Recent returns up to limit events for a user, newest first
func (s *MemoryStore) Recent(ctx context.Context, userID string, limit int) ([]core.MoodHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[userID]
	recent := make([]core.MoodHistoryEntry, len(stored))
	copy(recent, stored)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// Cleanup removes events older than the retention window
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.retention)
	expiredCount := 0

	for userID, stored := range s.entries {
		kept := stored[:0]
		for _, entry := range stored {
			if entry.Timestamp.After(cutoff) {
				kept = append(kept, entry)
			} else {
				expiredCount++
			}
		}
		if len(kept) == 0 {
			delete(s.entries, userID)
		} else {
			s.entries[userID] = kept
		}
	}

	s.logger.Debug("Cleaned up expired mood events", zap.Int("expired_count", expiredCount))
	return nil
}

// startCleanupTask starts a background task to clean up expired events
func (s *MemoryStore) startCleanupTask() {
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

// Stop stops the background cleanup task
func (s *MemoryStore) Stop() {
	close(s.stopCh)
}
