package core

import (
	"context"
	"encoding/json"
)

// ProviderResult is the raw outcome of an external classification call.
type ProviderResult struct {
	// Emotions is the ranked label/score list, sorted descending by score.
	Emotions []RawEmotion
	// Raw is the provider response payload, passed through opaquely to callers.
	Raw json.RawMessage
	// Model identifies which provider/model produced the result.
	Model string
}

// EmotionClassifier defines the interface for external text-emotion providers.
type EmotionClassifier interface {
	// ClassifyText classifies text into a ranked list of raw emotion labels.
	// Failures are reported as (wrapped) ErrProviderUnavailable,
	// ErrProviderTimeout or ErrProviderError.
	ClassifyText(ctx context.Context, text string) (*ProviderResult, error)
}

// HistoryRepository defines the interface for storing and reading mood events.
type HistoryRepository interface {
	// Record stores a mood event for a user.
	Record(ctx context.Context, userID string, entry *MoodHistoryEntry) error

	// Recent returns up to limit events for a user, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]MoodHistoryEntry, error)

	// Cleanup removes events older than the configured retention.
	Cleanup(ctx context.Context) error
}
