package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modobot/mood-engine/internal/core"
)

func newTestStore(t *testing.T, retention time.Duration) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(zap.NewNop(), retention, time.Hour)
	t.Cleanup(store.Stop)
	return store
}

func TestMemoryStoreRecordAndRecent(t *testing.T) {
	store := newTestStore(t, 24*time.Hour)
	ctx := context.Background()
	now := time.Now()

	// Recorded out of chronological order on purpose.
	entries := []core.MoodHistoryEntry{
		{Mood: core.MoodCalm, Confidence: 0.7, Timestamp: now.Add(-2 * time.Hour)},
		{Mood: core.MoodHappy, Confidence: 0.9, Timestamp: now},
		{Mood: core.MoodSad, Confidence: 0.6, Timestamp: now.Add(-1 * time.Hour)},
	}
	for i := range entries {
		require.NoError(t, store.Record(ctx, "user-1", &entries[i]))
	}

	recent, err := store.Recent(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, core.MoodHappy, recent[0].Mood)
	assert.Equal(t, core.MoodSad, recent[1].Mood)
	assert.Equal(t, core.MoodCalm, recent[2].Mood)
}

func TestMemoryStoreRecentAppliesLimit(t *testing.T) {
	store := newTestStore(t, 24*time.Hour)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		entry := &core.MoodHistoryEntry{
			Mood:      core.MoodPeaceful,
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, "user-1", entry))
	}

	recent, err := store.Recent(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, now, recent[0].Timestamp)
}

func TestMemoryStoreRecentUnknownUser(t *testing.T) {
	store := newTestStore(t, 24*time.Hour)

	recent, err := store.Recent(context.Background(), "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMemoryStoreUsersAreIsolated(t *testing.T) {
	store := newTestStore(t, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "user-1", &core.MoodHistoryEntry{Mood: core.MoodHappy, Timestamp: time.Now()}))
	require.NoError(t, store.Record(ctx, "user-2", &core.MoodHistoryEntry{Mood: core.MoodSad, Timestamp: time.Now()}))

	recent, err := store.Recent(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, core.MoodHappy, recent[0].Mood)
}

func TestMemoryStoreCleanupExpiresOldEntries(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Record(ctx, "user-1", &core.MoodHistoryEntry{Mood: core.MoodHappy, Timestamp: now}))
	require.NoError(t, store.Record(ctx, "user-1", &core.MoodHistoryEntry{Mood: core.MoodSad, Timestamp: now.Add(-2 * time.Hour)}))
	require.NoError(t, store.Record(ctx, "user-2", &core.MoodHistoryEntry{Mood: core.MoodCalm, Timestamp: now.Add(-3 * time.Hour)}))

	require.NoError(t, store.Cleanup(ctx))

	recent, err := store.Recent(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, core.MoodHappy, recent[0].Mood)

	recent, err = store.Recent(ctx, "user-2", 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
