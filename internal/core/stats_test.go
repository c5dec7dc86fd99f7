package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(mood Mood, ts time.Time) MoodHistoryEntry {
	return MoodHistoryEntry{Mood: mood, Confidence: 0.8, Timestamp: ts}
}

func TestSummarizeEmptyHistory(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	stats := summarizeAt(nil, now)

	require.NotNil(t, stats)
	assert.Zero(t, stats.TotalMoods)
	assert.Empty(t, stats.MoodDistribution)
	assert.Equal(t, MoodReflective, stats.AverageMood)

	require.Len(t, stats.WeeklyTrends, 7)
	for _, bucket := range stats.WeeklyTrends {
		assert.Zero(t, bucket.TotalEvents)
		assert.Empty(t, bucket.MoodCounts)
	}
	assert.Equal(t, "2026-08-24", stats.WeeklyTrends[0].Date)
	assert.Equal(t, "2026-08-30", stats.WeeklyTrends[6].Date)
}

func TestSummarizeDistributionAndAverage(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	entries := []MoodHistoryEntry{
		entryAt(MoodHappy, now.Add(-1*time.Hour)),
		entryAt(MoodHappy, now.Add(-2*time.Hour)),
		entryAt(MoodCalm, now.Add(-3*time.Hour)),
	}

	stats := summarizeAt(entries, now)

	assert.Equal(t, 3, stats.TotalMoods)
	assert.Equal(t, map[Mood]int{MoodHappy: 2, MoodCalm: 1}, stats.MoodDistribution)
	// (5+5+2)/3 = 4 which sits exactly on the happy threshold.
	assert.Equal(t, MoodHappy, stats.AverageMood)
}

func TestSummarizeAverageMoodThresholds(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		moods []Mood
		want  Mood
	}{
		{[]Mood{MoodHappy}, MoodHappy},                   // 5
		{[]Mood{MoodEnergetic}, MoodHappy},               // 4
		{[]Mood{MoodPeaceful}, MoodPeaceful},             // 3
		{[]Mood{MoodPeaceful, MoodCalm}, MoodPeaceful},   // 2.5
		{[]Mood{MoodCalm}, MoodCalm},                     // 2
		{[]Mood{MoodReflective}, MoodCalm},               // 1
		{[]Mood{MoodSad}, MoodReflective},                // 0
		{[]Mood{MoodSad, MoodReflective}, MoodReflective}, // 0.5
	}

	for _, tt := range tests {
		entries := make([]MoodHistoryEntry, len(tt.moods))
		for i, mood := range tt.moods {
			entries[i] = entryAt(mood, now.Add(-time.Duration(i+1)*time.Minute))
		}
		stats := summarizeAt(entries, now)
		assert.Equal(t, tt.want, stats.AverageMood, "moods: %v", tt.moods)
	}
}

func TestSummarizeKeepsOnlyMostRecentEntries(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	// 120 entries: the 100 newest are all happy, the 20 oldest all sad. If
	// the sad tail leaked into the aggregation the average would drop.
	entries := make([]MoodHistoryEntry, 0, 120)
	for i := 0; i < 100; i++ {
		entries = append(entries, entryAt(MoodHappy, now.Add(-time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 20; i++ {
		entries = append(entries, entryAt(MoodSad, now.Add(-time.Duration(200+i)*time.Minute)))
	}

	stats := summarizeAt(entries, now)

	assert.Equal(t, 100, stats.TotalMoods)
	assert.Equal(t, map[Mood]int{MoodHappy: 100}, stats.MoodDistribution)
	assert.Equal(t, MoodHappy, stats.AverageMood)
}

func TestSummarizeWeeklyTrendBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	entries := []MoodHistoryEntry{
		// Today, right at the day boundaries.
		entryAt(MoodHappy, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)),
		entryAt(MoodCalm, time.Date(2026, time.August, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC)),
		// Three days ago.
		entryAt(MoodSad, time.Date(2026, time.August, 27, 15, 30, 0, 0, time.UTC)),
		// Eight days ago: outside the window, counted in the distribution
		// but in no trend bucket.
		entryAt(MoodSad, time.Date(2026, time.August, 22, 10, 0, 0, 0, time.UTC)),
	}

	stats := summarizeAt(entries, now)

	require.Len(t, stats.WeeklyTrends, 7)

	byDate := make(map[string]TrendBucket, len(stats.WeeklyTrends))
	for _, bucket := range stats.WeeklyTrends {
		byDate[bucket.Date] = bucket
	}

	today := byDate["2026-08-30"]
	assert.Equal(t, 2, today.TotalEvents)
	assert.Equal(t, map[Mood]int{MoodHappy: 1, MoodCalm: 1}, today.MoodCounts)

	assert.Equal(t, 1, byDate["2026-08-27"].TotalEvents)
	assert.Equal(t, map[Mood]int{MoodSad: 1}, byDate["2026-08-27"].MoodCounts)

	assert.Zero(t, byDate["2026-08-24"].TotalEvents)

	totalBucketed := 0
	for _, bucket := range stats.WeeklyTrends {
		totalBucketed += bucket.TotalEvents
	}
	assert.Equal(t, 3, totalBucketed)
	assert.Equal(t, 4, stats.TotalMoods)
}

func TestSummarizeBucketsAreChronological(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	stats := summarizeAt(nil, now)

	require.Len(t, stats.WeeklyTrends, 7)
	for i, want := range []string{
		"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27",
		"2026-02-28", "2026-03-01", "2026-03-02",
	} {
		assert.Equal(t, want, stats.WeeklyTrends[i].Date, fmt.Sprintf("bucket %d", i))
	}
}

func TestMoodForValence(t *testing.T) {
	tests := []struct {
		score int
		want  Mood
	}{
		{5, MoodHappy},
		{4, MoodHappy},
		{3, MoodCalm},
		{2, MoodCalm},
		{1, MoodPeaceful},
		{0, MoodPeaceful},
		{-1, MoodPeaceful},
		{-2, MoodReflective},
		{-3, MoodReflective},
		{-4, MoodSad},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoodForValence(tt.score), "score: %d", tt.score)
	}
}
