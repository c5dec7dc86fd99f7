package core

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// SourceHeuristic marks results produced by the keyword fallback.
const SourceHeuristic = "heuristic"

// SourceDefault marks the neutral default returned for blank input.
const SourceDefault = "default"

// MoodService is the classification orchestrator. Classification never fails
// from the caller's perspective: provider errors fall back to the keyword
// heuristic, and blank input resolves to a fixed neutral default. Calls are
// stateless beyond the immutable lexicon and mapping tables, so any number of
// classifications may run concurrently.
type MoodService struct {
	classifier   EmotionClassifier
	heuristic    *HeuristicClassifier
	history      HistoryRepository
	logger       *zap.Logger
	historyLimit int

	providerCount  atomic.Int64
	heuristicCount atomic.Int64
}

// NewMoodService creates a new mood service. classifier may be nil when no
// external provider is configured; history may be nil when the deployment has
// no mood event store.
func NewMoodService(
	classifier EmotionClassifier,
	heuristic *HeuristicClassifier,
	history HistoryRepository,
	logger *zap.Logger,
	historyLimit int,
) *MoodService {
	if historyLimit <= 0 {
		historyLimit = RecentHistoryLimit
	}
	return &MoodService{
		classifier:   classifier,
		heuristic:    heuristic,
		history:      history,
		logger:       logger,
		historyLimit: historyLimit,
	}
}

// Classify classifies an ad hoc text into the fixed emotion taxonomy.
func (s *MoodService) Classify(ctx context.Context, text string) *ClassificationResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.neutralResult()
	}

	var (
		raw    []RawEmotion
		result = &ClassificationResult{AnalyzedAt: time.Now()}
	)

	provided, err := s.classifyExternally(ctx, trimmed)
	if err != nil {
		// Silent fallback: the caller sees the same result shape either way,
		// so the log line and counter are the only signals of degraded mode.
		s.heuristicCount.Add(1)
		s.logger.Warn("Provider classification failed, falling back to keyword heuristic",
			zap.Error(err))
		raw = s.heuristic.Classify(trimmed)
		result.Source = SourceHeuristic
	} else {
		s.providerCount.Add(1)
		raw = provided.Emotions
		result.Source = provided.Model
		result.Details.RawAnalysis = provided.Raw
	}

	normalized := Normalize(raw)
	result.Emotion = normalized.Primary
	result.Confidence = normalized.Confidence
	result.Details.Primary = normalized.Primary
	result.Details.Secondary = normalized.Secondary
	result.Details.Intensity = normalized.Intensity
	result.Details.Keywords = ExtractKeywords(trimmed)

	return result
}

// ClassifyRecord flattens a composite record and classifies the result.
func (s *MoodService) ClassifyRecord(ctx context.Context, record *Record) *ClassificationResult {
	return s.Classify(ctx, ExtractText(record))
}

// ClassifyBatch classifies texts concurrently and returns results in input
// order regardless of completion order.
func (s *MoodService) ClassifyBatch(ctx context.Context, texts []string) []*ClassificationResult {
	results := make([]*ClassificationResult, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = s.Classify(ctx, text)
		}(i, text)
	}
	wg.Wait()

	return results
}

// RecordMood stores a mood event for a user.
func (s *MoodService) RecordMood(ctx context.Context, userID string, mood Mood, confidence float64) error {
	if s.history == nil {
		return fmt.Errorf("no history repository configured")
	}
	entry := &MoodHistoryEntry{
		Mood:       mood,
		Confidence: confidence,
		Timestamp:  time.Now(),
	}
	return s.history.Record(ctx, userID, entry)
}

// SummarizeUser aggregates a user's recent mood history.
func (s *MoodService) SummarizeUser(ctx context.Context, userID string) (*MoodStats, error) {
	if s.history == nil {
		return nil, fmt.Errorf("no history repository configured")
	}
	entries, err := s.history.Recent(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}
	return Summarize(entries), nil
}

// ClassificationCounts reports how many classifications were resolved by the
// provider versus the heuristic fallback, for operability dashboards.
func (s *MoodService) ClassificationCounts() (provider, heuristic int64) {
	return s.providerCount.Load(), s.heuristicCount.Load()
}

func (s *MoodService) classifyExternally(ctx context.Context, text string) (*ProviderResult, error) {
	if s.classifier == nil {
		return nil, ErrProviderUnavailable
	}
	result, err := s.classifier.ClassifyText(ctx, text)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Emotions) == 0 {
		return nil, fmt.Errorf("%w: empty provider result", ErrProviderError)
	}
	return result, nil
}

func (s *MoodService) neutralResult() *ClassificationResult {
	return &ClassificationResult{
		Emotion:    EmotionNeutral,
		Confidence: 0.5,
		Source:     SourceDefault,
		AnalyzedAt: time.Now(),
		Details: EmotionDetails{
			Primary:   EmotionNeutral,
			Secondary: []EmotionLabel{},
			Intensity: IntensityMedium,
			Keywords:  []string{},
		},
	}
}
