package core

import (
	"math"
	"strings"

	"github.com/modobot/mood-engine/internal/lexicon"
	"go.uber.org/zap"
)

// HeuristicClassifier is the local, dependency-free fallback classifier. It
// scores text against the fixed emotion lexicons and is fully deterministic.
type HeuristicClassifier struct {
	sets   []*lexicon.Set
	logger *zap.Logger
}

// NewHeuristicClassifier creates a new heuristic classifier.
func NewHeuristicClassifier(logger *zap.Logger) *HeuristicClassifier {
	return &HeuristicClassifier{
		sets:   lexicon.EmotionSets(),
		logger: logger,
	}
}

// Classify returns the single best lexicon guess for the text. Confidence is
// 0.3 baseline rising by 0.3 per matching keyword, capped at 0.9, so one hit
// lands in the medium tier and zero hits stay low but nonzero. Ties between
// lexicons, including the all-zero case, resolve to the first-declared set.
func (h *HeuristicClassifier) Classify(text string) []RawEmotion {
	tokens := strings.Fields(strings.ToLower(text))

	best := h.sets[0]
	bestCount := best.Count(tokens)
	for _, set := range h.sets[1:] {
		if count := set.Count(tokens); count > bestCount {
			best = set
			bestCount = count
		}
	}

	confidence := math.Min(0.9, float64(bestCount)*0.3+0.3)

	if h.logger != nil {
		h.logger.Debug("Heuristic classification",
			zap.String("emotion", best.Name()),
			zap.Int("keyword_matches", bestCount),
			zap.Float64("confidence", confidence))
	}

	return []RawEmotion{{Label: best.Name(), Score: confidence}}
}
