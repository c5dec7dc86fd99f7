package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLabelProviderVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want EmotionLabel
	}{
		{"joy", EmotionHappy},
		{"excitement", EmotionHappy},
		{"amusement", EmotionHappy},
		{"pride", EmotionHappy},
		{"relief", EmotionHappy},
		{"optimism", EmotionHappy},
		{"sadness", EmotionSad},
		{"grief", EmotionSad},
		{"disappointment", EmotionSad},
		{"embarrassment", EmotionSad},
		{"remorse", EmotionSad},
		{"anger", EmotionAngry},
		{"annoyance", EmotionAngry},
		{"contempt", EmotionAngry},
		{"disgust", EmotionDisgust},
		{"nervousness", EmotionFear},
		{"confusion", EmotionFear},
		{"realization", EmotionSurprise},
		{"curiosity", EmotionSurprise},
		{"approval", EmotionNeutral},
		{"caring", EmotionNeutral},
		{"desire", EmotionNeutral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapLabel(tt.raw), "label: %s", tt.raw)
	}
}

func TestMapLabelTaxonomyMembersMapToThemselves(t *testing.T) {
	for _, label := range []EmotionLabel{
		EmotionHappy, EmotionSad, EmotionAngry, EmotionFear,
		EmotionDisgust, EmotionSurprise, EmotionNeutral,
	} {
		assert.Equal(t, label, MapLabel(string(label)))
	}
}

func TestMapLabelUnknownFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, EmotionNeutral, MapLabel("melancholy"))
	assert.Equal(t, EmotionNeutral, MapLabel(""))
}

func TestMapLabelNormalizesInput(t *testing.T) {
	assert.Equal(t, EmotionHappy, MapLabel("  JOY "))
	assert.Equal(t, EmotionSad, MapLabel("Sadness"))
}

func TestIntensityForBoundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Intensity
	}{
		{0.95, IntensityHigh},
		{0.81, IntensityHigh},
		{0.8, IntensityMedium},
		{0.5, IntensityMedium},
		{0.4, IntensityMedium},
		{0.39, IntensityLow},
		{0.1, IntensityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntensityFor(tt.confidence), "confidence: %v", tt.confidence)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	normalized := Normalize(nil)
	assert.Equal(t, EmotionNeutral, normalized.Primary)
	assert.Empty(t, normalized.Secondary)
	assert.Equal(t, 0.5, normalized.Confidence)
	assert.Equal(t, IntensityMedium, normalized.Intensity)
}

func TestNormalizeRankedList(t *testing.T) {
	normalized := Normalize([]RawEmotion{
		{Label: "joy", Score: 0.92},
		{Label: "sadness", Score: 0.04},
		{Label: "fear", Score: 0.02},
		{Label: "anger", Score: 0.01},
	})

	assert.Equal(t, EmotionHappy, normalized.Primary)
	assert.Equal(t, 0.92, normalized.Confidence)
	assert.Equal(t, IntensityHigh, normalized.Intensity)
	// Only the 2nd and 3rd ranked entries contribute.
	assert.Equal(t, []EmotionLabel{EmotionSad, EmotionFear}, normalized.Secondary)
}

func TestNormalizeSortsDefensively(t *testing.T) {
	normalized := Normalize([]RawEmotion{
		{Label: "sadness", Score: 0.1},
		{Label: "joy", Score: 0.7},
		{Label: "anger", Score: 0.3},
	})

	assert.Equal(t, EmotionHappy, normalized.Primary)
	assert.Equal(t, 0.7, normalized.Confidence)
	assert.Equal(t, []EmotionLabel{EmotionAngry, EmotionSad}, normalized.Secondary)
}

func TestNormalizeSecondaryExcludesPrimary(t *testing.T) {
	// "excitement" maps to happy like the primary does and must be dropped.
	normalized := Normalize([]RawEmotion{
		{Label: "joy", Score: 0.9},
		{Label: "excitement", Score: 0.5},
		{Label: "sadness", Score: 0.2},
	})

	assert.Equal(t, EmotionHappy, normalized.Primary)
	assert.Equal(t, []EmotionLabel{EmotionSad}, normalized.Secondary)
}

func TestNormalizeSecondaryDeduplicates(t *testing.T) {
	// Both runners-up map to sad; only one survives.
	normalized := Normalize([]RawEmotion{
		{Label: "joy", Score: 0.9},
		{Label: "sadness", Score: 0.5},
		{Label: "grief", Score: 0.4},
	})

	assert.Equal(t, []EmotionLabel{EmotionSad}, normalized.Secondary)
}

func TestNormalizeSingleEntry(t *testing.T) {
	normalized := Normalize([]RawEmotion{{Label: "surprise", Score: 0.3}})
	assert.Equal(t, EmotionSurprise, normalized.Primary)
	assert.Empty(t, normalized.Secondary)
	assert.Equal(t, IntensityLow, normalized.Intensity)
}
