package core

import (
	"encoding/json"
	"time"
)

// EmotionLabel is the fixed taxonomy surfaced to callers. Every classification
// result's primary emotion is one of these values and nothing else.
type EmotionLabel string

const (
	EmotionHappy    EmotionLabel = "happy"
	EmotionSad      EmotionLabel = "sad"
	EmotionAngry    EmotionLabel = "angry"
	EmotionFear     EmotionLabel = "fear"
	EmotionDisgust  EmotionLabel = "disgust"
	EmotionSurprise EmotionLabel = "surprise"
	EmotionNeutral  EmotionLabel = "neutral"
)

// Intensity is a coarse three-level bucketing of confidence used for UI emphasis.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// RawEmotion is a single label/score pair in the provider's own vocabulary.
// Raw emotions are transient: produced per call and consumed immediately by
// the normalizer, never persisted.
type RawEmotion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EmotionDetails carries the supporting signals behind a classification.
type EmotionDetails struct {
	Primary     EmotionLabel    `json:"primary"`
	Secondary   []EmotionLabel  `json:"secondary"`
	Intensity   Intensity       `json:"intensity"`
	Keywords    []string        `json:"keywords"`
	RawAnalysis json.RawMessage `json:"rawAnalysis"`
}

// ClassificationResult is the result of classifying a single text.
type ClassificationResult struct {
	Emotion    EmotionLabel   `json:"emotion"`
	Confidence float64        `json:"confidence"`
	Details    EmotionDetails `json:"details"`
	Source     string         `json:"source"`
	AnalyzedAt time.Time      `json:"analyzedAt"`
}

// RecordItem is a single typed item on a board-like record.
type RecordItem struct {
	Text        string `json:"text,omitempty"`
	Description string `json:"description,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Record is a composite record (e.g. a mood board) whose text fields are
// flattened before classification.
type Record struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Items       []RecordItem `json:"items,omitempty"`
}

// Mood is the wider vocabulary used by the history side of the product. It is
// deliberately distinct from EmotionLabel: history entries are recorded in
// this vocabulary and the two mapping tables are never unified.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodEnergetic  Mood = "energetic"
	MoodPeaceful   Mood = "peaceful"
	MoodCalm       Mood = "calm"
	MoodReflective Mood = "reflective"
	MoodSad        Mood = "sad"
)

// MoodHistoryEntry is a single past mood event for a subject. The engine only
// reads sequences of these; it never mutates them.
type MoodHistoryEntry struct {
	Mood       Mood      `json:"mood"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// TrendBucket counts the mood events that fell on one calendar day.
type TrendBucket struct {
	Date        string       `json:"date"`
	MoodCounts  map[Mood]int `json:"moodCounts"`
	TotalEvents int          `json:"totalEvents"`
}

// MoodStats is a summary over a subject's recent mood history. It is
// recomputed fresh on each aggregation call.
type MoodStats struct {
	TotalMoods       int           `json:"totalMoods"`
	MoodDistribution map[Mood]int  `json:"moodDistribution"`
	WeeklyTrends     []TrendBucket `json:"weeklyTrends"`
	AverageMood      Mood          `json:"averageMood"`
}
