package core

import (
	"sort"
	"strings"
)

// emotionMapping maps the provider vocabulary (GoEmotions-style labels) onto
// the fixed taxonomy. It is an explicit allow-list: unmapped labels fall
// through to neutral so the taxonomy stays closed even when the provider
// grows new labels.
var emotionMapping = map[string]EmotionLabel{
	// happy
	"joy":        EmotionHappy,
	"excitement": EmotionHappy,
	"amusement":  EmotionHappy,
	"pride":      EmotionHappy,
	"relief":     EmotionHappy,
	"optimism":   EmotionHappy,

	// sad
	"sadness":        EmotionSad,
	"grief":          EmotionSad,
	"disappointment": EmotionSad,
	"embarrassment":  EmotionSad,
	"remorse":        EmotionSad,

	// angry
	"anger":     EmotionAngry,
	"annoyance": EmotionAngry,
	"contempt":  EmotionAngry,

	// disgust
	"disgust": EmotionDisgust,

	// fear
	"fear":        EmotionFear,
	"nervousness": EmotionFear,
	"confusion":   EmotionFear,

	// surprise
	"surprise":    EmotionSurprise,
	"realization": EmotionSurprise,
	"curiosity":   EmotionSurprise,

	// neutral
	"neutral":  EmotionNeutral,
	"approval": EmotionNeutral,
	"caring":   EmotionNeutral,
	"desire":   EmotionNeutral,
}

// MapLabel maps a raw label onto the fixed taxonomy. Labels that already name
// a taxonomy member map to themselves (the heuristic path emits these);
// anything unrecognized maps to neutral.
func MapLabel(raw string) EmotionLabel {
	label := strings.ToLower(strings.TrimSpace(raw))

	switch EmotionLabel(label) {
	case EmotionHappy, EmotionSad, EmotionAngry, EmotionFear,
		EmotionDisgust, EmotionSurprise, EmotionNeutral:
		return EmotionLabel(label)
	}

	if mapped, ok := emotionMapping[label]; ok {
		return mapped
	}
	return EmotionNeutral
}

// IntensityFor buckets a confidence value into the three-tier intensity.
// The thresholds are fixed constants, not tunable at runtime.
func IntensityFor(confidence float64) Intensity {
	switch {
	case confidence > 0.8:
		return IntensityHigh
	case confidence < 0.4:
		return IntensityLow
	default:
		return IntensityMedium
	}
}

// NormalizedEmotion is the output of normalizing a ranked raw emotion list.
type NormalizedEmotion struct {
	Primary    EmotionLabel
	Secondary  []EmotionLabel
	Confidence float64
	Intensity  Intensity
}

// Normalize maps a ranked raw emotion list onto the fixed taxonomy. Primary
// is the mapped label of the highest-score entry; secondary holds the mapped
// labels of the entries ranked 2nd and 3rd, excluding the primary and
// duplicates, in rank order. Confidence is the top raw score, unmodified.
func Normalize(raw []RawEmotion) NormalizedEmotion {
	if len(raw) == 0 {
		return NormalizedEmotion{
			Primary:    EmotionNeutral,
			Secondary:  []EmotionLabel{},
			Confidence: 0.5,
			Intensity:  IntensityMedium,
		}
	}

	// Sort defensively; providers promise descending order but don't always
	// deliver it.
	ranked := make([]RawEmotion, len(raw))
	copy(ranked, raw)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	primary := MapLabel(ranked[0].Label)
	confidence := ranked[0].Score

	secondary := make([]EmotionLabel, 0, 2)
	limit := 3
	if len(ranked) < limit {
		limit = len(ranked)
	}
	for _, entry := range ranked[1:limit] {
		mapped := MapLabel(entry.Label)
		if mapped == primary {
			continue
		}
		duplicate := false
		for _, existing := range secondary {
			if existing == mapped {
				duplicate = true
				break
			}
		}
		if !duplicate {
			secondary = append(secondary, mapped)
		}
	}

	return NormalizedEmotion{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: confidence,
		Intensity:  IntensityFor(confidence),
	}
}
