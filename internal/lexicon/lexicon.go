// Package lexicon holds the fixed, hand-curated word sets used by the
// keyword heuristic classifier and by keyword extraction. The sets are
// immutable after initialization and safe for concurrent use.
package lexicon

import "strings"

// Set is a named, normalized word set.
type Set struct {
	name  string
	words map[string]struct{}
}

// NewSet creates a word set. Words are lowercased and trimmed.
func NewSet(name string, words []string) *Set {
	normalized := make(map[string]struct{}, len(words))
	for _, word := range words {
		normalized[strings.ToLower(strings.TrimSpace(word))] = struct{}{}
	}
	return &Set{name: name, words: normalized}
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// Contains reports whether the set holds the given word. The word must
// already be lowercased.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Count returns how many of the given tokens are present in the set.
func (s *Set) Count(tokens []string) int {
	count := 0
	for _, token := range tokens {
		if s.Contains(token) {
			count++
		}
	}
	return count
}

var happyWords = []string{
	"happy", "joy", "excited", "great", "wonderful", "amazing",
	"love", "good", "nice", "beautiful", "fantastic", "awesome",
}

var sadWords = []string{
	"sad", "depressed", "lonely", "hurt", "pain", "cry",
	"tears", "miss", "lost", "alone", "broken", "heart",
}

var angryWords = []string{
	"angry", "mad", "furious", "hate", "rage", "frustrated",
	"annoyed", "irritated", "upset", "disgusted",
}

var fearWords = []string{
	"afraid", "scared", "fear", "anxious", "worried", "nervous",
	"terrified", "panic", "stress", "concerned",
}

var surpriseWords = []string{
	"surprised", "shocked", "amazed", "wow", "incredible",
	"unbelievable", "astonished", "stunned",
}

// EmotionSets returns the emotion lexicons in their fixed priority order.
// Ties between lexicons resolve to the earliest one, so an empty text
// defaults to the first set. There is deliberately no disgust lexicon:
// disgust is only reachable through the provider mapping table.
func EmotionSets() []*Set {
	return []*Set{
		NewSet("happy", happyWords),
		NewSet("sad", sadWords),
		NewSet("angry", angryWords),
		NewSet("fear", fearWords),
		NewSet("surprise", surpriseWords),
	}
}

var stopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must",
	"can", "this", "that", "these", "those", "i", "you", "he",
	"she", "it", "we", "they", "me", "him", "her", "us", "them",
}

// StopWords returns the fixed stop-word set used by keyword extraction.
func StopWords() *Set {
	return NewSet("stopwords", stopWords)
}
