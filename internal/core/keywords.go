package core

import (
	"strings"

	"github.com/modobot/mood-engine/internal/lexicon"
)

// maxKeywords bounds the number of extracted keywords per text.
const maxKeywords = 10

var stopWords = lexicon.StopWords()

// ExtractKeywords returns up to ten keywords from the text in original order:
// lowercased tokens longer than three characters that are not stop words,
// deduplicated while preserving first occurrence. Keywords are always derived
// from the caller's text, independent of which classifier ran.
func ExtractKeywords(text string) []string {
	tokens := strings.Fields(strings.ToLower(text))

	// Keep the first ten surviving tokens, then deduplicate. The cap applies
	// before deduplication, so fewer than ten unique keywords may come back
	// even when the text has more.
	survivors := make([]string, 0, maxKeywords)
	for _, token := range tokens {
		if len(token) <= 3 || stopWords.Contains(token) {
			continue
		}
		survivors = append(survivors, token)
		if len(survivors) == maxKeywords {
			break
		}
	}

	seen := make(map[string]struct{}, len(survivors))
	keywords := make([]string, 0, len(survivors))
	for _, token := range survivors {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	return keywords
}
