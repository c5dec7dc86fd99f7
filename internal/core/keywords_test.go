package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywordsFiltersShortAndStopWords(t *testing.T) {
	keywords := ExtractKeywords("I was so happy with the sunny weather")
	// "i", "was", "so", "with", "the" are dropped; "sunny" and "weather"
	// survive along with "happy".
	assert.Equal(t, []string{"happy", "sunny", "weather"}, keywords)
}

func TestExtractKeywordsLowercasesTokens(t *testing.T) {
	keywords := ExtractKeywords("WONDERFUL Morning")
	assert.Equal(t, []string{"wonderful", "morning"}, keywords)
}

func TestExtractKeywordsDeduplicatesPreservingOrder(t *testing.T) {
	keywords := ExtractKeywords("rain rain puddles rain puddles")
	assert.Equal(t, []string{"rain", "puddles"}, keywords)
}

func TestExtractKeywordsCapsBeforeDeduplication(t *testing.T) {
	// Ten surviving tokens are taken first, then deduplicated, so repeated
	// words inside the first ten shrink the final list below ten even though
	// more unique words follow.
	text := strings.Repeat("echo ", 8) + "alpha bravo charlie delta"
	keywords := ExtractKeywords(text)
	assert.Equal(t, []string{"echo", "alpha", "bravo"}, keywords)
}

func TestExtractKeywordsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("the a an to"))
}
