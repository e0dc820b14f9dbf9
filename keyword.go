package catidx

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxKeywords         = 15
	maxTokensPerProduct = 3
)

// defaultVocabulary holds the tool and domain terms scanned for as
// case-insensitive substrings of the page text.
var defaultVocabulary = []string{
	"drill", "saw", "nailer", "hammer", "wrench", "pliers", "screwdriver",
	"anchor", "fastener", "bolt", "screw", "nail", "pin", "rivet",
	"cordless", "electric", "pneumatic", "manual", "power tool",
	"concrete", "steel", "wood", "metal", "plastic",
	"safety", "protective", "gloves", "glasses", "mask",
	"measuring", "tape", "level", "square",
	"ladder", "scaffold", "platform",
	"cleaning", "supplies", "chemical",
	"storage", "box", "cabinet", "cart",
	"dewalt", "milwaukee", "hilti", "stanley", "red head",
}

// keywordStopwords are title tokens that carry no search value.
var keywordStopwords = map[string]bool{
	"page":    true,
	"pages":   true,
	"catalog": true,
}

var keywordTokenRe = regexp.MustCompile(`\b[a-z]{4,}\b`)

// KeywordExtractor mines a bounded keyword set from a fixed vocabulary,
// the page title, and extracted products.
type KeywordExtractor struct {
	vocabulary []string
}

// NewKeywordExtractor returns an extractor using the default vocabulary.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{vocabulary: defaultVocabulary}
}

// Extract returns a sorted, deduplicated keyword list of at most 15 terms.
// The cap is applied after sorting, so the result is the 15
// alphabetically-smallest terms. That policy looks accidental but output
// consumers depend on it.
func (e *KeywordExtractor) Extract(normalized, title string, products []string) []string {
	keywords := make(map[string]bool)

	textLower := strings.ToLower(normalized)
	for _, term := range e.vocabulary {
		if strings.Contains(textLower, term) {
			keywords[term] = true
		}
	}

	for _, word := range keywordTokenRe.FindAllString(strings.ToLower(title), -1) {
		if !keywordStopwords[word] {
			keywords[word] = true
		}
	}

	for _, product := range products {
		tokens := keywordTokenRe.FindAllString(strings.ToLower(product), -1)
		if len(tokens) > maxTokensPerProduct {
			tokens = tokens[:maxTokensPerProduct]
		}
		for _, word := range tokens {
			keywords[word] = true
		}
	}

	result := make([]string, 0, len(keywords))
	for word := range keywords {
		result = append(result, word)
	}
	sort.Strings(result)
	if len(result) > maxKeywords {
		result = result[:maxKeywords]
	}
	return result
}
