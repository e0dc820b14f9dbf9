package catidx

import (
	"regexp"
	"strings"
)

const (
	productScanLines = 50
	maxProducts      = 10
	minProductLen    = 4  // exclusive
	maxProductLen    = 60 // exclusive
)

// ProductExtractor scans page text for product names, model numbers, and
// major items. The rule set is an ordered list of independent matchers;
// each contributes zero or more candidates per line and the results are
// concatenated, then deduplicated.
type ProductExtractor struct {
	patterns []*regexp.Regexp
}

// NewProductExtractor returns an extractor with the default matcher rules:
// capitalized phrases ending in a tool or category noun, runs of uppercase
// words, and model-number-like tokens.
func NewProductExtractor() *ProductExtractor {
	return &ProductExtractor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`([A-Z][A-Za-z0-9\s\-&/]+(?:Gun|Nailer|Drill|Saw|Tool|Anchor|Fastener|Bit|System|Kit|Set))`),
			regexp.MustCompile(`([A-Z][A-Z\s]{5,})`),
			regexp.MustCompile(`([A-Z0-9\-]{4,}[A-Z0-9])`),
		},
	}
}

// Extract returns up to 10 distinct product mentions from the first 50
// logical lines of a page, in order of first detection. Dedup is exact and
// case-sensitive.
func (e *ProductExtractor) Extract(lines []string) []string {
	products := []string{}
	seen := make(map[string]bool)

	for _, line := range firstN(lines, productScanLines) {
		line = strings.TrimSpace(line)
		if len(line) < 4 || isTableHeaderLine(line) {
			continue
		}

		for _, pattern := range e.patterns {
			for _, m := range pattern.FindAllStringSubmatch(line, -1) {
				candidate := Normalize(m[1])
				if len(candidate) <= minProductLen || len(candidate) >= maxProductLen {
					continue
				}
				if seen[candidate] {
					continue
				}
				seen[candidate] = true
				products = append(products, candidate)
			}
		}
	}

	if len(products) > maxProducts {
		products = products[:maxProducts]
	}
	return products
}
